package engine

import "time"

// SlideState is the horizontal auto-repeat phase.
type SlideState uint8

const (
	SlideInactive SlideState = iota
	SlideStartDelay
	SlideSliding
)

// String returns the state name.
func (s SlideState) String() string {
	switch s {
	case SlideInactive:
		return "Inactive"
	case SlideStartDelay:
		return "StartDelay"
	case SlideSliding:
		return "Sliding"
	default:
		return "Unknown"
	}
}

// slider implements tap-to-move, hold-to-slide for one held direction.
type slider struct {
	state SlideState
	dir   int
	since time.Duration
	delay time.Duration // initial hold before sliding starts
	rate  time.Duration // time between repeated moves
}

// direction folds the two held inputs into -1, 0 or +1.
// Holding both counts as holding neither.
func direction(left, right bool) int {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}

// step advances the state machine and reports whether the piece should
// try to move one column in direction dir this tick.
func (s *slider) step(now time.Duration, dir int) bool {
	if dir == 0 || dir != s.dir {
		s.state = SlideInactive
	}
	s.dir = dir
	if dir == 0 {
		return false
	}

	switch s.state {
	case SlideInactive:
		s.state = SlideStartDelay
		s.since = now
		return true
	case SlideStartDelay:
		if now-s.since > s.delay {
			s.state = SlideSliding
			s.since = now
		}
	case SlideSliding:
		if now-s.since > s.rate {
			s.since = now
			return true
		}
	}
	return false
}

func (s *slider) reset() {
	s.state = SlideInactive
	s.dir = 0
	s.since = 0
}
