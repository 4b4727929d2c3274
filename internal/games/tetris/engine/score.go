package engine

import "fmt"

// TSpin classifies how a T piece reached its lock position.
type TSpin uint8

const (
	TSpinNone TSpin = iota
	// TSpinMini is a T-spin whose last rotation needed a wall kick.
	TSpinMini
	// TSpinFull is a T-spin whose last rotation fit without a kick.
	TSpinFull
)

// ClearType is a scored lock outcome.
type ClearType uint8

const (
	ClearSingle ClearType = iota
	ClearDouble
	ClearTriple
	ClearTetris
	ClearMiniTSpin
	ClearTSpin
	ClearMiniTSpinSingle
	ClearTSpinSingle
	ClearMiniTSpinDouble
	ClearTSpinDouble
	ClearTSpinTriple
)

var clearValues = [...]int{
	ClearSingle:          100,
	ClearDouble:          300,
	ClearTriple:          500,
	ClearTetris:          800,
	ClearMiniTSpin:       100,
	ClearTSpin:           400,
	ClearMiniTSpinSingle: 200,
	ClearTSpinSingle:     800,
	ClearMiniTSpinDouble: 400,
	ClearTSpinDouble:     1200,
	ClearTSpinTriple:     1600,
}

var clearNames = [...]string{
	ClearSingle:          "Single",
	ClearDouble:          "Double",
	ClearTriple:          "Triple",
	ClearTetris:          "Tetris",
	ClearMiniTSpin:       "Mini T-Spin",
	ClearTSpin:           "T-Spin",
	ClearMiniTSpinSingle: "Mini T-Spin Single",
	ClearTSpinSingle:     "T-Spin Single",
	ClearMiniTSpinDouble: "Mini T-Spin Double",
	ClearTSpinDouble:     "T-Spin Double",
	ClearTSpinTriple:     "T-Spin Triple",
}

// String returns the display name of the clear.
func (c ClearType) String() string {
	if int(c) < len(clearNames) {
		return clearNames[c]
	}
	return "Unknown"
}

// Value returns the base points of the clear at level 0.
func (c ClearType) Value() int {
	return clearValues[c]
}

// IsDifficult reports whether the clear keeps a back-to-back chain alive.
// T-spins that clear no lines are not line clears and never count.
func (c ClearType) IsDifficult() bool {
	return c == ClearTetris || c >= ClearMiniTSpinSingle
}

// Classify maps a lock result to its clear type. ok is false when the lock
// scores nothing beyond drop points.
func Classify(lines int, spin TSpin) (ClearType, bool) {
	if lines < 0 || lines > 4 {
		panic(fmt.Sprintf("engine: impossible line count %d", lines))
	}
	switch spin {
	case TSpinNone:
		if lines == 0 {
			return 0, false
		}
		return ClearSingle + ClearType(lines-1), true
	case TSpinMini:
		switch lines {
		case 0:
			return ClearMiniTSpin, true
		case 1:
			return ClearMiniTSpinSingle, true
		case 2:
			return ClearMiniTSpinDouble, true
		case 3:
			return ClearTSpinTriple, true
		}
	case TSpinFull:
		switch lines {
		case 0:
			return ClearTSpin, true
		case 1:
			return ClearTSpinSingle, true
		case 2:
			return ClearTSpinDouble, true
		case 3:
			return ClearTSpinTriple, true
		}
	}
	panic(fmt.Sprintf("engine: no clear type for %d lines with t-spin %d", lines, spin))
}

// Award describes the points granted by one lock.
type Award struct {
	Type       ClearType
	Scored     bool // false when only drop points were granted
	BackToBack bool
	Combo      int
	Lines      int
	Points     int
}

// ScoreState is the running score ledger. It is written once per lock.
type ScoreState struct {
	Score         int
	Combo         int // -1 while no combo is active
	prevDifficult bool
}

// NewScoreState returns a zeroed ledger with no active combo.
func NewScoreState() ScoreState {
	return ScoreState{Combo: -1}
}

// Record scores one lock. level is zero-based; every value is scaled by
// level+1. softCells and hardCells are the rows covered by soft and hard
// drop for the locked piece.
func (s *ScoreState) Record(lines int, spin TSpin, level, softCells, hardCells int) Award {
	award := Award{Lines: lines}

	if lines > 0 {
		s.Combo++
	} else {
		s.Combo = -1
	}
	award.Combo = s.Combo

	if ct, ok := Classify(lines, spin); ok {
		points := ct.Value() * (level + 1)
		if s.Combo > 0 {
			points += 50 * s.Combo * (level + 1)
		}
		difficult := ct.IsDifficult()
		if s.prevDifficult && difficult {
			points = points * 3 / 2
			award.BackToBack = true
		}
		s.prevDifficult = difficult

		award.Type = ct
		award.Scored = true
		award.Points = points
	}

	award.Points += softCells + 2*hardCells
	s.Score += award.Points
	return award
}
