package engine

import (
	"slices"
	"time"

	"github.com/kamstrup/intmap"
)

// State is the top-level board phase.
type State uint8

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Running"
}

// EndReason records why a game ended.
type EndReason uint8

const (
	EndNone EndReason = iota
	// EndBlockOut means a piece locked entirely inside the hidden rows.
	EndBlockOut
	// EndTopOut means the next piece had nowhere to spawn.
	EndTopOut
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndBlockOut:
		return "block out"
	case EndTopOut:
		return "top out"
	default:
		return "none"
	}
}

// Gravity describes the per-level fall speed curve.
type Gravity struct {
	Base           time.Duration // fall interval at level 0
	Quadratic      time.Duration // subtracted per level squared
	Min            time.Duration // fastest allowed interval
	SoftDropFactor int           // soft drop divides the interval by this
	SoftDropMin    time.Duration // fastest allowed soft drop interval
}

// Config holds the timing and progression rules of a board.
type Config struct {
	LockDelay     time.Duration
	SlideDelay    time.Duration
	SlideRate     time.Duration
	Gravity       Gravity
	LinesPerLevel int
	StartLevel    int // zero-based
	MaxLevel      int // zero-based
	PreviewSize   int
}

// DefaultConfig returns the standard ruleset timings.
func DefaultConfig() Config {
	return Config{
		LockDelay:  500 * time.Millisecond,
		SlideDelay: 100 * time.Millisecond,
		SlideRate:  50 * time.Millisecond,
		Gravity: Gravity{
			Base:           800 * time.Millisecond,
			Quadratic:      4 * time.Millisecond,
			Min:            30 * time.Millisecond,
			SoftDropFactor: 20,
			SoftDropMin:    5 * time.Millisecond,
		},
		LinesPerLevel: 10,
		StartLevel:    0,
		MaxLevel:      14,
		PreviewSize:   5,
	}
}

// FallIntervals precomputes the normal and soft drop intervals for every
// level from 0 to MaxLevel. The normal curve is quadratic in the level and
// never faster than Gravity.Min.
func (c Config) FallIntervals() (normal, soft []time.Duration) {
	n := max(c.MaxLevel, 0) + 1
	normal = make([]time.Duration, n)
	soft = make([]time.Duration, n)
	factor := max(c.Gravity.SoftDropFactor, 1)
	for l := range n {
		iv := c.Gravity.Base - c.Gravity.Quadratic*time.Duration(l*l)
		iv = max(iv, c.Gravity.Min)
		normal[l] = iv
		soft[l] = max(iv/time.Duration(factor), c.Gravity.SoftDropMin)
	}
	return normal, soft
}

// Input is the player intent for one tick. Left, Right and SoftDrop are
// held states; the rest are presses consumed by the tick they arrive in.
type Input struct {
	Left      bool
	Right     bool
	SoftDrop  bool
	RotateCW  bool
	RotateCCW bool
	Hold      bool
	HardDrop  bool
}

// Board is the game state machine. It owns the grid, the active and held
// pieces, the randomizer, the timers and the score.
type Board struct {
	cfg   Config
	grid  *Grid
	rand  *Randomizer
	score ScoreState

	fall []time.Duration
	soft []time.Duration

	state  State
	reason EndReason

	active   Piece
	held     Kind
	hasHeld  bool
	holdUsed bool

	lastFall    time.Duration
	lockPending bool
	lockStart   time.Duration
	slide       slider

	softCells int  // rows covered by soft drop for the active piece
	rotated   bool // last successful manipulation was a rotation
	lastKick  int  // kick index used by that rotation

	level      int
	lines      int
	levelLines int

	lastAward  Award
	hasAward   bool
	lastLocked Piece
	locks      int
}

// NewBoard creates a board with the given rules and random source and
// deals the first piece at time zero.
func NewBoard(cfg Config, src Source) *Board {
	cfg.StartLevel = min(max(cfg.StartLevel, 0), max(cfg.MaxLevel, 0))
	b := &Board{
		cfg:  cfg,
		grid: NewGrid(),
		rand: NewRandomizer(src, cfg.PreviewSize),
		slide: slider{
			delay: cfg.SlideDelay,
			rate:  cfg.SlideRate,
		},
	}
	b.fall, b.soft = cfg.FallIntervals()
	b.Reset(0)
	return b
}

// Reset starts a new game: empty grid, fresh bags, zero score and the
// configured start level. now becomes the origin for all timers.
func (b *Board) Reset(now time.Duration) {
	b.grid.Reset()
	b.rand.Reset()
	b.score = NewScoreState()
	b.state = StateRunning
	b.reason = EndNone
	b.hasHeld = false
	b.holdUsed = false
	b.lockPending = false
	b.slide.reset()
	b.level = b.cfg.StartLevel
	b.lines = 0
	b.levelLines = 0
	b.hasAward = false
	b.lastAward = Award{}
	b.lastLocked = Piece{}
	b.locks = 0
	b.spawn(b.rand.Next(), now)
}

// Update advances the simulation to time now, applying in.
// A finished game ignores every call until Reset.
func (b *Board) Update(now time.Duration, in Input) {
	if b.state == StateGameOver {
		return
	}

	if in.Hold {
		b.hold(now)
		if b.state == StateGameOver {
			return
		}
	}

	switch {
	case in.RotateCCW:
		b.Rotate(CounterClockwise)
	case in.RotateCW:
		b.Rotate(Clockwise)
	}

	if b.slide.step(now, direction(in.Left, in.Right)) {
		b.Translate(b.slide.dir)
	}

	if in.HardDrop {
		b.hardDrop(now)
		return
	}

	if b.lockPending && now-b.lockStart > b.cfg.LockDelay && b.restingOnStack() {
		b.lock(now, 0)
		return
	}

	if now-b.lastFall >= b.fallInterval(in.SoftDrop) {
		b.lastFall = now
		b.gravityStep(now, in.SoftDrop)
	}
}

func (b *Board) fallInterval(soft bool) time.Duration {
	if soft {
		return b.soft[b.level]
	}
	return b.fall[b.level]
}

// gravityStep moves the active piece down one row or, when blocked,
// starts or expires the lock delay.
func (b *Board) gravityStep(now time.Duration, soft bool) {
	if b.tryMove(0, 1) {
		if soft {
			b.softCells++
		}
		return
	}
	if !b.lockPending {
		b.lockPending = true
		b.lockStart = now
		return
	}
	if now-b.lockStart > b.cfg.LockDelay {
		b.lock(now, 0)
	}
}

func (b *Board) restingOnStack() bool {
	return !b.grid.Fits(b.active.Moved(0, 1))
}

// tryMove shifts the active piece when the destination is free. Any
// successful move cancels a pending lock and ends a rotation streak.
func (b *Board) tryMove(dx, dy int) bool {
	next := b.active.Moved(dx, dy)
	if !b.grid.Fits(next) {
		return false
	}
	b.active = next
	b.lockPending = false
	b.rotated = false
	return true
}

// Translate moves the active piece dx columns. Blocked moves are ignored.
func (b *Board) Translate(dx int) bool {
	if b.state == StateGameOver {
		return false
	}
	return b.tryMove(dx, 0)
}

// Rotate turns the active piece, trying each wall-kick offset in order.
// It reports whether the rotation was applied. The O piece never rotates.
func (b *Board) Rotate(r Rotation) bool {
	if b.state == StateGameOver || b.active.Kind == KindO {
		return false
	}

	target := r.Apply(b.active.Orientation)
	for i, kick := range KickCandidates(b.active.Kind, b.active.Orientation, r) {
		// Kick offsets count Y upward while board rows grow downward.
		anchor := b.active.Anchor.Add(C(kick.X, -kick.Y))
		if b.grid.Collides(b.active.Kind, anchor, target) {
			continue
		}
		b.active.Orientation = target
		b.active.Anchor = anchor
		b.lockPending = false
		b.rotated = true
		b.lastKick = i
		return true
	}
	return false
}

// hardDrop snaps the active piece onto the ghost position and locks it.
func (b *Board) hardDrop(now time.Duration) {
	ghost := b.Ghost()
	dist := ghost.Anchor.Y - b.active.Anchor.Y
	if dist > 0 {
		b.rotated = false
	}
	b.active = ghost
	b.lock(now, dist)
}

// hold swaps the active piece with the held one, once per lock cycle.
func (b *Board) hold(now time.Duration) {
	if b.holdUsed {
		return
	}
	current := b.active.Kind
	next := b.held
	if !b.hasHeld {
		next = b.rand.Next()
	}
	b.held = current
	b.hasHeld = true
	b.holdUsed = true
	b.spawn(next, now)
}

// spawn places a new active piece at its spawn anchor, nudging it up by
// one or two rows when that is blocked. If nothing fits the game ends.
func (b *Board) spawn(kind Kind, now time.Duration) {
	p := Piece{Kind: kind, Orientation: Up, Anchor: SpawnAnchor(kind)}
	b.lastFall = now
	b.lockPending = false
	b.softCells = 0
	b.rotated = false
	b.lastKick = 0

	for shift := 0; shift <= 2; shift++ {
		candidate := p.Moved(0, -shift)
		if b.grid.Fits(candidate) {
			b.active = candidate
			return
		}
	}
	b.active = p
	b.endGame(EndTopOut)
}

// lock writes the active piece into the grid, clears lines, scores the
// result and spawns the next piece.
func (b *Board) lock(now time.Duration, hardCells int) {
	b.lockPending = false
	spin := b.detectTSpin()
	piece := b.active

	rows := intmap.NewSet[int](4)
	for _, c := range piece.Cells() {
		b.grid.Set(c, Cell{Filled: true, Kind: piece.Kind})
		rows.Add(c.Y)
	}
	b.lastLocked = piece
	b.locks++

	blockOut := true
	for y := range rows.All() {
		if y >= BufferRows {
			blockOut = false
			break
		}
	}
	if blockOut {
		b.endGame(EndBlockOut)
		return
	}

	touched := slices.Sorted(rows.All())
	cleared := b.grid.ClearLines(touched)
	b.lastAward = b.score.Record(cleared, spin, b.level, b.softCells, hardCells)
	b.hasAward = true
	b.advanceLevel(cleared)

	b.holdUsed = false
	b.spawn(b.rand.Next(), now)
}

// detectTSpin applies the three-corner rule to the active piece.
func (b *Board) detectTSpin() TSpin {
	if b.active.Kind != KindT || !b.rotated {
		return TSpinNone
	}
	corners := 0
	for _, off := range [4]Coord{C(0, 0), C(2, 0), C(0, 2), C(2, 2)} {
		if b.grid.Occupied(b.active.Anchor.Add(off)) {
			corners++
		}
	}
	if corners < 3 {
		return TSpinNone
	}
	if b.lastKick > 0 {
		return TSpinMini
	}
	return TSpinFull
}

// advanceLevel counts cleared lines toward the next level. Reaching the
// threshold raises the level by one and restarts the count.
func (b *Board) advanceLevel(cleared int) {
	b.lines += cleared
	b.levelLines += cleared
	if b.cfg.LinesPerLevel <= 0 {
		return
	}
	if b.levelLines >= b.cfg.LinesPerLevel && b.level < b.cfg.MaxLevel {
		b.levelLines = 0
		b.level++
	}
}

func (b *Board) endGame(reason EndReason) {
	b.state = StateGameOver
	b.reason = reason
	b.lockPending = false
}

// Ghost returns the active piece dropped as far as it can fall.
func (b *Board) Ghost() Piece {
	g := b.active
	for b.grid.Fits(g.Moved(0, 1)) {
		g = g.Moved(0, 1)
	}
	return g
}

// State returns the current phase.
func (b *Board) State() State { return b.state }

// EndReason returns why the game ended, or EndNone while running.
func (b *Board) EndReason() EndReason { return b.reason }

// Grid returns the locked cells. Callers must treat it as read-only.
func (b *Board) Grid() *Grid { return b.grid }

// Cell returns the locked cell at (x, y).
func (b *Board) Cell(x, y int) Cell { return b.grid.Get(C(x, y)) }

// Active returns the piece under player control.
func (b *Board) Active() Piece { return b.active }

// Hold returns the held kind and whether one is held.
func (b *Board) Hold() (Kind, bool) { return b.held, b.hasHeld }

// CanHold reports whether hold is available before the next lock.
func (b *Board) CanHold() bool { return !b.holdUsed }

// Preview returns the upcoming kinds, next first.
func (b *Board) Preview() []Kind { return b.rand.Preview() }

// Score returns the cumulative score.
func (b *Board) Score() int { return b.score.Score }

// Combo returns the active combo count, or -1 when none is running.
func (b *Board) Combo() int { return b.score.Combo }

// Level returns the zero-based level.
func (b *Board) Level() int { return b.level }

// Lines returns the total lines cleared this game.
func (b *Board) Lines() int { return b.lines }

// Locks returns how many pieces have been locked this game.
func (b *Board) Locks() int { return b.locks }

// LockPending reports whether the lock delay is running.
func (b *Board) LockPending() bool { return b.lockPending }

// SlideState returns the horizontal auto-repeat phase.
func (b *Board) SlideState() SlideState { return b.slide.state }

// LastAward returns the result of the most recent lock.
func (b *Board) LastAward() (Award, bool) { return b.lastAward, b.hasAward }

// LastLocked returns the most recently locked piece.
func (b *Board) LastLocked() Piece { return b.lastLocked }

// Config returns the rules the board was created with.
func (b *Board) Config() Config { return b.cfg }
