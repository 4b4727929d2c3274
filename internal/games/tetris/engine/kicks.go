package engine

// Kick tables follow the Super Rotation System. Each entry is indexed by
// the orientation before rotating and by the rotation direction, and
// lists five offsets in the order they must be tried. The first entry
// is always the unkicked rotation.
//
// Offsets use the table convention where positive Y points up; the
// board converts them when resolving a rotation.

var kicksJLSTZ = [4][2][5]Coord{
	Up: {
		CounterClockwise: {C(0, 0), C(1, 0), C(1, 1), C(0, -2), C(1, -2)},
		Clockwise:        {C(0, 0), C(-1, 0), C(-1, 1), C(0, -2), C(-1, -2)},
	},
	Right: {
		CounterClockwise: {C(0, 0), C(1, 0), C(1, -1), C(0, 2), C(1, 2)},
		Clockwise:        {C(0, 0), C(1, 0), C(1, -1), C(0, 2), C(1, 2)},
	},
	Down: {
		CounterClockwise: {C(0, 0), C(-1, 0), C(-1, 1), C(0, -2), C(-1, -2)},
		Clockwise:        {C(0, 0), C(1, 0), C(1, 1), C(0, -2), C(1, -2)},
	},
	Left: {
		CounterClockwise: {C(0, 0), C(-1, 0), C(-1, -1), C(0, 2), C(-1, 2)},
		Clockwise:        {C(0, 0), C(-1, 0), C(-1, -1), C(0, 2), C(-1, 2)},
	},
}

var kicksI = [4][2][5]Coord{
	Up: {
		CounterClockwise: {C(0, 0), C(-1, 0), C(2, 0), C(-1, 2), C(2, -1)},
		Clockwise:        {C(0, 0), C(-2, 0), C(1, 0), C(-2, -1), C(1, 2)},
	},
	Right: {
		CounterClockwise: {C(0, 0), C(2, 0), C(-1, 0), C(2, 1), C(-1, -2)},
		Clockwise:        {C(0, 0), C(-1, 0), C(2, 0), C(-1, 2), C(2, -1)},
	},
	Down: {
		CounterClockwise: {C(0, 0), C(1, 0), C(-2, 0), C(1, -2), C(-2, 1)},
		Clockwise:        {C(0, 0), C(2, 0), C(-1, 0), C(2, 1), C(-1, -2)},
	},
	Left: {
		CounterClockwise: {C(0, 0), C(-2, 0), C(1, 0), C(-2, -1), C(1, 2)},
		Clockwise:        {C(0, 0), C(1, 0), C(-2, 0), C(1, -2), C(-2, 1)},
	},
}

// KickCandidates returns the ordered wall-kick offsets for rotating kind
// from orientation o in direction r. The O piece has no meaningful
// kicks; callers treat its rotation as a no-op.
func KickCandidates(kind Kind, o Orientation, r Rotation) [5]Coord {
	if kind == KindI {
		return kicksI[o%4][r]
	}
	return kicksJLSTZ[o%4][r]
}
