package engine

// Source is the random source used to shuffle bags.
// *math/rand.Rand satisfies it; tests inject a seeded generator.
type Source interface {
	Intn(n int) int
}

// MaxPreview is the largest preview the randomizer can always serve.
const MaxPreview = KindCount

// Randomizer deals piece kinds from two alternating shuffled bags.
// Every aligned window of seven draws contains each kind exactly once.
type Randomizer struct {
	src     Source
	bags    [2][KindCount]Kind
	active  int // index of the bag being drawn from
	cursor  int // next position in the active bag
	preview int
}

// NewRandomizer creates a randomizer that exposes previewSize upcoming
// kinds. previewSize is clamped to [1, MaxPreview].
func NewRandomizer(src Source, previewSize int) *Randomizer {
	r := &Randomizer{
		src:     src,
		preview: min(max(previewSize, 1), MaxPreview),
	}
	r.Reset()
	return r
}

// Reset reshuffles both bags and starts drawing from the first one.
func (r *Randomizer) Reset() {
	for b := range r.bags {
		for i := range r.bags[b] {
			r.bags[b][i] = Kind(i)
		}
		r.shuffle(b)
	}
	r.active = 0
	r.cursor = 0
}

// shuffle permutes bag b in place with Fisher-Yates.
func (r *Randomizer) shuffle(b int) {
	bag := &r.bags[b]
	for i := len(bag) - 1; i > 0; i-- {
		j := r.src.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
}

// Next returns the next kind and advances the sequence. When the active
// bag runs out it is reshuffled and drawing continues from the other bag,
// which was shuffled when it was last exhausted.
func (r *Randomizer) Next() Kind {
	k := r.bags[r.active][r.cursor]
	r.cursor++
	if r.cursor == KindCount {
		r.shuffle(r.active)
		r.active ^= 1
		r.cursor = 0
	}
	return k
}

// Preview returns the upcoming kinds in draw order. The first element is
// what Next will return.
func (r *Randomizer) Preview() []Kind {
	out := make([]Kind, 0, r.preview)
	bag, pos := r.active, r.cursor
	for len(out) < r.preview {
		out = append(out, r.bags[bag][pos])
		pos++
		if pos == KindCount {
			bag ^= 1
			pos = 0
		}
	}
	return out
}

// PreviewSize returns the number of kinds Preview reports.
func (r *Randomizer) PreviewSize() int {
	return r.preview
}
