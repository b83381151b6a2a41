// Package rotation picks deterministic subsets of a row for each seed window.
package rotation

const increment uint32 = 0x6D2B79F5

// Next advances state and returns a value in [0,1) with the new state. The
// constants and the two mixing rounds are fixed: every stored rotation
// depends on them.
func Next(state uint32) (float64, uint32) {
	state += increment
	t := state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296, state
}

// Source is a seeded stream over Next.
type Source struct {
	state uint32
}

// NewSource seeds a stream. Only the low 32 bits of seed are used.
func NewSource(seed int64) *Source {
	return &Source{state: uint32(seed)}
}

// Float64 returns the next value in [0,1).
func (s *Source) Float64() float64 {
	v, next := Next(s.state)
	s.state = next
	return v
}
