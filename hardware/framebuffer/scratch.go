package framebuffer

// the filter scratch is a fixed allocation shared with the depth filtering
// collaborator. the two halves are written and read on alternate frames
const (
	ScratchSize = 960
	scratchHalf = ScratchSize / 2
)

// Scratch is the auxiliary buffer zeroed on every full mode
// reinitialisation. entries are counted per half; swapping halves resets the
// count of the newly active half
type Scratch struct {
	data   [ScratchSize]byte
	active int
	counts [2]uint16
}

// Zero clears the whole buffer and both counts
func (s *Scratch) Zero() {
	clear(s.data[:])
	s.active = 0
	s.counts[0] = 0
	s.counts[1] = 0
}

// Half returns one of the two logical halves
func (s *Scratch) Half(i int) []byte {
	i &= 0x1
	return s.data[i*scratchHalf : (i+1)*scratchHalf]
}

// Active returns the half currently being written
func (s *Scratch) Active() []byte {
	return s.Half(s.active)
}

// Count returns the number of entries recorded in the active half
func (s *Scratch) Count() uint16 {
	return s.counts[s.active]
}

// Record notes another entry in the active half
func (s *Scratch) Record() {
	s.counts[s.active]++
}

// SwapHalves makes the other half active and resets its count
func (s *Scratch) SwapHalves() {
	s.active ^= 1
	s.counts[s.active] = 0
}
