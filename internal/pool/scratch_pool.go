// Package pool provides pooled scratch buffers for two-phase encoding:
// owned values are staged into a scratch buffer first, so the destination
// region is touched only after the full encoding is known to fit.
package pool

import "sync"

// Scratch buffer sizing. Most staged encodings are container contents well
// under a few KiB; buffers past the threshold are discarded instead of
// pooled to avoid retaining one oversized allocation forever.
const (
	ScratchDefaultSize  = 4 * 1024
	ScratchMaxThreshold = 256 * 1024
)

// Scratch is a reusable staging buffer.
type Scratch struct {
	// B is the underlying byte slice.
	B []byte
}

// NewScratch creates a Scratch with the given initial capacity.
func NewScratch(capacity int) *Scratch {
	return &Scratch{B: make([]byte, 0, capacity)}
}

// Bytes returns the staged bytes.
func (s *Scratch) Bytes() []byte { return s.B }

// Len returns the staged byte count.
func (s *Scratch) Len() int { return len(s.B) }

// Reset empties the buffer, retaining its allocation.
func (s *Scratch) Reset() { s.B = s.B[:0] }

// Extend appends n zero bytes and returns the slice covering them, growing
// the allocation if needed.
func (s *Scratch) Extend(n int) []byte {
	start := len(s.B)
	need := start + n
	if need > cap(s.B) {
		grown := make([]byte, need, growCap(cap(s.B), need))
		copy(grown, s.B)
		s.B = grown
	} else {
		s.B = s.B[:need]
		clear(s.B[start:need])
	}

	return s.B[start:need]
}

func growCap(current, need int) int {
	grown := current * 2
	if grown < ScratchDefaultSize {
		grown = ScratchDefaultSize
	}
	if grown < need {
		grown = need
	}

	return grown
}

// ScratchPool pools Scratch buffers to minimize allocations on the staging
// path.
type ScratchPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewScratchPool creates a pool issuing buffers of defaultSize capacity and
// discarding returned buffers larger than maxThreshold.
func NewScratchPool(defaultSize, maxThreshold int) *ScratchPool {
	return &ScratchPool{
		pool: sync.Pool{
			New: func() any {
				return NewScratch(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty Scratch from the pool.
func (p *ScratchPool) Get() *Scratch {
	s, _ := p.pool.Get().(*Scratch)

	return s
}

// Put returns a Scratch to the pool for reuse.
func (p *ScratchPool) Put(s *Scratch) {
	if s == nil {
		return
	}
	if p.maxThreshold > 0 && cap(s.B) > p.maxThreshold {
		return
	}
	s.Reset()
	p.pool.Put(s)
}

var defaultPool = NewScratchPool(ScratchDefaultSize, ScratchMaxThreshold)

// GetScratch retrieves a Scratch from the default pool.
func GetScratch() *Scratch {
	return defaultPool.Get()
}

// PutScratch returns a Scratch to the default pool.
func PutScratch(s *Scratch) {
	defaultPool.Put(s)
}
