package mandel

// Pool holds the scratch buffers of one worker. Buffers grow to the largest
// request seen and are never shrunk. A Pool must not be used by two renders
// at the same time; give each worker its own.
type Pool struct {
	pix    []byte
	smooth []byte
	iters  []int32
	fracs  []float32
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// bytes returns a pixel scratch buffer of length n. Contents are stale.
func (p *Pool) bytes(n int) []byte {
	p.pix = grow(p.pix, n)
	return p.pix
}

// smoothBytes returns the scratch buffer for the parallel smooth array.
func (p *Pool) smoothBytes(n int) []byte {
	p.smooth = grow(p.smooth, n)
	return p.smooth
}

// escapes returns scratch storage for n per-pixel escape results.
func (p *Pool) escapes(n int) ([]int32, []float32) {
	p.iters = grow(p.iters, n)
	p.fracs = grow(p.fracs, n)
	return p.iters, p.fracs
}

// Cap reports the current pixel buffer capacity in bytes.
func (p *Pool) Cap() int {
	return cap(p.pix)
}
