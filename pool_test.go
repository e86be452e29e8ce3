package mandel

import "testing"

func TestPoolGrowsNeverShrinks(t *testing.T) {
	p := NewPool()
	if p.Cap() != 0 {
		t.Fatalf("new pool capacity = %d", p.Cap())
	}

	b := p.bytes(100)
	if len(b) != 100 {
		t.Fatalf("len(bytes(100)) = %d", len(b))
	}
	b[0] = 42

	if b := p.bytes(10); len(b) != 10 || b[0] != 42 {
		t.Errorf("bytes(10) reallocated: len %d, b[0] = %d", len(b), b[0])
	}
	if p.Cap() != 100 {
		t.Errorf("capacity after shrinking request = %d, want 100", p.Cap())
	}

	p.bytes(1000)
	if p.Cap() < 1000 {
		t.Errorf("capacity = %d, want at least 1000", p.Cap())
	}

	iters, fracs := p.escapes(50)
	if len(iters) != 50 || len(fracs) != 50 {
		t.Errorf("escapes(50) = %d, %d entries", len(iters), len(fracs))
	}
}

// A renderer keeps its pool between renders and results stay independent.
func TestRendererReusesPool(t *testing.T) {
	pool := NewPool()
	rd := &Renderer{Pool: pool}
	req := Request{Viewport: Home, Width: 64, Height: 48, MaxIterations: 50, Format: FormatRGBA}

	if _, err := rd.Render(req); err != nil {
		t.Fatal(err)
	}
	c := pool.Cap()
	if c < 64*48*4 {
		t.Fatalf("pool capacity after render = %d", c)
	}

	req.Width, req.Height = 16, 16
	if _, err := rd.Render(req); err != nil {
		t.Fatal(err)
	}
	if pool.Cap() != c {
		t.Errorf("pool capacity changed from %d to %d on a smaller render", c, pool.Cap())
	}
	if rd.Pool != pool {
		t.Error("renderer replaced its pool")
	}
}

func TestRendererLazyPool(t *testing.T) {
	rd := &Renderer{}
	req := Request{Viewport: Home, Width: 8, Height: 8, MaxIterations: 10}
	if _, err := rd.Render(req); err != nil {
		t.Fatal(err)
	}
	if rd.Pool == nil {
		t.Error("zero Renderer did not create a pool")
	}
}
