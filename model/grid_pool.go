package model

import "sync"

// GridPool recycles grids so the frame loop's per-generation double
// buffer does not allocate.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid sized width x height with every cell dead and
// its coordinates stamped.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state.
func (p *GridPool) Put(g *Grid) {
	g.clear()
	p.pool.Put(g)
}
