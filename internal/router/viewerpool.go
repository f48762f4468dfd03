package router

import (
	"sync"

	"github.com/econectar/econectar-web/internal/gallery"
)

// ViewerPool owns one lightbox viewer per gallery name. Viewers are
// created lazily from a shared base config and torn down together on
// shutdown.
type ViewerPool struct {
	mu      sync.Mutex
	base    *gallery.ViewerConfig
	viewers map[string]*gallery.Viewer
}

func NewViewerPool(base *gallery.ViewerConfig) *ViewerPool {
	return &ViewerPool{
		base:    base,
		viewers: make(map[string]*gallery.Viewer),
	}
}

func (p *ViewerPool) Get(name string) *gallery.Viewer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.viewers[name]; ok {
		return v
	}
	v := gallery.NewViewer(p.base)
	p.viewers[name] = v
	return v
}

func (p *ViewerPool) CloseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, v := range p.viewers {
		v.Close()
	}
}
