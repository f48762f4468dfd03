package gallery

import (
	"fmt"
	"sort"
	"sync"
)

// Image is a single entry of a gallery. Thumb and Full may point at the
// same object when no downscaled rendition exists.
type Image struct {
	Thumb   string `json:"Thumb" yaml:"thumb"`
	Full    string `json:"Full" yaml:"full"`
	Caption string `json:"Caption" yaml:"caption"`
}

// Gallery is an ordered sequence of images scoped to one page region.
// It is immutable after construction; the registry swaps whole galleries
// instead of mutating them in place.
type Gallery struct {
	Name   string
	Title  string
	Images []Image
}

func (g *Gallery) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Images)
}

// Registry maps gallery names to their current contents. The media
// resync job replaces entries wholesale, so readers never observe a
// half-built gallery.
type Registry struct {
	mu        sync.RWMutex
	galleries map[string]*Gallery
}

func NewRegistry() *Registry {
	return &Registry{galleries: make(map[string]*Gallery)}
}

func (r *Registry) Get(name string) (*Gallery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.galleries[name]
	if !ok {
		return nil, fmt.Errorf("gallery '%s' is not registered", name)
	}
	return g, nil
}

func (r *Registry) Put(g *Gallery) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.galleries[g.Name] = g
}

// Replace swaps the full gallery set in one step.
func (r *Registry) Replace(galleries []*Gallery) {
	next := make(map[string]*Gallery, len(galleries))
	for _, g := range galleries {
		next[g.Name] = g
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.galleries = next
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.galleries))
	for name := range r.galleries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
