package gallery

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultSlideshowInterval  = 5 * time.Second
)

// ViewerConfig carries the dependencies of a Viewer. Zero fields fall
// back to defaults, except Loader which is required.
type ViewerConfig struct {
	Loader             ImageLoader
	Clock              clockwork.Clock
	TransitionDuration time.Duration
	SlideshowInterval  time.Duration
	PlaceholderSrc     string
	ErrorCaption       string
}

// Viewer is the lightbox session state: which gallery is open, which
// image is current, and whether a navigation transition is underway.
// All rendering is a projection of Snapshot(); nothing else leaks out.
//
// The transition flag is the sole navigation guard: while set, Next,
// Previous and GoTo are no-ops. It is cleared by a timer after the
// configured transition duration; image-load completion swaps the
// displayed source but never clears the flag early.
type Viewer struct {
	mu                 sync.Mutex
	loader             ImageLoader
	clock              clockwork.Clock
	transitionDuration time.Duration
	slideshowInterval  time.Duration
	placeholderSrc     string
	errorCaption       string

	open          bool
	gallery       *Gallery
	index         int
	transitioning bool
	loading       bool
	loadFailed    bool
	shownSrc      string
	shownCaption  string
	loadSeq       uint64

	transitionTimer clockwork.Timer
	slideshowTimer  clockwork.Timer
	slideshowOn     bool
}

func NewViewer(cfg *ViewerConfig) *Viewer {
	v := &Viewer{
		loader:             cfg.Loader,
		clock:              cfg.Clock,
		transitionDuration: cfg.TransitionDuration,
		slideshowInterval:  cfg.SlideshowInterval,
		placeholderSrc:     cfg.PlaceholderSrc,
		errorCaption:       cfg.ErrorCaption,
	}
	if v.clock == nil {
		v.clock = clockwork.NewRealClock()
	}
	if v.transitionDuration <= 0 {
		v.transitionDuration = DefaultTransitionDuration
	}
	if v.slideshowInterval <= 0 {
		v.slideshowInterval = DefaultSlideshowInterval
	}
	if v.placeholderSrc == "" {
		v.placeholderSrc = "/img/placeholder.svg"
	}
	if v.errorCaption == "" {
		v.errorCaption = "image unavailable"
	}
	return v
}

// Open presents the gallery at startIndex. An out-of-range index is
// clamped into [0, len-1]; opening an empty gallery is a no-op. There
// is no error path.
func (v *Viewer) Open(g *Gallery, startIndex int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if g.Len() == 0 {
		return
	}
	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex > g.Len()-1 {
		startIndex = g.Len() - 1
	}

	v.stopTransitionLocked()
	v.open = true
	v.gallery = g
	v.index = startIndex
	v.loadFailed = false
	v.shownSrc = g.Images[startIndex].Thumb
	v.shownCaption = g.Images[startIndex].Caption
	v.startLoadLocked()
}

// Close releases the viewer. Safe to call repeatedly; the slideshow
// timer is stopped unconditionally so a pending tick cannot fire
// against a closed viewer.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stopSlideshowLocked()
	v.stopTransitionLocked()
	v.open = false
	v.loading = false
	v.loadSeq++
}

func (v *Viewer) Next()     { v.step(1) }
func (v *Viewer) Previous() { v.step(-1) }

func (v *Viewer) step(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open || v.transitioning {
		return
	}
	n := v.gallery.Len()
	v.navigateLocked(((v.index+delta)%n + n) % n)
}

// GoTo jumps straight to index, wrapped modulo the gallery length.
// Honors the same transition guard as Next and Previous.
func (v *Viewer) GoTo(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open || v.transitioning {
		return
	}
	n := v.gallery.Len()
	v.navigateLocked(((index % n) + n) % n)
}

func (v *Viewer) navigateLocked(target int) {
	v.index = target
	v.transitioning = true
	v.loadFailed = false
	v.shownCaption = v.gallery.Images[target].Caption
	v.transitionTimer = v.clock.AfterFunc(v.transitionDuration, v.endTransition)
	v.startLoadLocked()
}

func (v *Viewer) endTransition() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.transitioning = false
	v.transitionTimer = nil
}

func (v *Viewer) stopTransitionLocked() {
	if v.transitionTimer != nil {
		v.transitionTimer.Stop()
		v.transitionTimer = nil
	}
	v.transitioning = false
}

// startLoadLocked kicks off the asynchronous load of the current full
// image. The sequence number drops results of superseded loads; the
// previous image stays visible until the fresh one arrives.
func (v *Viewer) startLoadLocked() {
	v.loadSeq++
	seq := v.loadSeq
	idx := v.index
	img := v.gallery.Images[idx]
	v.loading = true

	go func() {
		var err error
		if v.loader != nil {
			err = v.loader.Load(img.Full)
		}
		v.finishLoad(seq, img, err)
	}()
}

func (v *Viewer) finishLoad(seq uint64, img Image, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.loadSeq || !v.open {
		return
	}
	v.loading = false
	if err != nil {
		v.shownSrc = v.placeholderSrc
		v.shownCaption = v.errorCaption
		v.loadFailed = true
		return
	}
	v.shownSrc = img.Full
	v.shownCaption = img.Caption
	v.loadFailed = false
}

// StartSlideshow arms a repeating timer that advances the viewer.
// Calling it while a slideshow runs restarts the timer with the new
// interval; interval <= 0 selects the configured default.
func (v *Viewer) StartSlideshow(interval time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open {
		return
	}
	if interval <= 0 {
		interval = v.slideshowInterval
	}
	v.stopSlideshowLocked()
	v.slideshowOn = true
	v.armSlideshowLocked(interval)
}

func (v *Viewer) armSlideshowLocked(interval time.Duration) {
	v.slideshowTimer = v.clock.AfterFunc(interval, func() {
		v.Next()
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.slideshowOn && v.open {
			v.armSlideshowLocked(interval)
		}
	})
}

// StopSlideshow cancels the slideshow if one is running.
func (v *Viewer) StopSlideshow() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopSlideshowLocked()
}

func (v *Viewer) stopSlideshowLocked() {
	if v.slideshowTimer != nil {
		v.slideshowTimer.Stop()
		v.slideshowTimer = nil
	}
	v.slideshowOn = false
}

// ThumbEntry is one cell of the thumbnail strip.
type ThumbEntry struct {
	Index   int
	Src     string
	Caption string
	Active  bool
}

// Snapshot is the immutable render model of the viewer. Templates are
// driven by it alone, so view and state cannot drift apart.
type Snapshot struct {
	Open          bool
	GalleryName   string
	GalleryTitle  string
	Index         int
	Length        int
	Src           string
	Caption       string
	Loading       bool
	LoadFailed    bool
	Transitioning bool
	ScrollLock    bool
	SlideshowOn   bool
	Thumbnails    []ThumbEntry
}

func (v *Viewer) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		Open:          v.open,
		Index:         v.index,
		Loading:       v.loading,
		LoadFailed:    v.loadFailed,
		Transitioning: v.transitioning,
		ScrollLock:    v.open,
		SlideshowOn:   v.slideshowOn,
		Src:           v.shownSrc,
		Caption:       v.shownCaption,
	}
	if v.gallery != nil {
		s.GalleryName = v.gallery.Name
		s.GalleryTitle = v.gallery.Title
		s.Length = v.gallery.Len()
		s.Thumbnails = make([]ThumbEntry, 0, v.gallery.Len())
		for i, img := range v.gallery.Images {
			s.Thumbnails = append(s.Thumbnails, ThumbEntry{
				Index:   i,
				Src:     img.Thumb,
				Caption: img.Caption,
				Active:  v.open && i == v.index,
			})
		}
	}
	return s
}
