package mediasync

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/econectar/econectar-web/config"
	"github.com/econectar/econectar-web/internal/gallery"
	"github.com/econectar/econectar-web/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *memStorage) Scan(prefix string) ([]media.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	objects := []media.Object{}
	for name := range s.files {
		if strings.HasPrefix(name, prefix) {
			objects = append(objects, media.Object{Name: name})
		}
	}
	return objects, nil
}

func (s *memStorage) ReadAll(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("no such object '%s'", path)
	}
	return content, nil
}

func (s *memStorage) put(name string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = content
}

const manifest = "title: Meliponário\nimages:\n  - file: full/jatai.jpg\n    caption: Jataí\n"

func newScheduler(t *testing.T, storage *memStorage, onNew func([]string)) (*Scheduler, *gallery.Registry) {
	t.Helper()
	lib := media.NewLibrary(storage, &config.MediaConfig{
		PublicBaseURL: "https://media.econectar.example",
		GalleryPrefix: "galleries/",
	})
	registry := gallery.NewRegistry()

	ms, err := NewScheduler(lib, registry, "*/30 * * * *", onNew)
	require.NoError(t, err)
	t.Cleanup(func() { ms.Close() })
	return ms, registry
}

func TestInitialScanFillsRegistry(t *testing.T) {
	storage := &memStorage{files: map[string][]byte{
		"galleries/meliponario.yaml": []byte(manifest),
	}}

	newNames := []string{}
	_, registry := newScheduler(t, storage, func(names []string) {
		newNames = append(newNames, names...)
	})

	g, err := registry.Get("meliponario")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"meliponario"}, newNames)
}

func TestRescanPicksUpNewAndDroppedGalleries(t *testing.T) {
	storage := &memStorage{files: map[string][]byte{
		"galleries/meliponario.yaml": []byte(manifest),
	}}
	ms, registry := newScheduler(t, storage, nil)

	storage.put("galleries/habitat.yaml", []byte("title: Habitat\nimages:\n  - file: full/a.jpg\n"))
	require.NoError(t, ms.Rescan())

	assert.Equal(t, []string{"habitat", "meliponario"}, registry.Names())

	// A manifest that disappears from storage leaves the registry too.
	storage.mu.Lock()
	delete(storage.files, "galleries/meliponario.yaml")
	storage.mu.Unlock()
	require.NoError(t, ms.Rescan())

	_, err := registry.Get("meliponario")
	assert.Error(t, err)
}

func TestOnNewNameFiresOncePerGallery(t *testing.T) {
	storage := &memStorage{files: map[string][]byte{
		"galleries/meliponario.yaml": []byte(manifest),
	}}

	calls := 0
	ms, _ := newScheduler(t, storage, func([]string) { calls++ })

	require.NoError(t, ms.Rescan())
	require.NoError(t, ms.Rescan())
	assert.Equal(t, 1, calls)
}
