package facts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/econectar/econectar-web/config"
	"github.com/econectar/econectar-web/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	files map[string][]byte
}

func (s *memStorage) Scan(prefix string) ([]media.Object, error) {
	objects := []media.Object{}
	for name := range s.files {
		if strings.HasPrefix(name, prefix) {
			objects = append(objects, media.Object{Name: name})
		}
	}
	return objects, nil
}

func (s *memStorage) ReadAll(path string) ([]byte, error) {
	content, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("no such object '%s'", path)
	}
	return content, nil
}

func testLibrary(files map[string][]byte) *media.Library {
	return media.NewLibrary(&memStorage{files: files}, &config.MediaConfig{
		PublicBaseURL: "https://media.econectar.example",
	})
}

func TestGivePicksThreeFacts(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"facts_en.txt": []byte("fact one\nfact two\nfact three\nfact four\n"),
	})

	g, err := NewFactGiver(lib, "facts_*.txt", []string{"en"})
	require.NoError(t, err)

	picked := g.Give("en")
	for _, fact := range picked {
		assert.Contains(t, []string{"fact one", "fact two", "fact three", "fact four"}, fact)
	}
	assert.NotEqual(t, picked[0], picked[1])
	assert.NotEqual(t, picked[1], picked[2])
}

func TestGiveRepeatsWhenFewerThanThree(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"facts_pt.txt": []byte("único fato\n"),
	})

	g, err := NewFactGiver(lib, "facts_*.txt", []string{"pt"})
	require.NoError(t, err)

	picked := g.Give("pt")
	assert.Equal(t, [3]string{"único fato", "único fato", "único fato"}, picked)
}

func TestGiveUnknownLanguageIsEmpty(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"facts_en.txt": []byte("fact\n"),
	})

	g, err := NewFactGiver(lib, "facts_*.txt", []string{"en"})
	require.NoError(t, err)

	assert.Equal(t, [3]string{}, g.Give("de"))
}

func TestMissingFactsFileFails(t *testing.T) {
	lib := testLibrary(map[string][]byte{})

	_, err := NewFactGiver(lib, "facts_*.txt", []string{"en"})
	assert.Error(t, err)
}
