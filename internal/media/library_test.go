package media

import (
	"fmt"
	"strings"
	"testing"

	"github.com/econectar/econectar-web/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	files map[string][]byte
}

func (s *memStorage) Scan(prefix string) ([]Object, error) {
	objects := []Object{}
	for name, content := range s.files {
		if strings.HasPrefix(name, prefix) {
			objects = append(objects, Object{Name: name, Size: int64(len(content))})
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

func testLibrary(files map[string][]byte) *Library {
	return NewLibrary(&memStorage{files: files}, &config.MediaConfig{
		PublicBaseURL:  "https://media.econectar.example/",
		GalleryPrefix:  "galleries/",
		ProjectsPrefix: "projects/",
	})
}

func TestGalleriesFromManifests(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"galleries/meliponario.yaml": []byte(`
title: Meliponário
images:
  - file: full/jatai.jpg
    thumb: thumbs/jatai.webp
    caption: Jataí hive
  - file: full/urucu.jpg
    caption: Uruçu box
`),
		"galleries/readme.txt": []byte("not a manifest"),
	})

	galleries, err := lib.Galleries()
	require.NoError(t, err)
	require.Len(t, galleries, 1)

	g := galleries[0]
	assert.Equal(t, "meliponario", g.Name)
	assert.Equal(t, "Meliponário", g.Title)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, "https://media.econectar.example/thumbs/jatai.webp", g.Images[0].Thumb)
	assert.Equal(t, "https://media.econectar.example/full/jatai.jpg", g.Images[0].Full)
	// Without a thumb rendition, the full image doubles as thumbnail.
	assert.Equal(t, "https://media.econectar.example/full/urucu.jpg", g.Images[1].Thumb)
}

func TestProjectsSkipPagesWithoutFrontmatter(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"projects/en/meliponary.md": []byte(`---
title: Community meliponary
summary: Hives in schools
publishedTime: 2025-06-01T10:00:00Z
tags: [education]
---
Body text.
`),
		"projects/en/draft.md": []byte("no frontmatter here"),
	})

	projects, err := lib.Projects("en")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "meliponary", projects[0].Slug)
	assert.Equal(t, "Community meliponary", projects[0].Metadata.Title)
	assert.Equal(t, []string{"education"}, projects[0].Metadata.Tags)
}

func TestReadProjectSplitsFrontmatterAndBody(t *testing.T) {
	lib := testLibrary(map[string][]byte{
		"projects/pt/meliponario.md": []byte("---\ntitle: Meliponário comunitário\n---\nCorpo do texto.\n"),
	})

	metadata, markdown, err := lib.ReadProject("pt", "meliponario")
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "Meliponário comunitário", metadata.Title)
	assert.Equal(t, "Corpo do texto.\n", string(markdown))
}

func TestParseFrontmatterWithoutHeader(t *testing.T) {
	metadata, markdown, err := ParseFrontmatter([]byte("plain markdown"))
	require.NoError(t, err)
	assert.Nil(t, metadata)
	assert.Equal(t, "plain markdown", string(markdown))
}
