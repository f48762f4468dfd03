package media

import (
	"fmt"
	"path"
	"strings"

	"github.com/econectar/econectar-web/config"
	"github.com/econectar/econectar-web/internal/gallery"
	"gopkg.in/yaml.v3"
)

// Library turns raw storage objects into domain things: galleries from
// YAML manifests, projects from frontmattered markdown, public URLs
// from object names.
type Library struct {
	storage        Storage
	publicBaseURL  string
	galleryPrefix  string
	projectsPrefix string
}

type galleryManifest struct {
	Title  string `yaml:"title"`
	Images []struct {
		File    string `yaml:"file"`
		Thumb   string `yaml:"thumb"`
		Caption string `yaml:"caption"`
	} `yaml:"images"`
}

// Project is a catalogue entry for one project page.
type Project struct {
	Slug     string
	Metadata *ProjectMetadata
}

func NewLibrary(storage Storage, cfg *config.MediaConfig) *Library {
	return &Library{
		storage:        storage,
		publicBaseURL:  strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		galleryPrefix:  cfg.GalleryPrefix,
		projectsPrefix: cfg.ProjectsPrefix,
	}
}

// PublicURL maps an object name onto the CDN-facing URL.
func (l *Library) PublicURL(name string) string {
	return l.publicBaseURL + "/" + strings.TrimPrefix(name, "/")
}

// Galleries loads every gallery manifest under the gallery prefix. The
// manifest file name (without extension) becomes the gallery name.
func (l *Library) Galleries() ([]*gallery.Gallery, error) {
	objects, err := l.storage.Scan(l.galleryPrefix)
	if err != nil {
		return nil, fmt.Errorf("scan gallery manifests: %w", err)
	}

	galleries := make([]*gallery.Gallery, 0, len(objects))
	for _, obj := range objects {
		if !strings.HasSuffix(obj.Name, ".yaml") && !strings.HasSuffix(obj.Name, ".yml") {
			continue
		}

		g, err := l.loadGallery(obj.Name)
		if err != nil {
			return nil, fmt.Errorf("load gallery '%s': %w", obj.Name, err)
		}
		galleries = append(galleries, g)
	}

	return galleries, nil
}

func (l *Library) loadGallery(name string) (*gallery.Gallery, error) {
	content, err := l.storage.ReadAll(name)
	if err != nil {
		return nil, err
	}

	manifest := &galleryManifest{}
	if err := yaml.Unmarshal(content, manifest); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	base := path.Base(name)
	g := &gallery.Gallery{
		Name:   strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml"),
		Title:  manifest.Title,
		Images: make([]gallery.Image, 0, len(manifest.Images)),
	}

	for _, img := range manifest.Images {
		thumb := img.Thumb
		if thumb == "" {
			thumb = img.File
		}
		g.Images = append(g.Images, gallery.Image{
			Thumb:   l.PublicURL(thumb),
			Full:    l.PublicURL(img.File),
			Caption: img.Caption,
		})
	}

	return g, nil
}

// Projects lists the project pages available for one language, sorted
// by the storage listing order.
func (l *Library) Projects(lang string) ([]*Project, error) {
	prefix := l.projectsPrefix + lang + "/"
	objects, err := l.storage.Scan(prefix)
	if err != nil {
		return nil, fmt.Errorf("scan projects for '%s': %w", lang, err)
	}

	projects := make([]*Project, 0, len(objects))
	for _, obj := range objects {
		if !strings.HasSuffix(obj.Name, ".md") {
			continue
		}

		content, err := l.storage.ReadAll(obj.Name)
		if err != nil {
			return nil, fmt.Errorf("read project '%s': %w", obj.Name, err)
		}

		metadata, _, err := ParseFrontmatter(content)
		if err != nil {
			return nil, fmt.Errorf("parse project '%s': %w", obj.Name, err)
		}
		if metadata == nil || metadata.Title == "" {
			continue
		}

		projects = append(projects, &Project{
			Slug:     strings.TrimSuffix(path.Base(obj.Name), ".md"),
			Metadata: metadata,
		})
	}

	return projects, nil
}

// ReadProject fetches one project page by language and slug.
func (l *Library) ReadProject(lang string, slug string) (*ProjectMetadata, []byte, error) {
	content, err := l.storage.ReadAll(l.projectsPrefix + lang + "/" + slug + ".md")
	if err != nil {
		return nil, nil, fmt.Errorf("read project '%s/%s': %w", lang, slug, err)
	}
	return ParseFrontmatter(content)
}

// ReadFile exposes raw reads for consumers with their own formats.
func (l *Library) ReadFile(name string) ([]byte, error) {
	return l.storage.ReadAll(name)
}
