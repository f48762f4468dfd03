package media

import (
	"fmt"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// ProjectMetadata is the YAML frontmatter of a project markdown page.
type ProjectMetadata struct {
	Title         string    `yaml:"title"`
	Summary       string    `yaml:"summary"`
	PublishedTime time.Time `yaml:"publishedTime"`
	Thumbnail     string    `yaml:"thumbnail"`
	Tags          []string  `yaml:"tags"`
}

var frontmatterRegex = regexp.MustCompile(`^---\s*\r?\n([\s\S]*?)\r?\n---\s*\r?\n([\s\S]*)$`)

// ParseFrontmatter splits a markdown document into its YAML header and
// body. A document without a header comes back with nil metadata and
// the input untouched.
func ParseFrontmatter(content []byte) (metadata *ProjectMetadata, markdown []byte, err error) {
	matches := frontmatterRegex.FindSubmatch(content)

	if len(matches) != 3 {
		return nil, content, nil
	}

	metadata = &ProjectMetadata{}
	if err := yaml.Unmarshal(matches[1], metadata); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}

	return metadata, matches[2], nil
}
