package media

import (
	"fmt"

	"github.com/econectar/econectar-web/config"
)

// Object is one stored file as seen by Scan.
type Object struct {
	Name        string
	ContentType string
	Size        int64
}

// Storage abstracts the object store holding galleries, project pages
// and fact files. Backends are selected by configuration. Names
// returned by Scan are relative to the backend's configured prefix and
// feed straight back into ReadAll.
type Storage interface {
	Scan(prefix string) ([]Object, error)
	ReadAll(path string) ([]byte, error)
}

func NewStorage(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "b2":
		return NewB2Storage(&cfg.B2)
	case "s3":
		return NewS3Storage(&cfg.S3)
	}
	return nil, fmt.Errorf("unknown storage type '%s'", cfg.Type)
}
