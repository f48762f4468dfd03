package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/Backblaze/blazer/b2"
	"github.com/econectar/econectar-web/config"
)

type B2Storage struct {
	prefix string
	bucket *b2.Bucket
	b2cl   *b2.Client
}

func NewB2Storage(cfg *config.B2Config) (*B2Storage, error) {
	b2cl, err := b2.NewClient(context.Background(), cfg.KeyID, cfg.ApplicationKey)
	if err != nil {
		return nil, err
	}

	bucket, err := b2cl.Bucket(context.Background(), cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &B2Storage{b2cl: b2cl, bucket: bucket, prefix: cfg.Prefix}, nil
}

func (s *B2Storage) Scan(prefix string) ([]Object, error) {
	objects := []Object{}

	iter := s.bucket.List(context.Background(), b2.ListPrefix(s.prefix+prefix))

	for iter.Next() {
		obj := iter.Object()
		if obj == nil {
			return nil, fmt.Errorf("failed to reference object in B2 bucket")
		}

		attrs, err := obj.Attrs(context.Background())
		if err != nil {
			return nil, fmt.Errorf("get attributes for object: %w", err)
		}

		if attrs.Status != b2.Uploaded {
			continue
		}

		objects = append(objects, Object{
			Name:        strings.TrimPrefix(obj.Name(), s.prefix),
			ContentType: attrs.ContentType,
			Size:        attrs.Size,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterate over B2 objects: %w", err)
	}

	return objects, nil
}

func (s *B2Storage) ReadAll(path string) ([]byte, error) {
	obj := s.bucket.Object(s.prefix + path)
	if obj == nil {
		return nil, fmt.Errorf("failed to reference object in B2 bucket")
	}
	attrs, err := obj.Attrs(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting attributes of an object: %w", err)
	}

	content := make([]byte, attrs.Size)
	reader := obj.NewReader(context.Background())
	defer reader.Close()

	if _, err = reader.Read(content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	return content, nil
}
