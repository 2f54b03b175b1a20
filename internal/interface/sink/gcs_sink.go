package sink

import (
	"context"
	"fmt"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/templates"

	"cloud.google.com/go/storage"
)

// ObjectStore stores a single named object
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
}

// GCSStore writes objects into a Cloud Storage bucket
type GCSStore struct {
	bucket *storage.BucketHandle
}

// NewGCSStore creates a store for bucket
func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{bucket: client.Bucket(bucket)}
}

// Put uploads data, replacing any existing object with the same name
func (s *GCSStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=60"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	return nil
}

// ObjectSink publishes the HTML page and JSON document of a board to an
// object store as <prefix><airport>.html and <prefix><airport>.json
type ObjectSink struct {
	store    ObjectStore
	prefix   string
	renderer *templates.BoardRenderer
}

// NewObjectSink creates a new object sink
func NewObjectSink(store ObjectStore, prefix string, renderer *templates.BoardRenderer) *ObjectSink {
	return &ObjectSink{store: store, prefix: prefix, renderer: renderer}
}

func (s *ObjectSink) Name() string { return "gcs" }

// Publish uploads both artifacts
func (s *ObjectSink) Publish(ctx context.Context, board *entity.Board) error {
	page, err := s.renderer.RenderBytes(board)
	if err != nil {
		return err
	}
	doc, err := MarshalBoard(board)
	if err != nil {
		return err
	}

	base := s.prefix + board.AirportCode
	if err := s.store.Put(ctx, base+".html", "text/html; charset=utf-8", page); err != nil {
		return err
	}
	return s.store.Put(ctx, base+".json", "application/json", doc)
}
