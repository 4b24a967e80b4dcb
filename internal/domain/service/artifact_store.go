package service

import (
	"context"
)

// ArtifactStore persists exported plan files such as route tables and maps.
type ArtifactStore interface {
	// Put writes data under key and returns the stored object's location.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Get reads an object previously written with Put.
	Get(ctx context.Context, key string) ([]byte, error)
}
