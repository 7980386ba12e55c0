// Package blob declares the object-storage contract the asset pipeline
// depends on. The S3 implementation lives in the s3 subpackage; tests use an
// in-memory fake.
package blob

import "context"

// ObjectStore stores opaque blobs under string keys and serves them at
// durable public URLs.
//
// Upload returns the public URL of the stored object. Delete removes the
// object by key; deleting a key that doesn't exist is not an error.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
