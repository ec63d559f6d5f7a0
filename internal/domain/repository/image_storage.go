package repository

import "context"

// ImageStorage is the file-upload collaborator: it stores raw image bytes
// and returns the public URL of the stored asset.
type ImageStorage interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
