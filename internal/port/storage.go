package port

import (
	"context"
	"io"
)

// UploadInput describes one object write. Filename, when set, is offered to
// browsers as the download name.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Filename    string
}

// UploadOutput reports where an object landed.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage holds detention evidence photos and generated exports.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
