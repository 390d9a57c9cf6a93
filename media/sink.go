package media

import (
	"context"
	"io"

	minio "github.com/minio/minio-go/v7"
)

// Sink is the media-upload collaborator. Implementations store a blob and
// return a durable URL plus the identifier the blob was stored under.
type Sink interface {
	Put(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (url string, id string, err error)
}

// MinIOSink stores uploads in a single MinIO bucket
type MinIOSink struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinIOSink returns a Sink backed by the given bucket
func NewMinIOSink(client *minio.Client, bucket string, baseURL string) *MinIOSink {
	return &MinIOSink{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// EnsureBucket creates the bucket if it does not exist yet
func (s *MinIOSink) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"})
	}
	return nil
}

// Put uploads the object and returns its public URL and object id
func (s *MinIOSink) Put(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, name, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", err
	}
	return s.baseURL + "/" + s.bucket + "/" + info.Key, info.Key, nil
}
