package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/config"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// ErrNoBucket is returned when uploading without a configured bucket
var ErrNoBucket = errors.New("no S3 bucket configured")

// Uploader publishes rendered images to an S3-compatible bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	cdnURL string
}

// NewUploader creates an uploader around an existing S3 client
func NewUploader(client s3iface.S3API, bucket, cdnURL string) (*Uploader, error) {
	if bucket == "" {
		return nil, ErrNoBucket
	}
	return &Uploader{
		client: client,
		bucket: bucket,
		cdnURL: strings.TrimRight(cdnURL, "/"),
	}, nil
}

// NewS3Uploader creates an uploader with static credentials. Path-style
// addressing keeps custom endpoints such as MinIO working.
func NewS3Uploader(cfg config.S3Config) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNoBucket
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewUploader(s3.New(sess), cfg.Bucket, cfg.CDNURL)
}

// Upload stores data under key as a public object and returns its URL
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Printf("Uploaded %s to S3 (%d bytes)", key, size)
	return u.URL(key), nil
}

// URL returns the public address of key: under the CDN when one is
// configured, otherwise an s3:// URL
func (u *Uploader) URL(key string) string {
	if u.cdnURL != "" {
		return u.cdnURL + "/" + key
	}
	return fmt.Sprintf("s3://%s/%s", u.bucket, key)
}
