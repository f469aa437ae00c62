// Package media uploads files to an S3-compatible bucket served through a public URL.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/google/uuid"
)

// ErrNotConfigured is returned when the bucket or credentials are missing
var ErrNotConfigured = errors.New("media storage is not configured")

type Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// PublicURL prefixes object keys in returned URLs, e.g. a CDN origin
	PublicURL string
}

func (c Config) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// Object is a stored upload
type Object struct {
	Key         string
	URL         string
	ContentType string
	Size        int64
}

type Store struct {
	cfg      Config
	uploader s3manageriface.UploaderAPI
	newKey   func(filename string) string
}

// NewStore opens an AWS session for cfg
func NewStore(cfg Config) (*Store, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return NewStoreWithUploader(cfg, s3manager.NewUploader(sess)), nil
}

// NewStoreWithUploader builds a Store around an existing uploader
func NewStoreWithUploader(cfg Config, uploader s3manageriface.UploaderAPI) *Store {
	return &Store{
		cfg:      cfg,
		uploader: uploader,
		newKey:   objectKey,
	}
}

// Upload stores body under a fresh key and returns its public URL
func (s *Store) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*Object, error) {
	key := s.newKey(filename)

	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return &Object{
		Key:         key,
		URL:         s.publicURL(key, out),
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *Store) publicURL(key string, out *s3manager.UploadOutput) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + key
	}
	if out != nil {
		return out.Location
	}
	return ""
}

// objectKey files uploads by month under a random name that keeps the extension
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)
}
