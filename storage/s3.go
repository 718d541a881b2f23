package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3UploadTimeout = 30 * time.Second

// S3Config contains minimal configuration for the snapshot bucket. Empty
// values fall back to the standard AWS config/credential chain.
type S3Config struct {
	Bucket string
	Prefix string
	Region string
	// UsePathStyle forces path-style addressing for S3-compatible providers.
	UsePathStyle bool
}

// S3Store mirrors snapshot reports to an S3 bucket in addition to the
// local directory.
type S3Store struct {
	client *s3.Client
	dir    *Dir
	bucket string
	prefix string
}

// NewS3Store wraps a local snapshot dir with S3 mirroring.
func NewS3Store(ctx context.Context, dir *Dir, cfg S3Config) (*S3Store, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &S3Store{client: client, dir: dir, bucket: cfg.Bucket, prefix: prefix}, nil
}

// S3ConfigFromEnv reads the snapshot bucket settings. Returns false when
// S3_BUCKET is unset, meaning uploads are disabled.
func S3ConfigFromEnv() (S3Config, bool) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return S3Config{}, false
	}
	return S3Config{
		Bucket:       bucket,
		Prefix:       strings.TrimSpace(os.Getenv("S3_PREFIX")),
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}, true
}

// Save writes the snapshot locally, then uploads the same report to S3.
// Upload failures are logged but never surfaced: the local copy is the
// source of truth and the caller's response is already computed.
func (s *S3Store) Save(report string) (string, error) {
	path, err := s.dir.Save(report)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s3UploadTimeout)
	defer cancel()

	key := s.prefix + "snapshots/" + fmt.Sprintf("news_articles_%s.txt", time.Now().Format("20060102_150405"))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(report),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		log.Printf("Warning: S3 upload failed for %s: %v", key, err)
		return path, nil
	}

	return path, nil
}
