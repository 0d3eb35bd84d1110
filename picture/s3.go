package picture

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the part of *s3.Client the S3 backend uses.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 keeps pictures as objects of a bucket, optionally under a key prefix.
// Stored paths have the form s3://<bucket>/<key>.
type S3 struct {
	Client S3API
	Bucket string
	Prefix string
}

var _ Store = (*S3)(nil)

// NewS3 builds the backend from the default AWS credential chain.
func NewS3(ctx context.Context, bucket, prefix, region string) (*S3, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is not set")
	}
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return &S3{Client: s3.NewFromConfig(cfg), Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, nil
}

func (s *S3) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}

func (s *S3) url(key string) string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, key)
}

func (s *S3) Store(ctx context.Context, propertyID uint, sourcePath string) (string, error) {
	ext, err := checkSource(sourcePath)
	if err != nil {
		return "", err
	}
	f, err := os.Open(sourcePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := s.key(FileName(propertyID, ext))
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
		Body:   f,
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		in.ContentType = aws.String(ct)
	}
	if _, err := s.Client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("failed to upload picture to S3: %w", err)
	}
	if err := s.removeExcept(ctx, propertyID, key); err != nil {
		return "", err
	}
	return s.url(key), nil
}

func (s *S3) Lookup(ctx context.Context, propertyID uint) (string, bool, error) {
	keys, err := s.list(ctx, propertyID)
	if err != nil || len(keys) == 0 {
		return "", false, err
	}
	return s.url(keys[0]), true, nil
}

func (s *S3) Remove(ctx context.Context, propertyID uint) error {
	return s.removeExcept(ctx, propertyID, "")
}

func (s *S3) removeExcept(ctx context.Context, propertyID uint, keep string) error {
	keys, err := s.list(ctx, propertyID)
	if err != nil {
		return err
	}
	var errs []error
	for _, key := range keys {
		if key == keep {
			continue
		}
		_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// list returns the keys of the property's pictures in supported formats.
func (s *S3) list(ctx context.Context, propertyID uint) ([]string, error) {
	// the trailing dot keeps property_1 from matching property_10
	prefix := s.key(FileName(propertyID, "."))
	var keys []string
	var token *string
	for {
		out, err := s.Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.Bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list pictures in S3: %w", err)
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if Supported(path.Ext(key)) {
				keys = append(keys, key)
			}
		}
		if !aws.ToBool(out.IsTruncated) {
			return keys, nil
		}
		token = out.NextContinuationToken
	}
}
