package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"usermgmt-service/pkg/id"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrEmptyObject = errors.New("empty object body")

// PutObjectAPI is the slice of the S3 client the image store needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3ImageStore struct {
	client PutObjectAPI
	bucket string
}

func NewS3ImageStore(client PutObjectAPI, bucket string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket}
}

// NewS3ImageStoreFromEnv loads credentials and region the default SDK way.
func NewS3ImageStoreFromEnv(ctx context.Context, bucket string) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3ImageStore(s3.NewFromConfig(cfg), bucket), nil
}

// PutUserImage uploads under users/<id>/<random> and returns the object key.
func (s *S3ImageStore) PutUserImage(ctx context.Context, userID uint64, contentType string, body []byte) (string, error) {
	if len(body) == 0 {
		return "", ErrEmptyObject
	}
	key := fmt.Sprintf("users/%d/%s", userID, id.NewID32())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(body),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}
