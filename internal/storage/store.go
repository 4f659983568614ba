package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/utils"
)

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	CreateBucket(ctx context.Context, in *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// FileStore keeps the raw uploaded submission files.
type FileStore struct {
	api        objectAPI
	presigner  presignAPI
	bucket     string
	presignTTL time.Duration
	breaker    *utils.CircuitBreaker
}

func NewFileStore(client *s3.Client, bucket string, presignTTL time.Duration) *FileStore {
	return newFileStore(client, s3.NewPresignClient(client), bucket, presignTTL)
}

func newFileStore(api objectAPI, presigner presignAPI, bucket string, presignTTL time.Duration) *FileStore {
	return &FileStore{
		api:        api,
		presigner:  presigner,
		bucket:     bucket,
		presignTTL: presignTTL,
		breaker:    utils.NewCircuitBreaker(5, 30*time.Second),
	}
}

// SubmissionKey is where the raw file of a submission lives.
func SubmissionKey(examID, submissionID uuid.UUID, ext string) string {
	return path.Join("submissions", examID.String(), submissionID.String()+ext)
}

// EnsureBucket creates the bucket, treating "already exists" as success.
func (s *FileStore) EnsureBucket(ctx context.Context) error {
	_, err := s.api.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusConflict {
		logging.FromContext(ctx).Info(ctx, "bucket already exists", zap.String("bucket", s.bucket))
		return nil
	}
	return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
}

func (s *FileStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := utils.RetryWithCircuitBreaker(ctx, s.breaker, 3, 100*time.Millisecond, func() (struct{}, error) {
		_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(body),
			ContentLength: aws.Int64(int64(len(body))),
			ContentType:   aws.String(contentType),
		})
		return struct{}{}, classify(err)
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// PresignGet returns a time-limited download URL. When filename is set the
// browser is told to save the file under that name.
func (s *FileStore) PresignGet(ctx context.Context, key, filename string) (string, time.Time, error) {
	in := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if filename != "" {
		in.ResponseContentDisposition = aws.String(mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	}

	req, err := s.presigner.PresignGetObject(ctx, in, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, time.Now().Add(s.presignTTL), nil
}

// classify marks server-side failures as retriable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %v", utils.ErrUnavailable, err)
	}
	return err
}
