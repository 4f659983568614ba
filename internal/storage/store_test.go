package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	mu        sync.Mutex
	putErrs   []error
	bucketErr error
	objects   map[string][]byte
	deleted   []string
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.putErrs) > 0 {
		err := f.putErrs[0]
		f.putErrs = f.putErrs[1:]
		return nil, err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeObjects) CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	return &s3.CreateBucketOutput{}, f.bucketErr
}

func responseError(status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
			Err:      errors.New(http.StatusText(status)),
		},
	}
}

func testPresigner() *s3.PresignClient {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("key", "secret", ""),
		BaseEndpoint: aws.String("http://localhost:9000"),
		UsePathStyle: true,
	})
	return s3.NewPresignClient(client)
}

func TestSubmissionKey(t *testing.T) {
	exam := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	sub := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	assert.Equal(t,
		"submissions/00000000-0000-0000-0000-00000000000a/00000000-0000-0000-0000-00000000000b.txt",
		SubmissionKey(exam, sub, ".txt"))
}

func TestFileStore_Put(t *testing.T) {
	api := &fakeObjects{}
	store := newFileStore(api, testPresigner(), "submissions", time.Minute)

	require.NoError(t, store.Put(context.Background(), "a/b.txt", "text/plain", []byte("hello")))
	assert.Equal(t, []byte("hello"), api.objects["a/b.txt"])
}

func TestFileStore_Put_RetriesServerErrors(t *testing.T) {
	api := &fakeObjects{putErrs: []error{responseError(http.StatusServiceUnavailable)}}
	store := newFileStore(api, testPresigner(), "submissions", time.Minute)

	require.NoError(t, store.Put(context.Background(), "k", "text/plain", []byte("x")))
	assert.Contains(t, api.objects, "k")
}

func TestFileStore_Put_ClientErrorNotRetried(t *testing.T) {
	api := &fakeObjects{putErrs: []error{responseError(http.StatusForbidden), nil}}
	store := newFileStore(api, testPresigner(), "submissions", time.Minute)

	err := store.Put(context.Background(), "k", "text/plain", []byte("x"))
	require.Error(t, err)
	assert.NotContains(t, api.objects, "k")
}

func TestFileStore_EnsureBucket(t *testing.T) {
	store := newFileStore(&fakeObjects{bucketErr: responseError(http.StatusConflict)}, testPresigner(), "b", time.Minute)
	assert.NoError(t, store.EnsureBucket(context.Background()))

	store = newFileStore(&fakeObjects{bucketErr: responseError(http.StatusForbidden)}, testPresigner(), "b", time.Minute)
	assert.Error(t, store.EnsureBucket(context.Background()))
}

func TestFileStore_PresignGet(t *testing.T) {
	store := newFileStore(&fakeObjects{}, testPresigner(), "submissions", 15*time.Minute)

	raw, expires, err := store.PresignGet(context.Background(), "submissions/e/s.pdf", "essay final.pdf")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expires, 5*time.Second)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/submissions/submissions/e/s.pdf", u.Path)
	q := u.Query()
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
	assert.Equal(t, "900", q.Get("X-Amz-Expires"))
	assert.Contains(t, q.Get("response-content-disposition"), "essay final.pdf")
}

func TestFileStore_Delete(t *testing.T) {
	api := &fakeObjects{}
	store := newFileStore(api, testPresigner(), "b", time.Minute)

	require.NoError(t, store.Delete(context.Background(), "k"))
	assert.Equal(t, []string{"k"}, api.deleted)
}
