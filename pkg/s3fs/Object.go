// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package s3fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	Scheme = "s3://"
)

var (
	ErrInvalidURI = errors.New("invalid s3 uri")
)

// GetObjectAPI is the subset of the S3 client used to download objects.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Parse splits an uri in the form s3://bucket/key into the bucket and key.
// The key is returned verbatim.
func Parse(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return "", "", fmt.Errorf("%w: %q does not start with %q", ErrInvalidURI, uri, Scheme)
	}
	bucket, key, _ := strings.Cut(uri[len(Scheme):], "/")
	if len(bucket) == 0 {
		return "", "", fmt.Errorf("%w: %q is missing a bucket", ErrInvalidURI, uri)
	}
	if len(key) == 0 || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%w: %q does not name an object", ErrInvalidURI, uri)
	}
	return bucket, key, nil
}

// Open starts downloading the object and returns its body with the content length.
// The content length is zero if the server did not send it.
func Open(ctx context.Context, client GetObjectAPI, bucket string, key string) (io.ReadCloser, int64, error) {
	getObjectOutput, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving object %q from bucket %q: %w", key, bucket, err)
	}
	return getObjectOutput.Body, aws.ToInt64(getObjectOutput.ContentLength), nil
}

// IsNotExist returns true if the error was caused by a response with status code 404.
func IsNotExist(err error) bool {
	var responseError *http.ResponseError
	if errors.As(err, &responseError) {
		if responseError.HTTPStatusCode() == 404 {
			return true
		}
	}
	return false
}
