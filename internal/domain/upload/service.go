package upload

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fitness-platform/backend/internal/utils"
)

// Signer signs bytes as the given service account.
type Signer interface {
	SignBlob(ctx context.Context, serviceAccount string, payload []byte) ([]byte, error)
}

type Service struct {
	bucket         string
	serviceAccount string
	signer         Signer
	validate       *validator.Validate
	now            func() time.Time
	newID          func() string
}

func NewService(bucket, serviceAccount string, signer Signer) *Service {
	return &Service{
		bucket:         bucket,
		serviceAccount: serviceAccount,
		signer:         signer,
		validate:       utils.NewValidator(),
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

// SignedUploadURL returns a V4 signed PUT URL for a new object under kind/.
func (s *Service) SignedUploadURL(ctx context.Context, in SignInput) (*SignedURL, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}
	if s.bucket == "" || s.serviceAccount == "" || s.signer == nil {
		return nil, ErrNotConfigured
	}

	expires := in.ExpiresSeconds
	switch {
	case expires <= 0:
		expires = DefaultExpiresSeconds
	case expires > MaxExpiresSeconds:
		expires = MaxExpiresSeconds
	}
	exp := s.now().Add(time.Duration(expires) * time.Second)

	contentType := in.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	object := s.objectPath(in.Kind, in.FileName)
	url, err := storage.SignedURL(s.bucket, object, &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		Expires:        exp,
		ContentType:    contentType,
		GoogleAccessID: s.serviceAccount,
		SignBytes: func(b []byte) ([]byte, error) {
			return s.signer.SignBlob(ctx, s.serviceAccount, b)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign url: %w", err)
	}
	return &SignedURL{URL: url, Method: "PUT", ObjectPath: object, ExpiresAt: exp.Unix()}, nil
}

// SignedUploadURLs signs a batch. It stops at the first failure.
func (s *Service) SignedUploadURLs(ctx context.Context, items []SignInput) ([]SignedURL, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items is required", ErrBadRequest)
	}
	if len(items) > MaxBatchItems {
		return nil, fmt.Errorf("%w: at most %d items per request", ErrBadRequest, MaxBatchItems)
	}
	out := make([]SignedURL, 0, len(items))
	for _, it := range items {
		u, err := s.SignedUploadURL(ctx, it)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

func (s *Service) objectPath(kind, fileName string) string {
	ext := path.Ext(fileName)
	base := utils.Slugify(strings.TrimSuffix(fileName, ext))
	if base == "" {
		base = "file"
	}
	if ext = utils.Slugify(strings.TrimPrefix(ext, ".")); ext != "" {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%s-%s%s", kind, s.newID(), base, ext)
}
