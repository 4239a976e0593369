package picture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/snapspot-api/internal/domain/media"
	"github.com/snapspot-api/internal/pkg/id"
)

// Service implements picture use cases: the public gallery plus
// authenticated upload and delete. Images live in S3; metadata lives in
// DynamoDB keyed by picture_id.
type Service interface {
	List(ctx context.Context) (*media.PicturesResponse, error)
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (*media.Picture, error)
	Delete(ctx context.Context, pictureID, userID string) error
}

type pictureStore interface {
	Create(ctx context.Context, p *media.Picture) error
	List(ctx context.Context) ([]media.Picture, error)
	GetByID(ctx context.Context, pictureID string) (*media.Picture, error)
	Delete(ctx context.Context, pictureID string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	pictureRepo pictureStore
	objects     objectStore
}

// ServiceDeps carries the dependencies for NewService.
type ServiceDeps struct {
	PictureRepo pictureStore
	Objects     objectStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		pictureRepo: deps.PictureRepo,
		objects:     deps.Objects,
	}
}

// List returns every picture, newest first.
func (s *service) List(ctx context.Context) (*media.PicturesResponse, error) {
	pictures, err := s.pictureRepo.List(ctx)
	if err != nil {
		return nil, media.FromStorage(err)
	}
	sort.Slice(pictures, func(i, j int) bool {
		return pictures[i].CreatedAt.After(pictures[j].CreatedAt)
	})
	if pictures == nil {
		pictures = []media.Picture{}
	}
	return &media.PicturesResponse{Pictures: pictures}, nil
}

// Upload stores the image under pictures/{user}/{ulid}-{filename} and
// records its metadata. The ULID prefix keeps repeated uploads of the same
// filename from clobbering each other.
func (s *service) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (*media.Picture, error) {
	key := fmt.Sprintf("pictures/%s/%s-%s", userID, id.New(), filename)

	url, err := s.objects.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		slog.Error("could not upload picture", "key", key, "err", err)
		return nil, media.Internal("Failed to upload file")
	}

	p := &media.Picture{
		PictureID: id.New(),
		UserID:    userID,
		ImageURL:  url,
		ObjectKey: key,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pictureRepo.Create(ctx, p); err != nil {
		return nil, media.FromStorage(err)
	}
	return p, nil
}

// Delete removes a picture owned by userID. A picture owned by someone else
// is reported as missing rather than revealing that it exists.
func (s *service) Delete(ctx context.Context, pictureID, userID string) error {
	p, err := s.pictureRepo.GetByID(ctx, pictureID)
	if err != nil {
		return media.FromStorage(err)
	}
	if p.UserID != userID {
		return media.NotFound("Picture not found")
	}

	// Best effort: an orphaned object is preferable to a dangling row.
	if p.ObjectKey != "" {
		if err := s.objects.Delete(ctx, p.ObjectKey); err != nil {
			slog.Warn("could not delete picture object", "key", p.ObjectKey, "err", err)
		}
	}

	if err := s.pictureRepo.Delete(ctx, pictureID); err != nil {
		return media.FromStorage(err)
	}
	return nil
}
