package request

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/snapspot-api/internal/domain/geo"
	"github.com/snapspot-api/internal/infrastructure/sns"
	"github.com/snapspot-api/internal/persistence"
	"github.com/snapspot-api/internal/pkg/geodist"
	"github.com/snapspot-api/internal/pkg/id"
)

// Service implements photo-request use cases: browsing the request feed
// (optionally sorted by distance from the caller) and pinning new requests.
type Service interface {
	List(ctx context.Context, lat, lng *float64) (*geo.RequestsResponse, error)
	Create(ctx context.Context, userID string, req geo.CreateRequestRequest) (*geo.Request, error)
	Get(ctx context.Context, requestID string) (*geo.Request, error)
}

type requestStore interface {
	Create(ctx context.Context, req *geo.Request) error
	List(ctx context.Context) ([]geo.Request, error)
	GetByID(ctx context.Context, requestID string) (*geo.Request, error)
}

type service struct {
	requestRepo requestStore
	publisher   sns.Publisher
}

// ServiceDeps carries the dependencies for NewService. Publisher may be nil
// when no topic is configured; created-request events are then skipped.
type ServiceDeps struct {
	RequestRepo requestStore
	Publisher   sns.Publisher
}

func NewService(deps ServiceDeps) Service {
	return &service{
		requestRepo: deps.RequestRepo,
		publisher:   deps.Publisher,
	}
}

// List returns every request. With both coordinates present each request
// carries its distance in meters and the feed is sorted nearest-first;
// otherwise distances stay nil and the feed is sorted newest-first. A single
// coordinate is treated the same as none.
func (s *service) List(ctx context.Context, lat, lng *float64) (*geo.RequestsResponse, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, geo.FromStorage(err)
	}

	withDistance := make([]geo.RequestWithDistance, 0, len(requests))
	if lat != nil && lng != nil {
		for _, r := range requests {
			d := geodist.Haversine(*lat, *lng, r.Lat, r.Lng)
			withDistance = append(withDistance, geo.RequestWithDistance{Request: r, Distance: &d})
		}
		sort.Slice(withDistance, func(i, j int) bool {
			return *withDistance[i].Distance < *withDistance[j].Distance
		})
	} else {
		for _, r := range requests {
			withDistance = append(withDistance, geo.RequestWithDistance{Request: r})
		}
		sort.Slice(withDistance, func(i, j int) bool {
			return withDistance[i].CreatedAt.After(withDistance[j].CreatedAt)
		})
	}

	return &geo.RequestsResponse{Requests: withDistance}, nil
}

func (s *service) Create(ctx context.Context, userID string, req geo.CreateRequestRequest) (*geo.Request, error) {
	r := &geo.Request{
		RequestID:   id.New(),
		UserID:      userID,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      geo.StatusOpen,
		PlaceName:   req.PlaceName,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.requestRepo.Create(ctx, r); err != nil {
		return nil, geo.FromStorage(err)
	}

	// Best effort: a lost event never fails the create.
	if s.publisher != nil {
		if err := s.publisher.PublishRequestCreated(ctx, r); err != nil {
			slog.Warn("could not publish request created event", "request_id", r.RequestID, "err", err)
		}
	}
	return r, nil
}

func (s *service) Get(ctx context.Context, requestID string) (*geo.Request, error) {
	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if persistence.IsNoRows(err) {
			return nil, geo.NotFound("Request not found")
		}
		return nil, geo.FromStorage(err)
	}
	return r, nil
}
