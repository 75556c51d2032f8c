package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

const eventsCacheKey = "events:all"

type eventsRepository interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context) ([]models.Event, error)
}

// EventsService implements campus event postings. Events are immutable once
// created, so there is no ownership check beyond creation itself.
type EventsService struct {
	repo      eventsRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventsService constructs an EventsService.
func NewEventsService(repo eventsRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *EventsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EventsService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// CreateEvent persists a new event created by the caller.
func (s *EventsService) CreateEvent(ctx context.Context, identity models.Identity, req models.CreateEventRequest) (*models.Event, error) {
	if identity.StudentID == 0 {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}

	event := &models.Event{
		Title:       req.Title,
		Date:        req.Date,
		Venue:       req.Venue,
		Description: req.Description,
		CreatedBy:   identity.StudentID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageFailure.Code, appErrors.ErrStorageFailure.Status, "failed to create event")
	}

	if err := s.cache.Invalidate(ctx, eventsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate events cache", zap.Error(err))
	}
	s.logger.Info("event created", zap.Int64("event_id", event.EventID), zap.Int64("created_by", identity.StudentID))
	return event, nil
}

// ListEvents returns all events ordered by the literal date string. The
// ordering is lexicographic, matching the stored free-text dates.
func (s *EventsService) ListEvents(ctx context.Context) ([]models.Event, error) {
	var cached []models.Event
	if hit, _ := s.cache.Get(ctx, eventsCacheKey, &cached); hit {
		return cached, nil
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}

	// Dates are free text; ordering is by literal string comparison, so a
	// non-padded "2" sorts after "10". Stable to keep the store's tie order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})

	_ = s.cache.Set(ctx, eventsCacheKey, events, 0)
	return events, nil
}
