package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

const (
	itemsCacheKeyPrefix = "items:"
	itemsCachePattern   = "items:*"
)

type catalogItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	Search(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	FindByID(ctx context.Context, id int64) (*models.Item, error)
	UpdateStatus(ctx context.Context, id int64, status models.ItemStatus) error
}

// PhotoStore is the file-store collaborator used when an item photo is
// supplied. Implementations must sanitize the suggested name.
type PhotoStore interface {
	Save(suggestedName string, data []byte) (string, error)
}

// CatalogService implements lost & found postings: creation, search, detail
// lookup and the one-way active-to-resolved transition.
type CatalogService struct {
	repo      catalogItemRepository
	photos    PhotoStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo catalogItemRepository, photos PhotoStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CatalogService{repo: repo, photos: photos, cache: cache, validator: validate, logger: logger}
}

// CreateItem persists a new posting owned by the caller. The photo is
// optional; when present it is stored first and a failed write aborts the
// whole operation rather than dropping the reference silently.
func (s *CatalogService) CreateItem(ctx context.Context, identity models.Identity, req models.CreateItemRequest, photo *models.PhotoUpload) (*models.Item, error) {
	if identity.StudentID == 0 {
		return nil, appErrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid item payload")
	}

	itemType := models.ItemType(req.Type)
	if !itemType.Valid() {
		return nil, appErrors.ErrInvalidType
	}

	var photoPath *string
	if photo != nil && len(photo.Data) > 0 {
		if s.photos == nil {
			return nil, appErrors.Clone(appErrors.ErrStorageFailure, "photo storage not configured")
		}
		path, err := s.photos.Save(photo.Filename, photo.Data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStorageFailure.Code, appErrors.ErrStorageFailure.Status, "failed to store photo")
		}
		photoPath = &path
	}

	item := &models.Item{
		StudentID:   identity.StudentID,
		Type:        itemType,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		PhotoPath:   photoPath,
		Status:      models.ItemStatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStorageFailure.Code, appErrors.ErrStorageFailure.Status, "failed to create item")
	}

	s.invalidateItemCache(ctx)
	s.logger.Info("item created",
		zap.Int64("item_id", item.ItemID),
		zap.Int64("student_id", identity.StudentID),
		zap.String("type", string(item.Type)),
	)
	return item, nil
}

// SearchItems returns active items, newest first, optionally narrowed by a
// case-sensitive substring over title/location/category and an exact type.
func (s *CatalogService) SearchItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	cacheKey := itemsCacheKey(filter)
	var cached []models.Item
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return cached, nil
	}

	items, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search items")
	}

	_ = s.cache.Set(ctx, cacheKey, items, 0)
	return items, nil
}

// GetItem returns a single item regardless of status; resolved items stay
// individually viewable even though search excludes them.
func (s *CatalogService) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "item not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch item")
	}
	return item, nil
}

// ResolveItem transitions an item to resolved. Only the owner may resolve;
// anyone else gets Forbidden. Re-resolving an already resolved item is a
// harmless rewrite.
func (s *CatalogService) ResolveItem(ctx context.Context, identity models.Identity, itemID int64) error {
	if identity.StudentID == 0 {
		return appErrors.ErrUnauthorized
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "item not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch item")
	}

	if item.StudentID != identity.StudentID {
		return appErrors.Clone(appErrors.ErrForbidden, "only the owner may resolve an item")
	}

	if err := s.repo.UpdateStatus(ctx, itemID, models.ItemStatusResolved); err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorageFailure.Code, appErrors.ErrStorageFailure.Status, "failed to update item status")
	}

	s.invalidateItemCache(ctx)
	s.logger.Info("item resolved", zap.Int64("item_id", itemID), zap.Int64("student_id", identity.StudentID))
	return nil
}

func (s *CatalogService) invalidateItemCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, itemsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate item cache", zap.Error(err))
	}
}

func itemsCacheKey(filter models.ItemFilter) string {
	return fmt.Sprintf("%sq=%s:type=%s", itemsCacheKeyPrefix, filter.Query, filter.Type)
}
