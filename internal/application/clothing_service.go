package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/domain/repository"
)

// ClothingService owns item CRUD and the ownership guard for mutations.
type ClothingService struct {
	Repo   repository.ClothingRepository
	Logger *logrus.Logger
}

func NewClothingService(repo repository.ClothingRepository, logger *logrus.Logger) *ClothingService {
	return &ClothingService{Repo: repo, Logger: logger}
}

type CreateItemInput struct {
	Name     string
	Category entity.Category
	Color    string
	Brand    *string
	ImageURL *string
}

// UpdateItemInput carries a partial update: nil fields are left unchanged.
type UpdateItemInput struct {
	Name     *string
	Category *entity.Category
	Color    *string
	Brand    *string
	ImageURL *string
}

// List returns the caller's items. The result is never nil so an empty
// wardrobe serializes as [].
func (s *ClothingService) List(ctx context.Context, ownerID int64) ([]entity.ClothingItem, error) {
	items, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.ClothingItem{}
	}
	return items, nil
}

// Create stores a new item owned by the caller. Ownership is fixed here and
// never changes afterwards.
func (s *ClothingService) Create(ctx context.Context, ownerID int64, in CreateItemInput) (*entity.ClothingItem, error) {
	it := &entity.ClothingItem{
		Name:     in.Name,
		Category: in.Category,
		Color:    in.Color,
		Brand:    in.Brand,
		ImageURL: in.ImageURL,
		OwnerID:  ownerID,
	}
	if err := s.Repo.Create(ctx, it); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create clothing item failed")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"item_id": it.ID, "owner_id": ownerID}).Info("clothing item created")
	}
	return it, nil
}

// authorize loads the item and enforces the mutation contract: a missing item
// is ErrItemNotFound before any ownership comparison, so callers cannot learn
// whether a foreign id exists.
func (s *ClothingService) authorize(ctx context.Context, callerID, itemID int64) (*entity.ClothingItem, error) {
	it, err := s.Repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if it.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	return it, nil
}

// Get returns the item after the same existence and ownership checks the
// mutations apply.
func (s *ClothingService) Get(ctx context.Context, callerID, itemID int64) (*entity.ClothingItem, error) {
	return s.authorize(ctx, callerID, itemID)
}

// Update merges the provided fields into the stored item. Fields absent from
// the request keep their current values.
func (s *ClothingService) Update(ctx context.Context, callerID, itemID int64, in UpdateItemInput) (*entity.ClothingItem, error) {
	it, err := s.authorize(ctx, callerID, itemID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Category != nil {
		it.Category = *in.Category
	}
	if in.Color != nil {
		it.Color = *in.Color
	}
	if in.Brand != nil {
		it.Brand = in.Brand
	}
	if in.ImageURL != nil {
		it.ImageURL = in.ImageURL
	}

	if err := s.Repo.Update(ctx, it); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// Delete removes the item after the ownership check. Existence is terminal:
// a deleted id yields ErrItemNotFound from then on.
func (s *ClothingService) Delete(ctx context.Context, callerID, itemID int64) error {
	it, err := s.authorize(ctx, callerID, itemID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, it.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"item_id": it.ID, "owner_id": callerID}).Info("clothing item deleted")
	}
	return nil
}
