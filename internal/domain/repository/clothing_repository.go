package repository

import (
	"context"

	"wardrobe-api/internal/domain/entity"
)

// ClothingRepository is the item store. Update replaces all mutable columns of
// the row identified by the entity's ID; field merging happens in the service
// layer, which always starts from the freshly loaded record.
type ClothingRepository interface {
	Create(ctx context.Context, it *entity.ClothingItem) error
	GetByID(ctx context.Context, id int64) (*entity.ClothingItem, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.ClothingItem, error)
	Update(ctx context.Context, it *entity.ClothingItem) error
	Delete(ctx context.Context, id int64) error
}
