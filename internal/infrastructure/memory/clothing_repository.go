package memory

import (
	"context"
	"sync"
	"time"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/domain/repository"
)

type ClothingRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]entity.ClothingItem
}

func NewClothingRepository() *ClothingRepository {
	return &ClothingRepository{nextID: 1, items: make(map[int64]entity.ClothingItem)}
}

func (r *ClothingRepository) Create(_ context.Context, it *entity.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it.ID = r.nextID
	r.nextID++
	now := time.Now()
	it.CreatedAt = now
	it.UpdatedAt = now
	r.items[it.ID] = *it
	return nil
}

func (r *ClothingRepository) GetByID(_ context.Context, id int64) (*entity.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &it, nil
}

func (r *ClothingRepository) ListByOwner(_ context.Context, ownerID int64) ([]entity.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.ClothingItem, 0)
	for id := int64(1); id < r.nextID; id++ {
		if it, ok := r.items[id]; ok && it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *ClothingRepository) Update(_ context.Context, it *entity.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[it.ID]; !ok {
		return repository.ErrNotFound
	}
	it.UpdatedAt = time.Now()
	r.items[it.ID] = *it
	return nil
}

func (r *ClothingRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Snapshot returns a copy of the stored item, for assertions that a failed
// mutation left the store unchanged.
func (r *ClothingRepository) Snapshot(id int64) (entity.ClothingItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	return it, ok
}

var _ repository.ClothingRepository = (*ClothingRepository)(nil)
