package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wardrobe-api/internal/domain/entity"
	"wardrobe-api/internal/domain/repository"
)

type ClothingRepository struct {
	pool *pgxpool.Pool
}

func NewClothingRepository(pool *pgxpool.Pool) *ClothingRepository {
	return &ClothingRepository{pool: pool}
}

func (r *ClothingRepository) Create(ctx context.Context, it *entity.ClothingItem) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO clothing_items (name, category, color, brand, image_url, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, it.Name, it.Category, it.Color, it.Brand, it.ImageURL, it.OwnerID)

	return row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *ClothingRepository) GetByID(ctx context.Context, id int64) (*entity.ClothingItem, error) {
	it := &entity.ClothingItem{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, category, color, brand, image_url, owner_id, created_at, updated_at
		FROM clothing_items
		WHERE id = $1
	`, id)

	if err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Color, &it.Brand,
		&it.ImageURL, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return it, nil
}

func (r *ClothingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]entity.ClothingItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, color, brand, image_url, owner_id, created_at, updated_at
		FROM clothing_items
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.ClothingItem, 0)
	for rows.Next() {
		var it entity.ClothingItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Color, &it.Brand,
			&it.ImageURL, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ClothingRepository) Update(ctx context.Context, it *entity.ClothingItem) error {
	it.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE clothing_items
		SET name = $1, category = $2, color = $3, brand = $4, image_url = $5, updated_at = $6
		WHERE id = $7
	`, it.Name, it.Category, it.Color, it.Brand, it.ImageURL, it.UpdatedAt, it.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the item row. The owner relation lives on the item side only,
// so no back-reference cleanup is needed and the removal is a single statement.
func (r *ClothingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM clothing_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ClothingRepository = (*ClothingRepository)(nil)
