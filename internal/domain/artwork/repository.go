package artwork

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Artwork, error)
	GetByUUID(ctx context.Context, id string) (*Artwork, error)
	Create(ctx context.Context, a *Artwork) error
	Update(ctx context.Context, a *Artwork) error
	DeleteByUUID(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListAll returns every record in the catalog's single fixed order.
func (r *repository) ListAll(ctx context.Context) ([]Artwork, error) {
	var artworks []Artwork
	err := r.db.WithContext(ctx).
		Order("artist_name, artwork_title").
		Find(&artworks).Error
	return artworks, err
}

func (r *repository) GetByUUID(ctx context.Context, id string) (*Artwork, error) {
	var a Artwork
	err := r.db.WithContext(ctx).Where("artwork_uuid = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArtworkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Create(ctx context.Context, a *Artwork) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Artwork) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) DeleteByUUID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("artwork_uuid = ?", id).Delete(&Artwork{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrArtworkNotFound
	}
	return nil
}
