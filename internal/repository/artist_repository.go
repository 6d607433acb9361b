package repository

import (
	"context"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	FindAll(ctx context.Context) ([]models.Artist, error)
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)

	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id uint, apply func(*models.Artist), genres []models.Genre) (*models.Artist, error)
	Delete(ctx context.Context, id uint) (*models.Artist, error)
}

type artistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewArtistRepository(db *database.Database) ArtistRepository {
	return &artistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *artistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).Preload("Genres").Order("id").Find(&artists).Error
	return artists, classify(err)
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var artist models.Artist
	if err := db.Preload("Genres").First(&artist, id).Error; err != nil {
		return nil, classify(err)
	}

	if err := db.Preload("Venue").
		Where("artist_id = ?", id).
		Order("show_time").
		Find(&artist.Shows).Error; err != nil {
		return nil, classify(err)
	}

	return &artist, nil
}

func (r *artistRepository) Search(ctx context.Context, term string) ([]models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&artists).Error
	return artists, classify(err)
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Genres.*").Create(artist).Error
	})
	return classify(err)
}

func (r *artistRepository) Update(ctx context.Context, id uint, apply func(*models.Artist), genres []models.Genre) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}

		apply(&artist)
		artist.ID = id

		if err := tx.Omit(clause.Associations).Save(&artist).Error; err != nil {
			return err
		}

		if genres != nil {
			return tx.Model(&artist).Association("Genres").Replace(genres)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &artist, nil
}

func (r *artistRepository) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&artist).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	return &artist, nil
}
