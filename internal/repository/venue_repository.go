package repository

import (
	"context"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	FindAll(ctx context.Context) ([]models.Venue, error)
	FindAllOrderedByState(ctx context.Context) ([]models.Venue, error)
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	Search(ctx context.Context, term string) ([]models.Venue, error)

	// Write operations run in their own transaction.
	Create(ctx context.Context, venue *models.Venue) error
	// Update loads the venue, lets apply mutate it and saves it. A nil genres
	// slice leaves the genre association untouched.
	Update(ctx context.Context, id uint, apply func(*models.Venue), genres []models.Genre) (*models.Venue, error)
	// Delete returns the removed row.
	Delete(ctx context.Context, id uint) (*models.Venue, error)
}

type venueRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVenueRepository(db *database.Database) VenueRepository {
	return &venueRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *venueRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Preload("Genres").Order("id").Find(&venues).Error
	return venues, classify(err)
}

func (r *venueRepository) FindAllOrderedByState(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).Order("state").Order("city").Order("id").Find(&venues).Error
	return venues, classify(err)
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var venue models.Venue
	if err := db.Preload("Genres").First(&venue, id).Error; err != nil {
		return nil, classify(err)
	}

	if err := db.Preload("Artist").
		Where("venue_id = ?", id).
		Order("show_time").
		Find(&venue.Shows).Error; err != nil {
		return nil, classify(err)
	}

	return &venue, nil
}

func (r *venueRepository) Search(ctx context.Context, term string) ([]models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&venues).Error
	return venues, classify(err)
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Genres.*").Create(venue).Error
	})
	return classify(err)
}

func (r *venueRepository) Update(ctx context.Context, id uint, apply func(*models.Venue), genres []models.Genre) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}

		apply(&venue)
		venue.ID = id

		if err := tx.Omit(clause.Associations).Save(&venue).Error; err != nil {
			return err
		}

		if genres != nil {
			return tx.Model(&venue).Association("Genres").Replace(genres)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &venue, nil
}

func (r *venueRepository) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&venue).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	return &venue, nil
}
