package repository

import (
	"context"
	"time"

	"venue-booking/internal/database"
	"venue-booking/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	FindAll(ctx context.Context) ([]models.Show, error)
	Create(ctx context.Context, show *models.Show) error
}

type showRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewShowRepository(db *database.Database) ShowRepository {
	return &showRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *showRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("show_time").
		Find(&shows).Error
	return shows, classify(err)
}

// Create inserts the show only; Artist and Venue are never upserted, so an
// unknown id fails on the foreign key.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(show).Error
	})
	return classify(err)
}
