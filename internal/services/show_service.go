package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

// startTimeLayouts are tried in order; values without a zone are UTC.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type ShowService interface {
	ListShows(ctx context.Context) ([]models.Show, error)
	CreateShow(ctx context.Context, in ShowInput) (*models.Show, error)
}

type showService struct {
	repo   repository.ShowRepository
	logger *logrus.Logger
}

func NewShowService(repo repository.ShowRepository, logger *logrus.Logger) ShowService {
	return &showService{
		repo:   repo,
		logger: logger,
	}
}

func (s *showService) ListShows(ctx context.Context) ([]models.Show, error) {
	return s.repo.FindAll(ctx)
}

// CreateShow parses the raw form values. Unparseable ids or times are
// reported as constraint violations, the same as a dangling foreign key.
func (s *showService) CreateShow(ctx context.Context, in ShowInput) (*models.Show, error) {
	fields, err := parseShowInput(in)
	if err != nil {
		return nil, err
	}
	if err := validateInput(fields); err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID: fields.ArtistID,
		VenueID:  fields.VenueID,
		ShowTime: fields.ShowTime,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"show_id":   show.ID,
		"artist_id": show.ArtistID,
		"venue_id":  show.VenueID,
	}).Info("Show created")
	return show, nil
}

func parseShowInput(in ShowInput) (showFields, error) {
	var fields showFields

	artistID, err := strconv.ParseUint(strings.TrimSpace(in.ArtistID), 10, 0)
	if err != nil {
		return fields, fmt.Errorf("%w: invalid artist_id %q", repository.ErrConstraintViolation, in.ArtistID)
	}
	venueID, err := strconv.ParseUint(strings.TrimSpace(in.VenueID), 10, 0)
	if err != nil {
		return fields, fmt.Errorf("%w: invalid venue_id %q", repository.ErrConstraintViolation, in.VenueID)
	}
	showTime, err := ParseStartTime(in.StartTime)
	if err != nil {
		return fields, err
	}

	fields.ArtistID = uint(artistID)
	fields.VenueID = uint(venueID)
	fields.ShowTime = showTime
	return fields, nil
}

// ParseStartTime accepts the formats the show form and its date picker send.
func ParseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid start_time %q", repository.ErrConstraintViolation, value)
}
