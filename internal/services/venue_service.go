package services

import (
	"context"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type VenueService interface {
	// Read operations
	ListVenues(ctx context.Context) ([]models.Area, error)
	GetVenue(ctx context.Context, id uint) (*VenueDetail, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)

	// Write operations
	CreateVenue(ctx context.Context, in VenueInput) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, in VenueInput) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error
}

// VenueDetail is a venue with its shows split around the time of the request.
type VenueDetail struct {
	Venue *models.Venue `json:"venue"`
	models.ShowSchedule
}

type venueService struct {
	repo      repository.VenueRepository
	genreRepo repository.GenreRepository
	images    ImageStore
	logger    *logrus.Logger
	now       func() time.Time
}

// NewVenueService builds the venue service. images may be nil when uploads
// are disabled.
func NewVenueService(repo repository.VenueRepository, genreRepo repository.GenreRepository, images ImageStore, logger *logrus.Logger) VenueService {
	return &venueService{
		repo:      repo,
		genreRepo: genreRepo,
		images:    images,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Area, error) {
	venues, err := s.repo.FindAllOrderedByState(ctx)
	if err != nil {
		return nil, err
	}
	return GroupAreas(venues), nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VenueDetail{
		Venue:        venue,
		ShowSchedule: SplitShows(venue.Shows, s.now()),
	}, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	return s.repo.Search(ctx, term)
}

func (s *venueService) CreateVenue(ctx context.Context, in VenueInput) (*models.Venue, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, s.logger, in.Genres)
	if err != nil {
		return nil, err
	}

	venue := &models.Venue{Genres: genres}
	in.applyTo(venue)

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"venue_id": venue.ID,
		"name":     venue.Name,
	}).Info("Venue created")
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uint, in VenueInput) (*models.Venue, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, s.logger, in.Genres)
	if err != nil {
		return nil, err
	}

	var oldImage string
	venue, err := s.repo.Update(ctx, id, func(v *models.Venue) {
		oldImage = v.ImageLink
		in.applyTo(v)
	}, genres)
	if err != nil {
		return nil, err
	}

	if oldImage != venue.ImageLink {
		removeManagedImage(ctx, s.images, s.logger, oldImage)
	}

	s.logger.WithField("venue_id", venue.ID).Info("Venue updated")
	return venue, nil
}

func (s *venueService) DeleteVenue(ctx context.Context, id uint) error {
	venue, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	removeManagedImage(ctx, s.images, s.logger, venue.ImageLink)

	s.logger.WithField("venue_id", id).Info("Venue deleted")
	return nil
}

// GroupAreas folds venues that are already ordered by state and city into
// one Area per consecutive (city, state) run.
func GroupAreas(venues []models.Venue) []models.Area {
	areas := make([]models.Area, 0)
	for _, v := range venues {
		n := len(areas)
		if n > 0 && areas[n-1].City == v.City && areas[n-1].State == v.State {
			areas[n-1].Venues = append(areas[n-1].Venues, v)
			continue
		}
		areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.Venue{v}})
	}
	return areas
}

// SplitShows puts shows starting strictly before now in Past and the rest in
// Upcoming, keeping their order.
func SplitShows(shows []models.Show, now time.Time) models.ShowSchedule {
	schedule := models.ShowSchedule{
		Past:     make([]models.Show, 0),
		Upcoming: make([]models.Show, 0),
	}
	for _, show := range shows {
		if show.ShowTime.Before(now) {
			schedule.Past = append(schedule.Past, show)
		} else {
			schedule.Upcoming = append(schedule.Upcoming, show)
		}
	}
	return schedule
}
