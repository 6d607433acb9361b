package services

import (
	"context"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type ArtistService interface {
	// Read operations
	ListArtists(ctx context.Context) ([]models.Artist, error)
	GetArtist(ctx context.Context, id uint) (*ArtistDetail, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)

	// Write operations
	CreateArtist(ctx context.Context, in ArtistInput) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, in ArtistInput) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
}

// ArtistDetail is an artist with its shows split around the time of the request.
type ArtistDetail struct {
	Artist *models.Artist `json:"artist"`
	models.ShowSchedule
}

type artistService struct {
	repo      repository.ArtistRepository
	genreRepo repository.GenreRepository
	images    ImageStore
	logger    *logrus.Logger
	now       func() time.Time
}

// NewArtistService builds the artist service. images may be nil when uploads
// are disabled.
func NewArtistService(repo repository.ArtistRepository, genreRepo repository.GenreRepository, images ImageStore, logger *logrus.Logger) ArtistService {
	return &artistService{
		repo:      repo,
		genreRepo: genreRepo,
		images:    images,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.repo.FindAll(ctx)
}

func (s *artistService) GetArtist(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArtistDetail{
		Artist:       artist,
		ShowSchedule: SplitShows(artist.Shows, s.now()),
	}, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return s.repo.Search(ctx, term)
}

func (s *artistService) CreateArtist(ctx context.Context, in ArtistInput) (*models.Artist, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, s.logger, in.Genres)
	if err != nil {
		return nil, err
	}

	artist := &models.Artist{Genres: genres}
	in.applyTo(artist)

	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"artist_id": artist.ID,
		"name":      artist.Name,
	}).Info("Artist created")
	return artist, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, id uint, in ArtistInput) (*models.Artist, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	genres, err := resolveGenres(ctx, s.genreRepo, s.logger, in.Genres)
	if err != nil {
		return nil, err
	}

	var oldImage string
	artist, err := s.repo.Update(ctx, id, func(a *models.Artist) {
		oldImage = a.ImageLink
		in.applyTo(a)
	}, genres)
	if err != nil {
		return nil, err
	}

	if oldImage != artist.ImageLink {
		removeManagedImage(ctx, s.images, s.logger, oldImage)
	}

	s.logger.WithField("artist_id", artist.ID).Info("Artist updated")
	return artist, nil
}

func (s *artistService) DeleteArtist(ctx context.Context, id uint) error {
	artist, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	removeManagedImage(ctx, s.images, s.logger, artist.ImageLink)

	s.logger.WithField("artist_id", id).Info("Artist deleted")
	return nil
}
