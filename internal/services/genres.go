package services

import (
	"context"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
}

type genreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}

// MatchGenres attaches, for every submitted label, the first existing genre
// whose label is exactly equal. Labels with no such genre are returned in
// dropped; no genre rows are ever created here. A genre matched twice is
// attached once.
func MatchGenres(choices []models.Genre, labels []string) (matched []models.Genre, dropped []string) {
	matched = make([]models.Genre, 0, len(labels))
	seen := make(map[uint]bool, len(labels))

	for _, label := range labels {
		found := false
		for _, choice := range choices {
			if choice.Label == label {
				found = true
				if !seen[choice.ID] {
					seen[choice.ID] = true
					matched = append(matched, choice)
				}
				break
			}
		}
		if !found {
			dropped = append(dropped, label)
		}
	}
	return matched, dropped
}

// resolveGenres loads the genre table and matches labels against it. A nil
// labels slice means the field was absent and yields nil.
func resolveGenres(ctx context.Context, repo repository.GenreRepository, logger *logrus.Logger, labels []string) ([]models.Genre, error) {
	if labels == nil {
		return nil, nil
	}

	choices, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched, dropped := MatchGenres(choices, labels)
	if len(dropped) > 0 {
		logger.WithField("labels", dropped).Warn("Dropping genres with no matching row")
	}
	return matched, nil
}
