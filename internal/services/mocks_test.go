package services

import (
	"context"
	"io"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

type mockGenreRepository struct {
	genres []models.Genre
	err    error
	calls  int
}

func (m *mockGenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	m.calls++
	return m.genres, m.err
}

func (m *mockGenreRepository) Create(ctx context.Context, genre *models.Genre) error {
	genre.ID = uint(len(m.genres) + 1)
	m.genres = append(m.genres, *genre)
	return m.err
}

type mockVenueRepository struct {
	venues        map[uint]*models.Venue
	ordered       []models.Venue
	created       *models.Venue
	updateGenres  []models.Genre
	createErr     error
	updateErr     error
	deleteErr     error
	lastSearch    string
	searchResults []models.Venue
}

func (m *mockVenueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	return m.ordered, nil
}

func (m *mockVenueRepository) FindAllOrderedByState(ctx context.Context) ([]models.Venue, error) {
	return m.ordered, nil
}

func (m *mockVenueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func (m *mockVenueRepository) Search(ctx context.Context, term string) ([]models.Venue, error) {
	m.lastSearch = term
	return m.searchResults, nil
}

func (m *mockVenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	if m.createErr != nil {
		return m.createErr
	}
	venue.ID = 1
	m.created = venue
	return nil
}

func (m *mockVenueRepository) Update(ctx context.Context, id uint, apply func(*models.Venue), genres []models.Genre) (*models.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	apply(v)
	v.ID = id
	m.updateGenres = genres
	if genres != nil {
		v.Genres = genres
	}
	return v, nil
}

func (m *mockVenueRepository) Delete(ctx context.Context, id uint) (*models.Venue, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	v, ok := m.venues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.venues, id)
	return v, nil
}

type mockArtistRepository struct {
	artists map[uint]*models.Artist
	created *models.Artist
}

func (m *mockArtistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	all := make([]models.Artist, 0, len(m.artists))
	for _, a := range m.artists {
		all = append(all, *a)
	}
	return all, nil
}

func (m *mockArtistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *mockArtistRepository) Search(ctx context.Context, term string) ([]models.Artist, error) {
	return nil, nil
}

func (m *mockArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	artist.ID = 7
	m.created = artist
	return nil
}

func (m *mockArtistRepository) Update(ctx context.Context, id uint, apply func(*models.Artist), genres []models.Genre) (*models.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	apply(a)
	a.ID = id
	if genres != nil {
		a.Genres = genres
	}
	return a, nil
}

func (m *mockArtistRepository) Delete(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(m.artists, id)
	return a, nil
}

type mockShowRepository struct {
	created []models.Show
	err     error
}

func (m *mockShowRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	return m.created, nil
}

func (m *mockShowRepository) Create(ctx context.Context, show *models.Show) error {
	if m.err != nil {
		return m.err
	}
	show.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *show)
	return nil
}

type mockImageStore struct {
	prefix  string
	deleted []string
	err     error
}

func (m *mockImageStore) IsManaged(link string) bool {
	return len(link) > len(m.prefix) && link[:len(m.prefix)] == m.prefix
}

func (m *mockImageStore) DeleteFile(ctx context.Context, link string) error {
	m.deleted = append(m.deleted, link)
	return m.err
}
