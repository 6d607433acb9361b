package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGenres = []models.Genre{
	{ID: 1, Label: "Jazz"},
	{ID: 2, Label: "Reggae"},
	{ID: 3, Label: "Swing"},
}

func newTestVenueService(repo *mockVenueRepository, images ImageStore) *venueService {
	svc := NewVenueService(repo, &mockGenreRepository{genres: testGenres}, images, quietLogger()).(*venueService)
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestGroupAreas(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, City: "San Francisco", State: "CA"},
		{ID: 3, City: "San Francisco", State: "CA"},
		{ID: 2, City: "New York", State: "NY"},
	}

	areas := GroupAreas(venues)
	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "New York", areas[1].City)
	assert.Len(t, areas[1].Venues, 1)

	assert.Empty(t, GroupAreas(nil))
}

func TestGroupAreasSplitsSameCityInDifferentStates(t *testing.T) {
	areas := GroupAreas([]models.Venue{
		{City: "Portland", State: "ME"},
		{City: "Portland", State: "OR"},
	})
	assert.Len(t, areas, 2)
}

func TestSplitShows(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	shows := []models.Show{
		{ID: 1, ShowTime: now.Add(-time.Hour)},
		{ID: 2, ShowTime: now},
		{ID: 3, ShowTime: now.Add(time.Hour)},
	}

	schedule := SplitShows(shows, now)
	require.Len(t, schedule.Past, 1)
	assert.Equal(t, uint(1), schedule.Past[0].ID)
	require.Len(t, schedule.Upcoming, 2)
	assert.Equal(t, uint(2), schedule.Upcoming[0].ID)

	empty := SplitShows(nil, now)
	assert.NotNil(t, empty.Past)
	assert.NotNil(t, empty.Upcoming)
}

func TestGetVenue(t *testing.T) {
	repo := &mockVenueRepository{venues: map[uint]*models.Venue{
		1: {ID: 1, Name: "The Musical Hop", Shows: []models.Show{
			{ID: 1, ShowTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
			{ID: 2, ShowTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		}},
	}}
	svc := newTestVenueService(repo, nil)

	detail, err := svc.GetVenue(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", detail.Venue.Name)
	assert.Len(t, detail.Past, 1)
	assert.Len(t, detail.Upcoming, 1)

	_, err = svc.GetVenue(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListVenues(t *testing.T) {
	repo := &mockVenueRepository{ordered: []models.Venue{
		{ID: 1, City: "Oakland", State: "CA"},
		{ID: 2, City: "New York", State: "NY"},
	}}
	svc := newTestVenueService(repo, nil)

	areas, err := svc.ListVenues(context.Background())
	require.NoError(t, err)
	assert.Len(t, areas, 2)
}

func TestSearchVenuesPassesTermThrough(t *testing.T) {
	repo := &mockVenueRepository{searchResults: []models.Venue{{ID: 1}}}
	svc := newTestVenueService(repo, nil)

	got, err := svc.SearchVenues(context.Background(), "Hop")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Hop", repo.lastSearch)
}

func TestCreateVenue(t *testing.T) {
	repo := &mockVenueRepository{}
	svc := newTestVenueService(repo, nil)

	venue, err := svc.CreateVenue(context.Background(), VenueInput{
		Name:           strPtr("The Dueling Pianos Bar"),
		City:           strPtr("New York"),
		State:          strPtr("NY"),
		SeekingArtists: boolPtr(true),
		Genres:         []string{"Jazz", "Polka", "Swing"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), venue.ID)
	assert.Equal(t, "The Dueling Pianos Bar", repo.created.Name)
	assert.Equal(t, "", repo.created.Address, "absent fields default to empty")
	assert.True(t, repo.created.SeekingArtists)
	require.Len(t, repo.created.Genres, 2, "unknown labels are dropped")
	assert.Equal(t, "Jazz", repo.created.Genres[0].Label)
	assert.Equal(t, "Swing", repo.created.Genres[1].Label)
}

func TestCreateVenueTooLong(t *testing.T) {
	repo := &mockVenueRepository{}
	svc := newTestVenueService(repo, nil)

	_, err := svc.CreateVenue(context.Background(), VenueInput{
		Name: strPtr("Fine"),
		City: strPtr(strings.Repeat("x", 121)),
	})
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)
	assert.Nil(t, repo.created)
}

func TestCreateVenueRepositoryFailure(t *testing.T) {
	repo := &mockVenueRepository{createErr: repository.ErrConnection}
	svc := newTestVenueService(repo, nil)

	_, err := svc.CreateVenue(context.Background(), VenueInput{Name: strPtr("X")})
	assert.ErrorIs(t, err, repository.ErrConnection)
}

func TestUpdateVenueOnlyTouchesSubmittedFields(t *testing.T) {
	repo := &mockVenueRepository{venues: map[uint]*models.Venue{
		5: {ID: 5, Name: "Old", City: "Austin", Phone: "555", Genres: testGenres[:1]},
	}}
	svc := newTestVenueService(repo, nil)

	venue, err := svc.UpdateVenue(context.Background(), 5, VenueInput{Name: strPtr("New")})
	require.NoError(t, err)
	assert.Equal(t, uint(5), venue.ID)
	assert.Equal(t, "New", venue.Name)
	assert.Equal(t, "Austin", venue.City)
	assert.Equal(t, "555", venue.Phone)
	assert.Nil(t, repo.updateGenres, "absent genres leave the association alone")
	assert.Len(t, venue.Genres, 1)

	_, err = svc.UpdateVenue(context.Background(), 5, VenueInput{Genres: []string{}})
	require.NoError(t, err)
	assert.NotNil(t, repo.updateGenres)
	assert.Empty(t, repo.updateGenres)
}

func TestUpdateVenueNotFound(t *testing.T) {
	svc := newTestVenueService(&mockVenueRepository{venues: map[uint]*models.Venue{}}, nil)

	_, err := svc.UpdateVenue(context.Background(), 9, VenueInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateVenueGenreLookupFailure(t *testing.T) {
	repo := &mockVenueRepository{venues: map[uint]*models.Venue{1: {ID: 1}}}
	svc := NewVenueService(repo, &mockGenreRepository{err: repository.ErrConnection}, nil, quietLogger())

	_, err := svc.UpdateVenue(context.Background(), 1, VenueInput{Genres: []string{"Jazz"}})
	assert.ErrorIs(t, err, repository.ErrConnection)
}

func TestUpdateVenueRemovesReplacedImage(t *testing.T) {
	images := &mockImageStore{prefix: "http://cdn/booking-images/"}
	repo := &mockVenueRepository{venues: map[uint]*models.Venue{
		1: {ID: 1, ImageLink: "http://cdn/booking-images/old.png"},
		2: {ID: 2, ImageLink: "https://example.com/elsewhere.png"},
	}}
	svc := newTestVenueService(repo, images)

	_, err := svc.UpdateVenue(context.Background(), 1, VenueInput{ImageLink: strPtr("http://cdn/booking-images/new.png")})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://cdn/booking-images/old.png"}, images.deleted)

	_, err = svc.UpdateVenue(context.Background(), 1, VenueInput{Name: strPtr("same image")})
	require.NoError(t, err)
	assert.Len(t, images.deleted, 1)

	_, err = svc.UpdateVenue(context.Background(), 2, VenueInput{ImageLink: strPtr("")})
	require.NoError(t, err)
	assert.Len(t, images.deleted, 1, "images outside the bucket are never removed")
}

func TestDeleteVenue(t *testing.T) {
	images := &mockImageStore{prefix: "http://cdn/booking-images/", err: errors.New("minio down")}
	repo := &mockVenueRepository{venues: map[uint]*models.Venue{
		3: {ID: 3, ImageLink: "http://cdn/booking-images/v3.png"},
	}}
	svc := newTestVenueService(repo, images)

	require.NoError(t, svc.DeleteVenue(context.Background(), 3), "image cleanup failures are not fatal")
	assert.Equal(t, []string{"http://cdn/booking-images/v3.png"}, images.deleted)

	assert.ErrorIs(t, svc.DeleteVenue(context.Background(), 3), repository.ErrNotFound)
}

func TestDeleteVenueWithShows(t *testing.T) {
	images := &mockImageStore{prefix: "http://cdn/booking-images/"}
	repo := &mockVenueRepository{deleteErr: repository.ErrConstraintViolation}
	svc := newTestVenueService(repo, images)

	assert.ErrorIs(t, svc.DeleteVenue(context.Background(), 1), repository.ErrConstraintViolation)
	assert.Empty(t, images.deleted)
}
