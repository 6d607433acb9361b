package services

import (
	"fmt"
	"strings"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VenueInput carries submitted venue form fields. A nil field was absent
// from the form: create stores the zero value, update leaves it unchanged.
// Genres is nil when the genres field was not submitted at all.
type VenueInput struct {
	Name               *string `validate:"omitempty,max=200"`
	City               *string `validate:"omitempty,max=120"`
	State              *string `validate:"omitempty,max=120"`
	Address            *string `validate:"omitempty,max=120"`
	Phone              *string `validate:"omitempty,max=120"`
	ImageLink          *string `validate:"omitempty,max=500"`
	FacebookLink       *string `validate:"omitempty,max=120"`
	WebsiteLink        *string `validate:"omitempty,max=500"`
	SeekingArtists     *bool
	SeekingDescription *string `validate:"omitempty,max=500"`
	Genres             []string
}

func (in VenueInput) applyTo(v *models.Venue) {
	setString(&v.Name, in.Name)
	setString(&v.City, in.City)
	setString(&v.State, in.State)
	setString(&v.Address, in.Address)
	setString(&v.Phone, in.Phone)
	setString(&v.ImageLink, in.ImageLink)
	setString(&v.FacebookLink, in.FacebookLink)
	setString(&v.WebsiteLink, in.WebsiteLink)
	setString(&v.SeekingDescription, in.SeekingDescription)
	if in.SeekingArtists != nil {
		v.SeekingArtists = *in.SeekingArtists
	}
}

// ArtistInput is the artist counterpart of VenueInput.
type ArtistInput struct {
	Name               *string
	City               *string `validate:"omitempty,max=120"`
	State              *string `validate:"omitempty,max=120"`
	Phone              *string `validate:"omitempty,max=120"`
	ImageLink          *string `validate:"omitempty,max=500"`
	FacebookLink       *string `validate:"omitempty,max=120"`
	WebsiteLink        *string `validate:"omitempty,max=500"`
	SeekingVenue       *bool
	SeekingDescription *string `validate:"omitempty,max=500"`
	Genres             []string
}

func (in ArtistInput) applyTo(a *models.Artist) {
	setString(&a.Name, in.Name)
	setString(&a.City, in.City)
	setString(&a.State, in.State)
	setString(&a.Phone, in.Phone)
	setString(&a.ImageLink, in.ImageLink)
	setString(&a.FacebookLink, in.FacebookLink)
	setString(&a.WebsiteLink, in.WebsiteLink)
	setString(&a.SeekingDescription, in.SeekingDescription)
	if in.SeekingVenue != nil {
		a.SeekingVenue = *in.SeekingVenue
	}
}

// ShowInput holds the raw show form values.
type ShowInput struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

type showFields struct {
	ArtistID uint      `validate:"required"`
	VenueID  uint      `validate:"required"`
	ShowTime time.Time `validate:"required"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ParseBool reads the checkbox-style values the forms submit.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "y", "yes", "on", "1":
		return true
	default:
		return false
	}
}

func validateInput(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrConstraintViolation, err)
	}
	return nil
}
