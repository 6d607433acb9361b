package handlers

import (
	"strings"

	"venue-booking/internal/services"

	"github.com/gofiber/fiber/v2"
)

// formValues holds every submitted value per field name, so repeated fields
// such as a genres multi-select keep all their values.
type formValues map[string][]string

func readForm(c *fiber.Ctx) formValues {
	values := make(formValues)

	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return values
		}
		for key, vals := range form.Value {
			values[key] = append(values[key], vals...)
		}
		return values
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		values[k] = append(values[k], string(value))
	})
	return values
}

func (f formValues) has(key string) bool {
	_, ok := f[key]
	return ok
}

// get returns the first value or "" when the field is absent.
func (f formValues) get(key string) string {
	if vals := f[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// ptr returns nil for an absent field.
func (f formValues) ptr(key string) *string {
	if !f.has(key) {
		return nil
	}
	v := f.get(key)
	return &v
}

// boolean is true when any submitted value is truthy. The edit forms pair
// each checkbox with a hidden "n" so unchecking is still submitted.
func (f formValues) boolean(key string) *bool {
	vals, ok := f[key]
	if !ok {
		return nil
	}
	v := false
	for _, val := range vals {
		v = v || services.ParseBool(val)
	}
	return &v
}

// list returns nil for an absent field and drops empty values.
func (f formValues) list(key string) []string {
	vals, ok := f[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// venueInput maps a venue form. Unchecked checkboxes are never submitted, so
// when create sees no seeking_artists field it stores false.
func venueInput(f formValues) services.VenueInput {
	return services.VenueInput{
		Name:               f.ptr("name"),
		City:               f.ptr("city"),
		State:              f.ptr("state"),
		Address:            f.ptr("address"),
		Phone:              f.ptr("phone"),
		ImageLink:          f.ptr("image_link"),
		FacebookLink:       f.ptr("facebook_link"),
		WebsiteLink:        f.ptr("website_link"),
		SeekingArtists:     f.boolean("seeking_artists"),
		SeekingDescription: f.ptr("seeking_description"),
		Genres:             f.list("genres"),
	}
}

func artistInput(f formValues) services.ArtistInput {
	return services.ArtistInput{
		Name:               f.ptr("name"),
		City:               f.ptr("city"),
		State:              f.ptr("state"),
		Phone:              f.ptr("phone"),
		ImageLink:          f.ptr("image_link"),
		FacebookLink:       f.ptr("facebook_link"),
		WebsiteLink:        f.ptr("website_link"),
		SeekingVenue:       f.boolean("seeking_venue"),
		SeekingDescription: f.ptr("seeking_description"),
		Genres:             f.list("genres"),
	}
}
