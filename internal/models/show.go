package models

import "time"

type Show struct {
	ID       uint      `gorm:"primaryKey" json:"id" example:"1"`
	ArtistID uint      `gorm:"index;not null" json:"artist_id" example:"4"`
	Artist   *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	VenueID  uint      `gorm:"index;not null" json:"venue_id" example:"1"`
	Venue    *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	ShowTime time.Time `gorm:"not null" json:"show_time" example:"2019-05-21T21:30:00Z"`
}

func (Show) TableName() string {
	return "Show"
}

// Area groups venues sharing a city and state for the venues listing.
type Area struct {
	City   string  `json:"city"`
	State  string  `json:"state"`
	Venues []Venue `json:"venues"`
}

// ShowSchedule splits shows around a reference time.
type ShowSchedule struct {
	Past     []Show `json:"past_shows"`
	Upcoming []Show `json:"upcoming_shows"`
}
