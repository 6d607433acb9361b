package models

// Venue is a place that hosts shows. Shows are loaded explicitly by the
// repository so the only foreign key on Show is the belongs-to side.
type Venue struct {
	ID                 uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name               string  `gorm:"size:200" json:"name" example:"The Fillmore"`
	Address            string  `gorm:"size:120" json:"address" example:"1805 Geary St"`
	City               string  `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string  `gorm:"size:120;index" json:"state" example:"CA"`
	Phone              string  `gorm:"size:120" json:"phone" example:"415-346-3000"`
	WebsiteLink        string  `gorm:"size:500" json:"website_link"`
	FacebookLink       string  `gorm:"size:120" json:"facebook_link"`
	SeekingArtists     bool    `gorm:"not null;default:false" json:"seeking_artists"`
	SeekingDescription string  `gorm:"size:500" json:"seeking_description"`
	ImageLink          string  `gorm:"size:500" json:"image_link"`
	Genres             []Genre `gorm:"many2many:venue_genre;" json:"genres,omitempty"`
	Shows              []Show  `gorm:"-" json:"shows,omitempty"`
}

func (Venue) TableName() string {
	return "Venue"
}
