package models

type Artist struct {
	ID                 uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name               string  `json:"name" example:"Guns N Petals"`
	City               string  `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string  `gorm:"size:120" json:"state" example:"CA"`
	Phone              string  `gorm:"size:120" json:"phone" example:"326-123-5000"`
	WebsiteLink        string  `gorm:"size:500" json:"website_link"`
	SeekingVenue       bool    `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string  `gorm:"size:500" json:"seeking_description"`
	ImageLink          string  `gorm:"size:500" json:"image_link"`
	FacebookLink       string  `gorm:"size:120" json:"facebook_link"`
	Genres             []Genre `gorm:"many2many:artist_genre;" json:"genres,omitempty"`
	Shows              []Show  `gorm:"-" json:"shows,omitempty"`
}

func (Artist) TableName() string {
	return "Artist"
}
