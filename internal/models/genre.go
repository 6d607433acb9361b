package models

// Genre labels are not unique; assignment matches on the label text.
type Genre struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"column:genre;size:30" json:"genre" example:"Jazz"`
}

func (Genre) TableName() string {
	return "Genre"
}

// DefaultGenres are the choices offered by the venue and artist forms.
var DefaultGenres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk",
	"Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop",
	"Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}
