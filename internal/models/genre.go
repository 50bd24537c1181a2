package models

type Genre struct {
	UUIDMixin
	TimeStampedMixin
	Name        string  `gorm:"not null;size:255;index" json:"name" example:"Drama"`
	Description *string `gorm:"type:text" json:"description"`
}

func (Genre) TableName() string {
	return "genre"
}

// GenreOrder is the default listing order.
const GenreOrder = "name DESC"
