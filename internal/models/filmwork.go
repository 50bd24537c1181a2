package models

type Filmwork struct {
	UUIDMixin
	TimeStampedMixin
	Title        string       `gorm:"not null;size:255" json:"title" example:"The Shining"`
	Description  *string      `gorm:"type:text" json:"description"`
	CreationDate *string      `gorm:"size:64;index" json:"creation_date" example:"1980"`
	Rating       *float64     `gorm:"check:,rating >= 0 AND rating <= 100" json:"rating" example:"84"`
	Type         FilmworkType `gorm:"not null;size:16;default:movie;check:,type IN ('movie','tv_show')" json:"type" example:"movie"`
	FilePath     *string      `gorm:"size:512" json:"file_path,omitempty"`
}

func (Filmwork) TableName() string {
	return "film_work"
}

// FilmworkOrder is the default listing order.
const FilmworkOrder = "creation_date DESC"
