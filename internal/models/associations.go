package models

import (
	"time"

	"github.com/google/uuid"
)

// GenreFilmwork tags a film work with a genre. Rows are inserted or deleted, never updated,
// so they only carry a creation timestamp.
type GenreFilmwork struct {
	UUIDMixin
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_filmwork_genre,priority:1" json:"film_work_id"`
	GenreID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_filmwork_genre,priority:2" json:"genre_id"`
	CreatedAt  time.Time `json:"created_at"`

	FilmWork *Filmwork `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"film_work,omitempty"`
	Genre    *Genre    `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE" json:"genre,omitempty"`
}

func (GenreFilmwork) TableName() string {
	return "genre_film_work"
}

// PersonFilmwork credits a person on a film work in one role. The same person may hold
// several distinct roles on one film work.
type PersonFilmwork struct {
	UUIDMixin
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_filmwork_person_role,priority:1" json:"film_work_id"`
	PersonID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:unique_filmwork_person_role,priority:2" json:"person_id"`
	Role       Role      `gorm:"type:text;not null;default:actor;uniqueIndex:unique_filmwork_person_role,priority:3;check:,role IN ('actor','director','writer')" json:"role" example:"actor"`
	CreatedAt  time.Time `json:"created_at"`

	FilmWork *Filmwork `gorm:"foreignKey:FilmWorkID;constraint:OnDelete:CASCADE" json:"film_work,omitempty"`
	Person   *Person   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"person,omitempty"`
}

func (PersonFilmwork) TableName() string {
	return "person_film_work"
}
