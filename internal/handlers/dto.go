package handlers

import (
	"movies-admin/internal/models"

	"github.com/google/uuid"
)

type GenreRequest struct {
	Name        string  `json:"name" example:"Drama"`
	Description *string `json:"description"`
}

func (r *GenreRequest) toModel() *models.Genre {
	return &models.Genre{Name: r.Name, Description: r.Description}
}

type PersonRequest struct {
	FullName string `json:"full_name" example:"Stanley Kubrick"`
}

func (r *PersonRequest) toModel() *models.Person {
	return &models.Person{FullName: r.FullName}
}

type FilmworkRequest struct {
	Title        string   `json:"title" example:"The Shining"`
	Description  *string  `json:"description"`
	CreationDate *string  `json:"creation_date" example:"1980"`
	Rating       *float64 `json:"rating" example:"84"`
	Type         string   `json:"type" example:"movie"`
	FilePath     *string  `json:"file_path" example:"media/the-shining_1a2b3c4d.mp4"`
}

func (r *FilmworkRequest) toModel() *models.Filmwork {
	return &models.Filmwork{
		Title:        r.Title,
		Description:  r.Description,
		CreationDate: r.CreationDate,
		Rating:       r.Rating,
		Type:         models.FilmworkType(r.Type),
		FilePath:     r.FilePath,
	}
}

type GenreLinkRequest struct {
	GenreID uuid.UUID `json:"genre_id"`
}

type PersonCreditRequest struct {
	PersonID uuid.UUID `json:"person_id"`
	Role     string    `json:"role" example:"actor"`
}
