package services

import (
	"movies-admin/internal/models"
	"movies-admin/internal/repository"
)

// PersonListItem is a person row on the admin list with its role label.
type PersonListItem struct {
	models.Person
	RoleInFilm string `json:"role_in_film" example:"actor, director"`
}

// PersonDetail is a person with the film works they are credited on.
type PersonDetail struct {
	models.Person
	RoleInFilm string                  `json:"role_in_film"`
	FilmWorks  []models.PersonFilmwork `json:"film_works"`
}

// FilmworkListItem is a film work row on the admin list with its genre label.
type FilmworkListItem struct {
	models.Filmwork
	Genre string `json:"genre" example:"Drama,Comedy"`
}

// FilmworkDetail is a film work with its genre tags and person credits.
type FilmworkDetail struct {
	models.Filmwork
	Genre   string                  `json:"genre"`
	Genres  []models.GenreFilmwork  `json:"genres"`
	Persons []models.PersonFilmwork `json:"persons"`
}

// FilmworkPatch carries the fields editable straight from the admin list.
type FilmworkPatch struct {
	Type         *string  `json:"type"`
	CreationDate *string  `json:"creation_date"`
	Rating       *float64 `json:"rating"`
}

// Movie is a film work as served by the read API.
type Movie struct {
	models.Filmwork
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
	Writers   []string `json:"writers"`
}

func newMovie(f models.Filmwork, genres []string, credits []repository.PersonCredit) Movie {
	m := Movie{
		Filmwork:  f,
		Genres:    []string{},
		Actors:    []string{},
		Directors: []string{},
		Writers:   []string{},
	}
	if genres != nil {
		m.Genres = genres
	}
	for _, c := range credits {
		switch c.Role {
		case models.RoleActor:
			m.Actors = append(m.Actors, c.FullName)
		case models.RoleDirector:
			m.Directors = append(m.Directors, c.FullName)
		case models.RoleWriter:
			m.Writers = append(m.Writers, c.FullName)
		}
	}
	return m
}
