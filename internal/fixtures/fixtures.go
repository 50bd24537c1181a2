// Package fixtures loads catalog data from YAML files. A file is applied in a
// single transaction: either every row lands or none does.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"

	"movies-admin/internal/apperror"
	"movies-admin/internal/database"
	"movies-admin/internal/models"
	"movies-admin/internal/services"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the YAML document layout. Rows reference each other by key, which
// defaults to the row id when one is given.
type File struct {
	Genres    []Genre    `yaml:"genres"`
	Persons   []Person   `yaml:"persons"`
	Filmworks []Filmwork `yaml:"filmworks"`
}

type Genre struct {
	Key         string  `yaml:"key"`
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

type Person struct {
	Key      string `yaml:"key"`
	ID       string `yaml:"id"`
	FullName string `yaml:"full_name"`
}

type Filmwork struct {
	Key          string   `yaml:"key"`
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  *string  `yaml:"description"`
	CreationDate *string  `yaml:"creation_date"`
	Rating       *float64 `yaml:"rating"`
	Type         string   `yaml:"type"`
	FilePath     *string  `yaml:"file_path"`
	Genres       []string `yaml:"genres"`
	Persons      []Credit `yaml:"persons"`
}

type Credit struct {
	Person string `yaml:"person"`
	Role   string `yaml:"role"`
}

// Summary counts the rows a load inserted.
type Summary struct {
	Genres          int `json:"genres"`
	Persons         int `json:"persons"`
	Filmworks       int `json:"filmworks"`
	GenreFilmworks  int `json:"genre_film_works"`
	PersonFilmworks int `json:"person_film_works"`
}

func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

type Loader struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewLoader(db *database.Database, logger *logrus.Logger) *Loader {
	return &Loader{db: db, logger: logger}
}

// Load inserts every row of f. Rows go through the same checks as the admin API.
func (l *Loader) Load(ctx context.Context, f *File) (*Summary, error) {
	var summary Summary

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := apply(tx, f)
		if err != nil {
			return err
		}
		summary = *s
		return nil
	})
	if err != nil {
		l.logger.WithError(err).Error("Fixture load rolled back")
		return nil, err
	}

	l.logger.WithFields(logrus.Fields{
		"genres":            summary.Genres,
		"persons":           summary.Persons,
		"filmworks":         summary.Filmworks,
		"genre_film_works":  summary.GenreFilmworks,
		"person_film_works": summary.PersonFilmworks,
	}).Info("Fixture loaded")

	return &summary, nil
}

func apply(tx *gorm.DB, f *File) (*Summary, error) {
	const op = "load"

	var summary Summary
	genres := make(map[string]uuid.UUID, len(f.Genres))
	persons := make(map[string]uuid.UUID, len(f.Persons))

	for _, g := range f.Genres {
		genre := &models.Genre{Name: g.Name, Description: g.Description}
		key, err := assignID(op, "genre", &genre.UUIDMixin, g.Key, g.ID)
		if err != nil {
			return nil, err
		}
		if err := services.ValidateGenre(op, genre); err != nil {
			return nil, err
		}
		if err := tx.Create(genre).Error; err != nil {
			return nil, apperror.FromDB(err, op, "genre")
		}
		genres[key] = genre.ID
		summary.Genres++
	}

	for _, p := range f.Persons {
		person := &models.Person{FullName: p.FullName}
		key, err := assignID(op, "person", &person.UUIDMixin, p.Key, p.ID)
		if err != nil {
			return nil, err
		}
		if err := services.ValidatePerson(op, person); err != nil {
			return nil, err
		}
		if err := tx.Create(person).Error; err != nil {
			return nil, apperror.FromDB(err, op, "person")
		}
		persons[key] = person.ID
		summary.Persons++
	}

	for _, fw := range f.Filmworks {
		filmwork := &models.Filmwork{
			Title:        fw.Title,
			Description:  fw.Description,
			CreationDate: fw.CreationDate,
			Rating:       fw.Rating,
			Type:         models.FilmworkType(fw.Type),
			FilePath:     fw.FilePath,
		}
		if _, err := assignID(op, "film_work", &filmwork.UUIDMixin, fw.Key, fw.ID); err != nil {
			return nil, err
		}
		if err := services.ValidateFilmwork(op, filmwork); err != nil {
			return nil, err
		}
		if err := tx.Create(filmwork).Error; err != nil {
			return nil, apperror.FromDB(err, op, "film_work")
		}
		summary.Filmworks++

		for _, ref := range fw.Genres {
			genreID, ok := genres[ref]
			if !ok {
				return nil, apperror.MissingReference(op, "genre_film_work", "genre_id")
			}
			link := &models.GenreFilmwork{FilmWorkID: filmwork.ID, GenreID: genreID}
			if err := tx.Create(link).Error; err != nil {
				return nil, apperror.FromDB(err, op, "genre_film_work")
			}
			summary.GenreFilmworks++
		}

		for _, c := range fw.Persons {
			personID, ok := persons[c.Person]
			if !ok {
				return nil, apperror.MissingReference(op, "person_film_work", "person_id")
			}
			role, err := services.ParseRole(op, c.Role)
			if err != nil {
				return nil, err
			}
			credit := &models.PersonFilmwork{FilmWorkID: filmwork.ID, PersonID: personID, Role: role}
			if err := tx.Create(credit).Error; err != nil {
				return nil, apperror.FromDB(err, op, "person_film_work")
			}
			summary.PersonFilmworks++
		}
	}

	return &summary, nil
}

// assignID applies an explicit id and returns the key other rows use to refer to this one.
func assignID(op, entity string, mixin *models.UUIDMixin, key, id string) (string, error) {
	if id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return "", apperror.Validation(op, entity, "id", fmt.Sprintf("invalid id %q", id))
		}
		mixin.ID = parsed
	}
	if key == "" {
		key = id
	}
	return key, nil
}
