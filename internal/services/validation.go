package services

import (
	"fmt"
	"math"
	"strings"

	"movies-admin/internal/apperror"
	"movies-admin/internal/models"
)

const (
	minRating = 0
	maxRating = 100
)

func ValidateGenre(op string, genre *models.Genre) error {
	if strings.TrimSpace(genre.Name) == "" {
		return apperror.Validation(op, "genre", "name", "name is required")
	}
	return nil
}

func ValidatePerson(op string, person *models.Person) error {
	if strings.TrimSpace(person.FullName) == "" {
		return apperror.Validation(op, "person", "full_name", "full_name is required")
	}
	return nil
}

// ValidateFilmwork checks a film work before it is written. An empty type takes
// the column default.
func ValidateFilmwork(op string, filmwork *models.Filmwork) error {
	if strings.TrimSpace(filmwork.Title) == "" {
		return apperror.Validation(op, "film_work", "title", "title is required")
	}
	if err := validateRating(op, filmwork.Rating); err != nil {
		return err
	}
	if filmwork.Type == "" {
		filmwork.Type = models.TypeMovie
	}
	if !filmwork.Type.Valid() {
		return apperror.Validation(op, "film_work", "type", fmt.Sprintf("type must be one of %v", models.FilmworkTypes))
	}
	return nil
}

func validateRating(op string, rating *float64) error {
	if rating == nil {
		return nil
	}
	r := *rating
	if math.IsNaN(r) || r < minRating || r > maxRating {
		return apperror.Validation(op, "film_work", "rating", fmt.Sprintf("rating must be between %d and %d", minRating, maxRating))
	}
	return nil
}

// ParseRole resolves a credited role; an empty value means actor.
func ParseRole(op, role string) (models.Role, error) {
	if role == "" {
		return models.RoleActor, nil
	}
	r, err := models.ParseRole(role)
	if err != nil {
		return "", apperror.Validation(op, "person_film_work", "role", fmt.Sprintf("role must be one of %v", models.Roles))
	}
	return r, nil
}

func parseType(op, typ string) (models.FilmworkType, error) {
	t, err := models.ParseFilmworkType(typ)
	if err != nil {
		return "", apperror.Validation(op, "film_work", "type", fmt.Sprintf("type must be one of %v", models.FilmworkTypes))
	}
	return t, nil
}
