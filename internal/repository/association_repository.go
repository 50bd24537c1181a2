package repository

import (
	"context"

	"movies-admin/internal/apperror"
	"movies-admin/internal/database"
	"movies-admin/internal/models"

	"github.com/google/uuid"
)

// AssociationRepository persists genre tags and person credits. Neither is ever
// updated in place: an edit is a delete followed by a create.
type AssociationRepository interface {
	CreateGenreFilmwork(ctx context.Context, link *models.GenreFilmwork) error
	GenreFilmworkExists(ctx context.Context, filmWorkID, genreID uuid.UUID) (bool, error)
	DeleteGenreFilmwork(ctx context.Context, filmWorkID, genreID uuid.UUID) error
	ListGenreFilmworks(ctx context.Context, filmWorkID uuid.UUID) ([]models.GenreFilmwork, error)

	CreatePersonFilmwork(ctx context.Context, credit *models.PersonFilmwork) error
	PersonFilmworkExists(ctx context.Context, filmWorkID, personID uuid.UUID, role models.Role) (bool, error)
	DeletePersonFilmwork(ctx context.Context, filmWorkID, id uuid.UUID) error
	ListPersonFilmworksByFilmwork(ctx context.Context, filmWorkID uuid.UUID) ([]models.PersonFilmwork, error)
	ListPersonFilmworksByPerson(ctx context.Context, personID uuid.UUID) ([]models.PersonFilmwork, error)
}

type associationRepository struct {
	timeouts
}

func NewAssociationRepository(db *database.Database) AssociationRepository {
	return &associationRepository{timeouts: newTimeouts(db)}
}

func (r *associationRepository) CreateGenreFilmwork(ctx context.Context, link *models.GenreFilmwork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Create(link).Error, "create", "genre_film_work")
}

func (r *associationRepository) GenreFilmworkExists(ctx context.Context, filmWorkID, genreID uuid.UUID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GenreFilmwork{}).
		Where("film_work_id = ? AND genre_id = ?", filmWorkID, genreID).
		Count(&count).Error
	return count > 0, err
}

func (r *associationRepository) DeleteGenreFilmwork(ctx context.Context, filmWorkID, genreID uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("film_work_id = ? AND genre_id = ?", filmWorkID, genreID).
		Delete(&models.GenreFilmwork{})
	if result.Error != nil {
		return apperror.FromDB(result.Error, "delete", "genre_film_work")
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("delete", "genre_film_work")
	}
	return nil
}

func (r *associationRepository) ListGenreFilmworks(ctx context.Context, filmWorkID uuid.UUID) ([]models.GenreFilmwork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var links []models.GenreFilmwork
	err := r.db.WithContext(ctx).
		Preload("Genre").
		Where("film_work_id = ?", filmWorkID).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}

func (r *associationRepository) CreatePersonFilmwork(ctx context.Context, credit *models.PersonFilmwork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Create(credit).Error, "create", "person_film_work")
}

func (r *associationRepository) PersonFilmworkExists(ctx context.Context, filmWorkID, personID uuid.UUID, role models.Role) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PersonFilmwork{}).
		Where("film_work_id = ? AND person_id = ? AND role = ?", filmWorkID, personID, role).
		Count(&count).Error
	return count > 0, err
}

func (r *associationRepository) DeletePersonFilmwork(ctx context.Context, filmWorkID, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND film_work_id = ?", id, filmWorkID).
		Delete(&models.PersonFilmwork{})
	if result.Error != nil {
		return apperror.FromDB(result.Error, "delete", "person_film_work")
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("delete", "person_film_work")
	}
	return nil
}

func (r *associationRepository) ListPersonFilmworksByFilmwork(ctx context.Context, filmWorkID uuid.UUID) ([]models.PersonFilmwork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var credits []models.PersonFilmwork
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("film_work_id = ?", filmWorkID).
		Order("created_at ASC").
		Find(&credits).Error
	return credits, err
}

func (r *associationRepository) ListPersonFilmworksByPerson(ctx context.Context, personID uuid.UUID) ([]models.PersonFilmwork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var credits []models.PersonFilmwork
	err := r.db.WithContext(ctx).
		Preload("FilmWork").
		Where("person_id = ?", personID).
		Order("created_at ASC").
		Find(&credits).Error
	return credits, err
}
