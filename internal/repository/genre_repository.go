package repository

import (
	"context"

	"movies-admin/internal/apperror"
	"movies-admin/internal/database"
	"movies-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter GenreFilter) ([]models.Genre, int64, error)
}

type genreRepository struct {
	timeouts
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{timeouts: newTimeouts(db)}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Create(genre).Error, "create", "genre")
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Save(genre).Error, "update", "genre")
}

// Delete removes the genre and every film work tag pointing at it.
func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&models.GenreFilmwork{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Genre{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return apperror.FromDB(err, "delete", "genre")
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error; err != nil {
		return nil, apperror.FromDB(err, "find", "genre")
	}
	return &genre, nil
}

func (r *genreRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *genreRepository) FindAll(ctx context.Context, filter GenreFilter) ([]models.Genre, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Genre{})

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", filter.pattern())
	}
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := filter.paginate(query.Order(models.GenreOrder)).Find(&genres).Error; err != nil {
		return nil, 0, err
	}

	return genres, total, nil
}
