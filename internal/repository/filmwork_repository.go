package repository

import (
	"context"
	"strings"

	"movies-admin/internal/apperror"
	"movies-admin/internal/database"
	"movies-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenreSeparator joins genre names in a film work's genre label.
const GenreSeparator = ","

// PersonCredit is a person as credited on one film work.
type PersonCredit struct {
	ID       uuid.UUID   `json:"id"`
	FullName string      `json:"full_name"`
	Role     models.Role `json:"role"`
}

type FilmworkRepository interface {
	// CRUD operations
	Create(ctx context.Context, filmwork *models.Filmwork) error
	Update(ctx context.Context, filmwork *models.Filmwork) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Filmwork, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter FilmworkFilter) ([]models.Filmwork, int64, error)

	// Related rows for the read API
	GenreNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]string, error)
	FindCredits(ctx context.Context, id uuid.UUID) ([]PersonCredit, error)
	CreditsByFilmwork(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]PersonCredit, error)

	// Projections
	GenreLabel(ctx context.Context, id uuid.UUID) (string, error)
	GenreLabels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type filmworkRepository struct {
	timeouts
}

func NewFilmworkRepository(db *database.Database) FilmworkRepository {
	return &filmworkRepository{timeouts: newTimeouts(db)}
}

func (r *filmworkRepository) Create(ctx context.Context, filmwork *models.Filmwork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Create(filmwork).Error, "create", "film_work")
}

func (r *filmworkRepository) Update(ctx context.Context, filmwork *models.Filmwork) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Save(filmwork).Error, "update", "film_work")
}

// UpdateFields writes only the given columns, as the admin list does for inline edits.
func (r *filmworkRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&models.Filmwork{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return apperror.FromDB(result.Error, "update", "film_work")
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("update", "film_work")
	}
	return nil
}

// Delete removes the film work and all of its genre tags and person credits.
func (r *filmworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_work_id = ?", id).Delete(&models.GenreFilmwork{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_work_id = ?", id).Delete(&models.PersonFilmwork{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Filmwork{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return apperror.FromDB(err, "delete", "film_work")
}

func (r *filmworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Filmwork, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var filmwork models.Filmwork
	if err := r.db.WithContext(ctx).First(&filmwork, "id = ?", id).Error; err != nil {
		return nil, apperror.FromDB(err, "find", "film_work")
	}
	return &filmwork, nil
}

func (r *filmworkRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Filmwork{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *filmworkRepository) FindAll(ctx context.Context, filter FilmworkFilter) ([]models.Filmwork, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var filmworks []models.Filmwork
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Filmwork{})

	// Apply search across the film work, its genres and its people
	if filter.Search != "" {
		pattern := filter.pattern()
		term := strings.TrimSpace(filter.Search)
		query = query.Where(
			`LOWER(film_work.title) LIKE ? OR LOWER(film_work.description) LIKE ? OR CAST(film_work.id AS TEXT) = ? OR film_work.type = ?
			OR EXISTS (SELECT 1 FROM genre_film_work gfw JOIN genre g ON g.id = gfw.genre_id WHERE gfw.film_work_id = film_work.id AND LOWER(g.name) LIKE ?)
			OR EXISTS (SELECT 1 FROM person_film_work pfw JOIN person p ON p.id = pfw.person_id WHERE pfw.film_work_id = film_work.id AND LOWER(p.full_name) LIKE ?)`,
			pattern, pattern, strings.ToLower(term), term, pattern, pattern,
		)
	}

	// Apply list filters
	if filter.Title != "" {
		query = query.Where("LOWER(film_work.title) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(filter.Title))+"%")
	}
	if filter.Type != "" {
		query = query.Where("film_work.type = ?", filter.Type)
	}
	if filter.CreationDate != "" {
		query = query.Where("film_work.creation_date = ?", filter.CreationDate)
	}
	if filter.Genre != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM genre_film_work gfw JOIN genre g ON g.id = gfw.genre_id WHERE gfw.film_work_id = film_work.id AND g.name = ?)",
			filter.Genre,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := filter.paginate(query.Order(models.FilmworkOrder)).Find(&filmworks).Error; err != nil {
		return nil, 0, err
	}

	return filmworks, total, nil
}

// GenreNames returns the genre names of each given film work.
func (r *filmworkRepository) GenreNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	names := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type filmGenre struct {
		FilmWorkID uuid.UUID
		Name       string
	}

	var rows []filmGenre
	err := r.db.WithContext(ctx).
		Table("genre_film_work").
		Select("genre_film_work.film_work_id AS film_work_id, genre.name AS name").
		Joins("JOIN genre ON genre.id = genre_film_work.genre_id").
		Where("genre_film_work.film_work_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		names[row.FilmWorkID] = append(names[row.FilmWorkID], row.Name)
	}
	return names, nil
}

func (r *filmworkRepository) FindCredits(ctx context.Context, id uuid.UUID) ([]PersonCredit, error) {
	credits, err := r.CreditsByFilmwork(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return credits[id], nil
}

// CreditsByFilmwork returns the people credited on each given film work, sorted by name.
func (r *filmworkRepository) CreditsByFilmwork(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]PersonCredit, error) {
	credits := make(map[uuid.UUID][]PersonCredit, len(ids))
	if len(ids) == 0 {
		return credits, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type filmCredit struct {
		FilmWorkID uuid.UUID
		PersonCredit
	}

	var rows []filmCredit
	err := r.db.WithContext(ctx).
		Table("person_film_work").
		Select("person_film_work.film_work_id AS film_work_id, person.id AS id, person.full_name AS full_name, person_film_work.role AS role").
		Joins("JOIN person ON person.id = person_film_work.person_id").
		Where("person_film_work.film_work_id IN ?", ids).
		Order("person.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		credits[row.FilmWorkID] = append(credits[row.FilmWorkID], row.PersonCredit)
	}
	return credits, nil
}

// GenreLabel joins the names of the film work's genres.
func (r *filmworkRepository) GenreLabel(ctx context.Context, id uuid.UUID) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var names []string
	err := r.db.WithContext(ctx).
		Table("genre_film_work").
		Joins("JOIN genre ON genre.id = genre_film_work.genre_id").
		Where("genre_film_work.film_work_id = ?", id).
		Pluck("genre.name", &names).Error
	if err != nil {
		return "", err
	}
	return strings.Join(names, GenreSeparator), nil
}

// GenreLabels computes GenreLabel for a page of film works in one query.
func (r *filmworkRepository) GenreLabels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names, err := r.GenreNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	labels := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		labels[id] = strings.Join(names[id], GenreSeparator)
	}
	return labels, nil
}
