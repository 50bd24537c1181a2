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

// RoleSeparator joins distinct roles in a person's role label.
const RoleSeparator = ", "

type PersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context, filter PersonFilter) ([]models.Person, int64, error)

	// Projections
	RoleLabel(ctx context.Context, id uuid.UUID) (string, error)
	RoleLabels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type personRepository struct {
	timeouts
}

func NewPersonRepository(db *database.Database) PersonRepository {
	return &personRepository{timeouts: newTimeouts(db)}
}

func (r *personRepository) Create(ctx context.Context, person *models.Person) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Create(person).Error, "create", "person")
}

func (r *personRepository) Update(ctx context.Context, person *models.Person) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return apperror.FromDB(r.db.WithContext(ctx).Save(person).Error, "update", "person")
}

// Delete removes the person together with all of their film work credits.
func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.PersonFilmwork{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Person{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return apperror.FromDB(err, "delete", "person")
}

func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var person models.Person
	if err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error; err != nil {
		return nil, apperror.FromDB(err, "find", "person")
	}
	return &person, nil
}

func (r *personRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Person{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *personRepository) FindAll(ctx context.Context, filter PersonFilter) ([]models.Person, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var persons []models.Person
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Person{})

	if filter.Search != "" {
		pattern := filter.pattern()
		query = query.Where(
			"LOWER(person.full_name) LIKE ? OR EXISTS (SELECT 1 FROM person_film_work pfw WHERE pfw.person_id = person.id AND LOWER(pfw.role) LIKE ?)",
			pattern, pattern,
		)
	}
	if filter.Role != "" {
		query = query.Where("EXISTS (SELECT 1 FROM person_film_work pfw WHERE pfw.person_id = person.id AND pfw.role = ?)", filter.Role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := filter.paginate(query.Order(models.PersonOrder)).Find(&persons).Error; err != nil {
		return nil, 0, err
	}

	return persons, total, nil
}

// RoleLabel lists the distinct roles a person holds across all film works.
func (r *personRepository) RoleLabel(ctx context.Context, id uuid.UUID) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var roles []string
	err := r.db.WithContext(ctx).
		Model(&models.PersonFilmwork{}).
		Where("person_id = ?", id).
		Distinct().
		Pluck("role", &roles).Error
	if err != nil {
		return "", err
	}
	return strings.Join(roles, RoleSeparator), nil
}

// RoleLabels computes RoleLabel for a page of persons in one query.
func (r *personRepository) RoleLabels(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	labels := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return labels, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	type personRole struct {
		PersonID uuid.UUID
		Role     string
	}

	var rows []personRole
	err := r.db.WithContext(ctx).
		Model(&models.PersonFilmwork{}).
		Distinct("person_id", "role").
		Where("person_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]string, len(ids))
	for _, row := range rows {
		grouped[row.PersonID] = append(grouped[row.PersonID], row.Role)
	}
	for _, id := range ids {
		labels[id] = strings.Join(grouped[id], RoleSeparator)
	}
	return labels, nil
}
