package services

import (
	"context"

	"movies-admin/internal/apperror"
	"movies-admin/internal/config"
	"movies-admin/internal/models"
	"movies-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	// Genres
	CreateGenre(ctx context.Context, genre *models.Genre) error
	UpdateGenre(ctx context.Context, id uuid.UUID, genre *models.Genre) error
	DeleteGenre(ctx context.Context, id uuid.UUID) error
	GetGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error)
	ListGenres(ctx context.Context, filter repository.GenreFilter) ([]models.Genre, int64, error)

	// Persons
	CreatePerson(ctx context.Context, person *models.Person) error
	UpdatePerson(ctx context.Context, id uuid.UUID, person *models.Person) error
	DeletePerson(ctx context.Context, id uuid.UUID) error
	GetPerson(ctx context.Context, id uuid.UUID) (*PersonDetail, error)
	ListPersons(ctx context.Context, filter repository.PersonFilter) ([]PersonListItem, int64, error)

	// Film works
	CreateFilmwork(ctx context.Context, filmwork *models.Filmwork) error
	UpdateFilmwork(ctx context.Context, id uuid.UUID, filmwork *models.Filmwork) error
	PatchFilmwork(ctx context.Context, id uuid.UUID, patch FilmworkPatch) (*models.Filmwork, error)
	DeleteFilmwork(ctx context.Context, id uuid.UUID) error
	GetFilmwork(ctx context.Context, id uuid.UUID) (*FilmworkDetail, error)
	ListFilmworks(ctx context.Context, filter repository.FilmworkFilter) ([]FilmworkListItem, int64, error)

	// Associations
	AddGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) (*models.GenreFilmwork, error)
	RemoveGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) error
	AddPerson(ctx context.Context, filmWorkID, personID uuid.UUID, role string) (*models.PersonFilmwork, error)
	RemovePerson(ctx context.Context, filmWorkID, id uuid.UUID) error

	// Projections
	GenreLabel(ctx context.Context, filmWorkID uuid.UUID) (string, error)
	RoleLabel(ctx context.Context, personID uuid.UUID) (string, error)
}

type catalogService struct {
	genreRepo    repository.GenreRepository
	personRepo   repository.PersonRepository
	filmworkRepo repository.FilmworkRepository
	assocRepo    repository.AssociationRepository
	config       *config.Config
	logger       *logrus.Logger
	media        MediaStore
}

func NewCatalogService(genreRepo repository.GenreRepository, personRepo repository.PersonRepository, filmworkRepo repository.FilmworkRepository, assocRepo repository.AssociationRepository, cfg *config.Config, logger *logrus.Logger) CatalogService {
	return &catalogService{
		genreRepo:    genreRepo,
		personRepo:   personRepo,
		filmworkRepo: filmworkRepo,
		assocRepo:    assocRepo,
		config:       cfg,
		logger:       logger,
	}
}

// SetMediaStore enables cleanup of film work media files. Without it file paths are kept as plain text.
func (s *catalogService) SetMediaStore(media MediaStore) {
	s.media = media
}

func (s *catalogService) adminPage(p *repository.ListParams) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = s.config.Catalog.AdminPageSize
	}
}

func (s *catalogService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	if err := ValidateGenre("create", genre); err != nil {
		return err
	}
	return s.genreRepo.Create(ctx, genre)
}

func (s *catalogService) UpdateGenre(ctx context.Context, id uuid.UUID, genre *models.Genre) error {
	if err := ValidateGenre("update", genre); err != nil {
		return err
	}

	existing, err := s.genreRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	genre.ID = id
	genre.CreatedAt = existing.CreatedAt

	return s.genreRepo.Update(ctx, genre)
}

func (s *catalogService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if err := s.genreRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("genre_id", id).Info("Genre deleted")
	return nil
}

func (s *catalogService) GetGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	return s.genreRepo.FindByID(ctx, id)
}

func (s *catalogService) ListGenres(ctx context.Context, filter repository.GenreFilter) ([]models.Genre, int64, error) {
	s.adminPage(&filter.ListParams)
	return s.genreRepo.FindAll(ctx, filter)
}

func (s *catalogService) CreatePerson(ctx context.Context, person *models.Person) error {
	if err := ValidatePerson("create", person); err != nil {
		return err
	}
	return s.personRepo.Create(ctx, person)
}

func (s *catalogService) UpdatePerson(ctx context.Context, id uuid.UUID, person *models.Person) error {
	if err := ValidatePerson("update", person); err != nil {
		return err
	}

	existing, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	person.ID = id
	person.CreatedAt = existing.CreatedAt

	return s.personRepo.Update(ctx, person)
}

func (s *catalogService) DeletePerson(ctx context.Context, id uuid.UUID) error {
	if err := s.personRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("person_id", id).Info("Person deleted")
	return nil
}

func (s *catalogService) GetPerson(ctx context.Context, id uuid.UUID) (*PersonDetail, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	label, err := s.personRepo.RoleLabel(ctx, id)
	if err != nil {
		return nil, err
	}

	credits, err := s.assocRepo.ListPersonFilmworksByPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	return &PersonDetail{Person: *person, RoleInFilm: label, FilmWorks: credits}, nil
}

func (s *catalogService) ListPersons(ctx context.Context, filter repository.PersonFilter) ([]PersonListItem, int64, error) {
	s.adminPage(&filter.ListParams)

	persons, total, err := s.personRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
	}
	labels, err := s.personRepo.RoleLabels(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]PersonListItem, len(persons))
	for i, p := range persons {
		items[i] = PersonListItem{Person: p, RoleInFilm: labels[p.ID]}
	}
	return items, total, nil
}

func (s *catalogService) CreateFilmwork(ctx context.Context, filmwork *models.Filmwork) error {
	if err := ValidateFilmwork("create", filmwork); err != nil {
		return err
	}
	return s.filmworkRepo.Create(ctx, filmwork)
}

func (s *catalogService) UpdateFilmwork(ctx context.Context, id uuid.UUID, filmwork *models.Filmwork) error {
	if err := ValidateFilmwork("update", filmwork); err != nil {
		return err
	}

	existing, err := s.filmworkRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	filmwork.ID = id
	filmwork.CreatedAt = existing.CreatedAt

	if err := s.filmworkRepo.Update(ctx, filmwork); err != nil {
		return err
	}

	// Drop the previous media file once it is no longer referenced
	if existing.FilePath != nil && (filmwork.FilePath == nil || *filmwork.FilePath != *existing.FilePath) {
		s.removeMedia(ctx, *existing.FilePath)
	}
	return nil
}

// PatchFilmwork applies the fields editable from the film work list.
func (s *catalogService) PatchFilmwork(ctx context.Context, id uuid.UUID, patch FilmworkPatch) (*models.Filmwork, error) {
	fields := make(map[string]interface{})

	if patch.Type != nil {
		t, err := parseType("update", *patch.Type)
		if err != nil {
			return nil, err
		}
		fields["type"] = t
	}
	if patch.CreationDate != nil {
		fields["creation_date"] = *patch.CreationDate
	}
	if patch.Rating != nil {
		if err := validateRating("update", patch.Rating); err != nil {
			return nil, err
		}
		fields["rating"] = *patch.Rating
	}

	if len(fields) > 0 {
		if err := s.filmworkRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.filmworkRepo.FindByID(ctx, id)
}

func (s *catalogService) DeleteFilmwork(ctx context.Context, id uuid.UUID) error {
	existing, err := s.filmworkRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.filmworkRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("film_work_id", id).Info("Film work deleted")

	if existing.FilePath != nil {
		s.removeMedia(ctx, *existing.FilePath)
	}
	return nil
}

func (s *catalogService) removeMedia(ctx context.Context, objectPath string) {
	if s.media == nil || objectPath == "" {
		return
	}
	if err := s.media.DeleteFile(ctx, objectPath); err != nil {
		s.logger.WithError(err).WithField("file_path", objectPath).Warn("Failed to delete film work media")
	}
}

func (s *catalogService) GetFilmwork(ctx context.Context, id uuid.UUID) (*FilmworkDetail, error) {
	filmwork, err := s.filmworkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	label, err := s.filmworkRepo.GenreLabel(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := s.assocRepo.ListGenreFilmworks(ctx, id)
	if err != nil {
		return nil, err
	}

	persons, err := s.assocRepo.ListPersonFilmworksByFilmwork(ctx, id)
	if err != nil {
		return nil, err
	}

	return &FilmworkDetail{Filmwork: *filmwork, Genre: label, Genres: genres, Persons: persons}, nil
}

func (s *catalogService) ListFilmworks(ctx context.Context, filter repository.FilmworkFilter) ([]FilmworkListItem, int64, error) {
	s.adminPage(&filter.ListParams)

	filmworks, total, err := s.filmworkRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(filmworks))
	for i, f := range filmworks {
		ids[i] = f.ID
	}
	labels, err := s.filmworkRepo.GenreLabels(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]FilmworkListItem, len(filmworks))
	for i, f := range filmworks {
		items[i] = FilmworkListItem{Filmwork: f, Genre: labels[f.ID]}
	}
	return items, total, nil
}

func (s *catalogService) AddGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) (*models.GenreFilmwork, error) {
	const op, entity = "create", "genre_film_work"

	if err := s.requireFilmwork(ctx, op, entity, filmWorkID); err != nil {
		return nil, err
	}
	ok, err := s.genreRepo.Exists(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.MissingReference(op, entity, "genre_id")
	}

	dup, err := s.assocRepo.GenreFilmworkExists(ctx, filmWorkID, genreID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperror.Uniqueness(op, entity, "unique_filmwork_genre")
	}

	link := &models.GenreFilmwork{FilmWorkID: filmWorkID, GenreID: genreID}
	if err := s.assocRepo.CreateGenreFilmwork(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *catalogService) RemoveGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) error {
	return s.assocRepo.DeleteGenreFilmwork(ctx, filmWorkID, genreID)
}

func (s *catalogService) AddPerson(ctx context.Context, filmWorkID, personID uuid.UUID, role string) (*models.PersonFilmwork, error) {
	const op, entity = "create", "person_film_work"

	r, err := ParseRole(op, role)
	if err != nil {
		return nil, err
	}

	if err := s.requireFilmwork(ctx, op, entity, filmWorkID); err != nil {
		return nil, err
	}
	ok, err := s.personRepo.Exists(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.MissingReference(op, entity, "person_id")
	}

	dup, err := s.assocRepo.PersonFilmworkExists(ctx, filmWorkID, personID, r)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperror.Uniqueness(op, entity, "unique_filmwork_person_role")
	}

	credit := &models.PersonFilmwork{FilmWorkID: filmWorkID, PersonID: personID, Role: r}
	if err := s.assocRepo.CreatePersonFilmwork(ctx, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

func (s *catalogService) RemovePerson(ctx context.Context, filmWorkID, id uuid.UUID) error {
	return s.assocRepo.DeletePersonFilmwork(ctx, filmWorkID, id)
}

func (s *catalogService) requireFilmwork(ctx context.Context, op, entity string, id uuid.UUID) error {
	ok, err := s.filmworkRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.MissingReference(op, entity, "film_work_id")
	}
	return nil
}

func (s *catalogService) GenreLabel(ctx context.Context, filmWorkID uuid.UUID) (string, error) {
	return s.filmworkRepo.GenreLabel(ctx, filmWorkID)
}

func (s *catalogService) RoleLabel(ctx context.Context, personID uuid.UUID) (string, error) {
	return s.personRepo.RoleLabel(ctx, personID)
}
