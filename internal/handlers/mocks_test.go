package handlers_test

import (
	"context"

	"movies-admin/internal/models"
	"movies-admin/internal/repository"
	"movies-admin/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *MockCatalogService) UpdateGenre(ctx context.Context, id uuid.UUID, genre *models.Genre) error {
	return m.Called(ctx, id, genre).Error(0)
}

func (m *MockCatalogService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockCatalogService) ListGenres(ctx context.Context, filter repository.GenreFilter) ([]models.Genre, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Genre), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) CreatePerson(ctx context.Context, person *models.Person) error {
	return m.Called(ctx, person).Error(0)
}

func (m *MockCatalogService) UpdatePerson(ctx context.Context, id uuid.UUID, person *models.Person) error {
	return m.Called(ctx, id, person).Error(0)
}

func (m *MockCatalogService) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) GetPerson(ctx context.Context, id uuid.UUID) (*services.PersonDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PersonDetail), args.Error(1)
}

func (m *MockCatalogService) ListPersons(ctx context.Context, filter repository.PersonFilter) ([]services.PersonListItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]services.PersonListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) CreateFilmwork(ctx context.Context, filmwork *models.Filmwork) error {
	return m.Called(ctx, filmwork).Error(0)
}

func (m *MockCatalogService) UpdateFilmwork(ctx context.Context, id uuid.UUID, filmwork *models.Filmwork) error {
	return m.Called(ctx, id, filmwork).Error(0)
}

func (m *MockCatalogService) PatchFilmwork(ctx context.Context, id uuid.UUID, patch services.FilmworkPatch) (*models.Filmwork, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Filmwork), args.Error(1)
}

func (m *MockCatalogService) DeleteFilmwork(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogService) GetFilmwork(ctx context.Context, id uuid.UUID) (*services.FilmworkDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.FilmworkDetail), args.Error(1)
}

func (m *MockCatalogService) ListFilmworks(ctx context.Context, filter repository.FilmworkFilter) ([]services.FilmworkListItem, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]services.FilmworkListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) AddGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) (*models.GenreFilmwork, error) {
	args := m.Called(ctx, filmWorkID, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenreFilmwork), args.Error(1)
}

func (m *MockCatalogService) RemoveGenre(ctx context.Context, filmWorkID, genreID uuid.UUID) error {
	return m.Called(ctx, filmWorkID, genreID).Error(0)
}

func (m *MockCatalogService) AddPerson(ctx context.Context, filmWorkID, personID uuid.UUID, role string) (*models.PersonFilmwork, error) {
	args := m.Called(ctx, filmWorkID, personID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PersonFilmwork), args.Error(1)
}

func (m *MockCatalogService) RemovePerson(ctx context.Context, filmWorkID, id uuid.UUID) error {
	return m.Called(ctx, filmWorkID, id).Error(0)
}

func (m *MockCatalogService) GenreLabel(ctx context.Context, filmWorkID uuid.UUID) (string, error) {
	args := m.Called(ctx, filmWorkID)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) RoleLabel(ctx context.Context, personID uuid.UUID) (string, error) {
	args := m.Called(ctx, personID)
	return args.String(0), args.Error(1)
}

type MockMoviesService struct {
	mock.Mock
}

func (m *MockMoviesService) ListMovies(ctx context.Context, page int, search, genre string) ([]services.Movie, int64, error) {
	args := m.Called(ctx, page, search, genre)
	return args.Get(0).([]services.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMoviesService) GetMovie(ctx context.Context, id uuid.UUID) (*services.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Movie), args.Error(1)
}

func (m *MockMoviesService) PageSize() int {
	return m.Called().Int(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) GeneratePresignedURL(ctx context.Context, filename, contentType string) (*services.PresignedUpload, error) {
	args := m.Called(ctx, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PresignedUpload), args.Error(1)
}

func (m *MockMediaStore) DeleteFile(ctx context.Context, objectPath string) error {
	return m.Called(ctx, objectPath).Error(0)
}
