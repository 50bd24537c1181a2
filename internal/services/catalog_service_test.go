package services

import (
	"context"
	"errors"
	"io"
	"math"
	"sort"
	"strings"
	"testing"

	"movies-admin/internal/apperror"
	"movies-admin/internal/config"
	"movies-admin/internal/database/dbtest"
	"movies-admin/internal/models"
	"movies-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) GeneratePresignedURL(ctx context.Context, filename, contentType string) (*PresignedUpload, error) {
	args := m.Called(ctx, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PresignedUpload), args.Error(1)
}

func (m *MockMediaStore) DeleteFile(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() *config.Config {
	return &config.Config{Catalog: config.CatalogConfig{AdminPageSize: 10, APIPageSize: 50}}
}

type fixture struct {
	catalog CatalogService
	movies  MoviesService
	media   *MockMediaStore
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := dbtest.New(t)
	cfg := testConfig()
	log := testLogger()

	filmworks := repository.NewFilmworkRepository(db)
	catalog := NewCatalogService(
		repository.NewGenreRepository(db),
		repository.NewPersonRepository(db),
		filmworks,
		repository.NewAssociationRepository(db),
		cfg, log,
	)

	media := new(MockMediaStore)
	catalog.(interface{ SetMediaStore(MediaStore) }).SetMediaStore(media)

	return fixture{
		catalog: catalog,
		movies:  NewMoviesService(filmworks, cfg, log),
		media:   media,
	}
}

func ptr[T any](v T) *T { return &v }

func (f fixture) genre(t *testing.T, name string) *models.Genre {
	t.Helper()
	g := &models.Genre{Name: name}
	require.NoError(t, f.catalog.CreateGenre(context.Background(), g))
	return g
}

func (f fixture) person(t *testing.T, name string) *models.Person {
	t.Helper()
	p := &models.Person{FullName: name}
	require.NoError(t, f.catalog.CreatePerson(context.Background(), p))
	return p
}

func (f fixture) filmwork(t *testing.T, title string) *models.Filmwork {
	t.Helper()
	fw := &models.Filmwork{Title: title}
	require.NoError(t, f.catalog.CreateFilmwork(context.Background(), fw))
	return fw
}

func sortedParts(label, sep string) []string {
	if label == "" {
		return nil
	}
	parts := strings.Split(label, sep)
	sort.Strings(parts)
	return parts
}

func TestFilmworkRatingBounds(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, r := range []float64{0, 0.5, 50, 99.9, 100} {
		fw := &models.Filmwork{Title: "Valid", Rating: ptr(r)}
		assert.NoError(t, f.catalog.CreateFilmwork(ctx, fw), "rating %v", r)
	}

	for _, r := range []float64{-0.1, -1, 100.01, 1000, math.NaN()} {
		fw := &models.Filmwork{Title: "Invalid", Rating: ptr(r)}
		err := f.catalog.CreateFilmwork(ctx, fw)
		assert.ErrorIs(t, err, apperror.ErrValidation, "rating %v", r)
	}

	fw := f.filmwork(t, "Update me")
	err := f.catalog.UpdateFilmwork(ctx, fw.ID, &models.Filmwork{Title: "Update me", Rating: ptr(101.0)})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = f.catalog.PatchFilmwork(ctx, fw.ID, FilmworkPatch{Rating: ptr(-5.0)})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestFilmworkTypeValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := &models.Filmwork{Title: "Default type"}
	require.NoError(t, f.catalog.CreateFilmwork(ctx, fw))
	assert.Equal(t, models.TypeMovie, fw.Type)

	show := &models.Filmwork{Title: "Show", Type: models.TypeTVShow}
	require.NoError(t, f.catalog.CreateFilmwork(ctx, show))

	for _, typ := range []string{"tv show", "Movie", "series"} {
		err := f.catalog.CreateFilmwork(ctx, &models.Filmwork{Title: "Bad", Type: models.FilmworkType(typ)})
		assert.ErrorIs(t, err, apperror.ErrValidation, "type %q", typ)
	}

	_, err := f.catalog.PatchFilmwork(ctx, fw.ID, FilmworkPatch{Type: ptr("cartoon")})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRequiredTextFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.catalog.CreateGenre(ctx, &models.Genre{Name: "  "}), apperror.ErrValidation)
	assert.ErrorIs(t, f.catalog.CreatePerson(ctx, &models.Person{}), apperror.ErrValidation)
	assert.ErrorIs(t, f.catalog.CreateFilmwork(ctx, &models.Filmwork{}), apperror.ErrValidation)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g := f.genre(t, "Drama")

	update := &models.Genre{Name: "Dramas", Description: ptr("stories")}
	require.NoError(t, f.catalog.UpdateGenre(ctx, g.ID, update))

	got, err := f.catalog.GetGenre(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dramas", got.Name)
	assert.True(t, got.CreatedAt.Equal(g.CreatedAt))

	err = f.catalog.UpdateGenre(ctx, uuid.New(), &models.Genre{Name: "Ghost"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddGenreUniqueness(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Heat")
	g := f.genre(t, "Crime")

	link, err := f.catalog.AddGenre(ctx, fw.ID, g.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, link.ID)

	_, err = f.catalog.AddGenre(ctx, fw.ID, g.ID)
	assert.ErrorIs(t, err, apperror.ErrUniqueness)
}

func TestAddPersonUniquenessPerRole(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Unforgiven")
	p := f.person(t, "Clint Eastwood")

	credit, err := f.catalog.AddPerson(ctx, fw.ID, p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleActor, credit.Role)

	_, err = f.catalog.AddPerson(ctx, fw.ID, p.ID, "actor")
	assert.ErrorIs(t, err, apperror.ErrUniqueness)

	_, err = f.catalog.AddPerson(ctx, fw.ID, p.ID, "director")
	assert.NoError(t, err)

	_, err = f.catalog.AddPerson(ctx, fw.ID, p.ID, "producer")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestAddAssociationMissingReferent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Alien")
	g := f.genre(t, "Horror")
	p := f.person(t, "Sigourney Weaver")

	_, err := f.catalog.AddGenre(ctx, uuid.New(), g.ID)
	assert.ErrorIs(t, err, apperror.ErrReferentialIntegrity)

	_, err = f.catalog.AddGenre(ctx, fw.ID, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrReferentialIntegrity)
	assert.Equal(t, "referenced genre does not exist", apperror.Message(err))

	_, err = f.catalog.AddPerson(ctx, fw.ID, uuid.New(), "actor")
	assert.ErrorIs(t, err, apperror.ErrReferentialIntegrity)

	_, err = f.catalog.AddPerson(ctx, uuid.New(), p.ID, "actor")
	assert.ErrorIs(t, err, apperror.ErrReferentialIntegrity)
}

func TestDeleteFilmworkCascadesAndRemovesMedia(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := &models.Filmwork{Title: "Stalker", FilePath: ptr("media/stalker_1234abcd.mp4")}
	require.NoError(t, f.catalog.CreateFilmwork(ctx, fw))
	g := f.genre(t, "Drama")
	p := f.person(t, "Andrei Tarkovsky")

	_, err := f.catalog.AddGenre(ctx, fw.ID, g.ID)
	require.NoError(t, err)
	_, err = f.catalog.AddPerson(ctx, fw.ID, p.ID, "director")
	require.NoError(t, err)

	f.media.On("DeleteFile", mock.Anything, "media/stalker_1234abcd.mp4").Return(errors.New("bucket offline")).Once()

	require.NoError(t, f.catalog.DeleteFilmwork(ctx, fw.ID))
	f.media.AssertExpectations(t)

	label, err := f.catalog.GenreLabel(ctx, fw.ID)
	require.NoError(t, err)
	assert.Equal(t, "", label)

	role, err := f.catalog.RoleLabel(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", role)

	person, err := f.catalog.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, person.FilmWorks)

	assert.ErrorIs(t, f.catalog.DeleteFilmwork(ctx, fw.ID), apperror.ErrNotFound)
}

func TestUpdateFilmworkReplacesMedia(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := &models.Filmwork{Title: "Solaris", FilePath: ptr("media/old.mp4")}
	require.NoError(t, f.catalog.CreateFilmwork(ctx, fw))

	f.media.On("DeleteFile", mock.Anything, "media/old.mp4").Return(nil).Once()

	update := &models.Filmwork{Title: "Solaris", FilePath: ptr("media/new.mp4")}
	require.NoError(t, f.catalog.UpdateFilmwork(ctx, fw.ID, update))
	f.media.AssertExpectations(t)

	// Same path again must not touch storage
	require.NoError(t, f.catalog.UpdateFilmwork(ctx, fw.ID, &models.Filmwork{Title: "Solaris", FilePath: ptr("media/new.mp4")}))
	f.media.AssertNumberOfCalls(t, "DeleteFile", 1)
}

func TestGenreLabelProjection(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Amelie")
	empty := f.filmwork(t, "Untagged")

	for _, name := range []string{"Drama", "Comedy"} {
		_, err := f.catalog.AddGenre(ctx, fw.ID, f.genre(t, name).ID)
		require.NoError(t, err)
	}

	label, err := f.catalog.GenreLabel(ctx, fw.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{"Drama,Comedy", "Comedy,Drama"}, label)

	label, err = f.catalog.GenreLabel(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, "", label)

	items, _, err := f.catalog.ListFilmworks(ctx, repository.FilmworkFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		if item.ID == fw.ID {
			assert.Equal(t, []string{"Comedy", "Drama"}, sortedParts(item.Genre, ","))
		} else {
			assert.Equal(t, "", item.Genre)
		}
	}
}

func TestRoleLabelProjection(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p := f.person(t, "Orson Welles")
	for _, title := range []string{"Citizen Kane", "The Third Man", "Touch of Evil"} {
		_, err := f.catalog.AddPerson(ctx, f.filmwork(t, title).ID, p.ID, "actor")
		require.NoError(t, err)
	}

	label, err := f.catalog.RoleLabel(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "actor", label)

	_, err = f.catalog.AddPerson(ctx, f.filmwork(t, "F for Fake").ID, p.ID, "director")
	require.NoError(t, err)

	label, err = f.catalog.RoleLabel(ctx, p.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{"actor, director", "director, actor"}, label)

	items, total, err := f.catalog.ListPersons(ctx, repository.PersonFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"actor", "director"}, sortedParts(items[0].RoleInFilm, ", "))

	unknown, err := f.catalog.RoleLabel(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "", unknown)
}

func TestAdminListPageSize(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		f.genre(t, "Genre "+string(rune('A'+i)))
	}

	genres, total, err := f.catalog.ListGenres(ctx, repository.GenreFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, genres, 10)
	assert.Equal(t, "Genre L", genres[0].Name)

	genres, _, err = f.catalog.ListGenres(ctx, repository.GenreFilter{ListParams: repository.ListParams{Page: 2}})
	require.NoError(t, err)
	assert.Len(t, genres, 2)
}

func TestPatchFilmwork(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Fargo")

	got, err := f.catalog.PatchFilmwork(ctx, fw.ID, FilmworkPatch{
		Type:         ptr("tv_show"),
		CreationDate: ptr("2014"),
		Rating:       ptr(100.0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TypeTVShow, got.Type)
	assert.Equal(t, "2014", *got.CreationDate)
	assert.Equal(t, 100.0, *got.Rating)
	assert.Equal(t, "Fargo", got.Title)

	_, err = f.catalog.PatchFilmwork(ctx, uuid.New(), FilmworkPatch{Rating: ptr(1.0)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRemoveAssociations(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	fw := f.filmwork(t, "Brazil")
	g := f.genre(t, "Satire")
	p := f.person(t, "Terry Gilliam")

	_, err := f.catalog.AddGenre(ctx, fw.ID, g.ID)
	require.NoError(t, err)
	credit, err := f.catalog.AddPerson(ctx, fw.ID, p.ID, "director")
	require.NoError(t, err)

	detail, err := f.catalog.GetFilmwork(ctx, fw.ID)
	require.NoError(t, err)
	assert.Equal(t, "Satire", detail.Genre)
	require.Len(t, detail.Genres, 1)
	require.Len(t, detail.Persons, 1)
	assert.Equal(t, "Terry Gilliam", detail.Persons[0].Person.FullName)

	require.NoError(t, f.catalog.RemoveGenre(ctx, fw.ID, g.ID))
	require.NoError(t, f.catalog.RemovePerson(ctx, fw.ID, credit.ID))

	assert.ErrorIs(t, f.catalog.RemoveGenre(ctx, fw.ID, g.ID), apperror.ErrNotFound)
	assert.ErrorIs(t, f.catalog.RemovePerson(ctx, fw.ID, credit.ID), apperror.ErrNotFound)

	detail, err = f.catalog.GetFilmwork(ctx, fw.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Genres)
	assert.Empty(t, detail.Persons)
	assert.Equal(t, "", detail.Genre)
}
