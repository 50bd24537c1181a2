package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"movies-admin/internal/apperror"
	"movies-admin/internal/handlers"
	"movies-admin/internal/models"
	"movies-admin/internal/repository"
	"movies-admin/internal/routes"
	"movies-admin/internal/services"
	"movies-admin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminPageSize = 10

type envelope struct {
	Status  string               `json:"status"`
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Meta    utils.PaginationMeta `json:"meta"`
}

type testApp struct {
	app     *fiber.App
	catalog *MockCatalogService
	movies  *MockMoviesService
	media   *MockMediaStore
}

func setupApp(t *testing.T) testApp {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	catalog := new(MockCatalogService)
	movies := new(MockMoviesService)
	media := new(MockMediaStore)

	app := fiber.New()
	routes.Setup(app, routes.Handlers{
		Genres:    handlers.NewGenreHandler(catalog, adminPageSize, log),
		Persons:   handlers.NewPersonHandler(catalog, adminPageSize, log),
		Filmworks: handlers.NewFilmworkHandler(catalog, adminPageSize, log),
		Movies:    handlers.NewMoviesHandler(movies, log),
		Upload:    handlers.NewUploadHandler(media, log),
	})

	t.Cleanup(func() {
		catalog.AssertExpectations(t)
		movies.AssertExpectations(t)
		media.AssertExpectations(t)
	})

	return testApp{app: app, catalog: catalog, movies: movies, media: media}
}

func (a testApp) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestListGenres(t *testing.T) {
	a := setupApp(t)

	genres := []models.Genre{{Name: "Western"}, {Name: "Drama"}}
	filter := repository.GenreFilter{
		ListParams: repository.ListParams{Page: 2, Limit: adminPageSize, Search: "dr"},
	}
	a.catalog.On("ListGenres", mock.Anything, filter).Return(genres, int64(12), nil)

	status, env := a.do(t, http.MethodGet, "/api/v1/admin/genres?page=2&search=dr", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, 2, env.Meta.Page)
	assert.Equal(t, adminPageSize, env.Meta.Limit)
	assert.Equal(t, int64(12), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.True(t, env.Meta.HasPrevious)

	var got []models.Genre
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}

func TestCreateGenre(t *testing.T) {
	a := setupApp(t)

	id := uuid.New()
	a.catalog.On("CreateGenre", mock.Anything, mock.MatchedBy(func(g *models.Genre) bool {
		return g.Name == "Noir"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Genre).ID = id
	}).Return(nil)

	status, env := a.do(t, http.MethodPost, "/api/v1/admin/genres", map[string]string{"name": "Noir"})

	assert.Equal(t, http.StatusCreated, status)

	var got models.Genre
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Noir", got.Name)
}

func TestCreateGenreValidationError(t *testing.T) {
	a := setupApp(t)

	a.catalog.On("CreateGenre", mock.Anything, mock.Anything).
		Return(apperror.Validation("create", "genre", "name", "name is required"))

	status, env := a.do(t, http.MethodPost, "/api/v1/admin/genres", map[string]string{"name": ""})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "name is required", env.Message)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.Equal(t, "name", details["field"])
}

func TestGetGenreErrors(t *testing.T) {
	a := setupApp(t)

	status, _ := a.do(t, http.MethodGet, "/api/v1/admin/genres/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	id := uuid.New()
	a.catalog.On("GetGenre", mock.Anything, id).Return(nil, apperror.NotFound("find", "genre"))

	status, env := a.do(t, http.MethodGet, "/api/v1/admin/genres/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "genre not found", env.Message)
}

func TestDeleteFilmworkInternalError(t *testing.T) {
	a := setupApp(t)

	id := uuid.New()
	a.catalog.On("DeleteFilmwork", mock.Anything, id).Return(errors.New("connection reset by peer"))

	status, env := a.do(t, http.MethodDelete, "/api/v1/admin/filmworks/"+id.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "internal server error", env.Message)
}

func TestListFilmworksFilters(t *testing.T) {
	a := setupApp(t)

	filter := repository.FilmworkFilter{
		ListParams:   repository.ListParams{Page: 1, Limit: adminPageSize},
		Type:         "tv_show",
		CreationDate: "2014",
		Genre:        "Crime",
	}
	items := []services.FilmworkListItem{{Filmwork: models.Filmwork{Title: "Fargo", Type: models.TypeTVShow}, Genre: "Crime,Drama"}}
	a.catalog.On("ListFilmworks", mock.Anything, filter).Return(items, int64(1), nil)

	status, env := a.do(t, http.MethodGet, "/api/v1/admin/filmworks?type=tv_show&creation_date=2014&genre=Crime", nil)
	assert.Equal(t, http.StatusOK, status)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Crime,Drama", got[0]["genre"])
	assert.Equal(t, "tv_show", got[0]["type"])

	status, _ = a.do(t, http.MethodGet, "/api/v1/admin/filmworks?type=cartoon", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListPersonsRoleLabel(t *testing.T) {
	a := setupApp(t)

	filter := repository.PersonFilter{
		ListParams: repository.ListParams{Page: 1, Limit: adminPageSize},
		Role:       "director",
	}
	items := []services.PersonListItem{{Person: models.Person{FullName: "Orson Welles"}, RoleInFilm: "actor, director"}}
	a.catalog.On("ListPersons", mock.Anything, filter).Return(items, int64(1), nil)

	status, env := a.do(t, http.MethodGet, "/api/v1/admin/persons?role=director", nil)
	assert.Equal(t, http.StatusOK, status)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "actor, director", got[0]["role_in_film"])

	status, _ = a.do(t, http.MethodGet, "/api/v1/admin/persons?role=producer", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPatchFilmwork(t *testing.T) {
	a := setupApp(t)

	id := uuid.New()
	rating := 91.5
	a.catalog.On("PatchFilmwork", mock.Anything, id, mock.MatchedBy(func(p services.FilmworkPatch) bool {
		return p.Rating != nil && *p.Rating == rating && p.Type == nil && p.CreationDate == nil
	})).Return(&models.Filmwork{Title: "Heat", Rating: &rating}, nil)

	status, env := a.do(t, http.MethodPatch, "/api/v1/admin/filmworks/"+id.String(), map[string]float64{"rating": rating})
	assert.Equal(t, http.StatusOK, status)

	var got models.Filmwork
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, rating, *got.Rating)
}

func TestAddGenreErrorMapping(t *testing.T) {
	a := setupApp(t)

	filmID, genreID, unknown := uuid.New(), uuid.New(), uuid.New()
	a.catalog.On("AddGenre", mock.Anything, filmID, genreID).
		Return(nil, apperror.Uniqueness("create", "genre_film_work", "unique_filmwork_genre"))
	a.catalog.On("AddGenre", mock.Anything, filmID, unknown).
		Return(nil, apperror.MissingReference("create", "genre_film_work", "genre_id"))

	status, env := a.do(t, http.MethodPost, "/api/v1/admin/filmworks/"+filmID.String()+"/genres", map[string]string{"genre_id": genreID.String()})
	assert.Equal(t, http.StatusConflict, status)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &details))
	assert.Equal(t, "unique_filmwork_genre", details["constraint"])

	status, env = a.do(t, http.MethodPost, "/api/v1/admin/filmworks/"+filmID.String()+"/genres", map[string]string{"genre_id": unknown.String()})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "referenced genre does not exist", env.Message)
}

func TestAddAndRemovePerson(t *testing.T) {
	a := setupApp(t)

	filmID, personID, creditID := uuid.New(), uuid.New(), uuid.New()
	credit := &models.PersonFilmwork{FilmWorkID: filmID, PersonID: personID, Role: models.RoleDirector}
	credit.ID = creditID

	a.catalog.On("AddPerson", mock.Anything, filmID, personID, "director").Return(credit, nil)
	a.catalog.On("AddPerson", mock.Anything, filmID, personID, "producer").
		Return(nil, apperror.Validation("create", "person_film_work", "role", "role must be one of [actor director writer]"))
	a.catalog.On("RemovePerson", mock.Anything, filmID, creditID).Return(nil)

	base := "/api/v1/admin/filmworks/" + filmID.String() + "/persons"

	status, env := a.do(t, http.MethodPost, base, map[string]string{"person_id": personID.String(), "role": "director"})
	assert.Equal(t, http.StatusCreated, status)

	var got models.PersonFilmwork
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, creditID, got.ID)
	assert.Equal(t, models.RoleDirector, got.Role)

	status, _ = a.do(t, http.MethodPost, base, map[string]string{"person_id": personID.String(), "role": "producer"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = a.do(t, http.MethodDelete, base+"/"+creditID.String(), nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRemoveGenreNotFound(t *testing.T) {
	a := setupApp(t)

	filmID, genreID := uuid.New(), uuid.New()
	a.catalog.On("RemoveGenre", mock.Anything, filmID, genreID).Return(apperror.NotFound("delete", "genre_film_work"))

	status, _ := a.do(t, http.MethodDelete, "/api/v1/admin/filmworks/"+filmID.String()+"/genres/"+genreID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListMovies(t *testing.T) {
	a := setupApp(t)

	movies := []services.Movie{{
		Filmwork:  models.Filmwork{Title: "The Shining"},
		Genres:    []string{"Horror"},
		Actors:    []string{"Jack Nicholson"},
		Directors: []string{"Stanley Kubrick"},
		Writers:   []string{},
	}}
	a.movies.On("ListMovies", mock.Anything, 1, "shining", "Horror").Return(movies, int64(1), nil)
	a.movies.On("PageSize").Return(50)

	status, env := a.do(t, http.MethodGet, "/api/v1/movies?search=shining&genre=Horror", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 50, env.Meta.Limit)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, []interface{}{"Stanley Kubrick"}, got[0]["directors"])
	assert.Equal(t, []interface{}{}, got[0]["writers"])
}

func TestGetMovieNotFound(t *testing.T) {
	a := setupApp(t)

	id := uuid.New()
	a.movies.On("GetMovie", mock.Anything, id).Return(nil, apperror.NotFound("find", "film_work"))

	status, _ := a.do(t, http.MethodGet, "/api/v1/movies/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPresignUpload(t *testing.T) {
	a := setupApp(t)

	status, _ := a.do(t, http.MethodGet, "/api/v1/upload/presign", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	upload := &services.PresignedUpload{
		PresignedURL: "http://localhost:9000/filmworks/media/trailer_1a2b3c4d.mp4?X-Amz-Signature=abc",
		PublicURL:    "http://localhost:9000/filmworks/media/trailer_1a2b3c4d.mp4",
		ObjectPath:   "media/trailer_1a2b3c4d.mp4",
	}
	a.media.On("GeneratePresignedURL", mock.Anything, "trailer.mp4", "video/mp4").Return(upload, nil)

	status, env := a.do(t, http.MethodGet, "/api/v1/upload/presign?filename=trailer.mp4", nil)
	assert.Equal(t, http.StatusOK, status)

	var got services.PresignedUpload
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, upload.ObjectPath, got.ObjectPath)
}
