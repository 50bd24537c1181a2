package routes

import (
	"movies-admin/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything the API routes dispatch to.
type Handlers struct {
	Genres    *handlers.GenreHandler
	Persons   *handlers.PersonHandler
	Filmworks *handlers.FilmworkHandler
	Movies    *handlers.MoviesHandler
	Upload    *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Admin routes - catalog management
	admin := v1.Group("/admin")

	genres := admin.Group("/genres")
	{
		genres.Get("/", h.Genres.ListGenres)
		genres.Get("/:id", h.Genres.GetGenre)
		genres.Post("/", h.Genres.CreateGenre)
		genres.Put("/:id", h.Genres.UpdateGenre)
		genres.Delete("/:id", h.Genres.DeleteGenre)
	}

	persons := admin.Group("/persons")
	{
		persons.Get("/", h.Persons.ListPersons)
		persons.Get("/:id", h.Persons.GetPerson)
		persons.Post("/", h.Persons.CreatePerson)
		persons.Put("/:id", h.Persons.UpdatePerson)
		persons.Delete("/:id", h.Persons.DeletePerson)
	}

	filmworks := admin.Group("/filmworks")
	{
		filmworks.Get("/", h.Filmworks.ListFilmworks)
		filmworks.Get("/:id", h.Filmworks.GetFilmwork)
		filmworks.Post("/", h.Filmworks.CreateFilmwork)
		filmworks.Put("/:id", h.Filmworks.UpdateFilmwork)
		filmworks.Patch("/:id", h.Filmworks.PatchFilmwork)
		filmworks.Delete("/:id", h.Filmworks.DeleteFilmwork)

		// Inline associations
		filmworks.Post("/:id/genres", h.Filmworks.AddGenre)
		filmworks.Delete("/:id/genres/:genreId", h.Filmworks.RemoveGenre)
		filmworks.Post("/:id/persons", h.Filmworks.AddPerson)
		filmworks.Delete("/:id/persons/:assocId", h.Filmworks.RemovePerson)
	}

	// Read API
	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Movies.ListMovies)
		movies.Get("/:id", h.Movies.GetMovie)
	}

	if h.Upload != nil {
		upload := v1.Group("/upload")
		{
			upload.Get("/presign", h.Upload.GetPresignedURL)
		}
	}
}
