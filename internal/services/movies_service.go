package services

import (
	"context"

	"movies-admin/internal/config"
	"movies-admin/internal/models"
	"movies-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MoviesService serves the public read API over the catalog.
type MoviesService interface {
	ListMovies(ctx context.Context, page int, search, genre string) ([]Movie, int64, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error)
	PageSize() int
}

type moviesService struct {
	repo   repository.FilmworkRepository
	config *config.Config
	logger *logrus.Logger
}

func NewMoviesService(repo repository.FilmworkRepository, cfg *config.Config, logger *logrus.Logger) MoviesService {
	return &moviesService{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (s *moviesService) PageSize() int {
	return s.config.Catalog.APIPageSize
}

func (s *moviesService) ListMovies(ctx context.Context, page int, search, genre string) ([]Movie, int64, error) {
	if page < 1 {
		page = 1
	}

	filter := repository.FilmworkFilter{
		ListParams: repository.ListParams{Page: page, Limit: s.PageSize()},
		Title:      search,
		Genre:      genre,
	}

	filmworks, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	movies, err := s.expand(ctx, filmworks)
	if err != nil {
		return nil, 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"page":   page,
		"count":  len(movies),
		"total":  total,
		"search": search,
		"genre":  genre,
	}).Debug("Listed movies")

	return movies, total, nil
}

func (s *moviesService) GetMovie(ctx context.Context, id uuid.UUID) (*Movie, error) {
	filmwork, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movies, err := s.expand(ctx, []models.Filmwork{*filmwork})
	if err != nil {
		return nil, err
	}
	return &movies[0], nil
}

func (s *moviesService) expand(ctx context.Context, filmworks []models.Filmwork) ([]Movie, error) {
	ids := make([]uuid.UUID, len(filmworks))
	for i, f := range filmworks {
		ids[i] = f.ID
	}

	genres, err := s.repo.GenreNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	credits, err := s.repo.CreditsByFilmwork(ctx, ids)
	if err != nil {
		return nil, err
	}

	movies := make([]Movie, len(filmworks))
	for i, f := range filmworks {
		movies[i] = newMovie(f, genres[f.ID], credits[f.ID])
	}
	return movies, nil
}
