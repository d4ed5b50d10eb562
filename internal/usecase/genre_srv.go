package usecase

import (
	"context"
	"fmt"

	"video-catalog/internal/data/entity"
	"video-catalog/internal/data/repository"
	"video-catalog/internal/dto/request"
	"video-catalog/internal/dto/response"
	"video-catalog/pkg/utils"

	"go.uber.org/zap"
)

type GenreService interface {
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, fields map[string]any) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, genreID string, fields map[string]any) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error

	GetTrashedGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetTrashedGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	RestoreGenre(ctx context.Context, genreID string) (*response.GenreResponse, error)
}

type genreService struct {
	repo      repository.GenreRepository
	validator *utils.Validator
	log       *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, validator *utils.Validator, log *zap.Logger) GenreService {
	return &genreService{
		repo:      repo,
		validator: validator,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	genre, err := s.find(ctx, genreID)
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, fields map[string]any) (*response.GenreResponse, error) {
	validated, err := s.validator.Validate(fields, request.GenreRules)
	if err != nil {
		s.log.Warn("Create genre validation failed", zap.Error(err))
		return nil, err
	}
	req := request.NewGenreRequest(validated)

	genre := &entity.Genre{
		Base: entity.Base{ID: utils.GenerateUUID()},
		Name:     req.Name,
		IsActive: true,
	}
	if req.IsActive != nil {
		genre.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, genreID string, fields map[string]any) (*response.GenreResponse, error) {
	validated, err := s.validator.Validate(fields, request.GenreRules)
	if err != nil {
		s.log.Warn("Update genre validation failed",
			zap.String("genre_id", genreID),
			zap.Error(err),
		)
		return nil, err
	}
	req := request.NewGenreRequest(validated)

	genre, err := s.find(ctx, genreID)
	if err != nil {
		return nil, err
	}

	genre.Name = req.Name
	if req.IsActive != nil {
		genre.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, fmt.Errorf("update genre %s: %w", genreID, err)
	}

	s.log.Info("Genre updated",
		zap.String("genre_id", genreID),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := parseID("genre", genreID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	return nil
}

func (s *genreService) GetTrashedGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.FindAllTrashed(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trashed genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetTrashedGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := parseID("genre", genreID)
	if err != nil {
		return nil, err
	}

	genre, err := s.repo.FindByIDWithTrashed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre %s with trashed: %w", genreID, err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %s: %w", genreID, ErrNotFound)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) RestoreGenre(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := parseID("genre", genreID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, fmt.Errorf("restore genre: %w", err)
	}

	return s.GetGenreByID(ctx, genreID)
}

func (s *genreService) find(ctx context.Context, genreID string) (*entity.Genre, error) {
	id, err := parseID("genre", genreID)
	if err != nil {
		return nil, err
	}

	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre %s: %w", genreID, err)
	}
	if genre == nil {
		return nil, fmt.Errorf("genre %s: %w", genreID, ErrNotFound)
	}

	return genre, nil
}
