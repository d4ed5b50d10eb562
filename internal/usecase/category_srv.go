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

type CategoryService interface {
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, fields map[string]any) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, fields map[string]any) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	GetTrashedCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetTrashedCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	RestoreCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
}

type categoryService struct {
	repo      repository.CategoryRepository
	validator *utils.Validator
	log       *zap.Logger
}

func NewCategoryService(repo repository.CategoryRepository, validator *utils.Validator, log *zap.Logger) CategoryService {
	return &categoryService{
		repo:      repo,
		validator: validator,
		log:       log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	s.log.Debug("Categories retrieved", zap.Int("count", len(categories)))
	return response.CategoriesToResponse(categories), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	category, err := s.find(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, fields map[string]any) (*response.CategoryResponse, error) {
	validated, err := s.validator.Validate(fields, request.CategoryRules)
	if err != nil {
		s.log.Warn("Create category validation failed", zap.Error(err))
		return nil, err
	}
	req := request.NewCategoryRequest(validated)

	category := &entity.Category{
		Base: entity.Base{ID: utils.GenerateUUID()},
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, fields map[string]any) (*response.CategoryResponse, error) {
	validated, err := s.validator.Validate(fields, request.CategoryRules)
	if err != nil {
		s.log.Warn("Update category validation failed",
			zap.String("category_id", categoryID),
			zap.Error(err),
		)
		return nil, err
	}
	req := request.NewCategoryRequest(validated)

	category, err := s.find(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	// Only fields present in the payload are replaced.
	category.Name = req.Name
	if req.HasDescription {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category %s: %w", categoryID, err)
	}

	s.log.Info("Category updated",
		zap.String("category_id", categoryID),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := parseID("category", categoryID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

func (s *categoryService) GetTrashedCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.FindAllTrashed(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trashed categories: %w", err)
	}

	return response.CategoriesToResponse(categories), nil
}

func (s *categoryService) GetTrashedCategoryByID(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := parseID("category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.FindByIDWithTrashed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %s with trashed: %w", categoryID, err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) RestoreCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := parseID("category", categoryID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Restore(ctx, id); err != nil {
		return nil, fmt.Errorf("restore category: %w", err)
	}

	return s.GetCategoryByID(ctx, categoryID)
}

func (s *categoryService) find(ctx context.Context, categoryID string) (*entity.Category, error) {
	id, err := parseID("category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", categoryID, err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	return category, nil
}
