// Package services содержит бизнес-логику тарифных планов и их кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ironman-fitness/gym-manager/internal/lib/sequence"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// planListKey — ключ кеша списка планов. Список читается при каждом
// создании платежа, поэтому кешируется целиком.
const planListKey = "plans:all"

// PlanRepository определяет методы для работы с планами в хранилище.
type PlanRepository interface {
	// CreatePlan добавляет новый план и возвращает его ID.
	CreatePlan(ctx context.Context, plan models.Plan) (int, error)
	// ListPlans возвращает все планы в порядке создания.
	ListPlans(ctx context.Context) ([]*models.Plan, error)
	// UpdatePlan обновляет план и возвращает число изменённых строк.
	UpdatePlan(ctx context.Context, id int, plan models.Plan) (int, error)
	// DeletePlan удаляет план и возвращает число удалённых строк.
	DeletePlan(ctx context.Context, id int) (int, error)
	// LastPlanID возвращает публичный идентификатор самого свежего плана.
	LastPlanID(ctx context.Context) (string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// PlanService реализует операции над тарифными планами.
type PlanService struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// NewPlanService создает новый экземпляр PlanService.
func NewPlanService(repo PlanRepository, cache Cache, log *slog.Logger) *PlanService {
	return &PlanService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create добавляет план с очередным идентификатором SUB## и сбрасывает кеш.
// Возвращает публичный идентификатор.
func (s *PlanService) Create(ctx context.Context, req models.DummyPlan) (string, error) {
	const op = "plan.Create"

	last, err := s.repo.LastPlanID(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	planID, err := sequence.Next(sequence.PrefixPlan, last)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	plan := models.Plan{
		PlanID:   planID,
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
		Status:   req.Status,
	}
	if _, err := s.repo.CreatePlan(ctx, plan); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateList()
	return planID, nil
}

// List возвращает все планы, используя кеш или хранилище.
func (s *PlanService) List(ctx context.Context) ([]*models.Plan, error) {
	const op = "plan.List"

	var cached []*models.Plan
	found, err := s.cache.Get(planListKey, &cached)
	if err != nil {
		s.log.Warn("plan list cache read failed", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(planListKey, plans, time.Hour); err != nil {
		s.log.Warn("failed to cache plan list", slog.Any("err", err))
	}
	return plans, nil
}

// Update изменяет план и сбрасывает кеш. Публичный идентификатор не меняется.
func (s *PlanService) Update(ctx context.Context, id int, req models.DummyPlan) error {
	const op = "plan.Update"

	plan := models.Plan{
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
		Status:   req.Status,
	}
	rows, err := s.repo.UpdatePlan(ctx, id, plan)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	s.invalidateList()
	return nil
}

// Delete удаляет план и сбрасывает кеш. Платежи, ссылающиеся на план,
// не каскадируются.
func (s *PlanService) Delete(ctx context.Context, id int) error {
	const op = "plan.Delete"
	rows, err := s.repo.DeletePlan(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	s.invalidateList()
	return nil
}

func (s *PlanService) invalidateList() {
	if err := s.cache.Invalidate(planListKey); err != nil {
		s.log.Warn("failed to invalidate plan list cache", slog.Any("err", err))
	}
}
