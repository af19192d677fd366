// Package services содержит бизнес-логику учёта зального инвентаря.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// ErrInvalidStatus — статус инвентаря вне допустимого набора.
// Значение "Not available" содержит пробел, поэтому проверка живёт здесь,
// а не в теге валидатора.
var ErrInvalidStatus = errors.New("invalid equipment status")

// EquipmentRepository определяет методы для работы с инвентарём в хранилище.
type EquipmentRepository interface {
	// CreateEquipment добавляет позицию и возвращает её ID.
	CreateEquipment(ctx context.Context, eq models.Equipment) (int, error)
	// ListEquipment возвращает весь инвентарь в порядке создания.
	ListEquipment(ctx context.Context) ([]*models.Equipment, error)
	// UpdateEquipment обновляет позицию и возвращает число изменённых строк.
	UpdateEquipment(ctx context.Context, id int, eq models.Equipment) (int, error)
	// DeleteEquipment удаляет позицию и возвращает число удалённых строк.
	DeleteEquipment(ctx context.Context, id int) (int, error)
}

// EquipmentService реализует операции над инвентарём.
type EquipmentService struct {
	repo EquipmentRepository
}

// NewEquipmentService создает новый экземпляр EquipmentService.
func NewEquipmentService(repo EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

// Create добавляет позицию инвентаря и возвращает её ID.
func (s *EquipmentService) Create(ctx context.Context, req models.DummyEquipment) (int, error) {
	const op = "equipment.Create"
	if !models.ValidEquipmentStatus(req.Status) {
		return 0, fmt.Errorf("%s: %q: %w", op, req.Status, ErrInvalidStatus)
	}
	id, err := s.repo.CreateEquipment(ctx, models.Equipment{
		Name:     req.Name,
		Type:     req.Type,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает весь инвентарь.
func (s *EquipmentService) List(ctx context.Context) ([]*models.Equipment, error) {
	const op = "equipment.List"
	items, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update изменяет позицию инвентаря.
func (s *EquipmentService) Update(ctx context.Context, id int, req models.DummyEquipment) error {
	const op = "equipment.Update"
	if !models.ValidEquipmentStatus(req.Status) {
		return fmt.Errorf("%s: %q: %w", op, req.Status, ErrInvalidStatus)
	}
	rows, err := s.repo.UpdateEquipment(ctx, id, models.Equipment{
		Name:     req.Name,
		Type:     req.Type,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// Delete удаляет позицию инвентаря.
func (s *EquipmentService) Delete(ctx context.Context, id int) error {
	const op = "equipment.Delete"
	rows, err := s.repo.DeleteEquipment(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
