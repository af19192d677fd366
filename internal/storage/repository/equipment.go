package repository

import (
	"context"
	"fmt"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// CreateEquipment вставляет новую позицию инвентаря и возвращает её ID.
func (s *Storage) CreateEquipment(ctx context.Context, eq models.Equipment) (int, error) {
	const op = "storage.CreateEquipment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO equipment (name, type, quantity, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		eq.Name, eq.Type, eq.Quantity, eq.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListEquipment возвращает список инвентаря в порядке создания.
func (s *Storage) ListEquipment(ctx context.Context) ([]*models.Equipment, error) {
	const op = "storage.ListEquipment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, type, quantity, status
			  FROM equipment
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Equipment
	for rows.Next() {
		var eq models.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Type, &eq.Quantity, &eq.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &eq)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateEquipment обновляет позицию инвентаря по ID и возвращает
// количество изменённых строк.
func (s *Storage) UpdateEquipment(ctx context.Context, id int, eq models.Equipment) (int, error) {
	const op = "storage.UpdateEquipment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE equipment
			  SET name = $1, type = $2, quantity = $3, status = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		eq.Name, eq.Type, eq.Quantity, eq.Status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteEquipment удаляет позицию инвентаря по ID и возвращает
// количество удалённых строк.
func (s *Storage) DeleteEquipment(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteEquipment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM equipment WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
