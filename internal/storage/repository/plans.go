package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// CreatePlan вставляет новый тарифный план и возвращает его ID.
func (s *Storage) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO plans (plan_id, name, duration, price, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		plan.PlanID, plan.Name, plan.Duration, plan.Price, plan.Status).Scan(&newID)
	if err != nil {
		return 0, wrapRowError(op, err)
	}
	return newID, nil
}

// GetPlan возвращает план по его ID.
func (s *Storage) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.GetPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, plan_id, name, duration, price, status
			  FROM plans WHERE id = $1`
	p := &models.Plan{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&p.ID, &p.PlanID, &p.Name, &p.Duration, &p.Price, &p.Status); err != nil {
		return nil, wrapRowError(op, err)
	}
	return p, nil
}

// ListPlans возвращает список всех планов в порядке создания.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, plan_id, name, duration, price, status
			  FROM plans
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.PlanID, &p.Name, &p.Duration, &p.Price, &p.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePlan обновляет план по ID и возвращает количество изменённых строк.
// Публичный идентификатор plan_id не меняется.
func (s *Storage) UpdatePlan(ctx context.Context, id int, plan models.Plan) (int, error) {
	const op = "storage.UpdatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE plans
			  SET name = $1, duration = $2, price = $3, status = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		plan.Name, plan.Duration, plan.Price, plan.Status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeletePlan удаляет план по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePlan(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM plans WHERE id = $1`
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

// LastPlanID возвращает публичный идентификатор самого свежего плана
// или пустую строку, если планов нет.
func (s *Storage) LastPlanID(ctx context.Context) (string, error) {
	const op = "storage.LastPlanID"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT plan_id FROM plans ORDER BY id DESC LIMIT 1`
	var planID string
	err := s.DB.QueryRowContext(ctx, query).Scan(&planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return planID, nil
}
