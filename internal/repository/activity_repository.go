package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Activity, int, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Activity, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `INSERT INTO activities (user_id, date, all_day, time, title, category, status, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		activity.UserID, activity.Date, activity.AllDay, activity.Time,
		activity.Title, activity.Category, activity.Status, activity.Notes,
	).Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error) {
	query := `SELECT id, user_id, date, all_day, time, title, category, status, notes, created_at, updated_at
			  FROM activities WHERE id = $1 AND user_id = $2`

	var activity entity.Activity
	err := r.db.GetContext(ctx, &activity, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Activity, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM activities WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query := `SELECT id, user_id, date, all_day, time, title, category, status, notes, created_at, updated_at
			  FROM activities WHERE user_id = $1
			  ORDER BY date DESC, time DESC NULLS LAST
			  LIMIT $2 OFFSET $3`

	var activities []entity.Activity
	err = r.db.SelectContext(ctx, &activities, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, total, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	query := `UPDATE activities
			  SET date = $1, all_day = $2, time = $3, title = $4, category = $5, status = $6, notes = $7, updated_at = NOW()
			  WHERE id = $8 AND user_id = $9`

	result, err := r.db.ExecContext(ctx, query,
		activity.Date, activity.AllDay, activity.Time, activity.Title,
		activity.Category, activity.Status, activity.Notes, activity.ID, activity.UserID)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// FetchRange mirrors the diary variant: one bounded query per analytics
// request, optional owner filter for community-wide reads.
func (r *activityRepository) FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Activity, error) {
	query := `SELECT id, user_id, date, all_day, time, title, category, status, notes, created_at, updated_at
			  FROM activities
			  WHERE date >= $1 AND date <= $2`

	args := []interface{}{start, end}
	if userID != nil {
		query += " AND user_id = $3"
		args = append(args, *userID)
	}
	query += " ORDER BY date, time NULLS LAST"

	var activities []entity.Activity
	err := r.db.SelectContext(ctx, &activities, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities in range: %w", err)
	}

	return activities, nil
}
