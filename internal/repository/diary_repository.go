package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
)

var ErrNotFound = errors.New("record not found")

type DiaryRepository interface {
	Create(ctx context.Context, diary *entity.Diary) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Diary, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Diary, int, error)
	Update(ctx context.Context, diary *entity.Diary) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Diary, error)
}

type diaryRepository struct {
	db *sqlx.DB
}

func NewDiaryRepository(db *sqlx.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Create(ctx context.Context, diary *entity.Diary) error {
	query := `INSERT INTO diaries (user_id, date, time, title, detail, mood_score, mood_tags, positive_score, negative_score, tags)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		diary.UserID, diary.Date, diary.Time, diary.Title, diary.Detail,
		diary.MoodScore, pq.Array(diary.MoodTags), diary.PositiveScore, diary.NegativeScore, diary.Tags,
	).Scan(&diary.ID, &diary.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert diary: %w", err)
	}

	return nil
}

func (r *diaryRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Diary, error) {
	query := `SELECT id, user_id, date, time, title, detail, mood_score, mood_tags, positive_score, negative_score, tags, created_at, updated_at
			  FROM diaries WHERE id = $1 AND user_id = $2`

	var diary entity.Diary
	err := r.db.GetContext(ctx, &diary, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diary: %w", err)
	}

	return &diary, nil
}

func (r *diaryRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Diary, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM diaries WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count diaries: %w", err)
	}

	query := `SELECT id, user_id, date, time, title, detail, mood_score, mood_tags, positive_score, negative_score, tags, created_at, updated_at
			  FROM diaries WHERE user_id = $1
			  ORDER BY date DESC, time DESC
			  LIMIT $2 OFFSET $3`

	var diaries []entity.Diary
	err = r.db.SelectContext(ctx, &diaries, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list diaries: %w", err)
	}

	return diaries, total, nil
}

func (r *diaryRepository) Update(ctx context.Context, diary *entity.Diary) error {
	query := `UPDATE diaries
			  SET date = $1, time = $2, title = $3, detail = $4, mood_score = $5, mood_tags = $6,
			      positive_score = $7, negative_score = $8, tags = $9, updated_at = NOW()
			  WHERE id = $10 AND user_id = $11`

	result, err := r.db.ExecContext(ctx, query,
		diary.Date, diary.Time, diary.Title, diary.Detail, diary.MoodScore, pq.Array(diary.MoodTags),
		diary.PositiveScore, diary.NegativeScore, diary.Tags, diary.ID, diary.UserID)
	if err != nil {
		return fmt.Errorf("failed to update diary: %w", err)
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

func (r *diaryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM diaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete diary: %w", err)
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

// FetchRange is the read the trends engine consumes: one bounded query over
// an inclusive date window, optionally scoped to one owner, ordered by date.
func (r *diaryRepository) FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Diary, error) {
	query := `SELECT id, user_id, date, time, title, detail, mood_score, mood_tags, positive_score, negative_score, tags, created_at, updated_at
			  FROM diaries
			  WHERE date >= $1 AND date <= $2`

	args := []interface{}{start, end}
	if userID != nil {
		query += " AND user_id = $3"
		args = append(args, *userID)
	}
	query += " ORDER BY date, time"

	var diaries []entity.Diary
	err := r.db.SelectContext(ctx, &diaries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diaries in range: %w", err)
	}

	return diaries, nil
}
