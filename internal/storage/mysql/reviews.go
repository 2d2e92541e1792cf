package mysql

import (
	"context"
	"fmt"

	"elmont-backend/internal/storage"
)

func (s *Storage) GetApprovedReviews(ctx context.Context) ([]*storage.Review, error) {
	const op = "storage.mysql.GetApprovedReviews"

	stmt := `SELECT id, name, email, phone, rating, text, status, avatar_url, created_at
		FROM reviews WHERE status = ? ORDER BY created_at DESC`

	return s.queryReviews(ctx, op, stmt, storage.ReviewApproved)
}

func (s *Storage) GetAllReviewsAdmin(ctx context.Context) ([]*storage.Review, error) {
	const op = "storage.mysql.GetAllReviewsAdmin"

	stmt := `SELECT id, name, email, phone, rating, text, status, avatar_url, created_at
		FROM reviews ORDER BY created_at DESC`

	return s.queryReviews(ctx, op, stmt)
}

func (s *Storage) queryReviews(ctx context.Context, op, stmt string, args ...any) ([]*storage.Review, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения отзывов: %w", op, err)
	}
	defer rows.Close()

	var reviews []*storage.Review

	for rows.Next() {
		rev := &storage.Review{}

		err := rows.Scan(&rev.ID, &rev.Name, &rev.Email, &rev.Phone, &rev.Rating,
			&rev.Text, &rev.Status, &rev.AvatarURL, &rev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки отзыва: %w", op, err)
		}

		reviews = append(reviews, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return reviews, nil
}

// SaveReview кладёт отзыв со статусом pending, публикация — через админку.
func (s *Storage) SaveReview(ctx context.Context, rev storage.NewReview) (int64, error) {
	const op = "storage.mysql.SaveReview"

	stmt := `INSERT INTO reviews (name, email, phone, rating, text, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt,
		rev.Name, rev.Email, rev.Phone, rev.Rating, rev.Text, storage.ReviewPending)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сохранения отзыва: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateReviewStatus(ctx context.Context, id int64, status string) error {
	const op = "storage.mysql.UpdateReviewStatus"

	res, err := s.db.ExecContext(ctx, `UPDATE reviews SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("%s: ошибка обновления статуса отзыва id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: id=%d: %w", op, id, storage.ErrReviewNotFound)
	}

	return nil
}

// GetReviewStats — количество отзывов по статусам, для сводки в отчёте.
func (s *Storage) GetReviewStats(ctx context.Context) (map[string]int, error) {
	const op = "storage.mysql.GetReviewStats"

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM reviews GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stats[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
