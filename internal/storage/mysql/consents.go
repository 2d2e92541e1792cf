package mysql

import (
	"context"
	"fmt"

	"elmont-backend/internal/storage"
)

func (s *Storage) SaveConsent(ctx context.Context, consentType string, userAgent *string) (int64, error) {
	const op = "storage.mysql.SaveConsent"

	stmt := `INSERT INTO cookie_consents (consent_type, user_agent) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, consentType, userAgent)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сохранения согласия: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetConsents(ctx context.Context) ([]*storage.CookieConsent, error) {
	const op = "storage.mysql.GetConsents"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, consent_type, user_agent, created_at FROM cookie_consents ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var consents []*storage.CookieConsent

	for rows.Next() {
		c := &storage.CookieConsent{}
		if err := rows.Scan(&c.ID, &c.ConsentType, &c.UserAgent, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки: %w", op, err)
		}
		consents = append(consents, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return consents, nil
}
