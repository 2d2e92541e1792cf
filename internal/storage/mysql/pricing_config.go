package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"elmont-backend/internal/calc"
	"elmont-backend/internal/storage"
)

func (s *Storage) GetActiveConfig(ctx context.Context) (*storage.PricingConfigDoc, error) {
	const op = "storage.mysql.GetActiveConfig"

	stmt := `SELECT id, version, document, is_active, updated_by, created_at
		FROM calculator_config WHERE is_active = 1
		ORDER BY version DESC LIMIT 1`

	doc := &storage.PricingConfigDoc{}
	var docJSON []byte

	err := s.db.QueryRowContext(ctx, stmt).Scan(
		&doc.ID, &doc.Version, &docJSON, &doc.IsActive, &doc.UpdatedBy, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrConfigNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения конфига: %w", op, err)
	}

	if err := json.Unmarshal(docJSON, &doc.Document); err != nil {
		return nil, fmt.Errorf("%s: кривой JSON документа версии %d: %w", op, doc.Version, err)
	}

	return doc, nil
}

// LoadConfig — провайдер конфига для сервиса расчёта (см. calculate.ConfigProvider).
func (s *Storage) LoadConfig(ctx context.Context) (*calc.Config, error) {
	doc, err := s.GetActiveConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &doc.Document, nil
}

// SaveConfigVersion деактивирует текущую версию и пишет новую одной
// транзакцией. Возвращает номер новой версии.
func (s *Storage) SaveConfigVersion(ctx context.Context, document calc.Config, updatedBy string) (int, error) {
	const op = "storage.mysql.SaveConfigVersion"

	docJSON, err := json.Marshal(document)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сериализации документа: %w", op, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: не удалось начать транзакцию: %w", op, err)
	}
	defer tx.Rollback()

	var version sql.NullInt64
	err = tx.QueryRowContext(ctx, `SELECT MAX(version) FROM calculator_config`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка получения текущей версии: %w", op, err)
	}
	next := int(version.Int64) + 1

	if _, err := tx.ExecContext(ctx, `UPDATE calculator_config SET is_active = 0 WHERE is_active = 1`); err != nil {
		return 0, fmt.Errorf("%s: ошибка деактивации старой версии: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO calculator_config (version, document, is_active, updated_by) VALUES (?, ?, 1, ?)`,
		next, docJSON, updatedBy)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка вставки версии %d: %w", op, next, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: ошибка коммита транзакции: %w", op, err)
	}

	return next, nil
}
