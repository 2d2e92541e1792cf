package storage

import (
	"errors"
	"time"

	"elmont-backend/internal/calc"
)

var (
	ErrConfigNotFound = errors.New("конфиг калькулятора не найден")
	ErrReviewNotFound = errors.New("отзыв не найден")
)

// PricingConfigDoc — версионированный документ конфигурации калькулятора.
// Активная версия одна; обновление из админки создаёт новую версию,
// старые остаются для истории.
type PricingConfigDoc struct {
	ID        int64       `json:"id"`
	Version   int         `json:"version"`
	Document  calc.Config `json:"document"`
	IsActive  bool        `json:"is_active"`
	UpdatedBy *string     `json:"updated_by"`
	CreatedAt time.Time   `json:"created_at"`
}
