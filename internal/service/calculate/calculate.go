package calculate

import (
	"context"
	"fmt"

	"elmont-backend/internal/calc"
)

// ConfigProvider отдаёт актуальный документ конфигурации калькулятора.
// Его реализуют mysql-хранилище и HTTP-загрузчик calcconfig — выбор
// источника делается при сборке приложения.
type ConfigProvider interface {
	LoadConfig(ctx context.Context) (*calc.Config, error)
}

type Service struct {
	provider ConfigProvider
}

func NewService(provider ConfigProvider) *Service {
	return &Service{provider: provider}
}

// Calculate загружает конфиг и прогоняет форму через чистый движок.
// Сам расчёт ошибок не даёт — падает только загрузка конфига.
func (s *Service) Calculate(ctx context.Context, form calc.FormValues) (calc.Result, error) {
	const op = "service.calculate.Calculate"

	cfg, err := s.provider.LoadConfig(ctx)
	if err != nil {
		return calc.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	return calc.CalculateTotal(calc.Normalize(form), cfg), nil
}
