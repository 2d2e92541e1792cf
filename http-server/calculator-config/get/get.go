package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/storage"
)

type ConfigStore interface {
	GetActiveConfig(ctx context.Context) (*storage.PricingConfigDoc, error)
}

// GetCalculatorConfig — GET /api/calculator-config.
// Отдаёт только сам документ, без служебных полей версии. Кэшировать
// нельзя: фронт и так пробивает кэши параметром, но заголовки ставим.
func GetCalculatorConfig(log *slog.Logger, store ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculatorconfig.GetCalculatorConfig"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := store.GetActiveConfig(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrConfigNotFound) {
				log.Warn("Активный конфиг не найден", slog.String("op", op))
				http.Error(w, "Config not found", http.StatusNotFound)
				return
			}
			log.Error("Ошибка получения конфига", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		render.JSON(w, r, doc.Document)
	}
}
