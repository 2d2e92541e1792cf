package calculate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/calc"
)

type Calculator interface {
	Calculate(ctx context.Context, form calc.FormValues) (calc.Result, error)
}

// CalculateOperation — POST /api/calculator/calculate.
// Форма приходит с русскими подписями как есть, результат отдаём целиком.
func CalculateOperation(log *slog.Logger, calcSvc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculator.CalculateOperation"

		var form calc.FormValues
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			log.Error("Неверный JSON формы", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := calcSvc.Calculate(ctx, form)
		if err != nil {
			log.Error("Ошибка расчёта стоимости", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, result)
	}
}
