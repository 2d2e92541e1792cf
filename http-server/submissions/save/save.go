package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/storage"
)

type SubmissionSaver interface {
	SaveSubmission(ctx context.Context, sub storage.CalcSubmission) (int64, error)
}

type Response struct {
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// SaveSubmissionOperation — POST /api/calculator/submissions.
// Фронт шлёт снимок формы вместе с готовым результатом и ссылками на
// выгрузки, если они успели сгенерироваться.
func SaveSubmissionOperation(log *slog.Logger, saver SubmissionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.submissions.SaveSubmissionOperation"

		var req storage.CalcSubmission
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON заявки", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.UserAgent == nil {
			if ua := r.UserAgent(); ua != "" {
				req.UserAgent = &ua
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveSubmission(ctx, req)
		if err != nil {
			log.Error("Ошибка сохранения заявки", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "не удалось сохранить расчёт"})
			return
		}

		render.JSON(w, r, Response{ID: id})
	}
}
