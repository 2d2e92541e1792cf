package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/security"
	"elmont-backend/internal/storage"
)

type ReviewSaver interface {
	SaveReview(ctx context.Context, rev storage.NewReview) (int64, error)
}

type Response struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SaveReviewOperation — POST /api/reviews. Лимит частоты висит выше как
// middleware; здесь чистка ввода и валидация.
func SaveReviewOperation(log *slog.Logger, saver ReviewSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reviews.SaveReviewOperation"

		var req storage.NewReview
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON отзыва", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		req.Name = security.SanitizeInput(req.Name)
		req.Text = security.SanitizeInput(req.Text)
		if req.Email != nil {
			clean := security.SanitizeInput(*req.Email)
			req.Email = &clean
		}
		if req.Phone != nil {
			clean := security.SanitizeInput(*req.Phone)
			req.Phone = &clean
		}

		if req.Name == "" || req.Text == "" {
			http.Error(w, "Имя и текст отзыва обязательны", http.StatusBadRequest)
			return
		}
		if !security.ValidRating(req.Rating) {
			http.Error(w, "Оценка должна быть от 1 до 5", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveReview(ctx, req)
		if err != nil {
			log.Error("Ошибка сохранения отзыва", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "не удалось сохранить отзыв"})
			return
		}

		render.JSON(w, r, Response{ID: id, Status: storage.ReviewPending})
	}
}
