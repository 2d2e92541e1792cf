package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/storage"
)

type ReviewReader interface {
	GetApprovedReviews(ctx context.Context) ([]*storage.Review, error)
}

// GetReviews — GET /api/reviews, только опубликованные.
func GetReviews(log *slog.Logger, reader ReviewReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reviews.GetReviews"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reviews, err := reader.GetApprovedReviews(ctx)
		if err != nil {
			log.Error("Ошибка получения отзывов", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if reviews == nil {
			reviews = []*storage.Review{}
		}

		render.JSON(w, r, reviews)
	}
}
