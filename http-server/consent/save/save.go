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

type ConsentSaver interface {
	SaveConsent(ctx context.Context, consentType string, userAgent *string) (int64, error)
}

type Response struct {
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// SaveConsentOperation — POST /api/consent от cookie-баннера.
func SaveConsentOperation(log *slog.Logger, saver ConsentSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.consent.SaveConsentOperation"

		var req struct {
			ConsentType string `json:"consent_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректный JSON", http.StatusBadRequest)
			return
		}

		if req.ConsentType != storage.ConsentAccepted && req.ConsentType != storage.ConsentDeclined {
			http.Error(w, "Недопустимый тип согласия", http.StatusBadRequest)
			return
		}

		var userAgent *string
		if ua := r.UserAgent(); ua != "" {
			userAgent = &ua
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := saver.SaveConsent(ctx, req.ConsentType, userAgent)
		if err != nil {
			log.Error("Ошибка сохранения согласия", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "не удалось сохранить согласие"})
			return
		}

		render.JSON(w, r, Response{ID: id})
	}
}
