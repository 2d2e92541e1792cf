package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"elmont-backend/internal/calc"
	"elmont-backend/internal/storage"
)

type AdminUpdater interface {
	SaveConfigVersion(ctx context.Context, document calc.Config, updatedBy string) (int, error)
	UpdateReviewStatus(ctx context.Context, id int64, status string) error
}

type ConfigResponse struct {
	Version int `json:"version"`
}

// UpdateConfigAdmin — PUT активного конфига калькулятора. Тело запроса —
// документ конфигурации целиком; сохраняется как новая активная версия,
// автором пишется логин из BasicAuth.
func UpdateConfigAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateConfigAdmin"

		var doc calc.Config
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}

		if len(doc.Services) == 0 {
			http.Error(w, "Конфиг без услуг не принимается", http.StatusBadRequest)
			return
		}

		updatedBy, _, _ := r.BasicAuth()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		version, err := updater.SaveConfigVersion(ctx, doc, updatedBy)
		if err != nil {
			log.Error("Ошибка сохранения конфига калькулятора", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ConfigResponse{Version: version})
	}
}

func UpdateReviewStatusAdmin(log *slog.Logger, updater AdminUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateReviewStatusAdmin"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Некорректный id отзыва", http.StatusBadRequest)
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Неверный JSON", http.StatusBadRequest)
			return
		}
		if req.Status != storage.ReviewApproved && req.Status != storage.ReviewRejected {
			http.Error(w, "Недопустимый статус отзыва", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateReviewStatus(ctx, id, req.Status); err != nil {
			if errors.Is(err, storage.ErrReviewNotFound) {
				http.Error(w, "Отзыв не найден", http.StatusNotFound)
				return
			}
			log.Error("Ошибка модерации отзыва", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Ошибка сервера", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
