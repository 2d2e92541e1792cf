package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"elmont-backend/internal/storage"
	"elmont-backend/internal/storage/mysql"
)

type AdminProvider interface {
	GetActiveConfig(ctx context.Context) (*storage.PricingConfigDoc, error)
	GetAllReviewsAdmin(ctx context.Context) ([]*storage.Review, error)
	GetSubmissionsFiltered(ctx context.Context, filter mysql.SubmissionFilter) ([]*storage.CalcSubmission, error)
	GetConsents(ctx context.Context) ([]*storage.CookieConsent, error)
}

// GetConfigAdmin отдаёт активный конфиг целиком, с версией и метаданными,
// в отличие от публичной ручки, которая отдаёт только сам документ.
func GetConfigAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetConfigAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		doc, err := provider.GetActiveConfig(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrConfigNotFound) {
				http.Error(w, "Конфиг калькулятора не найден", http.StatusNotFound)
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения конфига калькулятора")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, doc)
	}
}

func GetReviewsAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetReviewsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		reviews, err := provider.GetAllReviewsAdmin(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения отзывов для модерации")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if reviews == nil {
			reviews = []*storage.Review{}
		}

		render.JSON(w, r, reviews)
	}
}

// GetSubmissionsAdmin — список заявок калькулятора с фильтром по периоду
// и региону. Без параметров отдаёт заявки с начала текущего месяца.
func GetSubmissionsAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetSubmissionsAdmin"

		fromStr := r.URL.Query().Get("from")
		toStr := r.URL.Query().Get("to")
		region := r.URL.Query().Get("region")

		now := time.Now()
		startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		fDate, err := time.Parse("2006-01-02", fromStr)
		if err != nil && fromStr != "" {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		if fromStr == "" {
			fDate = startOfMonth
		}

		tDate, err := time.Parse("2006-01-02", toStr)
		if err != nil && toStr != "" {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		if toStr == "" {
			tDate = now
		}

		filter := mysql.SubmissionFilter{
			From:   fDate,
			To:     tDate,
			Region: region,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		subs, err := provider.GetSubmissionsFiltered(ctx, filter)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения заявок калькулятора")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if subs == nil {
			subs = []*storage.CalcSubmission{}
		}

		render.JSON(w, r, subs)
	}
}

func GetConsentsAdmin(log *slog.Logger, provider AdminProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetConsentsAdmin"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		consents, err := provider.GetConsents(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("ошибка получения согласий на cookie")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if consents == nil {
			consents = []*storage.CookieConsent{}
		}

		render.JSON(w, r, consents)
	}
}
