package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "elmont-backend/http-server/admin/get"
	upadmin "elmont-backend/http-server/admin/update"
	getconfig "elmont-backend/http-server/calculator-config/get"
	calcop "elmont-backend/http-server/calculator/calculate"
	saveconsent "elmont-backend/http-server/consent/save"
	generate_excel "elmont-backend/http-server/generate-report/generate-excel"
	getreviews "elmont-backend/http-server/reviews/get"
	savereview "elmont-backend/http-server/reviews/save"
	savesub "elmont-backend/http-server/submissions/save"
	"elmont-backend/internal/config"
	"elmont-backend/internal/middleware/auth"
	"elmont-backend/internal/middleware/ratelimit"
	"elmont-backend/internal/service/calculate"
	generate_excel2 "elmont-backend/internal/service/generate-excel"
	"elmont-backend/internal/storage/mysql"
)

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *mysql.Storage,
	calcService *calculate.Service,
	reportService *generate_excel2.ReportService,
	reviewLimiter *ratelimit.Store,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Разрешаем запросы с фронтенда
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Публичное API калькулятора
	router.Post("/api/calculator/calculate", calcop.CalculateOperation(log, calcService))
	router.Get("/api/calculator-config", getconfig.GetCalculatorConfig(log, storage))
	router.Post("/api/calculator/submissions", savesub.SaveSubmissionOperation(log, storage))

	// Отзывы: чтение открыто, отправка под лимитом по IP
	router.Get("/api/reviews", getreviews.GetReviews(log, storage))
	router.With(ratelimit.Middleware(reviewLimiter, "review", log)).
		Post("/api/reviews", savereview.SaveReviewOperation(log, storage))

	// Согласие на cookie
	router.Post("/api/consent", saveconsent.SaveConsentOperation(log, storage))

	// Админка
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/calculator-config", getadmin.GetConfigAdmin(log, storage))
	adminRouter.Put("/calculator-config", upadmin.UpdateConfigAdmin(log, storage))
	adminRouter.Get("/reviews", getadmin.GetReviewsAdmin(log, storage))
	adminRouter.Put("/reviews/status/{id}", upadmin.UpdateReviewStatusAdmin(log, storage))
	adminRouter.Get("/submissions", getadmin.GetSubmissionsAdmin(log, storage))
	adminRouter.Get("/consents", getadmin.GetConsentsAdmin(log, storage))
	adminRouter.Get("/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	router.Mount("/api/admin", adminRouter)

	// Статика собранного фронта. Без неё бэкенд тоже живёт — API остаётся.
	frontendDir := cfg.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Папка фронтенда не найдена, статика отключена", "path", frontendDir)
		return router
	}

	// Отдаём статические файлы: assets/, js/, css/, img/ и т.д.
	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	router.With(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass)).Handle("/admin/*",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
		}),
	)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
