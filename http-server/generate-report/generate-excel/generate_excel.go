package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"elmont-backend/internal/storage/mysql"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, filter mysql.SubmissionFilter) ([]byte, error)
}

// GenerateReportExcel отдаёт xlsx-отчёт по заявкам калькулятора.
// Период задаётся параметрами from/to (YYYY-MM-DD), по умолчанию —
// с начала текущего месяца по сейчас.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

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

		// На сборку Excel времени даём побольше
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, filter)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Elmont_Report_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
