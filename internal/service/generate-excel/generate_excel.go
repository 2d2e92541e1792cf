package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"elmont-backend/internal/storage"
	"elmont-backend/internal/storage/mysql"
)

type ReportStorage interface {
	GetSubmissionsFiltered(ctx context.Context, filter mysql.SubmissionFilter) ([]*storage.CalcSubmission, error)
	GetReviewStats(ctx context.Context) (map[string]int, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// GenerateExcel собирает отчёт по заявкам калькулятора за период.
// Заявки и сводка по отзывам тянутся параллельно.
func (g *ReportService) GenerateExcel(ctx context.Context, filter mysql.SubmissionFilter) ([]byte, error) {
	var (
		subs  []*storage.CalcSubmission
		stats map[string]int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		subs, err = g.storage.GetSubmissionsFiltered(egCtx, filter)
		if err != nil {
			return fmt.Errorf("submissions: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		stats, err = g.storage.GetReviewStats(egCtx)
		if err != nil {
			return fmt.Errorf("review stats: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Заявки калькулятора"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Дата", "Тип объекта", "Площадь", "Регион", "Срочность",
		"Материалы", "Стена", "Мин", "Макс", "Валюта", "PDF"}

	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	row := 2
	for _, sub := range subs {
		values := []any{
			sub.CreatedAt.Format("2006-01-02 15:04"),
			strOrDash(sub.ObjectType),
			floatOrZero(sub.Area),
			strOrDash(sub.Region),
			strOrDash(sub.Urgency),
			strOrDash(sub.MaterialsTier),
			strOrDash(sub.WallMaterial),
			sub.Result.Min,
			sub.Result.Max,
			sub.Result.Currency,
			strOrDash(sub.PDFURL),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// Сводка под таблицей: сколько заявок и как дела с отзывами.
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Всего заявок:")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), len(subs))
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Отзывы на модерации:")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stats[storage.ReviewPending])
	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Отзывы опубликованы:")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stats[storage.ReviewApproved])

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
