package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elmont-backend/internal/storage"
)

// SubmissionFilter — фильтр списка заявок для админки и отчётов.
type SubmissionFilter struct {
	From   time.Time
	To     time.Time
	Region string
}

func (s *Storage) SaveSubmission(ctx context.Context, sub storage.CalcSubmission) (int64, error) {
	const op = "storage.mysql.SaveSubmission"

	resultJSON, err := json.Marshal(sub.Result)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сериализации результата: %w", op, err)
	}

	stmt := `INSERT INTO calculator_submissions
		(session_id, object_type, area, points, lights, panel, rcd, chase_m,
		 materials_tier, region, urgency, wall_material, height_gt3,
		 opt_warm_floor, opt_weak_current, opt_grounding, opt_meter_move,
		 calculation_result, pdf_url, image_url, user_agent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt,
		sub.SessionID, sub.ObjectType, sub.Area, sub.Points, sub.Lights,
		sub.Panel, sub.RCD, sub.ChaseM, sub.MaterialsTier, sub.Region,
		sub.Urgency, sub.WallMaterial, sub.HeightGT3,
		sub.OptWarmFloor, sub.OptWeakCurrent, sub.OptGrounding, sub.OptMeterMove,
		resultJSON, sub.PDFURL, sub.ImageURL, sub.UserAgent)
	if err != nil {
		return 0, fmt.Errorf("%s: ошибка сохранения заявки: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetSubmissionsFiltered(ctx context.Context, filter SubmissionFilter) ([]*storage.CalcSubmission, error) {
	const op = "storage.mysql.GetSubmissionsFiltered"

	stmt := `SELECT id, session_id, object_type, area, points, lights, panel, rcd, chase_m,
		materials_tier, region, urgency, wall_material, height_gt3,
		opt_warm_floor, opt_weak_current, opt_grounding, opt_meter_move,
		calculation_result, pdf_url, image_url, user_agent, created_at
		FROM calculator_submissions
		WHERE created_at >= ? AND created_at <= ?`

	args := []any{filter.From, filter.To}
	if filter.Region != "" {
		stmt += ` AND region = ?`
		args = append(args, filter.Region)
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения заявок: %w", op, err)
	}
	defer rows.Close()

	var subs []*storage.CalcSubmission

	for rows.Next() {
		sub := &storage.CalcSubmission{}
		var resultJSON []byte

		err := rows.Scan(&sub.ID, &sub.SessionID, &sub.ObjectType, &sub.Area,
			&sub.Points, &sub.Lights, &sub.Panel, &sub.RCD, &sub.ChaseM,
			&sub.MaterialsTier, &sub.Region, &sub.Urgency, &sub.WallMaterial,
			&sub.HeightGT3, &sub.OptWarmFloor, &sub.OptWeakCurrent,
			&sub.OptGrounding, &sub.OptMeterMove, &resultJSON,
			&sub.PDFURL, &sub.ImageURL, &sub.UserAgent, &sub.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки заявки: %w", op, err)
		}

		if err := json.Unmarshal(resultJSON, &sub.Result); err != nil {
			return nil, fmt.Errorf("%s: кривой JSON результата id=%d: %w", op, sub.ID, err)
		}

		subs = append(subs, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: ошибка при итерации по строкам: %w", op, err)
	}

	return subs, nil
}
