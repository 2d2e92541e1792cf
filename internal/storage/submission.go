package storage

import (
	"time"

	"elmont-backend/internal/calc"
)

// CalcSubmission — отправленный расчёт: снимок формы, результат и ссылки
// на сгенерированные выгрузки, если были. Результат лежит JSON-колонкой.
type CalcSubmission struct {
	ID        int64   `json:"id"`
	SessionID *string `json:"session_id"`

	ObjectType    *string  `json:"object_type"`
	Area          *float64 `json:"area"`
	Points        *float64 `json:"points"`
	Lights        *float64 `json:"lights"`
	Panel         *string  `json:"panel"`
	RCD           *string  `json:"rcd"`
	ChaseM        *float64 `json:"chase_m"`
	MaterialsTier *string  `json:"materials_tier"`
	Region        *string  `json:"region"`
	Urgency       *string  `json:"urgency"`
	WallMaterial  *string  `json:"wall_material"`
	HeightGT3     *string  `json:"height_gt3"`

	OptWarmFloor   bool `json:"opt_warm_floor"`
	OptWeakCurrent bool `json:"opt_weak_current"`
	OptGrounding   bool `json:"opt_grounding"`
	OptMeterMove   bool `json:"opt_meter_move"`

	Result calc.Result `json:"calculation_result"`

	PDFURL    *string   `json:"pdf_url"`
	ImageURL  *string   `json:"image_url"`
	UserAgent *string   `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
