package calc

import "math"

type bound int

const (
	boundMin bound = iota
	boundMax
)

// Схема и параметр, по которым подбирается коэффициент щита.
const (
	panelSchemaID  = "panel_params_v1"
	panelParamName = "modules"
	panelServiceID = "panel_install"
)

// Дооценочные соотношения для производных услуг. Это внешние по отношению
// к конфигу константы продукта, они воспроизводятся как есть.
const (
	rcdPointsPerGroup   = 6.0 // одна группа УЗО на 6 точек
	rcdFallbackPoints   = 6.0
	weakCurrentPerPoint = 0.2 // слаботочка ~20% от числа точек
	weakFallbackPoints  = 10.0
)

// Line — строка расчёта по одной услуге.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Sum      float64 `json:"sum"`
	Currency string  `json:"currency"`
}

type works struct {
	LinesMin []Line
	LinesMax []Line
	Min      float64
	Max      float64
	Est      Estimate
}

// pickBase выбирает базовую цену услуги. При min==max цена фиксирована,
// avg и by_param берут середину вилки: by_param докручивается
// коэффициентами, а не базой.
func pickBase(s Service, take bound) float64 {
	if s.MinPrice == s.MaxPrice {
		return s.MinPrice
	}
	switch s.PricingMode {
	case ModeMin:
		return s.MinPrice
	case ModeMax:
		return s.MaxPrice
	}
	_ = take
	return (s.MinPrice + s.MaxPrice) / 2
}

// CoefFor перемножает коэффициенты выбранных вариантов по строкам схемы.
// Пустая схема или вариант без строки — коэффициент не меняется.
func CoefFor(schemaID string, chosen map[string]string, cfg *Config) float64 {
	coef := 1.0
	if schemaID == "" || len(chosen) == 0 {
		return coef
	}
	for _, row := range cfg.Params {
		if row.SchemaID != schemaID {
			continue
		}
		if variant, ok := chosen[row.Param]; ok && variant == row.Variant {
			coef *= row.Coef
		}
	}
	return coef
}

// mapQty — количество по услуге. Часть услуг идёт 1:1 из формы, часть
// производная (группы УЗО, слаботочка). Неизвестный id — ноль.
func mapQty(id string, take bound, form Form, est Estimate) float64 {
	switch id {
	case "chase_generic":
		if take == boundMin {
			return est.ChaseMin
		}
		return est.ChaseMax
	case "points_install":
		if take == boundMin {
			return est.PointsMin
		}
		return est.PointsMax
	case "spotlights":
		if take == boundMin {
			return est.SpotsMin
		}
		return est.SpotsMax
	case "chandelier":
		// Люстры считаем только по явному запросу клиента.
		return 0
	case panelServiceID:
		if form.Panel == PanelNew || form.Panel == PanelRebuild {
			return 1
		}
		return 0
	case "rcd_diff":
		if !form.RCD {
			return 0
		}
		points := est.PointsMax
		if points == 0 {
			points = est.PointsMin
		}
		if points == 0 {
			points = rcdFallbackPoints
		}
		return math.Max(1, math.Ceil(points/rcdPointsPerGroup))
	case "led_strip":
		return 0
	case "weak_current":
		if !form.WeakCurrent {
			return 0
		}
		points := est.PointsMax
		if points == 0 {
			points = weakFallbackPoints
		}
		return math.Max(1, math.Ceil(points*weakCurrentPerPoint))
	case "ground_loop":
		if form.Grounding {
			return 1
		}
		return 0
	case "meter_move":
		if form.MeterMove {
			return 1
		}
		return 0
	case "min_visit":
		return 0
	default:
		return 0
	}
}

// chosenVariants — выбранные варианты параметров для услуги.
// Пока параметризован только щит: вариант по числу модулей.
func chosenVariants(s Service, est Estimate) map[string]string {
	if s.ID == panelServiceID && s.ParamSchema != "" {
		return map[string]string{panelParamName: est.PanelVariant}
	}
	return nil
}

func calcLine(s Service, take bound, form Form, est Estimate, cfg *Config) (Line, bool) {
	qty := mapQty(s.ID, take, form, est)
	if qty <= 0 {
		return Line{}, false
	}
	price := pickBase(s, take)
	coef := CoefFor(s.ParamSchema, chosenVariants(s, est), cfg)
	return Line{
		ID:       s.ID,
		Name:     s.Name,
		Qty:      qty,
		Price:    price,
		Sum:      qty * price * coef,
		Currency: cfg.Currency,
	}, true
}

// calcWorks считает вилку по работам: один проход по min-количествам
// и ценам, один по max. Нулевые строки в результат не попадают.
func calcWorks(form Form, cfg *Config) works {
	est := EstimateIfMissing(form, cfg)

	w := works{Est: est}
	for _, s := range cfg.Services {
		if line, ok := calcLine(s, boundMin, form, est, cfg); ok {
			w.LinesMin = append(w.LinesMin, line)
			w.Min += line.Sum
		}
		if line, ok := calcLine(s, boundMax, form, est, cfg); ok {
			w.LinesMax = append(w.LinesMax, line)
			w.Max += line.Sum
		}
	}
	return w
}

// calcMaterials — вилка по материалам независимо от списка услуг:
// точки, светильники и фикс за щит по нормам из конфига.
func calcMaterials(est Estimate, cfg *Config) (min, max float64) {
	n := cfg.MaterialsNorms
	min = est.PointsMin*n.PerPointMin + est.SpotsMin*n.PerSpotMin + n.PanelMin
	max = est.PointsMax*n.PerPointMax + est.SpotsMax*n.PerSpotMax + n.PanelMax
	return min, max
}
