package calc

import "math"

// Тип объекта, чьи эвристики берём, если своего нет в конфиге.
const fallbackObjectType = "Студия"

// Вариант щита по умолчанию, когда новый щит не заказан.
const smallPanelVariant = "≤12M"

// Вариант щита при заказе нового, если конфиг не подсказал свой.
const largePanelVariant = "18–24M"

// Estimate — дооценённые количества. Явно введённое пользователем число
// идёт и в min, и в max без эвристического разброса.
type Estimate struct {
	PointsMin float64
	PointsMax float64
	SpotsMin  float64
	SpotsMax  float64
	ChaseMin  float64
	ChaseMax  float64

	PanelVariant string
}

// EstimateIfMissing заполняет количества, которые пользователь оставил
// пустыми, из площади и плотностей по типу объекта. Чистая функция.
func EstimateIfMissing(form Form, cfg *Config) Estimate {
	h, ok := cfg.Heuristics.ByObjectType[form.ObjectType]
	if !ok {
		h = cfg.Heuristics.ByObjectType[fallbackObjectType]
	}
	area := math.Max(0, form.Area)

	est := Estimate{
		PointsMin: math.Ceil(area * h.PointsPerM2Min),
		PointsMax: math.Ceil(area * h.PointsPerM2Max),
		SpotsMin:  math.Ceil(area * h.SpotPerM2Min),
		SpotsMax:  math.Ceil(area * h.SpotPerM2Max),
	}

	if form.Points > 0 {
		est.PointsMin = form.Points
		est.PointsMax = form.Points
	}
	if form.Lights > 0 {
		est.SpotsMin = form.Lights
		est.SpotsMax = form.Lights
	}

	// Штроба тянется за точками, а не за площадью напрямую.
	est.ChaseMin = math.Ceil(est.PointsMin * h.ChaseMPerPointMin)
	est.ChaseMax = math.Ceil(est.PointsMax * h.ChaseMPerPointMax)
	if form.ChaseM > 0 {
		est.ChaseMin = form.ChaseM
		est.ChaseMax = form.ChaseM
	}

	if form.Panel == PanelNew {
		est.PanelVariant = h.PanelModulesGuess
		if est.PanelVariant == "" {
			est.PanelVariant = largePanelVariant
		}
	} else {
		est.PanelVariant = smallPanelVariant
	}

	return est
}
