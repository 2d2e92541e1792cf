package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig — конфиг, близкий к боевому документу calculator-config.json.
func testConfig() *Config {
	return &Config{
		Currency: "BYN",
		Services: []Service{
			{ID: "chase_generic", Category: "core", Name: "Штробление", Unit: UnitMeter, MinPrice: 4, MaxPrice: 7, PricingMode: ModeAvg},
			{ID: "points_install", Category: "core", Name: "Монтаж точек", Unit: UnitPcs, MinPrice: 12, MaxPrice: 18, PricingMode: ModeAvg},
			{ID: "spotlights", Category: "core", Name: "Точечные светильники", Unit: UnitPcs, MinPrice: 15, MaxPrice: 25, PricingMode: ModeAvg},
			{ID: "chandelier", Category: "extra", Name: "Люстра", Unit: UnitPcs, MinPrice: 30, MaxPrice: 60, PricingMode: ModeAvg},
			{ID: "panel_install", Category: "core", Name: "Электрощит", Unit: UnitJob, MinPrice: 150, MaxPrice: 300, PricingMode: ModeByParam, ParamSchema: "panel_params_v1"},
			{ID: "rcd_diff", Category: "core", Name: "УЗО/дифавтомат", Unit: UnitPcs, MinPrice: 40, MaxPrice: 60, PricingMode: ModeAvg},
			{ID: "weak_current", Category: "extra", Name: "Слаботочка", Unit: UnitPcs, MinPrice: 20, MaxPrice: 35, PricingMode: ModeAvg},
			{ID: "ground_loop", Category: "extra", Name: "Контур заземления", Unit: UnitJob, MinPrice: 200, MaxPrice: 350, PricingMode: ModeAvg},
			{ID: "meter_move", Category: "extra", Name: "Перенос счётчика", Unit: UnitJob, MinPrice: 120, MaxPrice: 180, PricingMode: ModeAvg},
			{ID: "min_visit", Category: "extra", Name: "Минимальный выезд", Unit: UnitJob, MinPrice: 50, MaxPrice: 50, PricingMode: ModeMin},
		},
		Params: []ParamRow{
			{SchemaID: "panel_params_v1", Param: "modules", Variant: "≤12M", Coef: 0.8},
			{SchemaID: "panel_params_v1", Param: "modules", Variant: "13–17M", Coef: 1.0},
			{SchemaID: "panel_params_v1", Param: "modules", Variant: "18–24M", Coef: 1.25},
		},
		PricingRules: []PricingRule{
			{Key: "min_order", Value: "30"},
			{Key: "rounding", Value: "0.10"},
			{Key: "wall_material_max_coef_concrete", Value: "1.15"},
			{Key: "height_gt3m_max_coef", Value: "1.10"},
			{Key: "rush_max_coef", Value: "1.15"},
			{Key: "region_max_coef_outside", Value: "1.05"},
			{Key: "hidden_risk_max_coef", Value: "1.05"},
		},
		MaterialsNorms: MaterialsNorms{
			PerPointMin: 8, PerPointMax: 14,
			PerSpotMin: 5, PerSpotMax: 9,
			PerChaseMMin: 1.5, PerChaseMMax: 2.5,
			PanelMin: 60, PanelMax: 120,
		},
		Heuristics: Heuristics{ByObjectType: map[string]ObjectHeuristics{
			"Студия": {
				PointsPerM2Min: 0.5, PointsPerM2Max: 0.7,
				SpotPerM2Min: 0.15, SpotPerM2Max: 0.25,
				ChaseMPerPointMin: 1.2, ChaseMPerPointMax: 1.8,
				PanelModulesGuess: "18–24M",
			},
			"1-комнатная": {
				PointsPerM2Min: 0.6, PointsPerM2Max: 0.8,
				SpotPerM2Min: 0.2, SpotPerM2Max: 0.3,
				ChaseMPerPointMin: 1.3, ChaseMPerPointMax: 1.9,
				PanelModulesGuess: "18–24M",
			},
		}},
	}
}

func baseForm() FormValues {
	return FormValues{
		ObjectType:    "Студия",
		Area:          30,
		Panel:         "Новый щит",
		RCD:           "Да",
		MaterialsTier: "Базовые (сертифицированные)",
		Region:        "Брест",
		Urgency:       "Стандартно",
		WallMaterial:  "Бетон",
		HeightGT3:     "Нет",
	}
}

// Детерминизм: одинаковый вход — побайтово одинаковый результат.
func TestCalculateTotal_Deterministic(t *testing.T) {
	cfg := testConfig()
	form := Normalize(baseForm())

	first := CalculateTotal(form, cfg)
	second := CalculateTotal(form, cfg)

	assert.Equal(t, first, second)
}

// Монотонность: рост площади при пустых количествах не уменьшает вилку.
func TestCalculateTotal_MonotonicInArea(t *testing.T) {
	cfg := testConfig()

	prev := Result{}
	for area := 10.0; area <= 120; area += 10 {
		fv := baseForm()
		fv.Area = area
		res := CalculateTotal(Normalize(fv), cfg)

		assert.GreaterOrEqual(t, res.Min, prev.Min, "min упал на площади %v", area)
		assert.GreaterOrEqual(t, res.Max, prev.Max, "max упал на площади %v", area)
		prev = res
	}
}

// min <= max на разнообразных входах.
func TestCalculateTotal_BoundOrdering(t *testing.T) {
	cfg := testConfig()

	forms := []FormValues{
		baseForm(),
		{ObjectType: "Другое", Area: 5, Region: "Минск", Urgency: "Срочно", WallMaterial: "Не знаю", MaterialsTier: "Премиум-бренды", HeightGT3: "Да"},
		{ObjectType: "1-к", Area: 42, Points: 25, Lights: 10, ChaseM: 40, Panel: "Замена/сборка", RCD: "Да", Region: "Брест +30 км", MaterialsTier: "Материалы клиента", WallMaterial: "Г-с блок"},
		{},
	}

	for _, fv := range forms {
		res := CalculateTotal(Normalize(fv), cfg)
		assert.LessOrEqual(t, res.Min, res.Max)
	}
}

// Вырожденный вход: всё по нулям — обе границы равны минимальному заказу.
func TestCalculateTotal_MinOrderFloor(t *testing.T) {
	cfg := testConfig()

	fv := FormValues{
		ObjectType:    "Студия",
		Panel:         "Не требуется",
		RCD:           "Нет",
		MaterialsTier: "Материалы клиента",
		Region:        "Брест",
		Urgency:       "Стандартно",
		WallMaterial:  "Кирпич",
		HeightGT3:     "Нет",
	}
	res := CalculateTotal(Normalize(fv), cfg)

	assert.InDelta(t, 30.0, res.Min, 1e-9)
	assert.InDelta(t, 30.0, res.Max, 1e-9)
}

// Материалы клиента: вклад материалов нулевой в обеих границах.
func TestCalculateTotal_ClientMaterialsExcluded(t *testing.T) {
	cfg := testConfig()

	basic := baseForm()
	client := baseForm()
	client.MaterialsTier = "Материалы клиента"

	resBasic := CalculateTotal(Normalize(basic), cfg)
	resClient := CalculateTotal(Normalize(client), cfg)

	assert.Equal(t, 0.0, resClient.Breakdown.Materials)
	assert.Less(t, resClient.Min, resBasic.Min)
	assert.Less(t, resClient.Max, resBasic.Max)
}

// Высота >3м поднимает только max, ровно на коэффициент (в пределах шага
// округления), и добавляет плашку.
func TestCalculateTotal_HeightModifier(t *testing.T) {
	cfg := testConfig()

	flat := baseForm()
	tall := baseForm()
	tall.HeightGT3 = "Да"

	resFlat := CalculateTotal(Normalize(flat), cfg)
	resTall := CalculateTotal(Normalize(tall), cfg)

	assert.Equal(t, resFlat.Min, resTall.Min, "min не должен зависеть от высоты")
	assert.InDelta(t, resFlat.Max*1.10, resTall.Max, 0.2)
	assert.Contains(t, resTall.Factors, "Высота потолков >3 м (до +10%)")
	assert.NotContains(t, resFlat.Factors, "Высота потолков >3 м (до +10%)")
}

// coefFor: несматченный вариант и пустая схема дают 1.
func TestCoefFor(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, 1.0, CoefFor("", map[string]string{"modules": "≤12M"}, cfg))
	assert.Equal(t, 1.0, CoefFor("panel_params_v1", map[string]string{"modules": "48M"}, cfg))
	assert.Equal(t, 1.0, CoefFor("panel_params_v1", map[string]string{"width": "20–30мм"}, cfg))
	assert.Equal(t, 1.25, CoefFor("panel_params_v1", map[string]string{"modules": "18–24M"}, cfg))
	assert.Equal(t, 1.0, CoefFor("panel_params_v1", nil, cfg))
}

// Сценарий: студия 30 м², всё количественное — из эвристик.
func TestCalculateTotal_StudioScenario(t *testing.T) {
	cfg := testConfig()
	form := Normalize(baseForm())

	est := EstimateIfMissing(form, cfg)
	require.Equal(t, 15.0, est.PointsMin) // ceil(30*0.5)
	require.Equal(t, 21.0, est.PointsMax) // ceil(30*0.7)
	require.Equal(t, 5.0, est.SpotsMin)
	require.Equal(t, 8.0, est.SpotsMax)
	require.Equal(t, 18.0, est.ChaseMin) // ceil(15*1.2)
	require.Equal(t, 38.0, est.ChaseMax) // ceil(21*1.8)
	require.Equal(t, "18–24M", est.PanelVariant)

	res := CalculateTotal(form, cfg)

	assert.Less(t, res.Min, res.Max)
	assert.Contains(t, res.Factors, "Тип стены: бетон (до +15%)")
	assert.Equal(t, 0.0, res.Breakdown.Rush, "Стандартно — не срочный заказ")
	assert.Equal(t, 0.0, res.Breakdown.Logistics, "Брест — базовый город")
	assert.Equal(t, AdvisoryNote, res.Note)
	assert.Equal(t, "BYN", res.Currency)
}

// Идемпотентность округления.
func TestRoundTo_Idempotent(t *testing.T) {
	for _, x := range []float64{0, 0.04, 0.05, 1, 29.99, 33.333, 1287.61, 99999.95} {
		for _, step := range []float64{0.1, 0.5, 1, 10} {
			once := RoundTo(x, step)
			assert.Equal(t, once, RoundTo(once, step), "x=%v step=%v", x, step)
		}
	}
	// step<=0 — возвращаем как есть
	assert.Equal(t, 3.14, RoundTo(3.14, 0))
}
