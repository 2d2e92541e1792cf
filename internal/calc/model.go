package calc

import "strconv"

// Пакет calc — чистый движок калькулятора стоимости электромонтажа.
// Никакого I/O: (FormValues, Config) -> Result, всё остальное — адаптеры.

type Unit string

const (
	UnitMeter Unit = "m"
	UnitPcs   Unit = "pcs"
	UnitJob   Unit = "job"
)

type PricingMode string

const (
	ModeMin     PricingMode = "min"
	ModeAvg     PricingMode = "avg"
	ModeMax     PricingMode = "max"
	ModeByParam PricingMode = "by_param"
)

// Service — одна позиция прайса (например "штроба, за метр").
type Service struct {
	ID          string      `json:"id"`
	Category    string      `json:"category"` // "core" | "extra"
	Name        string      `json:"name"`
	Unit        Unit        `json:"unit"`
	MinPrice    float64     `json:"min_price"`
	MaxPrice    float64     `json:"max_price"`
	PricingMode PricingMode `json:"pricing_mode"`
	ParamSchema string      `json:"param_schema,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// ParamRow — одна строка коэффициента: схема + параметр + вариант.
// Строки с одинаковыми schema_id+param образуют взаимоисключающий набор.
type ParamRow struct {
	SchemaID string  `json:"schema_id"`
	Param    string  `json:"param"`
	Variant  string  `json:"variant"`
	Coef     float64 `json:"coef"`
}

// PricingRule — глобальный именованный скаляр (min_order, rounding и т.д.).
// Значения хранятся строками, парсятся в месте использования.
type PricingRule struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// MaterialsNorms — нормы стоимости материалов на единицу.
// Нормы на метр штробы входят в схему документа, но в сумму материалов
// не идут (так сложилось в проде, см. calcMaterials).
type MaterialsNorms struct {
	PerPointMin  float64 `json:"per_point_min"`
	PerPointMax  float64 `json:"per_point_max"`
	PerSpotMin   float64 `json:"per_spot_min"`
	PerSpotMax   float64 `json:"per_spot_max"`
	PerChaseMMin float64 `json:"per_chase_m_min"`
	PerChaseMMax float64 `json:"per_chase_m_max"`
	PanelMin     float64 `json:"panel_min"`
	PanelMax     float64 `json:"panel_max"`
}

// ObjectHeuristics — плотности по типу объекта для автозаполнения количеств.
type ObjectHeuristics struct {
	PointsPerM2Min    float64 `json:"points_per_m2_min"`
	PointsPerM2Max    float64 `json:"points_per_m2_max"`
	SpotPerM2Min      float64 `json:"spot_per_m2_min"`
	SpotPerM2Max      float64 `json:"spot_per_m2_max"`
	ChaseMPerPointMin float64 `json:"chase_m_per_point_min"`
	ChaseMPerPointMax float64 `json:"chase_m_per_point_max"`
	PanelModulesGuess string  `json:"panel_modules_guess,omitempty"`
}

type Heuristics struct {
	ByObjectType map[string]ObjectHeuristics `json:"by_object_type"`
}

// Config — документ конфигурации калькулятора. Загружается один раз,
// на время расчёта считается неизменяемым.
type Config struct {
	Services       []Service      `json:"services"`
	Params         []ParamRow     `json:"params"`
	PricingRules   []PricingRule  `json:"pricing_rules"`
	MaterialsNorms MaterialsNorms `json:"materials_norms"`
	Heuristics     Heuristics     `json:"heuristics"`
	Currency       string         `json:"currency"`
}

// Rule возвращает числовое значение правила по ключу либо дефолт.
// Отсутствующий или кривой ключ — не ошибка, политика мягких дефолтов.
func (c *Config) Rule(key, def string) float64 {
	val := def
	for _, r := range c.PricingRules {
		if r.Key == key {
			val = r.Value
			break
		}
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		f, err = strconv.ParseFloat(def, 64)
		if err != nil {
			return 1
		}
	}
	return f
}

// Breakdown — строки для правой колонки результата.
type Breakdown struct {
	Works     float64 `json:"works"`
	Materials float64 `json:"materials"`
	Logistics float64 `json:"logistics"`
	Rush      float64 `json:"rush"`
}

// Result — итог расчёта. Неизменяем, следующий расчёт заменяет целиком.
type Result struct {
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Currency  string    `json:"currency"`
	Breakdown Breakdown `json:"breakdown"`
	Factors   []string  `json:"factors"`
	Note      string    `json:"note"`
}
