package calc

// Ключи pricing_rules и их литеральные дефолты. Дефолты действуют при
// отсутствии ключа в конфиге — это осознанная мягкость, не валим расчёт.
const (
	ruleWallConcrete = "wall_material_max_coef_concrete" // 1.15
	ruleWallBrick    = "wall_material_max_coef_brick"    // 1.00
	ruleWallGasBlock = "wall_material_max_coef_gs"       // 0.95
	ruleWallUnknown  = "wall_material_max_coef_unknown"  // 1.10
	ruleHeightGT3    = "height_gt3m_max_coef"            // 1.10
	ruleRush         = "rush_max_coef"                   // 1.15
	ruleRegionOut    = "region_max_coef_outside"         // 1.05
	ruleHiddenRisk   = "hidden_risk_max_coef"            // 1.05
)

// applyMaxModifiers прогоняет верхнюю границу через цепочку надбавок.
// Нижнюю границу модификаторы не трогают: min — лучший случай, max
// собирает все риски. Порядок фиксирован. Каждая ветка добавляет плашку.
func applyMaxModifiers(max float64, form Form, cfg *Config) (float64, []string) {
	var factors []string

	// 1. Материал стен.
	switch form.WallMaterial {
	case WallConcrete:
		max *= cfg.Rule(ruleWallConcrete, "1.15")
		factors = append(factors, "Тип стены: бетон (до +15%)")
	case WallBrick:
		max *= cfg.Rule(ruleWallBrick, "1.00")
		factors = append(factors, "Тип стены: кирпич (без надбавки)")
	case WallGasBlock:
		max *= cfg.Rule(ruleWallGasBlock, "0.95")
		factors = append(factors, "Тип стены: газосиликат (возможна экономия)")
	default:
		max *= cfg.Rule(ruleWallUnknown, "1.10")
		factors = append(factors, "Тип стены не указан (закладываем до +10%)")
	}

	// 2. Потолки выше трёх метров.
	if form.HeightGT3 {
		max *= cfg.Rule(ruleHeightGT3, "1.10")
		factors = append(factors, "Высота потолков >3 м (до +10%)")
	}

	// 3. Срочность.
	if form.Rush {
		max *= cfg.Rule(ruleRush, "1.15")
		factors = append(factors, "Срочность (до +15%)")
	}

	// 4. Выезд за пределы базового города.
	if form.RegionOutside {
		max *= cfg.Rule(ruleRegionOut, "1.05")
		factors = append(factors, "Выезд за город (до +5%)")
	}

	// 5. Буфер на скрытые работы — всегда.
	max *= cfg.Rule(ruleHiddenRisk, "1.05")
	factors = append(factors, "Непредвиденные работы (до +5%)")

	return max, factors
}
