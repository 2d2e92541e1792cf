package calc

import "math"

const (
	ruleRounding = "rounding"  // шаг округления, дефолт 0.10
	ruleMinOrder = "min_order" // минимальный заказ, дефолт 30

	ruleTierWorkMin        = "materials_tier_work_min_coef"         // 1.00
	ruleTierWorkMax        = "materials_tier_work_max_coef"         // 1.03
	ruleTierWorkMinPremium = "materials_tier_work_min_coef_premium" // 1.05
	ruleTierWorkMaxPremium = "materials_tier_work_max_coef_premium" // 1.10
)

// Доли разбега min-max для справочных строк "логистика" и "срочность".
// Это презентационное приближение из прода, не самостоятельные подытоги.
const (
	logisticsSpreadShare = 0.05
	rushSpreadShare      = 0.12
)

// AdvisoryNote прикладывается к каждому результату независимо от входа.
const AdvisoryNote = "Для формирования итоговой цены закажите бесплатный выезд специалиста для просчета."

// RoundTo округляет к ближайшему кратному шага. При step<=0 возвращает
// x как есть. Идемпотентна: RoundTo(RoundTo(x,s),s) == RoundTo(x,s).
func RoundTo(x, step float64) float64 {
	if step <= 0 {
		return x
	}
	return math.Round(x/step) * step
}

// CalculateTotal — весь расчёт: работы -> материалы -> коэффициент уровня
// материалов -> модификаторы max -> минимальный заказ и округление.
// Детерминирован: без времени, без случайности, без I/O.
func CalculateTotal(form Form, cfg *Config) Result {
	rounding := cfg.Rule(ruleRounding, "0.10")
	minOrder := cfg.Rule(ruleMinOrder, "30")

	w := calcWorks(form, cfg)
	matsMin, matsMax := calcMaterials(w.Est, cfg)

	// Материалы клиента — исключаем материалы из обеих границ.
	if form.MaterialsTier == TierClient {
		matsMin = 0
		matsMax = 0
	}

	// Премиальный уровень материалов слегка дорожит сами работы.
	tierWorkMin := cfg.Rule(ruleTierWorkMin, "1.00")
	tierWorkMax := cfg.Rule(ruleTierWorkMax, "1.03")
	if form.MaterialsTier == TierPremium {
		tierWorkMin = cfg.Rule(ruleTierWorkMinPremium, "1.05")
		tierWorkMax = cfg.Rule(ruleTierWorkMaxPremium, "1.10")
	}

	min := w.Min*tierWorkMin + matsMin
	max := w.Max*tierWorkMax + matsMax

	max, factors := applyMaxModifiers(max, form, cfg)

	min = RoundTo(math.Max(min, minOrder), rounding)
	max = RoundTo(math.Max(max, minOrder), rounding)

	breakdown := Breakdown{
		// "Работы" показываем ближе к max.
		Works:     RoundTo(w.Max*tierWorkMax, rounding),
		Materials: RoundTo(matsMax, rounding),
	}
	if form.RegionOutside {
		breakdown.Logistics = RoundTo((max-min)*logisticsSpreadShare, rounding)
	}
	if form.Rush {
		breakdown.Rush = RoundTo((max-min)*rushSpreadShare, rounding)
	}

	return Result{
		Min:       min,
		Max:       max,
		Currency:  cfg.Currency,
		Breakdown: breakdown,
		Factors:   factors,
		Note:      AdvisoryNote,
	}
}
