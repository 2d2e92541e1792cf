package calc

import (
	"math"
	"strings"
)

// FormValues — снимок формы как её шлёт фронт: русские подписи селектов
// как есть. Нормализация в теги — только здесь, движок подписи не видит.
type FormValues struct {
	ObjectType    string  `json:"objectType"`
	Area          float64 `json:"area"`
	Points        float64 `json:"points"`
	Lights        float64 `json:"lights"`
	Panel         string  `json:"panel"`
	RCD           string  `json:"rcd"`
	ChaseM        float64 `json:"chaseM"`
	MaterialsTier string  `json:"materialsTier"`
	Region        string  `json:"region"`
	Urgency       string  `json:"urgency"`
	WarmFloor     bool    `json:"warmFloor"`
	WeakCurrent   bool    `json:"weakCurrent"`
	Grounding     bool    `json:"grounding"`
	MeterMove     bool    `json:"meterMove"`
	WallMaterial  string  `json:"wallMaterial"`
	HeightGT3     string  `json:"heightGT3"`
}

type WallMaterial int

const (
	WallUnknown WallMaterial = iota
	WallBrick
	WallConcrete
	WallGasBlock
)

type PanelChoice int

const (
	PanelNone PanelChoice = iota
	PanelNew
	PanelRebuild
)

type MaterialsTier int

const (
	TierBasic MaterialsTier = iota
	TierPremium
	TierClient
)

// Form — нормализованная форма с внутренними тегами вместо подписей.
type Form struct {
	ObjectType string
	Area       float64
	Points     float64
	Lights     float64
	ChaseM     float64

	Panel         PanelChoice
	RCD           bool
	MaterialsTier MaterialsTier
	RegionOutside bool
	Rush          bool
	WallMaterial  WallMaterial
	HeightGT3     bool

	WarmFloor   bool
	WeakCurrent bool
	Grounding   bool
	MeterMove   bool
}

// Таблицы соответствий — это бизнес-правила, не менять подписи.
var objectTypeAliases = map[string]string{
	"Дом до 150 м²": "Дом",
	"Другое":        "Студия",
	"1-к":           "1-комнатная",
	"2-к":           "2-комнатная",
	"3-к":           "3-комнатная",
}

var wallMaterialTags = map[string]WallMaterial{
	"Кирпич":   WallBrick,
	"Бетон":    WallConcrete,
	"Г-с блок": WallGasBlock,
	"Не знаю":  WallUnknown,
}

var panelTags = map[string]PanelChoice{
	"Новый щит":     PanelNew,
	"Замена/сборка": PanelRebuild,
	"Не требуется":  PanelNone,
}

var materialsTierTags = map[string]MaterialsTier{
	"Базовые (сертифицированные)": TierBasic,
	"Премиум-бренды":              TierPremium,
	"Материалы клиента":           TierClient,
}

// Базовый город: всё остальное считается выездом.
const baseRegion = "брест"

// Срочность определяется подстрокой — осознанный нечёткий контракт,
// чтобы "Срочно" / "Ускоренно (срочный выезд)" ловились одинаково.
const rushMarker = "сроч"

// Normalize переводит подписи формы во внутренние теги и прижимает
// числовые поля к нулю. Нераспознанная подпись стены — WallUnknown,
// это отдельная ветка тарифа, а не ошибка.
func Normalize(f FormValues) Form {
	objectType := f.ObjectType
	if alias, ok := objectTypeAliases[objectType]; ok {
		objectType = alias
	}

	return Form{
		ObjectType: objectType,
		Area:       math.Max(0, f.Area),
		Points:     math.Max(0, f.Points),
		Lights:     math.Max(0, f.Lights),
		ChaseM:     math.Max(0, f.ChaseM),

		Panel:         panelTags[f.Panel],
		RCD:           f.RCD == "Да",
		MaterialsTier: materialsTierTags[f.MaterialsTier],
		RegionOutside: f.Region != "" && !strings.EqualFold(strings.TrimSpace(f.Region), baseRegion),
		Rush:          strings.Contains(strings.ToLower(f.Urgency), rushMarker),
		WallMaterial:  wallMaterialTags[f.WallMaterial],
		HeightGT3:     f.HeightGT3 == "Да",

		WarmFloor:   f.WarmFloor,
		WeakCurrent: f.WeakCurrent,
		Grounding:   f.Grounding,
		MeterMove:   f.MeterMove,
	}
}
