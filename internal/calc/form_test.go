package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_ObjectTypeAliases(t *testing.T) {
	cases := map[string]string{
		"Дом до 150 м²": "Дом",
		"Другое":        "Студия",
		"1-к":           "1-комнатная",
		"2-к":           "2-комнатная",
		"3-к":           "3-комнатная",
		"Студия":        "Студия",
	}
	for in, want := range cases {
		got := Normalize(FormValues{ObjectType: in})
		assert.Equal(t, want, got.ObjectType)
	}
}

func TestNormalize_Tags(t *testing.T) {
	form := Normalize(FormValues{
		Panel:         "Новый щит",
		RCD:           "Да",
		MaterialsTier: "Премиум-бренды",
		Region:        "Минск +30 км",
		Urgency:       "Срочно (выезд завтра)",
		WallMaterial:  "Г-с блок",
		HeightGT3:     "Да",
	})

	assert.Equal(t, PanelNew, form.Panel)
	assert.True(t, form.RCD)
	assert.Equal(t, TierPremium, form.MaterialsTier)
	assert.True(t, form.RegionOutside)
	assert.True(t, form.Rush)
	assert.Equal(t, WallGasBlock, form.WallMaterial)
	assert.True(t, form.HeightGT3)
}

func TestNormalize_Defaults(t *testing.T) {
	form := Normalize(FormValues{
		RCD:          "Нет",
		Region:       "Брест",
		Urgency:      "Стандартно",
		WallMaterial: "мрамор", // нет в таблице — неизвестный материал
		Area:         -10,      // отрицательные значения прижимаются к нулю
	})

	assert.Equal(t, PanelNone, form.Panel)
	assert.False(t, form.RCD)
	assert.Equal(t, TierBasic, form.MaterialsTier)
	assert.False(t, form.RegionOutside, "базовый город без надбавки")
	assert.False(t, form.Rush, "Стандартно не содержит маркера срочности")
	assert.Equal(t, WallUnknown, form.WallMaterial)
	assert.Equal(t, 0.0, form.Area)
}

func TestNormalize_RushIsSubstringMatch(t *testing.T) {
	// Нечёткий контракт: любое упоминание срочности в подписи.
	assert.True(t, Normalize(FormValues{Urgency: "СРОЧНЫЙ выезд"}).Rush)
	assert.True(t, Normalize(FormValues{Urgency: "Ускоренно (срочно)"}).Rush)
	assert.False(t, Normalize(FormValues{Urgency: "Ускоренно"}).Rush)
	assert.False(t, Normalize(FormValues{Urgency: ""}).Rush)
}
