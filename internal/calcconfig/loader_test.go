package calcconfig

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"currency": "BYN",
	"services": [
		{"id": "points_install", "category": "core", "name": "Монтаж точек",
		 "unit": "pcs", "min_price": 12, "max_price": 18, "pricing_mode": "avg"}
	],
	"params": [
		{"schema_id": "panel_params_v1", "param": "modules", "variant": "≤12M", "coef": 0.8}
	],
	"pricing_rules": [
		{"key": "min_order", "value": "30"}
	],
	"materials_norms": {"per_point_min": 8, "per_point_max": 14, "panel_min": 60, "panel_max": 120},
	"heuristics": {"by_object_type": {"Студия": {"points_per_m2_min": 0.5, "points_per_m2_max": 0.7}}}
}`

func TestLoadConfig_Success(t *testing.T) {
	var gotBust string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBust = r.URL.Query().Get("v")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	cfg, err := New(srv.URL + "/calculator-config.json").LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "BYN", cfg.Currency)
	assert.Len(t, cfg.Services, 1)
	assert.Equal(t, 0.8, cfg.Params[0].Coef)
	assert.Equal(t, 0.5, cfg.Heuristics.ByObjectType["Студия"].PointsPerM2Min)
	assert.NotEmpty(t, gotBust, "к запросу должен добавляться cache-bust параметр")
}

func TestLoadConfig_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).LoadConfig(context.Background())
	require.Error(t, err)

	var loadErr *ConfigLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadConfig_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"services": [`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).LoadConfig(context.Background())

	var loadErr *ConfigLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadConfig_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже погашен

	_, err := New(srv.URL).LoadConfig(context.Background())

	var loadErr *ConfigLoadError
	assert.True(t, errors.As(err, &loadErr))
}
