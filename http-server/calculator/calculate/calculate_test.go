package calculate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"elmont-backend/internal/calc"
)

// MockCalculator реализует интерфейс Calculator для тестов
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, form calc.FormValues) (calc.Result, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(calc.Result), args.Error(1)
}

// Тест: успешный расчёт, форма доходит до сервиса как есть
func TestCalculateOperation_Success(t *testing.T) {
	mockCalc := new(MockCalculator)

	result := calc.Result{
		Min:      1200,
		Max:      1800,
		Currency: "BYN",
		Factors:  []string{"Стены: бетон"},
		Note:     calc.AdvisoryNote,
	}

	mockCalc.On("Calculate", mock.Anything, mock.MatchedBy(func(form calc.FormValues) bool {
		return form.ObjectType == "Квартира (2–3 комн.)" && form.Area == 65
	})).Return(result, nil)

	logger := slog.Default()
	handler := CalculateOperation(logger, mockCalc)

	body := `{"objectType":"Квартира (2–3 комн.)","area":65,"wallMaterial":"Бетон"}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculator/calculate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp calc.Result
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 1200.0, resp.Min)
	assert.Equal(t, 1800.0, resp.Max)
	assert.Equal(t, "BYN", resp.Currency)

	mockCalc.AssertExpectations(t)
}

// Тест: битый JSON — 400 без вызова сервиса
func TestCalculateOperation_BadJSON(t *testing.T) {
	mockCalc := new(MockCalculator)
	logger := slog.Default()
	handler := CalculateOperation(logger, mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/calculator/calculate", strings.NewReader(`{"area":`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCalc.AssertNotCalled(t, "Calculate")
}

// Тест: сервис не смог получить конфиг — 500
func TestCalculateOperation_ServiceError(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", mock.Anything, mock.Anything).
		Return(calc.Result{}, errors.New("конфиг недоступен"))

	logger := slog.Default()
	handler := CalculateOperation(logger, mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/calculator/calculate", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockCalc.AssertExpectations(t)
}
