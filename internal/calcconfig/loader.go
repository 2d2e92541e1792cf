package calcconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"elmont-backend/internal/calc"
)

// Загрузчик документа конфигурации калькулятора с внешнего URL.
// Одна попытка, без ретраев: если конфиг не загрузился — калькулятор
// показывает терминальную ошибку, решение о повторе за пользователем.

// ConfigLoadError — любая неудача загрузки: транспорт, статус, парсинг.
type ConfigLoadError struct {
	URL string
	Err error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("загрузка конфига калькулятора %s: %v", e.URL, e.Err)
}

func (e *ConfigLoadError) Unwrap() error { return e.Err }

type Loader struct {
	url    string
	client *http.Client

	// подменяется в тестах
	now func() time.Time
}

func New(rawURL string) *Loader {
	return &Loader{
		url:    rawURL,
		client: &http.Client{Timeout: 10 * time.Second},
		now:    time.Now,
	}
}

// LoadConfig забирает и парсит документ. К URL добавляется параметр "v"
// с текущим временем, чтобы пробить промежуточные кэши.
func (l *Loader) LoadConfig(ctx context.Context) (*calc.Config, error) {
	u, err := url.Parse(l.url)
	if err != nil {
		return nil, &ConfigLoadError{URL: l.url, Err: err}
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(l.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &ConfigLoadError{URL: l.url, Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &ConfigLoadError{URL: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ConfigLoadError{URL: l.url, Err: fmt.Errorf("неожиданный статус %d", resp.StatusCode)}
	}

	var cfg calc.Config
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, &ConfigLoadError{URL: l.url, Err: fmt.Errorf("кривой JSON: %w", err)}
	}

	return &cfg, nil
}
