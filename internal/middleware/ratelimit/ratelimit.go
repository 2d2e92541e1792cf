package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Ограничитель частоты по ключу "действие_идентификатор". Хранилище
// ограничено по размеру, записи без активности вычищаются по TTL —
// бесконечно расти, как старый глобальный стор, оно не может.

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit      rate.Limit
	burst      int
	ttl        time.Duration
	maxEntries int
}

// NewStore — burst попыток на окно window с ключа; maxEntries — жёсткий
// потолок числа отслеживаемых ключей. Запускает фоновую чистку.
func NewStore(window time.Duration, burst, maxEntries int) *Store {
	s := &Store{
		entries:    make(map[string]*entry),
		limit:      rate.Every(window),
		burst:      burst,
		ttl:        window,
		maxEntries: maxEntries,
	}

	go s.janitor()

	return s
}

func (s *Store) janitor() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for range ticker.C {
		s.evictStale(time.Now())
	}
}

func (s *Store) evictStale(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, key)
		}
	}
}

// Allow сообщает, пропускать ли попытку по ключу.
func (s *Store) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	e, ok := s.entries[key]
	if !ok {
		// Потолок: сначала чистим протухшие, если не помогло —
		// выкидываем самую старую запись.
		if len(s.entries) >= s.maxEntries {
			s.evictStaleLocked(now)
		}
		if len(s.entries) >= s.maxEntries {
			s.evictOldestLocked()
		}

		e = &entry{lim: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = e
	}

	e.lastSeen = now
	return e.lim.Allow()
}

func (s *Store) evictStaleLocked(now time.Time) {
	for key, e := range s.entries {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, key)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time

	for key, e := range s.entries {
		if oldestKey == "" || e.lastSeen.Before(oldest) {
			oldestKey = key
			oldest = e.lastSeen
		}
	}
	if oldestKey != "" {
		delete(s.entries, oldestKey)
	}
}

// Len — текущее число ключей в сторе.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Key собирает ключ лимита из идентификатора и действия.
func Key(identifier, action string) string {
	return action + "_" + identifier
}

// Middleware режет запросы по IP для заданного действия.
// IP берём из RemoteAddr — выше по цепочке стоит chi middleware.RealIP.
func Middleware(store *Store, action string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !store.Allow(Key(ip, action)) {
				log.Warn("превышен лимит запросов",
					slog.String("action", action), slog.String("ip", ip))
				http.Error(w, "Слишком много запросов, попробуйте позже", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
