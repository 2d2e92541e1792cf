package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_AllowThenDeny(t *testing.T) {
	store := NewStore(5*time.Minute, 1, 100)

	key := Key("192.0.2.1", "review_submission")

	assert.True(t, store.Allow(key), "первая попытка проходит")
	assert.False(t, store.Allow(key), "вторая попытка в окне режется")

	// Другой ключ лимитируется независимо.
	assert.True(t, store.Allow(Key("192.0.2.2", "review_submission")))
}

func TestStore_BurstAllowsSeveral(t *testing.T) {
	store := NewStore(time.Minute, 3, 100)

	key := Key("192.0.2.1", "consent")
	for i := 0; i < 3; i++ {
		assert.True(t, store.Allow(key), "попытка %d в пределах burst", i+1)
	}
	assert.False(t, store.Allow(key))
}

func TestStore_BoundedSize(t *testing.T) {
	store := NewStore(time.Hour, 1, 10)

	for i := 0; i < 50; i++ {
		store.Allow(Key(fmt.Sprintf("10.0.0.%d", i), "review_submission"))
	}

	assert.LessOrEqual(t, store.Len(), 10, "стор не растёт выше потолка")
}

func TestStore_EvictStale(t *testing.T) {
	store := NewStore(50*time.Millisecond, 1, 100)

	store.Allow(Key("192.0.2.1", "x"))
	assert.Equal(t, 1, store.Len())

	store.evictStale(time.Now().Add(time.Second))
	assert.Equal(t, 0, store.Len())
}
