package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMemcacheAddr = "localhost:11211"

func newTestCache(t *testing.T) *MemcacheService {
	t.Helper()
	svc := NewMemcacheService(testMemcacheAddr)
	if err := svc.Set("menuscrape-test:probe", []byte("1"), time.Minute); err != nil {
		t.Skipf("Memcache not available at %s: %v", testMemcacheAddr, err)
	}
	t.Cleanup(func() { svc.Delete("menuscrape-test:probe") })
	return svc
}

func TestMemcacheSetGetDelete(t *testing.T) {
	svc := newTestCache(t)
	key := "menuscrape-test:result"

	require.NoError(t, svc.Set(key, []byte(`{"restaurantName":"Joe's Diner"}`), time.Minute))

	val, err := svc.Get(key)
	require.NoError(t, err)
	assert.Contains(t, string(val), "Joe's Diner")

	require.NoError(t, svc.Delete(key))
	_, err = svc.Get(key)
	assert.Equal(t, memcache.ErrCacheMiss, err)
}

func TestMemcacheGetMiss(t *testing.T) {
	svc := newTestCache(t)

	_, err := svc.Get("menuscrape-test:never-set")
	assert.Equal(t, memcache.ErrCacheMiss, err)
}

func TestNewMemcacheServiceSplitsServerList(t *testing.T) {
	// Constructing with a multi-server list must not panic; connectivity
	// is not required for construction
	svc := NewMemcacheService("localhost:11211, localhost:11212")
	assert.NotNil(t, svc)
}
