package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
)

type entry struct {
	raw       string
	addr      *domain.Address
	expiresAt time.Time
}

// LRUCacheTTL — горячий слой геокэша: LRU с ограничением размера и TTL.
// Уменьшает походы в БД за уже разрешёнными адресами в пределах процесса;
// источником истины остаётся постоянное хранилище.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

func (c *LRUCacheTTL) Get(_ context.Context, rawAddress string) (*domain.Address, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[rawAddress]
	if !ok {
		metrics.GeocodeCacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.GeocodeCacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.GeocodeCacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()
	return cloneAddress(ent.addr), true
}

func (c *LRUCacheTTL) Set(_ context.Context, addr *domain.Address) error {
	if addr == nil || addr.RawAddress == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[addr.RawAddress]; ok {
		ent := elem.Value.(*entry)
		ent.addr = cloneAddress(addr)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		raw:       addr.RawAddress,
		addr:      cloneAddress(addr),
		expiresAt: c.expiryFrom(now),
	})
	c.index[addr.RawAddress] = elem
	metrics.GeocodeCacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}
