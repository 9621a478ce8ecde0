package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.GeocodeCacheOps.WithLabelValues("evicted").Inc()
		metrics.GeocodeCacheSize.Set(float64(c.ll.Len()))
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.raw)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry)
		if !ok {
			c.removeElement(back)
			metrics.GeocodeCacheSize.Set(float64(c.ll.Len()))
			continue
		}
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.GeocodeCacheOps.WithLabelValues("expired").Inc()
			metrics.GeocodeCacheSize.Set(float64(c.ll.Len()))
			continue
		}
		return
	}
}

// cloneAddress — возвращает копию записи, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneAddress(addr *domain.Address) *domain.Address {
	if addr == nil {
		return nil
	}
	cloned := *addr
	if addr.Latitude != nil {
		lat := *addr.Latitude
		cloned.Latitude = &lat
	}
	if addr.Longitude != nil {
		lon := *addr.Longitude
		cloned.Longitude = &lon
	}
	return &cloned
}
