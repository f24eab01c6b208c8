package cache

import (
	"context"
	"sync"

	"github.com/jhoicas/bilemo-api/internal/application/ports"
)

var _ ports.TagAwareCache = (*TagCache)(nil)

type entry struct {
	value any
	tags  []string
}

// TagCache caché en memoria con índice inverso etiqueta -> claves. Segura para uso concurrente.
// compute se ejecuta fuera del lock, por lo que dos misses simultáneas de la misma clave pueden
// calcularla dos veces; la última escritura gana.
type TagCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	byTag   map[string]map[string]struct{}
}

// NewTagCache construye una caché vacía.
func NewTagCache() *TagCache {
	return &TagCache{
		entries: make(map[string]entry),
		byTag:   make(map[string]map[string]struct{}),
	}
}

// GetOrCompute implementa ports.TagAwareCache.
func (c *TagCache) GetOrCompute(ctx context.Context, key string, tags []string, compute ports.ComputeFunc) (any, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}
	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	c.set(key, tags, v)
	return v, nil
}

// Set implementa ports.TagAwareCache.
func (c *TagCache) Set(_ context.Context, key string, tags []string, value any) error {
	c.set(key, tags, value)
	return nil
}

// Invalidate implementa ports.TagAwareCache.
func (c *TagCache) Invalidate(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range tags {
		for key := range c.byTag[tag] {
			c.removeLocked(key)
		}
		delete(c.byTag, tag)
	}
	return nil
}

// Len número de entradas guardadas.
func (c *TagCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Has indica si key está en caché, sin afectar métricas ni valores.
func (c *TagCache) Has(key string) bool {
	_, ok := c.get(key)
	return ok
}

func (c *TagCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e.value, ok
}

func (c *TagCache) set(key string, tags []string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
	c.entries[key] = entry{value: value, tags: append([]string(nil), tags...)}
	for _, tag := range tags {
		keys, ok := c.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// removeLocked borra key y sus referencias en el índice. Requiere c.mu tomado en escritura.
func (c *TagCache) removeLocked(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	for _, tag := range e.tags {
		if keys, ok := c.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byTag, tag)
			}
		}
	}
}
