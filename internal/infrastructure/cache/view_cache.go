// Package cache implementa el cache de vistas renderizadas sobre BadgerDB en memoria.
// Las claves empiezan por la ruta, así que invalidar una ruta es un DropPrefix.
//
// Cada ruta invalidada lleva un contador de generación. Quien arma una vista toma la
// generación antes de leer la base y la pasa a Set: si entre medio hubo una invalidación
// la escritura se descarta, y una lectura lenta no puede reponer datos anteriores a la mutación.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-dashboard/internal/application/billing"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/metrics"
)

var _ billing.ViewInvalidator = (*ViewCache)(nil)

// ErrStaleView la vista se armó antes de la última invalidación de su ruta y no se guarda.
var ErrStaleView = errors.New("view cache: vista obsoleta")

// Config opciones del cache.
type Config struct {
	TTL    time.Duration // 0 = sin expiración
	Logger zerolog.Logger
}

// ViewCache cache clave/valor de respuestas por ruta + query string.
type ViewCache struct {
	db  *badger.DB
	ttl time.Duration
	log zerolog.Logger

	mu   sync.Mutex        // serializa Set e Invalidate
	gens map[string]uint64 // generación por ruta invalidada
}

// badgerLogger adapta zerolog a badger.Logger.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(format, args...)
}

// Open abre la base en memoria.
func Open(cfg Config) (*ViewCache, error) {
	log := cfg.Logger.With().Str("component", "view_cache").Logger()
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{log: log})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open view cache: %w", err)
	}
	return &ViewCache{db: db, ttl: cfg.TTL, log: log, gens: make(map[string]uint64)}, nil
}

// Key clave de una vista: ruta más query string cruda ("" si no hay).
func Key(route, rawQuery string) string {
	if rawQuery == "" {
		return route
	}
	return route + "?" + rawQuery
}

// Get devuelve la vista cacheada, si existe y no expiró.
func (c *ViewCache) Get(_ context.Context, key string) ([]byte, bool) {
	var out []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.log.Warn().Err(err).Str("key", key).Msg("lectura de cache fallida")
		}
		metrics.ViewCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.ViewCacheLookups.WithLabelValues("hit").Inc()
	return out, true
}

// Generation generación vigente para key. Cambia cada vez que se invalida una ruta que es
// prefijo de key.
func (c *ViewCache) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generationLocked(key)
}

func (c *ViewCache) generationLocked(key string) uint64 {
	var gen uint64
	for route, n := range c.gens {
		if strings.HasPrefix(key, route) {
			gen += n
		}
	}
	return gen
}

// Set guarda la vista con el TTL configurado, siempre que gen siga siendo la generación de key.
// Si hubo una invalidación desde que se tomó gen devuelve ErrStaleView y no escribe nada.
func (c *ViewCache) Set(_ context.Context, key string, value []byte, gen uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generationLocked(key) != gen {
		return ErrStaleView
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("view cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate descarta todas las vistas cuya clave empieza por routeKey. Los errores solo se
// registran: la invalidación no puede hacer fallar la mutación que la pidió.
func (c *ViewCache) Invalidate(_ context.Context, routeKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[routeKey]++
	if err := c.db.DropPrefix([]byte(routeKey)); err != nil {
		c.log.Error().Err(err).Str("route", routeKey).Msg("invalidación de cache fallida")
		return
	}
	metrics.ViewCacheInvalidations.WithLabelValues(routeKey).Inc()
	c.log.Debug().Str("route", routeKey).Msg("vistas invalidadas")
}

// Close cierra la base.
func (c *ViewCache) Close() error {
	return c.db.Close()
}
