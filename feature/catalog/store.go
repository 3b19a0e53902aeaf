package catalog

import (
	"context"
	"sync"
	"time"

	"mhr-catalog/feature/catalog/models"
	"mhr-catalog/feature/catalog/source"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Index is a loaded catalog set with id lookups.
type Index struct {
	Catalogs *models.Catalogs
	// Loaded is when the catalogs were read from the source.
	Loaded time.Time

	skills      map[string]int
	decorations map[string]int
	armors      map[string]int
}

// NewIndex indexes c by id. Later entries win on duplicate ids.
func NewIndex(c *models.Catalogs) *Index {
	idx := &Index{
		Catalogs:    c,
		Loaded:      time.Now(),
		skills:      make(map[string]int, len(c.Skills)),
		decorations: make(map[string]int, len(c.Decorations)),
		armors:      make(map[string]int, len(c.Armors)),
	}
	for i, s := range c.Skills {
		idx.skills[s.ID] = i
	}
	for i, d := range c.Decorations {
		idx.decorations[d.ID] = i
	}
	for i, a := range c.Armors {
		idx.armors[a.ID] = i
	}
	return idx
}

// Skill returns the skill with the given id.
func (idx *Index) Skill(id string) (models.Skill, bool) {
	i, ok := idx.skills[id]
	if !ok {
		return models.Skill{}, false
	}
	return idx.Catalogs.Skills[i], true
}

// Decoration returns the decoration with the given id.
func (idx *Index) Decoration(id string) (models.Decoration, bool) {
	i, ok := idx.decorations[id]
	if !ok {
		return models.Decoration{}, false
	}
	return idx.Catalogs.Decorations[i], true
}

// Armor returns the armor piece with the given id.
func (idx *Index) Armor(id string) (models.Armor, bool) {
	i, ok := idx.armors[id]
	if !ok {
		return models.Armor{}, false
	}
	return idx.Catalogs.Armors[i], true
}

// Store serves catalogs read from a source, reloading them once the TTL elapsed.
// Concurrent reloads are collapsed into one read.
type Store struct {
	source source.Source
	ttl    time.Duration
	logger *zap.Logger

	mu      sync.RWMutex
	current *Index
	sf      singleflight.Group
}

// NewStore creates a store over src. A zero ttl reloads on every call.
func NewStore(src source.Source, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{source: src, ttl: ttl, logger: logger}
}

// Source returns the source catalogs are read from.
func (s *Store) Source() source.Source {
	return s.source
}

func (s *Store) fresh() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil && s.ttl > 0 && time.Since(s.current.Loaded) <= s.ttl {
		return s.current
	}
	return nil
}

// Get returns the cached index, loading it when missing or expired.
func (s *Store) Get(ctx context.Context) (*Index, error) {
	if idx := s.fresh(); idx != nil {
		return idx, nil
	}

	result, err, _ := s.sf.Do("catalogs", func() (interface{}, error) {
		if idx := s.fresh(); idx != nil {
			return idx, nil
		}

		c, err := source.Load(ctx, s.source)
		if err != nil {
			return nil, err
		}
		idx := NewIndex(c)

		s.mu.Lock()
		s.current = idx
		s.mu.Unlock()

		s.logger.Info("Catalogs loaded",
			zap.String("source", s.source.Location()),
			zap.Int("skills", len(c.Skills)),
			zap.Int("decorations", len(c.Decorations)),
			zap.Int("armors", len(c.Armors)),
		)
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Index), nil
}

// Invalidate drops the cached index so the next Get reloads.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
