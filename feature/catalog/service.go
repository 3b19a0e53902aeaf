package catalog

import (
	"context"
	"errors"
	"fmt"

	"mhr-catalog/core/reconcile"
	"mhr-catalog/feature/catalog/models"
	catalogreconcile "mhr-catalog/feature/catalog/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrInvalidFilter is returned for unknown part or sex filter values.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrDiffDisabled is returned when no published location is configured.
	ErrDiffDisabled = errors.New("catalog diff is not configured")
	// ErrUnknownKind is returned for an unknown catalog kind.
	ErrUnknownKind = errors.New("unknown catalog kind")
)

// ArmorFilter restricts armor listings. Zero fields match everything.
type ArmorFilter struct {
	Part models.Part
	// Sex keeps pieces equippable by that sex: a male or female filter also keeps
	// pieces of sex type all.
	Sex models.SexType
}

// ParseArmorFilter validates raw query values.
func ParseArmorFilter(part, sex string) (ArmorFilter, error) {
	f := ArmorFilter{Part: models.Part(part), Sex: models.SexType(sex)}
	if part != "" && !f.Part.Valid() {
		return ArmorFilter{}, fmt.Errorf("%w: part %q", ErrInvalidFilter, part)
	}
	if sex != "" && (!f.Sex.Valid() || f.Sex == models.SexUnknown) {
		return ArmorFilter{}, fmt.Errorf("%w: sex %q", ErrInvalidFilter, sex)
	}
	return f, nil
}

// Match reports whether a passes the filter.
func (f ArmorFilter) Match(a models.Armor) bool {
	if f.Part != "" && a.Part != f.Part {
		return false
	}
	switch f.Sex {
	case models.SexUnknown:
		return true
	case models.SexAll:
		return a.SexType == models.SexAll
	default:
		return a.SexType == f.Sex || a.SexType == models.SexAll
	}
}

// Service answers catalog lookups from the store.
type Service struct {
	store  *Store
	diff   map[string]*reconcile.Spec
	logger *zap.Logger
}

// NewService creates a catalog service. diff may be empty, which disables Diff.
func NewService(store *Store, diff []*reconcile.Spec, logger *zap.Logger) *Service {
	specs := make(map[string]*reconcile.Spec, len(diff))
	for _, spec := range diff {
		specs[spec.Adapter.Name()] = spec
	}
	return &Service{store: store, diff: specs, logger: logger}
}

// ListSkills returns the skill catalog.
func (s *Service) ListSkills(ctx context.Context) ([]models.Skill, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Catalogs.Skills, nil
}

// GetSkill returns one skill.
func (s *Service) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return models.Skill{}, err
	}
	skill, ok := idx.Skill(id)
	if !ok {
		return models.Skill{}, fmt.Errorf("%w: skill %s", ErrNotFound, id)
	}
	return skill, nil
}

// ListDecorations returns the decoration catalog, optionally restricted to the
// decorations of one skill.
func (s *Service) ListDecorations(ctx context.Context, skillID string) ([]models.Decoration, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if skillID == "" {
		return idx.Catalogs.Decorations, nil
	}

	out := []models.Decoration{}
	for _, d := range idx.Catalogs.Decorations {
		if d.SkillID == skillID {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetDecoration returns one decoration.
func (s *Service) GetDecoration(ctx context.Context, id string) (models.Decoration, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return models.Decoration{}, err
	}
	deco, ok := idx.Decoration(id)
	if !ok {
		return models.Decoration{}, fmt.Errorf("%w: decoration %s", ErrNotFound, id)
	}
	return deco, nil
}

// ListArmors returns the armor pieces matching filter.
func (s *Service) ListArmors(ctx context.Context, filter ArmorFilter) ([]models.Armor, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.Armor{}
	for _, a := range idx.Catalogs.Armors {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetArmor returns one armor piece.
func (s *Service) GetArmor(ctx context.Context, id string) (models.Armor, error) {
	idx, err := s.store.Get(ctx)
	if err != nil {
		return models.Armor{}, err
	}
	a, ok := idx.Armor(id)
	if !ok {
		return models.Armor{}, fmt.Errorf("%w: armor %s", ErrNotFound, id)
	}
	return a, nil
}

// Lookup returns the entry with the given id from the catalog of kind.
func (s *Service) Lookup(ctx context.Context, kind, id string) (any, error) {
	switch kind {
	case catalogreconcile.KindSkills:
		return s.GetSkill(ctx, id)
	case catalogreconcile.KindDecorations:
		return s.GetDecoration(ctx, id)
	case catalogreconcile.KindArmors:
		return s.GetArmor(ctx, id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Diff compares the built and published versions of one catalog kind.
func (s *Service) Diff(ctx context.Context, kind string, onlyChanges bool) (*reconcile.ReconcilePlan, error) {
	if len(s.diff) == 0 {
		return nil, ErrDiffDisabled
	}
	spec, ok := s.diff[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return reconcile.ReconcileWithPlan(ctx, spec, onlyChanges)
}

// Reload drops every cached catalog and diff index and loads the catalogs again.
func (s *Service) Reload(ctx context.Context) (*Index, error) {
	s.store.Invalidate()
	for _, spec := range s.diff {
		reconcile.InvalidateCache(spec)
	}
	return s.store.Get(ctx)
}
