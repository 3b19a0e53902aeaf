package armor

import (
	"errors"
	"fmt"

	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

// ErrDuplicateArmor is returned when two candidates share an id and none of the
// resolution rules applies.
var ErrDuplicateArmor = errors.New("duplicate armor id")

// StormsoulSkill is the skill whose presence decides same-sex conflicts.
const StormsoulSkill = "stormsoul"

// Resolver accumulates candidates in arrival order and keeps armor ids unique.
type Resolver struct {
	logger *zap.Logger

	// entries is append-ordered; replaced entries become nil and are dropped by Results.
	entries []*models.Armor
	index   map[string]int
	// split holds ids whose entries were renamed with a sex suffix.
	split map[string]struct{}
}

// NewResolver creates an empty resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		logger: logger,
		index:  make(map[string]int),
		split:  make(map[string]struct{}),
	}
}

// comparison holds the equality checks between a previous entry and a candidate.
type comparison struct {
	sameBaseStats bool
	sameSkills    bool
	sameNames     bool
}

func compare(prev, cur *models.Armor) comparison {
	return comparison{
		sameBaseStats: prev.Part == cur.Part &&
			prev.Rarity == cur.Rarity &&
			prev.Slots == cur.Slots &&
			prev.Stat == cur.Stat,
		sameSkills: sameSkills(prev.Skills, cur.Skills),
		sameNames:  sameNames(prev.Names, cur.Names),
	}
}

func sameSkills(a, b map[string]models.ArmorSkill) bool {
	if len(a) != len(b) {
		return false
	}
	for id, skill := range a {
		other, ok := b[id]
		if !ok || other.Level != skill.Level {
			return false
		}
	}
	return true
}

func sameNames(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for lang, name := range a {
		if other, ok := b[lang]; !ok || other != name {
			return false
		}
	}
	return true
}

func hasStormsoul(a *models.Armor) bool {
	_, ok := a.Skills[StormsoulSkill]
	return ok
}

// Add resolves candidate against the entries seen so far.
func (r *Resolver) Add(candidate models.Armor) error {
	cur := &candidate
	id := cur.ID

	if _, ok := r.split[id]; ok {
		if err := r.redirectToVariant(cur); err != nil {
			return err
		}
		id = cur.ID
	}

	i, seen := r.index[id]
	if !seen {
		r.push(cur)
		return nil
	}
	prev := r.entries[i]
	cmp := compare(prev, cur)

	if prev.SexType == cur.SexType {
		return r.resolveSameSex(i, prev, cur, cmp)
	}

	if cmp.sameBaseStats && cmp.sameSkills {
		r.logger.Debug("Merging sex variants", zap.String("id", id))
		prev.SexType = models.SexAll
		return nil
	}

	return r.splitBySex(i, prev, cur)
}

func (r *Resolver) resolveSameSex(i int, prev, cur *models.Armor, cmp comparison) error {
	if cmp.sameBaseStats && cmp.sameSkills {
		if !cmp.sameNames {
			r.logger.Warn("Armor id shared by records with different names", zap.String("id", cur.ID))
		}
		return nil
	}

	prevStorm, curStorm := hasStormsoul(prev), hasStormsoul(cur)
	switch {
	case !prevStorm && curStorm:
		r.logger.Debug("Replacing armor with stormsoul variant", zap.String("id", cur.ID))
		r.entries[i] = nil
		r.push(cur)
		return nil
	case prevStorm && !curStorm:
		r.logger.Debug("Keeping stormsoul variant", zap.String("id", cur.ID))
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrDuplicateArmor, cur.ID)
	}
}

// splitBySex renames prev and cur with their sex suffix and disambiguates the names
// they share.
func (r *Resolver) splitBySex(i int, prev, cur *models.Armor) error {
	base := prev.ID
	prevID := variantID(base, prev.SexType)
	curID := variantID(base, cur.SexType)

	for _, id := range []string{prevID, curID} {
		if _, taken := r.index[id]; taken {
			return fmt.Errorf("%w: %s (sex variant id already used)", ErrDuplicateArmor, id)
		}
	}

	r.logger.Debug("Splitting armor by sex",
		zap.String("id", base),
		zap.String("previous", prevID),
		zap.String("current", curID),
	)

	prev.ID = prevID
	cur.ID = curID
	for lang, prevName := range prev.Names {
		if curName, ok := cur.Names[lang]; ok && curName == prevName {
			prev.Names[lang] = variantName(prevName, prev.SexType)
			cur.Names[lang] = variantName(curName, cur.SexType)
		}
	}

	delete(r.index, base)
	r.split[base] = struct{}{}
	r.index[prevID] = i
	r.push(cur)
	return nil
}

// redirectToVariant points a candidate whose id was already split at the variant
// of its own sex, rewriting its names the same way the variant's were.
func (r *Resolver) redirectToVariant(cur *models.Armor) error {
	variant := variantID(cur.ID, cur.SexType)
	i, ok := r.index[variant]
	if !ok {
		return fmt.Errorf("%w: %s (no %q variant to merge into)", ErrDuplicateArmor, cur.ID, cur.SexType)
	}

	prev := r.entries[i]
	for lang, name := range cur.Names {
		if suffixed := variantName(name, cur.SexType); prev.Names[lang] == suffixed {
			cur.Names[lang] = suffixed
		}
	}
	cur.ID = variant
	return nil
}

func (r *Resolver) push(a *models.Armor) {
	r.index[a.ID] = len(r.entries)
	r.entries = append(r.entries, a)
}

// Len returns the number of live entries.
func (r *Resolver) Len() int {
	return len(r.index)
}

// Results returns the resolved entries in output order.
func (r *Resolver) Results() []models.Armor {
	out := make([]models.Armor, 0, len(r.index))
	for _, a := range r.entries {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

func variantID(id string, sex models.SexType) string {
	return id + "_" + string(sex)
}

func variantName(name string, sex models.SexType) string {
	return fmt.Sprintf("%s (%s)", name, sex)
}
