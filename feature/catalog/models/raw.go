package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// rejectedMarker flags localized content withdrawn by the game data authors.
const rejectedMarker = "#Rejected#"

// noneLiteral is how the dump encodes an absent tagged id.
const noneLiteral = `"None"`

// TextEntry is a localized text record.
type TextEntry struct {
	// Name is the internal key, e.g. "PlayerSkill_12_Name".
	Name string `json:"name"`
	// Content holds one string per content index (see Languages).
	Content []string `json:"content"`
}

// Valid reports whether the entry carries usable content: index 0 must be present,
// non-empty and not marked rejected.
func (e TextEntry) Valid() bool {
	if len(e.Content) == 0 {
		return false
	}
	first := e.Content[LangIndexJapanese]
	return first != "" && !strings.Contains(first, rejectedMarker)
}

// English returns the English content, or "" when missing.
func (e TextEntry) English() string {
	if len(e.Content) <= LangIndexEnglish {
		return ""
	}
	return e.Content[LangIndexEnglish]
}

// TaggedID is a numeric id tagged with the tier it belongs to.
// The zero value (Valid == false) represents the dump's "None" literal.
type TaggedID struct {
	Tier  Tier
	Value int
	Valid bool
}

// unmarshalTagged decodes either "None" or a single-key object whose key names the tier.
func unmarshalTagged(data []byte, baseKey, extKey string) (TaggedID, error) {
	data = bytes.TrimSpace(data)
	if string(data) == noneLiteral || string(data) == "null" {
		return TaggedID{}, nil
	}

	var obj map[string]int
	if err := json.Unmarshal(data, &obj); err != nil {
		return TaggedID{}, fmt.Errorf("invalid tagged id %s: %w", string(data), err)
	}

	if v, ok := obj[baseKey]; ok {
		return TaggedID{Tier: TierBase, Value: v, Valid: true}, nil
	}
	if v, ok := obj[extKey]; ok {
		return TaggedID{Tier: TierExtension, Value: v, Valid: true}, nil
	}
	return TaggedID{}, nil
}

// SemanticID returns the tier-local value of the id.
func (t TaggedID) SemanticID() int {
	return t.Tier.SemanticID(t.Value)
}

// DecorationID is the tagged id of a decoration param ("Deco" or "MrDeco").
type DecorationID struct{ TaggedID }

// UnmarshalJSON implements json.Unmarshaler.
func (d *DecorationID) UnmarshalJSON(data []byte) error {
	id, err := unmarshalTagged(data, "Deco", "MrDeco")
	if err != nil {
		return err
	}
	d.TaggedID = id
	return nil
}

// SkillRef is the tagged id of a skill reference ("Skill" or "MrSkill").
type SkillRef struct{ TaggedID }

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillRef) UnmarshalJSON(data []byte) error {
	id, err := unmarshalTagged(data, "Skill", "MrSkill")
	if err != nil {
		return err
	}
	s.TaggedID = id
	return nil
}

// DecorationParam is a raw decoration record.
type DecorationParam struct {
	ID             DecorationID `json:"id"`
	SortID         int          `json:"sort_id"`
	Rare           int          `json:"rare"`
	DecorationLv   int          `json:"decoration_lv"`
	SkillIDList    []SkillRef   `json:"skill_id_list"`
	SkillLevelList []int        `json:"skill_lv_list"`
}

// SkillParam is a raw skill record.
type SkillParam struct {
	ID        SkillRef `json:"id"`
	MaxLevel  int      `json:"max_level"`
	IconColor int      `json:"icon_color"`
}

// ArmorPartID holds the body-part id variants of an armor record; exactly one is set.
type ArmorPartID struct {
	Head  *int `json:"Head,omitempty"`
	Chest *int `json:"Chest,omitempty"`
	Arm   *int `json:"Arm,omitempty"`
	Waist *int `json:"Waist,omitempty"`
	Leg   *int `json:"Leg,omitempty"`
}

// Resolve returns the raw part and the numeric id of the populated variant.
func (a ArmorPartID) Resolve() (RawPart, int, bool) {
	switch {
	case a.Head != nil:
		return RawPartHead, *a.Head, true
	case a.Chest != nil:
		return RawPartChest, *a.Chest, true
	case a.Arm != nil:
		return RawPartArm, *a.Arm, true
	case a.Waist != nil:
		return RawPartWaist, *a.Waist, true
	case a.Leg != nil:
		return RawPartLeg, *a.Leg, true
	default:
		return "", 0, false
	}
}

// ArmorParam is a raw armor record.
type ArmorParam struct {
	ID                 ArmorPartID `json:"pl_armor_id"`
	IsValid            bool        `json:"is_valid"`
	Series             int         `json:"series"`
	SortID             int         `json:"sort_id"`
	Rare               int         `json:"rare"`
	SexualEquipable    string      `json:"sexual_equipable"`
	DefVal             int         `json:"def_val"`
	FireRegVal         int         `json:"fire_reg_val"`
	WaterRegVal        int         `json:"water_reg_val"`
	IceRegVal          int         `json:"ice_reg_val"`
	ThunderRegVal      int         `json:"thunder_reg_val"`
	DragonRegVal       int         `json:"dragon_reg_val"`
	DecorationsNumList []int       `json:"decorations_num_list"`
	SkillList          []SkillRef  `json:"skill_list"`
	SkillLevelList     []int       `json:"skill_lv_list"`
}

// TieredEntries holds one text list per tier.
type TieredEntries struct {
	Base      []TextEntry
	Extension []TextEntry
}

// ForTier returns the list of the given tier.
func (t TieredEntries) ForTier(tier Tier) []TextEntry {
	if tier == TierExtension {
		return t.Extension
	}
	return t.Base
}

// Dump is the parsed extraction dump restricted to the sections the pipeline reads.
type Dump struct {
	Decorations     []DecorationParam
	DecorationNames TieredEntries

	Skills            []SkillParam
	SkillNames        TieredEntries
	SkillDetails      TieredEntries
	SkillExplanations TieredEntries

	Armors     []ArmorParam
	ArmorNames map[RawPart]TieredEntries
}
