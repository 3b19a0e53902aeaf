package models

// SlotCount is the number of decoration slots on every armor piece.
const SlotCount = 3

// SexType restricts which hunter body type can equip an armor piece.
type SexType string

const (
	SexUnknown SexType = ""
	SexMale    SexType = "male"
	SexFemale  SexType = "female"
	SexAll     SexType = "all"
)

// Valid reports whether s is one of the known sex types.
func (s SexType) Valid() bool {
	switch s {
	case SexUnknown, SexMale, SexFemale, SexAll:
		return true
	}
	return false
}

// Skill is a final skill catalog entry.
type Skill struct {
	ID       string            `json:"id"`
	MaxLevel int               `json:"maxLevel"`
	Names    map[string]string `json:"names"`
	Texts    map[string]string `json:"texts"`
}

// Decoration is a final decoration catalog entry.
type Decoration struct {
	ID         string            `json:"id"`
	Names      map[string]string `json:"names"`
	SkillID    string            `json:"skillId"`
	SkillLevel int               `json:"skillLevel"`
	SlotSize   int               `json:"slotSize"`
}

// ArmorStat holds the defensive values of an armor piece.
type ArmorStat struct {
	Defense   int `json:"defense"`
	FireRes   int `json:"fireRes"`
	WaterRes  int `json:"waterRes"`
	IceRes    int `json:"iceRes"`
	ElecRes   int `json:"elecRes"`
	DragonRes int `json:"dragonRes"`
}

// ArmorSkill is the level granted by an armor piece for one skill.
type ArmorSkill struct {
	Level int `json:"level"`
}

// Slots holds slot sizes sorted descending; 0 means no slot.
type Slots [SlotCount]int

// Armor is a final armor catalog entry.
type Armor struct {
	ID      string                `json:"id"`
	Part    Part                  `json:"part"`
	SexType SexType               `json:"sexType"`
	Names   map[string]string     `json:"names"`
	Rarity  int                   `json:"rarity"`
	Stat    ArmorStat             `json:"stat"`
	Skills  map[string]ArmorSkill `json:"skills"`
	Slots   Slots                 `json:"slots"`
}

// Catalogs groups the three pipeline outputs.
type Catalogs struct {
	Armors      []Armor      `json:"armors"`
	Skills      []Skill      `json:"skills"`
	Decorations []Decoration `json:"decorations"`
}
