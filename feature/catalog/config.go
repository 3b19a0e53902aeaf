package catalog

import (
	"fmt"
	"time"
)

// Source kinds the HTTP server can read catalogs from.
const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// Config holds the pipeline and catalog serving settings.
type Config struct {
	// Input is the local path of the raw extraction dump.
	Input string `mapstructure:"input" default:"original_data/mhrice.json"`
	// DumpObject is the object key of the dump when building from the bucket.
	DumpObject string `mapstructure:"dump_object" default:"dumps/mhrice.json"`
	// OutputDir receives armor.json, skill.json and deco.json.
	OutputDir string `mapstructure:"output_dir" default:"data"`
	// CatalogPrefix is the bucket prefix catalogs are published under.
	CatalogPrefix string `mapstructure:"catalog_prefix" default:"catalog"`
	// Source selects where the server reads catalogs from: local or bucket.
	Source string `mapstructure:"source" default:"local"`
	// CacheTTLSeconds is how long loaded catalogs are served before reloading.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// Sections holds the dump paths of every section the pipeline reads.
	Sections Sections `mapstructure:"sections"`
}

// CacheTTL returns the catalog cache lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Validate checks the settings that have a fixed set of values.
func (c Config) Validate() error {
	switch c.Source {
	case SourceLocal, SourceBucket:
	default:
		return fmt.Errorf("invalid catalog source %q (want %s or %s)", c.Source, SourceLocal, SourceBucket)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative")
	}
	return nil
}

// Sections holds the gjson paths of the dump sections. Armor name paths contain a
// %s placeholder for the body part.
type Sections struct {
	Decorations                string `mapstructure:"decorations" default:"decorations.param"`
	DecorationNames            string `mapstructure:"decoration_names" default:"decorations_name_msg.entries"`
	DecorationNamesExtension   string `mapstructure:"decoration_names_mr" default:"decorations_name_msg_mr.entries"`
	Skills                     string `mapstructure:"skills" default:"equip_skill.param"`
	SkillNames                 string `mapstructure:"skill_names" default:"player_skill_name_msg.entries"`
	SkillNamesExtension        string `mapstructure:"skill_names_mr" default:"player_skill_name_msg_mr.entries"`
	SkillDetails               string `mapstructure:"skill_details" default:"player_skill_detail_msg.entries"`
	SkillDetailsExtension      string `mapstructure:"skill_details_mr" default:"player_skill_detail_msg_mr.entries"`
	SkillExplanations          string `mapstructure:"skill_explains" default:"player_skill_explain_msg.entries"`
	SkillExplanationsExtension string `mapstructure:"skill_explains_mr" default:"player_skill_explain_msg_mr.entries"`
	Armors                     string `mapstructure:"armors" default:"armor.param"`
	ArmorNames                 string `mapstructure:"armor_names" default:"armor_%s_name_msg.entries"`
	ArmorNamesExtension        string `mapstructure:"armor_names_mr" default:"armor_%s_name_msg_mr.entries"`
}

// DefaultSections returns the section paths of the standard dump layout.
func DefaultSections() Sections {
	return Sections{
		Decorations:                "decorations.param",
		DecorationNames:            "decorations_name_msg.entries",
		DecorationNamesExtension:   "decorations_name_msg_mr.entries",
		Skills:                     "equip_skill.param",
		SkillNames:                 "player_skill_name_msg.entries",
		SkillNamesExtension:        "player_skill_name_msg_mr.entries",
		SkillDetails:               "player_skill_detail_msg.entries",
		SkillDetailsExtension:      "player_skill_detail_msg_mr.entries",
		SkillExplanations:          "player_skill_explain_msg.entries",
		SkillExplanationsExtension: "player_skill_explain_msg_mr.entries",
		Armors:                     "armor.param",
		ArmorNames:                 "armor_%s_name_msg.entries",
		ArmorNamesExtension:        "armor_%s_name_msg_mr.entries",
	}
}
