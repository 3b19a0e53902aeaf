package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeID(t *testing.T) {
	cases := map[string]string{
		"Attack Boost":          "attack_boost",
		"Wirebug Whisperer":     "wirebug_whisperer",
		"Chaotic Armor":         "chaotic_armor",
		"Kushala Daora Helm S":  "kushala_daora_helm_s",
		"Grinder (S)":           "grinder_s",
		"Stormsoul":             "stormsoul",
		"Spread/Power Shots":    "spreadpower_shots",
		"Bow Charge Plus":       "bow_charge_plus",
		"Ａｔｔａｃｋ　Ｂｏｏｓｔ": "attack_boost",
		"Defense - Boost":       "defense_boost",
		"Silverwing\tMail":      "silverwing_mail",
		"Mail of Hellfire X 2":  "mail_of_hellfire_x_2",
		"under_score":           "under_score",
		"Bombardier Jewel 4":    "bombardier_jewel_4",
	}

	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, MakeID(input))
		})
	}
}

func TestMakeIDIdempotent(t *testing.T) {
	names := []string{
		"Attack Boost",
		"Chaotic Gore Magala Helm β",
		"Ａｔｔａｃｋ　Ｂｏｏｓｔ",
		"Grinder (S)",
		"Spread/Power Shots",
		"  Leading and trailing  ",
		"Mixed-Case--Hyphens",
	}

	for _, name := range names {
		once := MakeID(name)
		assert.Equal(t, once, MakeID(once), "slug of %q should be stable", name)
	}
}

func TestMakeIDDropsNonASCIILetters(t *testing.T) {
	assert.Equal(t, "", MakeID("攻撃"))
	assert.Equal(t, "helm_", MakeID("Helm β"))
}
