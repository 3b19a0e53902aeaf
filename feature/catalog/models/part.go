package models

import "strings"

// RawPart is the body part naming used by the dump.
type RawPart string

const (
	RawPartHead  RawPart = "head"
	RawPartChest RawPart = "chest"
	RawPartArm   RawPart = "arm"
	RawPartWaist RawPart = "waist"
	RawPartLeg   RawPart = "leg"
)

// RawParts lists the dump body parts in output order.
var RawParts = [...]RawPart{RawPartHead, RawPartChest, RawPartArm, RawPartWaist, RawPartLeg}

// Part is the body part naming used by the catalogs.
type Part string

const (
	PartHelm  Part = "helm"
	PartTorso Part = "torso"
	PartArm   Part = "arm"
	PartWaist Part = "waist"
	PartFeet  Part = "feet"
)

var partRenames = map[RawPart]Part{
	RawPartHead:  PartHelm,
	RawPartChest: PartTorso,
	RawPartArm:   PartArm,
	RawPartWaist: PartWaist,
	RawPartLeg:   PartFeet,
}

// Output returns the catalog part name of a raw part.
func (p RawPart) Output() Part {
	return partRenames[p]
}

// PartByName parses a raw part name case-insensitively ("Head", "leg", ...).
func PartByName(name string) (RawPart, bool) {
	p := RawPart(strings.ToLower(name))
	_, ok := partRenames[p]
	return p, ok
}

// Valid reports whether p is one of the catalog parts.
func (p Part) Valid() bool {
	switch p {
	case PartHelm, PartTorso, PartArm, PartWaist, PartFeet:
		return true
	}
	return false
}
