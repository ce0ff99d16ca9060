// Package entity provides the battling creatures, the creature pool and the trainer.
package entity

import (
	"fmt"
	"strings"
)

// Type is a creature's elemental type.
type Type int

const (
	TypeFire Type = iota
	TypeGrass
	TypeWater
	TypeNormal
	TypeElectric
)

// Types lists every type in declaration order.
var Types = []Type{TypeFire, TypeGrass, TypeWater, TypeNormal, TypeElectric}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeFire:
		return "Fire"
	case TypeGrass:
		return "Grass"
	case TypeWater:
		return "Water"
	case TypeNormal:
		return "Normal"
	case TypeElectric:
		return "Electric"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	return t >= TypeFire && t <= TypeElectric
}

// ParseType converts a type name (case-insensitive) to a Type.
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(t.String(), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown creature type %q", name)
}
