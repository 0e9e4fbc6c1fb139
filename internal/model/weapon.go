package model

import (
	"fmt"
	"strings"
)

// WeaponType identifies the weapon class used by the size penalty table.
type WeaponType uint8

const (
	WeaponDagger WeaponType = iota
	WeaponSword1H
	WeaponSword2H
	WeaponSpear1H
	WeaponSpear2H
	WeaponAxe1H
	WeaponAxe2H
	WeaponMace
	WeaponRod
	WeaponBow
	WeaponKatar
	WeaponBook
	WeaponKnuckle
	WeaponInstrument
	WeaponWhip
	WeaponGun
	WeaponShuriken
	WeaponTypeCount
)

// weaponTypeNames holds the english id and the in-game Korean label per type.
var weaponTypeNames = [WeaponTypeCount][2]string{
	WeaponDagger:     {"dagger", "단검"},
	WeaponSword1H:    {"sword_1h", "한손검"},
	WeaponSword2H:    {"sword_2h", "양손검"},
	WeaponSpear1H:    {"spear_1h", "한손창"},
	WeaponSpear2H:    {"spear_2h", "양손창"},
	WeaponAxe1H:      {"axe_1h", "한손도끼"},
	WeaponAxe2H:      {"axe_2h", "양손도끼"},
	WeaponMace:       {"mace", "둔기"},
	WeaponRod:        {"rod", "지팡이"},
	WeaponBow:        {"bow", "활"},
	WeaponKatar:      {"katar", "카타르"},
	WeaponBook:       {"book", "책"},
	WeaponKnuckle:    {"knuckle", "너클"},
	WeaponInstrument: {"instrument", "악기"},
	WeaponWhip:       {"whip", "채찍"},
	WeaponGun:        {"gun", "총"},
	WeaponShuriken:   {"shuriken", "수리검"},
}

// String returns the english weapon type id.
func (w WeaponType) String() string {
	if w >= WeaponTypeCount {
		return fmt.Sprintf("UNKNOWN(%d)", uint8(w))
	}
	return weaponTypeNames[w][0]
}

// Label returns the Korean weapon type label.
func (w WeaponType) Label() string {
	if w >= WeaponTypeCount {
		return ""
	}
	return weaponTypeNames[w][1]
}

// IsRanged reports whether the weapon scales with DEX instead of STR.
func (w WeaponType) IsRanged() bool {
	switch w {
	case WeaponBow, WeaponGun, WeaponInstrument, WeaponWhip:
		return true
	default:
		return false
	}
}

// ParseWeaponType accepts both the english id and the Korean label.
func ParseWeaponType(s string) (WeaponType, error) {
	s = strings.TrimSpace(s)
	for i, names := range weaponTypeNames {
		if strings.EqualFold(s, names[0]) || s == names[1] {
			return WeaponType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weapon type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *WeaponType) UnmarshalText(text []byte) error {
	parsed, err := ParseWeaponType(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (w WeaponType) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// WeaponProfile describes the equipped weapon for the attack model.
type WeaponProfile struct {
	Atk    int        `yaml:"atk"`
	Level  int        `yaml:"level"` // 1..4
	Refine int        `yaml:"refine"`
	Grade  Grade      `yaml:"grade"`
	Type   WeaponType `yaml:"type"`
}
