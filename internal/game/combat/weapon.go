package combat

import (
	"github.com/udisondev/rocalc/internal/game/enchant"
	"github.com/udisondev/rocalc/internal/model"
)

// sizePenalty is the weapon type × target size damage table in percent
// (small, medium, large).
var sizePenalty = [model.WeaponTypeCount][model.SizeCount]int{
	model.WeaponDagger:     {100, 75, 50},
	model.WeaponSword1H:    {75, 100, 75},
	model.WeaponSword2H:    {75, 75, 100},
	model.WeaponSpear1H:    {75, 75, 100},
	model.WeaponSpear2H:    {75, 75, 100},
	model.WeaponAxe1H:      {50, 75, 100},
	model.WeaponAxe2H:      {50, 75, 100},
	model.WeaponMace:       {75, 100, 100},
	model.WeaponRod:        {100, 100, 100},
	model.WeaponBow:        {100, 100, 75},
	model.WeaponKatar:      {75, 100, 75},
	model.WeaponBook:       {100, 100, 50},
	model.WeaponKnuckle:    {100, 75, 50},
	model.WeaponInstrument: {75, 100, 75},
	model.WeaponWhip:       {75, 100, 50},
	model.WeaponGun:        {100, 100, 100},
	model.WeaponShuriken:   {100, 100, 100},
}

// SizePenalty returns the size modifier percent for a weapon type against
// a target size. Unknown combinations are not penalized.
func SizePenalty(w model.WeaponType, s model.Size) int {
	if w >= model.WeaponTypeCount || s >= model.SizeCount {
		return 100
	}
	return sizePenalty[w][s]
}

// WeaponRange is the weapon attack after size penalty, before equip ATK.
type WeaponRange struct {
	Min float64
	Max float64

	Variance      float64
	RefineATK     int
	OverRefineATK int
	StatBonus     float64
	Penalty       int // percent
}

// CalcWeaponAttack computes the weapon attack range.
//
// Formula: (atk + refine + overRefine ± variance + statBonus) × sizePenalty
//   - variance = 0.05 × level × atk
//   - statBonus = atk × stat / 200 (DEX for ranged types, STR otherwise)
//
// Weapon level outside 1..4 gives zero refine bonuses.
func CalcWeaponAttack(w model.WeaponProfile, stats model.CharacterStats, size model.Size) WeaponRange {
	atk := float64(w.Atk)

	stat := stats.Str
	if w.Type.IsRanged() {
		stat = stats.Dex
	}

	r := WeaponRange{
		Variance:      float64(w.Level) * atk * 0.05,
		RefineATK:     enchant.RefineATK(w.Level, w.Refine),
		OverRefineATK: enchant.OverRefineATK(w.Level, w.Refine),
		StatBonus:     atk * float64(stat) / 200,
		Penalty:       SizePenalty(w.Type, size),
	}

	base := atk + float64(r.RefineATK) + float64(r.OverRefineATK) + r.StatBonus
	p := float64(r.Penalty) / 100
	r.Min = (base - r.Variance) * p
	r.Max = (base + r.Variance) * p
	return r
}
