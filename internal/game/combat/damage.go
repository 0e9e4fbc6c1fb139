package combat

import (
	"math"

	"github.com/udisondev/rocalc/internal/model"
	"github.com/udisondev/rocalc/internal/modifier"
)

// defConstant is the defense divisor of the reduction factor.
const defConstant = 4000.0

// critBase is the fixed critical multiplier before critical damage bonuses.
const critBase = 1.4

// baseCooldown is the assumed skill cycle in seconds for DPS.
const baseCooldown = 1.0

// Params are the inputs of the main damage formula.
//
// Stats must already include flat stat bonuses from gear.
// SkillPercent is the effective skill percent; 0 means no skill selected.
type Params struct {
	Stats        model.CharacterStats
	Weapon       WeaponRange
	Mods         modifier.Vector
	Target       model.TargetProfile
	SkillPercent int
	Hits         int
}

// Damage is the result of the main damage formula.
// Min/Max/Crit are totals over all hits.
type Damage struct {
	PerHitMin int64
	PerHitMax int64
	Min       int64
	Max       int64
	Crit      int64
	DPS       int64

	StatusATK    float64 // with P.ATK applied
	TotalMin     float64 // before skill and defense
	TotalMax     float64
	DefReduction float64
}

// StatusATK returns (STR + ⌊LUK/3⌋ + ⌊DEX/5⌋ + ⌊BaseLv/4⌋) × 2 + POW × 5 + mastery.
// P.ATK is not applied here.
func StatusATK(s model.CharacterStats) int {
	return (s.Str+s.Luk/3+s.Dex/5+s.BaseLv/4)*2 + s.Pow*5 + s.MasteryAtk
}

// group converts a percent total into a multiplier.
func group(percent float64) float64 {
	return 1 + percent/100
}

// DefReduction returns (4000 + def × (1 - ignoreDef/100)) / 4000.
// Negative defense (and over 100% ignore) is clamped to 0 effective defense.
func DefReduction(def int, ignoreDef float64) float64 {
	eff := float64(max(def, 0)) * (1 - ignoreDef/100)
	if eff < 0 {
		eff = 0
	}
	return (defConstant + eff) / defConstant
}

// CalcDamage evaluates the multiplicative damage formula.
//
// Never panics: hits are sanitized, a zero skill percent yields zero damage.
func CalcDamage(p Params) Damage {
	m := p.Mods
	pAtk := group(float64(p.Stats.PAtk))

	status := float64(StatusATK(p.Stats)) * pAtk

	mult := group(m.RaceAllDmg) *
		group(m.SizeAllDmg) *
		group(m.BossDmg) *
		group(m.AtkPercentTotal()) *
		group(m.EleAllDmg)

	wMin := (p.Weapon.Min + m.Atk) * pAtk * mult
	wMax := (p.Weapon.Max + m.Atk) * pAtk * mult

	rangeMult := group(math.Max(m.RangeDmg, m.MeleeDmg))
	totalMin := (status + wMin) * rangeMult
	totalMax := (status + wMax) * rangeMult

	defRed := DefReduction(p.Target.Def, m.IgnoreDef)
	skill := float64(p.SkillPercent) / 100
	hits := int64(model.SanitizeHits(p.Hits))

	d := Damage{
		StatusATK:    status,
		TotalMin:     totalMin,
		TotalMax:     totalMax,
		DefReduction: defRed,
	}
	d.PerHitMin = floor(totalMin * skill / defRed)
	d.PerHitMax = floor(totalMax * skill / defRed)
	d.Min = d.PerHitMin * hits
	d.Max = d.PerHitMax * hits

	critMod := critBase + m.CriDmg/100
	d.Crit = floor(totalMax*critMod*skill/defRed) * hits

	cooldown := baseCooldown * (1 - m.CooldownReduction/100)
	if cooldown > 0 {
		d.DPS = floor(float64(d.Min+d.Max) / 2 / cooldown)
	}
	return d
}

// floor truncates toward zero; NaN and negative values become 0.
func floor(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return int64(v)
}
