// Package engine is the single entry point for damage computation.
//
// Compute is pure and synchronous: it only reads its Input, rebuilds the
// modifier vector from scratch and never keeps state between calls. Both
// the calculator and the simulator commands go through it.
package engine

import (
	"log/slog"
	"math"

	"github.com/udisondev/rocalc/internal/game/combat"
	"github.com/udisondev/rocalc/internal/game/enchant"
	"github.com/udisondev/rocalc/internal/game/skill"
	"github.com/udisondev/rocalc/internal/model"
	"github.com/udisondev/rocalc/internal/modifier"
)

// DefaultWeaponLevel is used when neither the profile nor the item declares one.
const DefaultWeaponLevel = 4

// Calculator computes damage for a build.
type Calculator interface {
	Compute(in Input) Result
}

// Input is everything the engine needs for one computation.
type Input struct {
	Gear *model.GearSet
	// Extra are additional gear layers (shadow, costume). They contribute
	// modifiers only; the weapon always comes from Gear.
	Extra []*model.GearSet

	Stats  model.CharacterStats
	Weapon model.WeaponProfile
	Target model.TargetProfile
	Skill  *model.SkillDescriptor // nil: no skill selected
}

// Result is the full breakdown of one computation.
type Result struct {
	Mods   modifier.Vector
	Stats  model.CharacterStats // stats with gear bonuses applied
	Weapon model.WeaponProfile  // profile after item hints
	Range  combat.WeaponRange
	Damage combat.Damage

	Preview skill.Preview
	Percent int
	Hits    int
}

// Engine implements Calculator.
type Engine struct {
	log *slog.Logger
}

// New creates an Engine. A nil logger discards output.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{log: log}
}

var _ Calculator = (*Engine)(nil)

// Compute runs aggregation, the weapon model, skill logic and the damage formula.
func (e *Engine) Compute(in Input) Result {
	sets := append([]*model.GearSet{in.Gear}, in.Extra...)
	entries := modifier.Entries(e.log, sets...)
	mods := modifier.Aggregate(entries)

	for _, name := range mods.ActiveSets {
		e.log.Debug("set bonus active", "set", name)
	}

	weapon := resolveWeapon(in.Weapon, in.Gear, entries)
	stats := in.Stats.WithBonus(
		int(mods.Str), int(mods.Agi), int(mods.Vit),
		int(mods.Int), int(mods.Dex), int(mods.Luk),
	)

	target := in.Target
	res := Result{
		Mods:   mods,
		Stats:  stats,
		Weapon: weapon,
		Range:  combat.CalcWeaponAttack(weapon, stats, target.Size),
		Hits:   1,
	}

	if in.Skill != nil {
		s := *in.Skill
		s.Flags.TargetIsBoss = s.Flags.TargetIsBoss || target.Boss
		res.Percent = skill.EffectivePercent(s, stats)
		res.Hits = s.SanitizedHits()
		res.Preview = skill.CalcPreview(s, stats, previewBaseATK(stats, mods))
	}

	res.Damage = combat.CalcDamage(combat.Params{
		Stats:        stats,
		Weapon:       res.Range,
		Mods:         mods,
		Target:       target,
		SkillPercent: res.Percent,
		Hits:         res.Hits,
	})

	e.log.Debug("damage computed",
		"skill", skillID(in.Skill),
		"percent", res.Percent,
		"hits", res.Hits,
		"min", res.Damage.Min,
		"max", res.Damage.Max,
		"crit", res.Damage.Crit,
	)
	return res
}

// previewBaseATK is status ATK × (1 + P.ATK/100) + equip ATK.
func previewBaseATK(stats model.CharacterStats, mods modifier.Vector) float64 {
	pAtk := 1 + float64(stats.PAtk)/100
	return float64(combat.StatusATK(stats))*pAtk + mods.Atk
}

// resolveWeapon fills profile gaps from the equipped weapon item.
//
// Refine and grade of an equipped weapon always win over the profile.
// Atk and level come from legacy option lines ("공격 : N", "무기레벨 : N")
// only when the profile leaves them at zero; a hint level without refine
// factors is ignored.
func resolveWeapon(w model.WeaponProfile, gear *model.GearSet, entries []modifier.Entry) model.WeaponProfile {
	item := gear.Item(model.SlotWeapon)
	if item != nil {
		w.Refine = item.Refine
		w.Grade = item.Grade

		// the weapon is the first entry: slots are walked in order
		if len(entries) > 0 && entries[0].Source != nil {
			if hint := entries[0].Source.Weapon; hint != nil {
				if w.Atk == 0 {
					w.Atk = hint.Atk
				}
				if w.Level == 0 && enchant.ValidLevel(hint.Level) {
					w.Level = hint.Level
				}
			}
		}
	}
	if w.Level == 0 {
		w.Level = DefaultWeaponLevel
	}
	return w
}

func skillID(s *model.SkillDescriptor) string {
	if s == nil {
		return ""
	}
	return s.ID
}

// Round2 rounds a percent total for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
