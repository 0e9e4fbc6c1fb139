package skill

import (
	"math"

	"github.com/udisondev/rocalc/internal/model"
)

// Context is the situational input of a skill adjustment.
type Context struct {
	Stats model.CharacterStats
	Flags model.SkillFlags
}

// Adjustment transforms the database percent of a skill.
// Must be pure: same inputs, same output.
type Adjustment func(percent float64, c Context) float64

// adjustments maps skill id → percent adjustment.
// Skills without an entry use the database percent unchanged.
var adjustments = map[string]Adjustment{
	"ABC_CHASING_BREAK": chasingBreak,
	"ABC_DEFT_STAB":     deftStab,
	"MT_RUSH_STRIKE":    rushStrike,
	"ABC_ABYSS_SQUARE":  abyssSquare,
}

// EffectivePercent returns the final skill percent after the conditional
// adjustment, truncated to an integer.
func EffectivePercent(s model.SkillDescriptor, stats model.CharacterStats) int {
	percent := float64(s.BasePercent)
	if adj, ok := adjustments[s.ID]; ok {
		percent = adj(percent, Context{Stats: stats, Flags: s.Flags})
	}
	return int(math.Floor(percent))
}

// chasingBreak: + ⌊BaseLv/10⌋ + POW×2, doubled while cloaking.
func chasingBreak(percent float64, c Context) float64 {
	percent += float64(c.Stats.BaseLv/10) + float64(c.Stats.Pow*2)
	if c.Flags.Cloaking {
		percent *= 2
	}
	return percent
}

// deftStab: ×1.5 from the backstab position.
func deftStab(percent float64, c Context) float64 {
	if c.Flags.Backstab {
		percent *= 1.5
	}
	return percent
}

// rushStrike: + ⌊STR/5⌋.
func rushStrike(percent float64, c Context) float64 {
	return percent + float64(c.Stats.Str/5)
}

// abyssSquare: ×1.3 against bosses.
func abyssSquare(percent float64, c Context) float64 {
	if c.Flags.TargetIsBoss {
		percent *= 1.3
	}
	return percent
}
