package skill

import (
	"github.com/udisondev/rocalc/internal/model"
)

// Preview is the tooltip damage of a single skill.
type Preview struct {
	Percent int
	PerHit  int64
	Total   int64
}

// CalcPreview computes ⌊baseAtk × percent/100⌋ per hit and per hit × hits.
//
// baseAtk is status ATK with P.ATK applied plus equip ATK. The weapon
// attack model is not part of the preview.
func CalcPreview(s model.SkillDescriptor, stats model.CharacterStats, baseAtk float64) Preview {
	percent := EffectivePercent(s, stats)
	perHit := baseAtk * float64(percent) / 100
	p := Preview{Percent: percent}
	if perHit > 0 {
		p.PerHit = int64(perHit)
	}
	p.Total = p.PerHit * int64(s.SanitizedHits())
	return p
}
