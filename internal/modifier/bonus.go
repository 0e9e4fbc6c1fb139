// Package modifier turns per-item stat payloads into one aggregate modifier vector.
//
// Two payload formats exist: the structured JSON produced by the item data
// pipeline (base/refine/grade/sets) and legacy free-text option lines. Both are
// normalized into Source, so aggregation never branches on the input format.
package modifier

// Bonus is one bonus record. JSON keys match the item data pipeline schema and
// must not be renamed.
//
// Fields tagged `json:"-"` have no structured key; they are filled only by
// legacy option lines and legacy set effects.
type Bonus struct {
	Atk        float64            `json:"atk,omitempty"`
	Matk       float64            `json:"matk,omitempty"`
	PAtk       float64            `json:"p_atk,omitempty"`
	SMatk      float64            `json:"s_matk,omitempty"`
	MeleeDmg   float64            `json:"melee_dmg,omitempty"`
	RangeDmg   float64            `json:"range_dmg,omitempty"`
	EleAllDmg  float64            `json:"ele_all_dmg,omitempty"`
	SizeAllDmg float64            `json:"size_all_dmg,omitempty"`
	RaceAllDmg float64            `json:"race_all_dmg,omitempty"`
	CriDmg     float64            `json:"cri_dmg,omitempty"`
	SkillDmg   map[string]float64 `json:"skill_dmg,omitempty"`

	Str  float64 `json:"-"`
	Agi  float64 `json:"-"`
	Vit  float64 `json:"-"`
	Int  float64 `json:"-"`
	Dex  float64 `json:"-"`
	Luk  float64 `json:"-"`
	Hit  float64 `json:"-"`
	Flee float64 `json:"-"`
	Cri  float64 `json:"-"`
	Aspd float64 `json:"-"`
	Def  float64 `json:"-"`
	Mdef float64 `json:"-"`

	MaxHP        float64 `json:"-"`
	MaxSP        float64 `json:"-"`
	MaxHPPercent float64 `json:"-"`
	MaxSPPercent float64 `json:"-"`

	AtkPercent        float64 `json:"-"`
	MatkPercent       float64 `json:"-"`
	BossDmg           float64 `json:"-"`
	IgnoreDef         float64 `json:"-"`
	CooldownReduction float64 `json:"-"`
}

// Add sums o into b field by field. A nil o is a no-op.
func (b *Bonus) Add(o *Bonus) {
	if o == nil {
		return
	}
	b.Atk += o.Atk
	b.Matk += o.Matk
	b.PAtk += o.PAtk
	b.SMatk += o.SMatk
	b.MeleeDmg += o.MeleeDmg
	b.RangeDmg += o.RangeDmg
	b.EleAllDmg += o.EleAllDmg
	b.SizeAllDmg += o.SizeAllDmg
	b.RaceAllDmg += o.RaceAllDmg
	b.CriDmg += o.CriDmg

	b.Str += o.Str
	b.Agi += o.Agi
	b.Vit += o.Vit
	b.Int += o.Int
	b.Dex += o.Dex
	b.Luk += o.Luk
	b.Hit += o.Hit
	b.Flee += o.Flee
	b.Cri += o.Cri
	b.Aspd += o.Aspd
	b.Def += o.Def
	b.Mdef += o.Mdef

	b.MaxHP += o.MaxHP
	b.MaxSP += o.MaxSP
	b.MaxHPPercent += o.MaxHPPercent
	b.MaxSPPercent += o.MaxSPPercent

	b.AtkPercent += o.AtkPercent
	b.MatkPercent += o.MatkPercent
	b.BossDmg += o.BossDmg
	b.IgnoreDef += o.IgnoreDef
	b.CooldownReduction += o.CooldownReduction

	if len(o.SkillDmg) > 0 {
		if b.SkillDmg == nil {
			b.SkillDmg = make(map[string]float64, len(o.SkillDmg))
		}
		for id, v := range o.SkillDmg {
			b.SkillDmg[id] += v
		}
	}
}
