package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/rocalc/internal/model"
	"github.com/udisondev/rocalc/internal/modifier"
)

func fixtureParams() Params {
	stats := model.CharacterStats{Str: 120, Dex: 100, Luk: 1, BaseLv: 250}
	w := model.WeaponProfile{Atk: 150, Level: 4, Type: model.WeaponSword2H}
	return Params{
		Stats:        stats,
		Weapon:       CalcWeaponAttack(w, stats, model.SizeMedium),
		Target:       model.TargetProfile{Def: 100, Size: model.SizeMedium},
		SkillPercent: 100,
		Hits:         1,
	}
}

func TestStatusATK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats model.CharacterStats
		want  int
	}{
		{"zero", model.CharacterStats{}, 0},
		{"fixture", model.CharacterStats{Str: 120, Dex: 100, Luk: 1, BaseLv: 250}, 404},
		{"floors", model.CharacterStats{Str: 1, Luk: 5, Dex: 9, BaseLv: 7}, 8},
		{"pow", model.CharacterStats{Pow: 10}, 50},
		{"mastery", model.CharacterStats{Str: 10, MasteryAtk: 30}, 50},
	}

	for _, tt := range tests {
		if got := StatusATK(tt.stats); got != tt.want {
			t.Errorf("%s: StatusATK = %d; want %d", tt.name, got, tt.want)
		}
	}
}

func TestCalcDamage_Fixture(t *testing.T) {
	t.Parallel()

	d := CalcDamage(fixtureParams())
	assert.InDelta(t, 404.0, d.StatusATK, 1e-9)
	assert.Equal(t, int64(547), d.Min)
	assert.Equal(t, int64(591), d.Max)
	assert.Equal(t, int64(828), d.Crit)
	assert.Equal(t, int64(569), d.DPS)
}

func TestCalcDamage_CritAtLeastMax(t *testing.T) {
	t.Parallel()

	for _, critDmg := range []float64{0, 10, 55.5, 200} {
		p := fixtureParams()
		p.Mods.CriDmg = critDmg
		d := CalcDamage(p)
		if d.Crit < d.Max {
			t.Errorf("critDmg %v: Crit = %d < Max = %d", critDmg, d.Crit, d.Max)
		}
	}
}

func TestCalcDamage_HitsSanitized(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.Hits = 101
	d := CalcDamage(p)
	assert.Equal(t, d.PerHitMin, d.Min)
	assert.Equal(t, d.PerHitMax, d.Max)

	p.Hits = 3
	d = CalcDamage(p)
	assert.Equal(t, d.PerHitMin*3, d.Min)
	assert.Equal(t, int64(828*3), d.Crit)
}

func TestCalcDamage_NoSkill(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.SkillPercent = 0
	d := CalcDamage(p)
	assert.Zero(t, d.Min)
	assert.Zero(t, d.Max)
	assert.Zero(t, d.Crit)
	assert.Zero(t, d.DPS)
}

func TestCalcDamage_NegativeDefenseClamped(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.Target.Def = -500
	neg := CalcDamage(p)

	p.Target.Def = 0
	zero := CalcDamage(p)
	assert.Equal(t, zero, neg)
}

func TestCalcDamage_Modifiers(t *testing.T) {
	t.Parallel()

	base := CalcDamage(fixtureParams())

	tests := []struct {
		name string
		mods modifier.Vector
	}{
		{"equip atk", modifier.Vector{Bonus: modifier.Bonus{Atk: 50}}},
		{"race", modifier.Vector{Bonus: modifier.Bonus{RaceAllDmg: 10}}},
		{"p_atk group", modifier.Vector{Bonus: modifier.Bonus{PAtk: 5}}},
		{"melee", modifier.Vector{Bonus: modifier.Bonus{MeleeDmg: 10}}},
		{"ignore def", modifier.Vector{Bonus: modifier.Bonus{IgnoreDef: 50}}},
	}

	for _, tt := range tests {
		p := fixtureParams()
		p.Mods = tt.mods
		d := CalcDamage(p)
		if d.Max <= base.Max {
			t.Errorf("%s: Max = %d; want > %d", tt.name, d.Max, base.Max)
		}
	}
}

func TestCalcDamage_RangeMeleeTakesMax(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.Mods.MeleeDmg = 10
	p.Mods.RangeDmg = 20
	both := CalcDamage(p)

	p.Mods.MeleeDmg = 0
	rangeOnly := CalcDamage(p)
	assert.Equal(t, rangeOnly, both)
}

func TestCalcDamage_Cooldown(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.Mods.CooldownReduction = 50
	d := CalcDamage(p)
	assert.Equal(t, int64(1138), d.DPS)

	p.Mods.CooldownReduction = 100
	d = CalcDamage(p)
	assert.Zero(t, d.DPS)
}

func TestDefReduction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		def    int
		ignore float64
		want   float64
	}{
		{0, 0, 1},
		{100, 0, 1.025},
		{400, 50, 1.05},
		{400, 100, 1},
		{400, 150, 1},
		{-100, 0, 1},
	}
	for _, tt := range tests {
		got := DefReduction(tt.def, tt.ignore)
		assert.InDelta(t, tt.want, got, 1e-12, "DefReduction(%d, %v)", tt.def, tt.ignore)
	}
}
