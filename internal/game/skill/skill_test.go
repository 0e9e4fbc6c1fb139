package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/rocalc/internal/model"
)

func TestEffectivePercent(t *testing.T) {
	t.Parallel()

	stats := model.CharacterStats{Str: 123, Pow: 20, BaseLv: 255}

	tests := []struct {
		name  string
		skill model.SkillDescriptor
		want  int
	}{
		{"unknown skill", model.SkillDescriptor{ID: "XX_UNKNOWN", BasePercent: 700}, 700},
		{"chasing break", model.SkillDescriptor{ID: "ABC_CHASING_BREAK", BasePercent: 5200}, 5265},
		{"chasing break cloaking", model.SkillDescriptor{ID: "ABC_CHASING_BREAK", BasePercent: 5200, Flags: model.SkillFlags{Cloaking: true}}, 10530},
		{"deft stab", model.SkillDescriptor{ID: "ABC_DEFT_STAB", BasePercent: 1001}, 1001},
		{"deft stab backstab", model.SkillDescriptor{ID: "ABC_DEFT_STAB", BasePercent: 1001, Flags: model.SkillFlags{Backstab: true}}, 1501},
		{"rush strike", model.SkillDescriptor{ID: "MT_RUSH_STRIKE", BasePercent: 3000}, 3024},
		{"abyss square", model.SkillDescriptor{ID: "ABC_ABYSS_SQUARE", BasePercent: 1500}, 1500},
		{"abyss square boss", model.SkillDescriptor{ID: "ABC_ABYSS_SQUARE", BasePercent: 1501, Flags: model.SkillFlags{TargetIsBoss: true}}, 1951},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EffectivePercent(tt.skill, stats); got != tt.want {
				t.Errorf("EffectivePercent = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestCalcPreview(t *testing.T) {
	t.Parallel()

	s := model.SkillDescriptor{ID: "MT_POWERFUL_SMASH", BasePercent: 1250, Hits: 3}
	p := CalcPreview(s, model.CharacterStats{}, 401)
	assert.Equal(t, 1250, p.Percent)
	assert.Equal(t, int64(5012), p.PerHit)
	assert.Equal(t, int64(15036), p.Total)

	s.Hits = 150
	p = CalcPreview(s, model.CharacterStats{}, 401)
	assert.Equal(t, p.PerHit, p.Total)
}

func TestSkillName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "체이싱 브레이크", SkillName("ABC_CHASING_BREAK"))
	assert.Equal(t, "NO_SUCH_SKILL", SkillName("NO_SUCH_SKILL"))
}
