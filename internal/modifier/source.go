package modifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// Condition types of a set option.
const (
	ConditionRefineSum = "refine_sum"
	ConditionGradeEach = "grade_each"
)

// Source is the canonical per-item modifier source.
//
// Refine keys are refine levels ("1".."20"); Grade keys are "D", "C", "B", "A".
type Source struct {
	Base       *Bonus            `json:"base,omitempty"`
	Refine     map[string]*Bonus `json:"refine,omitempty"`
	Grade      map[string]*Bonus `json:"grade,omitempty"`
	Sets       []SetOption       `json:"sets,omitempty"`
	SetEffects []LegacySet       `json:"setEffects,omitempty"`

	// Weapon is set when legacy option lines describe the weapon itself.
	Weapon *WeaponHint `json:"-"`
}

// SetOption is a bonus that needs a partner item.
type SetOption struct {
	TargetName string      `json:"target_name"`
	Conditions []Condition `json:"conditions,omitempty"`
	Effects    *Bonus      `json:"effects,omitempty"`
}

// LegacySet is the set representation produced by the old client-side parser.
type LegacySet struct {
	TargetItemName string         `json:"targetItemName"`
	Conditions     []Condition    `json:"conditions,omitempty"`
	Effects        *LegacyEffects `json:"effects,omitempty"`
}

// LegacyEffects are the effect keys the old client-side parser emitted.
type LegacyEffects struct {
	Atk               float64            `json:"atk,omitempty"`
	AtkP              float64            `json:"atkP,omitempty"`
	SkillDamage       map[string]float64 `json:"skillDamage,omitempty"`
	CooldownReduction float64            `json:"cooldownReduction,omitempty"`
}

// Bonus converts legacy effect keys to the canonical record.
// atkP feeds the same ATK% group as p_atk.
func (e *LegacyEffects) Bonus() *Bonus {
	if e == nil {
		return nil
	}
	b := &Bonus{
		Atk:               e.Atk,
		PAtk:              e.AtkP,
		CooldownReduction: e.CooldownReduction,
	}
	if len(e.SkillDamage) > 0 {
		b.SkillDmg = make(map[string]float64, len(e.SkillDamage))
		for id, v := range e.SkillDamage {
			b.SkillDmg[id] = v
		}
	}
	return b
}

// Condition is one requirement of a set option.
type Condition struct {
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

// Value is a condition operand. The data pipeline writes it either as a
// number (7) or as a string ("7", "B", "B등급").
type Value string

// UnmarshalJSON accepts JSON strings, numbers and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*v = ""
	case strings.HasPrefix(s, `"`):
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("decoding condition value %s: %w", s, err)
		}
		*v = Value(unq)
	default:
		*v = Value(s)
	}
	return nil
}

// Int returns the numeric operand; non-numeric values yield 0, false.
func (v Value) Int() (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// WeaponHint is weapon data found in legacy option lines ("공격 : 150", "무기레벨 : 4").
type WeaponHint struct {
	Atk   int
	Level int
}

// ParseJSON decodes a structured item payload. A payload stored as a JSON
// string holding the object (double encoded) is accepted as well.
func ParseJSON(data []byte) (*Source, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := sonic.UnmarshalString(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("decoding item payload string: %w", err)
		}
		data = []byte(inner)
	}

	var src Source
	if err := sonic.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("decoding item payload: %w", err)
	}
	return &src, nil
}
