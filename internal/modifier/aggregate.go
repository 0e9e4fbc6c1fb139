package modifier

import (
	"strconv"
	"strings"

	"github.com/udisondev/rocalc/internal/model"
)

// Vector is the aggregate modifier vector of a whole gear set.
type Vector struct {
	Bonus

	// ActiveSets lists "<item> + <partner>" for every set bonus that applied.
	ActiveSets []string
}

// AtkPercentTotal is the ATK% multiplier group: legacy "ATK + N%" options
// plus structured p_atk.
func (v Vector) AtkPercentTotal() float64 {
	return v.AtkPercent + v.PAtk
}

// Aggregate folds entries into a fresh Vector.
//
// Phase 1 applies base, refine levels 1..Refine and grade tiers D..Grade of
// every entry. Phase 2 evaluates set options against the other entries.
func Aggregate(entries []Entry) Vector {
	var v Vector

	for _, e := range entries {
		e.applyOwn(&v.Bonus)
	}

	for i, e := range entries {
		if e.Source == nil {
			continue
		}
		for _, set := range e.Source.Sets {
			partner, ok := findPartner(entries, i, set.TargetName)
			if !ok || !conditionsMet(set.Conditions, e, partner) {
				continue
			}
			v.Add(set.Effects)
			v.ActiveSets = append(v.ActiveSets, e.Name+" + "+partner.Name)
		}
		for _, set := range e.Source.SetEffects {
			partner, ok := findPartner(entries, i, set.TargetItemName)
			if !ok || !conditionsMet(set.Conditions, e, partner) {
				continue
			}
			v.Add(set.Effects.Bonus())
			v.ActiveSets = append(v.ActiveSets, e.Name+" + "+partner.Name)
		}
	}

	return v
}

// OwnBonus returns the Phase 1 bonus of a single entry.
func (e Entry) OwnBonus() Bonus {
	var b Bonus
	e.applyOwn(&b)
	return b
}

func (e Entry) applyOwn(b *Bonus) {
	src := e.Source
	if src == nil {
		return
	}
	b.Add(src.Base)

	// Refine bonuses are cumulative: +5 gets levels 1,2,3,4,5.
	if len(src.Refine) > 0 {
		for lvl := 1; lvl <= min(e.Refine, model.MaxRefine); lvl++ {
			b.Add(src.Refine[strconv.Itoa(lvl)])
		}
	}

	// Grade bonuses are cumulative from D up to the current tier.
	if len(src.Grade) > 0 {
		for _, g := range model.Grades {
			if g.Rank() > e.Grade.Rank() {
				break
			}
			b.Add(src.Grade[g.Key()])
		}
	}
}

// findPartner returns the first other entry whose name contains target.
// Matching is a plain substring test; an empty target matches nothing.
func findPartner(entries []Entry, self int, target string) (Entry, bool) {
	if target == "" {
		return Entry{}, false
	}
	for i, e := range entries {
		if i != self && strings.Contains(e.Name, target) {
			return e, true
		}
	}
	return Entry{}, false
}

// conditionsMet requires every condition to hold. Unknown condition types
// and non-numeric refine thresholds fail.
func conditionsMet(conds []Condition, a, b Entry) bool {
	for _, c := range conds {
		switch c.Type {
		case ConditionRefineSum:
			need, ok := c.Value.Int()
			if !ok || a.Refine+b.Refine < need {
				return false
			}
		case ConditionGradeEach:
			need := requiredRank(c.Value)
			if a.Grade.Rank() < need || b.Grade.Rank() < need {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// requiredRank maps a grade operand to its rank. Unparseable operands
// require D.
func requiredRank(v Value) int {
	g, err := model.ParseGrade(string(v))
	if err != nil {
		return model.GradeD.Rank()
	}
	return g.Rank()
}
