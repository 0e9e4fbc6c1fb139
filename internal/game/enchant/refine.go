// Package enchant holds the weapon refine tables.
//
// Refining a weapon adds a flat bonus per refine level. Above the safe limit
// every extra level also adds an over-refine bonus. Both factors depend on
// the weapon level (1-4).
package enchant

// MaxWeaponLevel is the highest weapon level with refine factors.
const MaxWeaponLevel = 4

// levelInfo describes refine behavior of one weapon level.
type levelInfo struct {
	// RefineFactor -- ATK за каждый уровень заточки.
	RefineFactor int
	// SafeLimit -- максимальная заточка без over-refine бонуса.
	SafeLimit int
	// OverRefineFactor -- ATK за каждый уровень выше SafeLimit.
	OverRefineFactor int
}

// levelTable is indexed by weapon level - 1.
var levelTable = [MaxWeaponLevel]levelInfo{
	{RefineFactor: 2, SafeLimit: 7, OverRefineFactor: 3},
	{RefineFactor: 3, SafeLimit: 6, OverRefineFactor: 5},
	{RefineFactor: 5, SafeLimit: 5, OverRefineFactor: 8},
	{RefineFactor: 7, SafeLimit: 4, OverRefineFactor: 14},
}

func lookup(level int) (levelInfo, bool) {
	if level < 1 || level > MaxWeaponLevel {
		return levelInfo{}, false
	}
	return levelTable[level-1], true
}

// ValidLevel reports whether level has refine factors.
func ValidLevel(level int) bool {
	_, ok := lookup(level)
	return ok
}

// RefineATK returns the flat refine bonus: refine × factor[level].
// Unknown levels and negative refine give 0.
func RefineATK(level, refine int) int {
	info, ok := lookup(level)
	if !ok || refine <= 0 {
		return 0
	}
	return refine * info.RefineFactor
}

// OverRefineATK returns max(0, refine - safeLimit[level]) × overFactor[level].
func OverRefineATK(level, refine int) int {
	info, ok := lookup(level)
	if !ok {
		return 0
	}
	over := refine - info.SafeLimit
	if over <= 0 {
		return 0
	}
	return over * info.OverRefineFactor
}
