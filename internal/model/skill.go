package model

// MaxSaneHits is the largest hit count accepted from the skill database.
//
// Some rows of the upstream skill table carry the skill level cap or a damage
// value in the hits column. Anything above this bound is treated as corrupt
// and replaced by a single hit. This is a data-quality workaround, not a game rule.
const MaxSaneHits = 100

// SkillFlags are situational states that change a skill's effective percent.
type SkillFlags struct {
	Cloaking     bool `yaml:"cloaking"`
	Backstab     bool `yaml:"backstab"`
	TargetIsBoss bool `yaml:"target_is_boss"`
}

// SkillDescriptor is a skill as resolved from the skill database.
type SkillDescriptor struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	BasePercent int        `yaml:"percent"`
	Hits        int        `yaml:"hits"`
	Flags       SkillFlags `yaml:"flags"`
}

// SanitizeHits clamps a raw hit count: values above MaxSaneHits and
// missing (<= 0) values both become 1.
func SanitizeHits(hits int) int {
	if hits > MaxSaneHits || hits <= 0 {
		return 1
	}
	return hits
}

// SanitizedHits returns the hit count the engine actually uses.
func (s SkillDescriptor) SanitizedHits() int {
	return SanitizeHits(s.Hits)
}
