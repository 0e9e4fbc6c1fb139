package model

import "time"

// ItemRecord is an item row of the item catalog.
type ItemRecord struct {
	ID         int32
	NameKr     string
	Slots      int
	ParsedData []byte
	UpdatedAt  time.Time
}

// SkillRecord is a skill row of the skill catalog.
// DamagePercent and Hits are already defaulted (100 / 1) when the row has NULLs.
type SkillRecord struct {
	EngName       string
	NameKr        string
	MaxLevel      int
	DamagePercent int
	Hits          int
}

// Descriptor converts the record into an engine skill descriptor.
func (r SkillRecord) Descriptor() SkillDescriptor {
	return SkillDescriptor{
		ID:          r.EngName,
		Name:        r.NameKr,
		BasePercent: r.DamagePercent,
		Hits:        r.Hits,
	}
}
