package model

// CharacterStats holds the attacker's base, trait and level stats.
//
// PAtk is the P.ATK trait percentage applied to the whole physical attack.
// MasteryAtk is flat mastery attack added to status ATK (0 when unknown).
type CharacterStats struct {
	Str int `yaml:"str"`
	Agi int `yaml:"agi"`
	Vit int `yaml:"vit"`
	Int int `yaml:"int"`
	Dex int `yaml:"dex"`
	Luk int `yaml:"luk"`

	Pow int `yaml:"pow"`
	Sta int `yaml:"sta"`
	Wis int `yaml:"wis"`
	Spl int `yaml:"spl"`
	Con int `yaml:"con"`
	Crt int `yaml:"crt"`

	BaseLv int `yaml:"base_lv"`
	JobLv  int `yaml:"job_lv"`

	PAtk       int `yaml:"p_atk"`
	MasteryAtk int `yaml:"mastery_atk"`
}

// WithBonus returns a copy with flat base stat bonuses from equipment added.
func (c CharacterStats) WithBonus(str, agi, vit, int_, dex, luk int) CharacterStats {
	c.Str += str
	c.Agi += agi
	c.Vit += vit
	c.Int += int_
	c.Dex += dex
	c.Luk += luk
	return c
}
