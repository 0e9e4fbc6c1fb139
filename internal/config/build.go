package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/rocalc/internal/model"
)

// Build is a character build file: stats, weapon, target, skill and gear.
type Build struct {
	Stats  model.CharacterStats   `yaml:"stats"`
	Weapon model.WeaponProfile    `yaml:"weapon"`
	Target model.TargetProfile    `yaml:"target"`
	Skill  *model.SkillDescriptor `yaml:"skill"`

	// Gear, Shadow and Costume map slot name (weapon, armor, headUpper...) to item.
	Gear    map[string]*ItemSpec `yaml:"gear"`
	Shadow  map[string]*ItemSpec `yaml:"shadow"`
	Costume map[string]*ItemSpec `yaml:"costume"`
}

// ItemSpec is an equipped item in a build file. Payload fields may be left
// empty and filled from the catalog by Resolve.
type ItemSpec struct {
	Name       string      `yaml:"name"`
	ItemID     int32       `yaml:"item_id"`
	Refine     int         `yaml:"refine"`
	Grade      model.Grade `yaml:"grade"`
	CardSlots  int         `yaml:"card_slots"`
	ParsedData string      `yaml:"parsed_data"` // raw JSON
	Options    []string    `yaml:"options"`
	Cards      []*CardSpec `yaml:"cards"`
}

// CardSpec is a card socketed into an ItemSpec.
type CardSpec struct {
	Name       string   `yaml:"name"`
	ItemID     int32    `yaml:"item_id"`
	ParsedData string   `yaml:"parsed_data"`
	Options    []string `yaml:"options"`
}

func payload(parsed string, options []string) model.Payload {
	p := model.Payload{Options: options}
	if parsed != "" {
		p.ParsedData = []byte(parsed)
	}
	return p
}

// LoadBuild reads a build file.
func LoadBuild(path string) (*Build, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build %s: %w", path, err)
	}

	var b Build
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing build %s: %w", path, err)
	}
	return &b, nil
}

// GearSets converts the gear, shadow and costume layers.
func (b *Build) GearSets() (gear *model.GearSet, extra []*model.GearSet, err error) {
	gear, err = toGearSet(b.Gear)
	if err != nil {
		return nil, nil, fmt.Errorf("gear: %w", err)
	}
	for _, layer := range []struct {
		name  string
		items map[string]*ItemSpec
	}{
		{"shadow", b.Shadow},
		{"costume", b.Costume},
	} {
		if len(layer.items) == 0 {
			continue
		}
		g, err := toGearSet(layer.items)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", layer.name, err)
		}
		extra = append(extra, g)
	}
	return gear, extra, nil
}

func toGearSet(items map[string]*ItemSpec) (*model.GearSet, error) {
	var g model.GearSet
	for _, slotName := range slices.Sorted(maps.Keys(items)) {
		spec := items[slotName]
		if spec == nil {
			continue
		}
		slot, err := model.ParseSlot(slotName)
		if err != nil {
			return nil, err
		}

		cardSlots := spec.CardSlots
		if cardSlots == 0 {
			cardSlots = len(spec.Cards)
		}
		item, err := model.NewEquippedItem(slot, spec.Name, spec.Refine, spec.Grade, cardSlots)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slotName, err)
		}
		item.ItemID = spec.ItemID
		item.Payload = payload(spec.ParsedData, spec.Options)

		for _, c := range spec.Cards {
			if c == nil {
				continue
			}
			card := model.Card{ItemID: c.ItemID, Name: c.Name, Payload: payload(c.ParsedData, c.Options)}
			if err := item.AttachCard(card); err != nil {
				return nil, fmt.Errorf("slot %s: %w", slotName, err)
			}
		}

		if err := g.Equip(item); err != nil {
			return nil, fmt.Errorf("slot %s: %w", slotName, err)
		}
	}
	return &g, nil
}
