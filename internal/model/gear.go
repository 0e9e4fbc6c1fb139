package model

import (
	"errors"
	"fmt"
)

// ErrUnknownSlot is returned for slot ids outside the ten gear slots.
var ErrUnknownSlot = errors.New("unknown gear slot")

// Slot is one of the ten fixed equipment positions.
type Slot uint8

// Gear slots. Order is the evaluation order for set partner lookup.
const (
	SlotWeapon Slot = iota
	SlotShield
	SlotArmor
	SlotGarment
	SlotShoes
	SlotHeadUpper
	SlotHeadMid
	SlotHeadLower
	SlotAccRight
	SlotAccLeft
	SlotTotal
)

var slotNames = [SlotTotal]string{
	SlotWeapon:    "weapon",
	SlotShield:    "shield",
	SlotArmor:     "armor",
	SlotGarment:   "garment",
	SlotShoes:     "shoes",
	SlotHeadUpper: "headUpper",
	SlotHeadMid:   "headMid",
	SlotHeadLower: "headLower",
	SlotAccRight:  "accRight",
	SlotAccLeft:   "accLeft",
}

// Valid reports whether s is one of the ten gear slots.
func (s Slot) Valid() bool {
	return s < SlotTotal
}

// String returns the slot id used by build files.
func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
	return slotNames[s]
}

// ParseSlot parses a slot id ("weapon", "headUpper", ...).
func ParseSlot(s string) (Slot, error) {
	for i, name := range slotNames {
		if name == s {
			return Slot(i), nil
		}
	}
	return SlotTotal, fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// GearSet holds at most one item per slot.
type GearSet struct {
	slots [SlotTotal]*EquippedItem
}

// Equip puts item into its slot, replacing what was there.
// A nil item is rejected.
func (g *GearSet) Equip(item *EquippedItem) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}
	if !item.Slot.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSlot, item.Slot)
	}
	g.slots[item.Slot] = item
	return nil
}

// Item returns the item in slot or nil.
func (g *GearSet) Item(slot Slot) *EquippedItem {
	if g == nil || !slot.Valid() {
		return nil
	}
	return g.slots[slot]
}

// Items returns equipped items in slot order, skipping empty slots.
func (g *GearSet) Items() []*EquippedItem {
	if g == nil {
		return nil
	}
	items := make([]*EquippedItem, 0, SlotTotal)
	for _, it := range g.slots {
		if it != nil {
			items = append(items, it)
		}
	}
	return items
}
