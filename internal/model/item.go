package model

import (
	"errors"
	"fmt"
)

// ErrNoCardSlot is returned when a card is attached to an item without a free slot.
var ErrNoCardSlot = errors.New("no free card slot")

// MaxRefine is the highest refine level an item can carry.
const MaxRefine = 20

// Payload is the raw stat representation of an item or card.
//
// ParsedData holds the structured JSON (base/refine/grade/sets).
// Options holds legacy free-text option lines. When both are set the
// structured payload wins.
type Payload struct {
	ParsedData []byte
	Options    []string
}

// IsEmpty reports whether the payload carries no stat data at all.
func (p Payload) IsEmpty() bool {
	return len(p.ParsedData) == 0 && len(p.Options) == 0
}

// Card is a card socketed into an equipment piece.
type Card struct {
	ItemID  int32
	Name    string
	Payload Payload
}

// EquippedItem is an equipment piece in a gear slot.
type EquippedItem struct {
	Slot      Slot
	ItemID    int32
	Name      string
	Payload   Payload
	Refine    int
	Grade     Grade
	CardSlots int

	cards []Card
}

// NewEquippedItem creates an item with validation.
func NewEquippedItem(slot Slot, name string, refine int, grade Grade, cardSlots int) (*EquippedItem, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}
	if refine < 0 || refine > MaxRefine {
		return nil, fmt.Errorf("refine must be in 0..%d, got %d", MaxRefine, refine)
	}
	if cardSlots < 0 {
		return nil, fmt.Errorf("card slots must be >= 0, got %d", cardSlots)
	}
	return &EquippedItem{
		Slot:      slot,
		Name:      name,
		Refine:    refine,
		Grade:     grade,
		CardSlots: cardSlots,
	}, nil
}

// AttachCard sockets a card. Card count never exceeds CardSlots.
func (i *EquippedItem) AttachCard(c Card) error {
	if len(i.cards) >= i.CardSlots {
		return fmt.Errorf("attaching %q to %q: %w", c.Name, i.Name, ErrNoCardSlot)
	}
	i.cards = append(i.cards, c)
	return nil
}

// Cards returns the socketed cards in attach order.
func (i *EquippedItem) Cards() []Card {
	return i.cards
}
