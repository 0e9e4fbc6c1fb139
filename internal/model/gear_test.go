package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	t.Parallel()

	for s := SlotWeapon; s < SlotTotal; s++ {
		got, err := ParseSlot(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSlot("gloves")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestGearSet_EquipAndItems(t *testing.T) {
	t.Parallel()

	var g GearSet
	weapon, err := NewEquippedItem(SlotWeapon, "Blade", 7, GradeC, 2)
	require.NoError(t, err)
	boots, err := NewEquippedItem(SlotShoes, "Boots", 0, GradeNone, 1)
	require.NoError(t, err)

	require.NoError(t, g.Equip(boots))
	require.NoError(t, g.Equip(weapon))

	items := g.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Blade", items[0].Name, "slot order: weapon first")
	assert.Equal(t, "Boots", items[1].Name)

	assert.Nil(t, g.Item(SlotArmor))
	assert.Error(t, g.Equip(nil))
}

func TestEquippedItem_AttachCard(t *testing.T) {
	t.Parallel()

	item, err := NewEquippedItem(SlotArmor, "Armor", 0, GradeNone, 1)
	require.NoError(t, err)

	require.NoError(t, item.AttachCard(Card{Name: "Card A"}))
	err = item.AttachCard(Card{Name: "Card B"})
	if !errors.Is(err, ErrNoCardSlot) {
		t.Fatalf("AttachCard over capacity err = %v; want ErrNoCardSlot", err)
	}
	assert.Len(t, item.Cards(), 1)
}

func TestNewEquippedItem_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewEquippedItem(SlotTotal, "x", 0, GradeNone, 0)
	assert.ErrorIs(t, err, ErrUnknownSlot)

	_, err = NewEquippedItem(SlotWeapon, "x", -1, GradeNone, 0)
	assert.Error(t, err)

	_, err = NewEquippedItem(SlotWeapon, "x", MaxRefine+1, GradeNone, 0)
	assert.Error(t, err)

	_, err = NewEquippedItem(SlotWeapon, "x", 0, GradeNone, -1)
	assert.Error(t, err)
}

func TestSanitizeHits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{7, 7},
		{1, 1},
		{100, 100},
		{101, 1},
		{5200, 1},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		if got := SanitizeHits(tt.in); got != tt.want {
			t.Errorf("SanitizeHits(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseWeaponType(t *testing.T) {
	t.Parallel()

	for w := WeaponDagger; w < WeaponTypeCount; w++ {
		byID, err := ParseWeaponType(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, byID)

		byLabel, err := ParseWeaponType(w.Label())
		require.NoError(t, err)
		assert.Equal(t, w, byLabel)
	}

	_, err := ParseWeaponType("lance")
	assert.Error(t, err)
}

func TestWeaponType_IsRanged(t *testing.T) {
	t.Parallel()

	ranged := map[WeaponType]bool{WeaponBow: true, WeaponGun: true, WeaponInstrument: true, WeaponWhip: true}
	for w := WeaponDagger; w < WeaponTypeCount; w++ {
		assert.Equal(t, ranged[w], w.IsRanged(), w.String())
	}
}
