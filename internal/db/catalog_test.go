package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/rocalc/internal/model"
)

func seedCatalog(t *testing.T, c Catalog) {
	t.Helper()
	ctx := context.Background()

	items := []*model.ItemRecord{
		{ID: 1101, NameKr: "검", Slots: 3, ParsedData: []byte(`{"base":{"atk":25}}`)},
		{ID: 1102, NameKr: "바이킹 검", Slots: 1},
		{ID: 2301, NameKr: "코튼 셔츠", Slots: 1, ParsedData: []byte(`{"base":{"melee_dmg":1}}`)},
	}
	for _, it := range items {
		require.NoError(t, c.UpsertItem(ctx, it))
	}

	skills := []*model.SkillRecord{
		{EngName: "MT_RUSH_STRIKE", NameKr: "러쉬 스트라이크", MaxLevel: 10, DamagePercent: 3000, Hits: 1},
		{EngName: "ABC_CHASING_BREAK", NameKr: "체이싱 브레이크", MaxLevel: 10, DamagePercent: 5200, Hits: 7},
		{EngName: "SM_PROVOKE", NameKr: "프로보크", MaxLevel: 10},
		{EngName: "MT_MAGNUM_BREAK", NameKr: "매그넘 브레이크", MaxLevel: 10, DamagePercent: 100},
	}
	for _, s := range skills {
		require.NoError(t, c.UpsertSkill(ctx, s))
	}
}

func testCatalog(t *testing.T, c Catalog) {
	ctx := context.Background()
	seedCatalog(t, c)

	t.Run("exact name wins", func(t *testing.T) {
		it, err := c.ItemByName(ctx, "검")
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, int32(1101), it.ID)
		assert.JSONEq(t, `{"base":{"atk":25}}`, string(it.ParsedData))
		assert.Equal(t, 3, it.Slots)
		assert.False(t, it.UpdatedAt.IsZero())
	})

	t.Run("substring fallback", func(t *testing.T) {
		it, err := c.ItemByName(ctx, "셔츠")
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, int32(2301), it.ID)
	})

	t.Run("null payload", func(t *testing.T) {
		it, err := c.ItemByID(ctx, 1102)
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Empty(t, it.ParsedData)
	})

	t.Run("item not found", func(t *testing.T) {
		it, err := c.ItemByName(ctx, "없는 아이템")
		require.NoError(t, err)
		assert.Nil(t, it)

		it, err = c.ItemByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, it)
	})

	t.Run("skill defaults", func(t *testing.T) {
		s, err := c.Skill(ctx, "SM_PROVOKE")
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, DefaultDamagePercent, s.DamagePercent)
		assert.Equal(t, DefaultHits, s.Hits)

		s, err = c.Skill(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("skills with damage", func(t *testing.T) {
		list, err := c.SkillsWithDamage(ctx)
		require.NoError(t, err)
		var ids []string
		for _, s := range list {
			ids = append(ids, s.EngName)
		}
		assert.Equal(t, []string{"ABC_CHASING_BREAK", "MT_RUSH_STRIKE"}, ids)
	})

	t.Run("search", func(t *testing.T) {
		list, err := c.SearchSkills(ctx, "브레이크")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "ABC_CHASING_BREAK", list[0].EngName)
		assert.Equal(t, 7, list[0].Hits)
	})

	t.Run("upsert updates", func(t *testing.T) {
		require.NoError(t, c.UpsertItem(ctx, &model.ItemRecord{ID: 1102, NameKr: "바이킹 검", Slots: 2}))
		it, err := c.ItemByID(ctx, 1102)
		require.NoError(t, err)
		require.NotNil(t, it)
		assert.Equal(t, 2, it.Slots)
	})
}

func TestSQLiteCatalog(t *testing.T) {
	testCatalog(t, setupSQLite(t))
}

func TestPostgresCatalog(t *testing.T) {
	testCatalog(t, setupPostgres(t))
}

func TestSQLiteMigrateIdempotent(t *testing.T) {
	s := setupSQLite(t)
	require.NoError(t, s.Migrate(context.Background()))
}
