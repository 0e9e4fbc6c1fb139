package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureBuild = `
stats: {str: 120, dex: 100, luk: 1, base_lv: 250}
weapon: {atk: 150, level: 4, type: sword_2h}
target: {def: 100, size: medium}
skill: {id: MT_RUSH_STRIKE, percent: 100, hits: 1}
`

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDamageCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "rocalc.yaml", "catalog:\n  driver: none\n")
	build := writeTemp(t, dir, "build.yaml", fixtureBuild)

	out, err := execute(t, "--config", cfg, "damage", build)
	require.NoError(t, err)
	// MT_RUSH_STRIKE adds ⌊120/5⌋ = 24 to the percent
	assert.Contains(t, out, "skill:   러쉬 스트라이크 124% x1")
	assert.Contains(t, out, "status:  404")
}

func TestModsCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "rocalc.yaml", "catalog:\n  driver: none\n")
	build := writeTemp(t, dir, "build.yaml", fixtureBuild+`
gear:
  armor:
    name: Plate
    parsed_data: '{"base":{"atk":12,"skill_dmg":{"MT_RUSH_STRIKE":10}}}'
`)

	out, err := execute(t, "--config", cfg, "mods", build)
	require.NoError(t, err)
	assert.Contains(t, out, "atk            +12")
	assert.Contains(t, out, "MT_RUSH_STRIKE")
}

func TestSQLiteCatalogFlow(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "rocalc.yaml", "catalog:\n  driver: sqlite\n  sqlite_path: "+filepath.Join(dir, "catalog.db")+"\n")
	seed := writeTemp(t, dir, "seed.yaml", `
items:
  - {id: 1163, name_kr: 클레이모어, slots: 0, parsed_data: '{"base":{"atk":30}}'}
skills:
  - {eng_name: MT_POWERFUL_SMASH, name_kr: 파워풀 스매쉬, max_level: 10, damage_percent: 1250, hits: 1}
  - {eng_name: MT_AXE_STOMP, name_kr: 액스 스텀프, max_level: 5, damage_percent: 900, hits: 1}
`)

	_, err := execute(t, "--config", cfg, "migrate")
	require.NoError(t, err)
	_, err = execute(t, "--config", cfg, "import", seed)
	require.NoError(t, err)

	out, err := execute(t, "--config", cfg, "skills", "스매쉬")
	require.NoError(t, err)
	assert.Contains(t, out, "MT_POWERFUL_SMASH")
	assert.NotContains(t, out, "MT_AXE_STOMP", "keyword filters the list")

	out, err = execute(t, "--config", cfg, "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "MT_POWERFUL_SMASH")
	assert.Contains(t, out, "MT_AXE_STOMP")

	build := writeTemp(t, dir, "build.yaml", `
stats: {str: 120, dex: 100, luk: 1, base_lv: 250}
weapon: {atk: 150, level: 4, type: sword_2h}
target: {def: 100, size: medium}
skill: {id: MT_POWERFUL_SMASH}
gear:
  weapon: {name: 클레이모어}
`)
	out, err = execute(t, "--config", cfg, "skill", build)
	require.NoError(t, err)
	// (404 + 30) × 12.5
	assert.Contains(t, out, "per hit: 5425")
}

func TestSkillsCommandWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	cfg := writeTemp(t, dir, "rocalc.yaml", "catalog:\n  driver: none\n")

	_, err := execute(t, "--config", cfg, "skills")
	require.Error(t, err)
}
