package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/rocalc/internal/engine"
	"github.com/udisondev/rocalc/internal/game/skill"
	"github.com/udisondev/rocalc/internal/model"
	"github.com/udisondev/rocalc/internal/modifier"
)

func newDamageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "damage BUILD",
		Short: "Compute min/max/crit damage of a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, res, err := a.compute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDamage(cmd.OutOrStdout(), in, res)
			return nil
		},
	}
}

func newModsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mods BUILD",
		Short: "Show the aggregated equipment modifiers of a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := a.compute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printMods(cmd.OutOrStdout(), res.Mods)
			return nil
		},
	}
}

func newSkillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skill BUILD",
		Short: "Show the tooltip damage preview of the build skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, res, err := a.compute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if in.Skill == nil {
				return fmt.Errorf("build %s has no skill", args[0])
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", displayName(in.Skill), in.Skill.ID)
			fmt.Fprintf(w, "percent: %d%% (base %d%%)\n", res.Preview.Percent, in.Skill.BasePercent)
			fmt.Fprintf(w, "per hit: %d\n", res.Preview.PerHit)
			fmt.Fprintf(w, "total:   %d (x%d)\n", res.Preview.Total, res.Hits)
			return nil
		},
	}
}

func newSkillsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skills [KEYWORD]",
		Short: "List attack skills from the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.requireCatalog(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			var list []*model.SkillRecord
			if len(args) == 1 {
				list, err = c.SearchSkills(ctx, args[0])
			} else {
				list, err = c.SkillsWithDamage(ctx)
			}
			if err != nil {
				return fmt.Errorf("listing skills: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, s := range list {
				fmt.Fprintf(w, "%-24s %-16s %6d%% x%d\n", s.EngName, s.NameKr, s.DamagePercent, model.SanitizeHits(s.Hits))
			}
			return nil
		},
	}
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply catalog schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := a.requireCatalog(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Migrate(ctx); err != nil {
				return err
			}
			a.log.Info("catalog migrated", "driver", a.cfg.Catalog.Driver)
			return nil
		},
	}
}

// catalogFile is the import format: items and skills as stored in the catalog.
type catalogFile struct {
	Items []struct {
		ID         int32  `yaml:"id"`
		NameKr     string `yaml:"name_kr"`
		Slots      int    `yaml:"slots"`
		ParsedData string `yaml:"parsed_data"`
	} `yaml:"items"`
	Skills []struct {
		EngName       string `yaml:"eng_name"`
		NameKr        string `yaml:"name_kr"`
		MaxLevel      int    `yaml:"max_level"`
		DamagePercent int    `yaml:"damage_percent"`
		Hits          int    `yaml:"hits"`
	} `yaml:"skills"`
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Upsert items and skills from a YAML file into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var f catalogFile
			if err := yaml.Unmarshal(data, &f); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			c, err := a.requireCatalog(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			for _, it := range f.Items {
				rec := &model.ItemRecord{ID: it.ID, NameKr: it.NameKr, Slots: it.Slots}
				if it.ParsedData != "" {
					if _, err := modifier.ParseJSON([]byte(it.ParsedData)); err != nil {
						return fmt.Errorf("item %d: %w", it.ID, err)
					}
					rec.ParsedData = []byte(it.ParsedData)
				}
				if err := c.UpsertItem(ctx, rec); err != nil {
					return err
				}
			}
			for _, s := range f.Skills {
				rec := &model.SkillRecord{
					EngName:       s.EngName,
					NameKr:        s.NameKr,
					MaxLevel:      s.MaxLevel,
					DamagePercent: s.DamagePercent,
					Hits:          s.Hits,
				}
				if err := c.UpsertSkill(ctx, rec); err != nil {
					return err
				}
			}
			a.log.Info("catalog imported", "items", len(f.Items), "skills", len(f.Skills))
			return nil
		},
	}
}

func displayName(s *model.SkillDescriptor) string {
	if s.Name != "" {
		return s.Name
	}
	return skill.SkillName(s.ID)
}

func printDamage(w io.Writer, in engine.Input, res engine.Result) {
	wp := res.Weapon
	fmt.Fprintf(w, "weapon:  %s lv%d atk %d +%d (%s) vs %s, penalty %d%%\n",
		wp.Type, wp.Level, wp.Atk, wp.Refine, wp.Type.Label(), in.Target.Size, res.Range.Penalty)
	fmt.Fprintf(w, "status:  %.0f\n", res.Damage.StatusATK)
	if in.Skill != nil {
		fmt.Fprintf(w, "skill:   %s %d%% x%d\n", displayName(in.Skill), res.Percent, res.Hits)
	} else {
		fmt.Fprintln(w, "skill:   none")
	}
	fmt.Fprintf(w, "min:     %d\n", res.Damage.Min)
	fmt.Fprintf(w, "max:     %d\n", res.Damage.Max)
	fmt.Fprintf(w, "crit:    %d\n", res.Damage.Crit)
	fmt.Fprintf(w, "dps:     %d\n", res.Damage.DPS)
}

func printMods(w io.Writer, v modifier.Vector) {
	rows := []struct {
		label string
		value float64
		pct   bool
	}{
		{"atk", v.Atk, false},
		{"matk", v.Matk, false},
		{"p_atk", v.PAtk, true},
		{"s_matk", v.SMatk, true},
		{"atk%", v.AtkPercent, true},
		{"melee_dmg", v.MeleeDmg, true},
		{"range_dmg", v.RangeDmg, true},
		{"ele_all_dmg", v.EleAllDmg, true},
		{"size_all_dmg", v.SizeAllDmg, true},
		{"race_all_dmg", v.RaceAllDmg, true},
		{"boss_dmg", v.BossDmg, true},
		{"cri_dmg", v.CriDmg, true},
		{"ignore_def", v.IgnoreDef, true},
		{"cooldown", v.CooldownReduction, true},
		{"str", v.Str, false},
		{"agi", v.Agi, false},
		{"vit", v.Vit, false},
		{"int", v.Int, false},
		{"dex", v.Dex, false},
		{"luk", v.Luk, false},
	}
	for _, r := range rows {
		if r.value == 0 {
			continue
		}
		suffix := ""
		if r.pct {
			suffix = "%"
		}
		fmt.Fprintf(w, "%-14s %+g%s\n", r.label, engine.Round2(r.value), suffix)
	}

	ids := make([]string, 0, len(v.SkillDmg))
	for id := range v.SkillDmg {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "skill %-8s %+g%% (%s)\n", skill.SkillName(id), engine.Round2(v.SkillDmg[id]), id)
	}
	for _, set := range v.ActiveSets {
		fmt.Fprintf(w, "set: %s\n", set)
	}
}
