package config

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/rocalc/internal/model"
)

// maxLookups bounds parallel catalog queries.
const maxLookups = 8

// Lookup is the catalog subset used to complete a build.
type Lookup interface {
	ItemByName(ctx context.Context, name string) (*model.ItemRecord, error)
	ItemByID(ctx context.Context, id int32) (*model.ItemRecord, error)
	Skill(ctx context.Context, engName string) (*model.SkillRecord, error)
}

// Resolve fills empty item and card payloads, missing names and a missing
// skill percent from the catalog. Items unknown to the catalog keep an empty payload.
func Resolve(ctx context.Context, lookup Lookup, b *Build) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)

	for _, layer := range []map[string]*ItemSpec{b.Gear, b.Shadow, b.Costume} {
		for _, spec := range layer {
			if spec == nil {
				continue
			}
			if payload(spec.ParsedData, spec.Options).IsEmpty() {
				g.Go(func() error {
					rec, err := findItem(ctx, lookup, spec.ItemID, spec.Name)
					if err != nil {
						return err
					}
					if rec != nil {
						spec.ParsedData = string(rec.ParsedData)
						// set partners are matched by name
						if spec.Name == "" {
							spec.Name = rec.NameKr
						}
						if spec.CardSlots == 0 {
							spec.CardSlots = rec.Slots
						}
					}
					return nil
				})
			}
			for _, c := range spec.Cards {
				if c == nil || !payload(c.ParsedData, c.Options).IsEmpty() {
					continue
				}
				g.Go(func() error {
					rec, err := findItem(ctx, lookup, c.ItemID, c.Name)
					if err != nil {
						return err
					}
					if rec != nil {
						c.ParsedData = string(rec.ParsedData)
						if c.Name == "" {
							c.Name = rec.NameKr
						}
					}
					return nil
				})
			}
		}
	}

	if s := b.Skill; s != nil && s.ID != "" && s.BasePercent == 0 {
		g.Go(func() error {
			rec, err := lookup.Skill(ctx, s.ID)
			if err != nil {
				return fmt.Errorf("skill %s: %w", s.ID, err)
			}
			if rec == nil {
				return nil
			}
			s.BasePercent = rec.DamagePercent
			if s.Hits == 0 {
				s.Hits = rec.Hits
			}
			if s.Name == "" {
				s.Name = rec.NameKr
			}
			return nil
		})
	}

	return g.Wait()
}

func findItem(ctx context.Context, lookup Lookup, id int32, name string) (*model.ItemRecord, error) {
	if id > 0 {
		rec, err := lookup.ItemByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", id, err)
		}
		if rec != nil {
			return rec, nil
		}
	}
	if name == "" {
		return nil, nil
	}
	rec, err := lookup.ItemByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	return rec, nil
}
