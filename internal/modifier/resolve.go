package modifier

import (
	"log/slog"

	"github.com/udisondev/rocalc/internal/model"
)

// Entry is one equipped piece (gear item or card) prepared for aggregation.
// Source is nil when the payload was empty or could not be parsed; such an
// entry contributes nothing but can still be a set partner.
type Entry struct {
	Name   string
	Refine int
	Grade  model.Grade
	Source *Source
}

// Resolve picks the parsing strategy for a payload: structured JSON when
// present, legacy option lines otherwise. A malformed JSON payload is logged
// and yields nil.
func Resolve(name string, p model.Payload, log *slog.Logger) *Source {
	if len(p.ParsedData) > 0 {
		src, err := ParseJSON(p.ParsedData)
		if err != nil {
			if log != nil {
				log.Warn("item payload ignored", "item", name, "err", err)
			}
			return nil
		}
		return src
	}
	if len(p.Options) > 0 {
		return ParseOptions(p.Options)
	}
	return nil
}

// Entries flattens gear sets into aggregation entries: every item in slot
// order followed by its cards. Cards carry no refine and no grade.
func Entries(log *slog.Logger, sets ...*model.GearSet) []Entry {
	var entries []Entry
	for _, g := range sets {
		for _, item := range g.Items() {
			entries = append(entries, Entry{
				Name:   item.Name,
				Refine: item.Refine,
				Grade:  item.Grade,
				Source: Resolve(item.Name, item.Payload, log),
			})
			for _, c := range item.Cards() {
				entries = append(entries, Entry{
					Name:   c.Name,
					Source: Resolve(c.Name, c.Payload, log),
				})
			}
		}
	}
	return entries
}
