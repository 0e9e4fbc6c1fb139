package model

import (
	"fmt"
	"strings"
)

// Grade is the coarse enhancement tier of an equipment piece.
// Zero value is GradeNone.
type Grade uint8

const (
	GradeNone Grade = iota
	GradeD
	GradeC
	GradeB
	GradeA
)

// gradeSuffix is stripped from Korean grade labels ("B등급" → "B").
const gradeSuffix = "등급"

// Grades lists the enhancement tiers in ascending order (D first).
var Grades = [...]Grade{GradeD, GradeC, GradeB, GradeA}

// Rank returns the comparable tier index: D=0, C=1, B=2, A=3, none=-1.
func (g Grade) Rank() int {
	switch g {
	case GradeD:
		return 0
	case GradeC:
		return 1
	case GradeB:
		return 2
	case GradeA:
		return 3
	default:
		return -1
	}
}

// Key returns the key used by the grade bonus table of an item payload.
// GradeNone has no key.
func (g Grade) Key() string {
	switch g {
	case GradeD:
		return "D"
	case GradeC:
		return "C"
	case GradeB:
		return "B"
	case GradeA:
		return "A"
	default:
		return ""
	}
}

// String returns human-readable grade name.
func (g Grade) String() string {
	if g == GradeNone {
		return "None"
	}
	if k := g.Key(); k != "" {
		return k
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(g))
}

// ParseGrade parses "D", "d", "D등급", "None", "무등급" and "".
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), gradeSuffix))
	switch strings.ToUpper(s) {
	case "", "NONE", "무":
		return GradeNone, nil
	case "D":
		return GradeD, nil
	case "C":
		return GradeC, nil
	case "B":
		return GradeB, nil
	case "A":
		return GradeA, nil
	}
	return GradeNone, fmt.Errorf("unknown grade %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler (used by yaml build files).
func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
