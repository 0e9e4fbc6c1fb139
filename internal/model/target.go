package model

import (
	"fmt"
	"strings"
)

// Size is the creature size class of a target.
type Size uint8

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeCount
)

// String returns human-readable size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// ParseSize accepts "small"/"medium"/"large", "0"/"1"/"2" and 소형/중형/대형.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "0", "소형":
		return SizeSmall, nil
	case "medium", "1", "중형":
		return SizeMedium, nil
	case "large", "2", "대형":
		return SizeLarge, nil
	}
	return 0, fmt.Errorf("unknown size %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TargetProfile is the defender side of the damage formula.
// Def is expected to be >= 0; negative values are clamped by the formula.
type TargetProfile struct {
	Def  int  `yaml:"def"`
	Size Size `yaml:"size"`
	Boss bool `yaml:"boss"`
}
