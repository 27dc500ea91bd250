package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OptionID is the ordinal of an option: 0 is A, 1 is B and so on.
type OptionID int

const (
	OptionA OptionID = iota
	OptionB
	OptionC
)

// Letter returns the option letter, or the number for ids past Z.
func (o OptionID) Letter() string {
	if o >= 0 && o < 26 {
		return string(rune('A' + o))
	}
	return strconv.Itoa(int(o))
}

func (o OptionID) String() string {
	return o.Letter()
}

// ParseOptionID accepts a single letter (case-insensitive) or a
// non-negative ordinal.
func ParseOptionID(s string) (OptionID, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return OptionID(c - 'A'), nil
		case c >= 'a' && c <= 'z':
			return OptionID(c - 'a'), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid option %q", s)
	}
	return OptionID(n), nil
}

// UnmarshalYAML lets answer keys be written as letters.
func (o *OptionID) UnmarshalYAML(value *yaml.Node) error {
	id, err := ParseOptionID(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = id
	return nil
}

// MarshalYAML writes the option as its letter.
func (o OptionID) MarshalYAML() (any, error) {
	return o.Letter(), nil
}
