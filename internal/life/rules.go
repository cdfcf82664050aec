package life

import (
	"fmt"
	"strings"
)

// Rule holds birth and survival tables indexed by live-neighbor count.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23.
var Conway = Rule{
	Birth:   [9]bool{3: true},
	Survive: [9]bool{2: true, 3: true},
}

// ParseRule reads B/S notation such as "B3/S23" or "b36/s23". The parts may
// appear in either order; an empty part means no counts.
func ParseRule(s string) (Rule, error) {
	var r Rule
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	seen := map[byte]bool{}
	for _, p := range parts {
		if p == "" {
			return r, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		kind := p[0] | 0x20
		var table *[9]bool
		switch kind {
		case 'b':
			table = &r.Birth
		case 's':
			table = &r.Survive
		default:
			return r, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		if seen[kind] {
			return r, fmt.Errorf("%w: %q", ErrInvalidRule, s)
		}
		seen[kind] = true
		for _, ch := range p[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("%w: %q", ErrInvalidRule, s)
			}
			table[ch-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule for package-level literals.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Next applies the rule to a single cell.
func (r Rule) Next(c Cell, neighbors int) Cell {
	if neighbors < 0 || neighbors > 8 {
		return Dead
	}
	if c == Alive {
		if r.Survive[neighbors] {
			return Alive
		}
		return Dead
	}
	if r.Birth[neighbors] {
		return Alive
	}
	return Dead
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for i, ok := range r.Birth {
		if ok {
			sb.WriteByte(byte('0' + i))
		}
	}
	sb.WriteString("/S")
	for i, ok := range r.Survive {
		if ok {
			sb.WriteByte(byte('0' + i))
		}
	}
	return sb.String()
}
