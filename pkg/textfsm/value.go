package textfsm

import (
	"fmt"
	"regexp"
	"strings"
)

// Option is a set of flags modifying how a declared value behaves
// during extraction.
type Option uint8

const (
	// Required suppresses record emission while the value is unset.
	Required Option = 1 << iota
	// Filldown keeps a captured value across records until Clearall
	// resets it or a later line recaptures it.
	Filldown
	// List accumulates every capture instead of overwriting.
	List
)

// Value is one declared capturable field of a template. Declaration order
// defines the column order of emitted records.
type Value struct {
	Name    string
	Options Option
	Pattern string // regex fragment, without the outer group parens
}

// Has reports whether the given option flag is set.
func (v Value) Has(opt Option) bool {
	return v.Options&opt != 0
}

// group returns the named capture group substituted for ${Name} in rules.
func (v Value) group() string {
	return "(?P<" + v.Name + ">" + v.Pattern + ")"
}

var valueNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func parseOptions(s string) (Option, error) {
	var opts Option
	for _, name := range strings.Split(s, ",") {
		switch name {
		case "Required":
			opts |= Required
		case "Filldown":
			opts |= Filldown
		case "List":
			opts |= List
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
	}
	return opts, nil
}

// parseValueLine parses a `Value [Options] NAME (pattern)` declaration.
func parseValueLine(line string) (Value, error) {
	open := strings.Index(line, "(")
	if open < 0 || !strings.HasSuffix(line, ")") {
		return Value{}, ErrMalformedValue
	}
	pattern := line[open+1 : len(line)-1]

	var v Value
	head := strings.Fields(line[:open])
	switch len(head) {
	case 2: // Value NAME
		v.Name = head[1]
	case 3: // Value Options NAME
		opts, err := parseOptions(head[1])
		if err != nil {
			return Value{}, err
		}
		v.Options = opts
		v.Name = head[2]
	default:
		return Value{}, ErrMalformedValue
	}

	if !valueNameRe.MatchString(v.Name) {
		return Value{}, fmt.Errorf("%w: invalid name %q", ErrMalformedValue, v.Name)
	}
	v.Pattern = pattern
	if _, err := regexp.Compile(v.group()); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}
	return v, nil
}
