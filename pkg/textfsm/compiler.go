package textfsm

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	startState = "Start"
	eofState   = "EOF"
)

var (
	stateNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	substRe     = regexp.MustCompile(`\$\{(\w+)\}`)
)

var actionKeywords = map[string]Action{
	"Next":     ActionNext,
	"Record":   ActionRecord,
	"Clear":    ActionClear,
	"Clearall": ActionClearall,
}

// Compile parses a template definition into an immutable Template.
//
// The definition is line oriented: `Value [Options] NAME (pattern)`
// declarations first, then state blocks. A bare identifier line opens a
// state; the `^`-prefixed lines that follow are its rules. Blank lines and
// `#` comments are ignored everywhere. A state literally named Start is
// mandatory; a state literally named EOF takes no rules and terminates the
// run when entered.
func Compile(text string) (*Template, error) {
	t := &Template{
		States: make(map[string]*State),
		index:  make(map[string]int),
	}

	var current *State
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue

		case current == nil && strings.HasPrefix(line, "Value "):
			v, err := parseValueLine(line)
			if err != nil {
				return nil, compileError(lineNo, line, err)
			}
			if _, dup := t.index[v.Name]; dup {
				return nil, compileError(lineNo, line, fmt.Errorf("%w: %s", ErrDuplicateValue, v.Name))
			}
			t.index[v.Name] = len(t.Values)
			t.Values = append(t.Values, v)

		case strings.HasPrefix(line, "^"):
			if current == nil {
				return nil, compileError(lineNo, line, fmt.Errorf("%w: rule before any state", ErrMalformedRule))
			}
			if current.Name == eofState {
				return nil, compileError(lineNo, line, fmt.Errorf("%w: EOF state takes no rules", ErrMalformedRule))
			}
			rule, err := t.parseRule(line)
			if err != nil {
				return nil, compileError(lineNo, line, err)
			}
			current.Rules = append(current.Rules, rule)

		case stateNameRe.MatchString(line):
			if _, dup := t.States[line]; dup {
				return nil, compileError(lineNo, line, fmt.Errorf("%w: %s", ErrDuplicateState, line))
			}
			current = &State{Name: line}
			t.States[line] = current

		default:
			return nil, compileError(lineNo, line, fmt.Errorf("%w: unrecognized line", ErrMalformedRule))
		}
	}

	if _, ok := t.States[startState]; !ok {
		return nil, compileError(0, "", ErrMissingStartState)
	}

	// Transition targets can reference states declared later, so they are
	// validated after the full walk.
	for _, st := range t.States {
		for _, rule := range st.Rules {
			if rule.NextState == "" || rule.NextState == eofState {
				continue
			}
			if _, ok := t.States[rule.NextState]; !ok {
				return nil, compileError(0, rule.Match, fmt.Errorf("%w: %s", ErrUnknownState, rule.NextState))
			}
		}
	}

	return t, nil
}

// parseRule parses `^pattern [-> Action|State|Action State]`, expanding
// every ${NAME} reference against the declared values.
func (t *Template) parseRule(line string) (*Rule, error) {
	rule := &Rule{}

	pattern := line
	if idx := strings.LastIndex(line, " -> "); idx >= 0 {
		pattern = strings.TrimSpace(line[:idx])
		directive := strings.TrimSpace(line[idx+len(" -> "):])
		tokens := strings.FieldsFunc(directive, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		switch len(tokens) {
		case 1:
			if action, ok := actionKeywords[tokens[0]]; ok {
				rule.Action = action
			} else if stateNameRe.MatchString(tokens[0]) {
				rule.NextState = tokens[0]
			} else {
				return nil, fmt.Errorf("%w: bad directive %q", ErrMalformedRule, directive)
			}
		case 2:
			action, ok := actionKeywords[tokens[0]]
			if !ok {
				return nil, fmt.Errorf("%w: unknown action %q", ErrMalformedRule, tokens[0])
			}
			if !stateNameRe.MatchString(tokens[1]) {
				return nil, fmt.Errorf("%w: bad state name %q", ErrMalformedRule, tokens[1])
			}
			rule.Action = action
			rule.NextState = tokens[1]
		default:
			return nil, fmt.Errorf("%w: bad directive %q", ErrMalformedRule, directive)
		}
	}

	expanded, err := t.expand(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}

	rule.Match = expanded
	rule.re = re
	return rule, nil
}

// expand substitutes ${NAME} tokens with the value's named capture group.
func (t *Template) expand(pattern string) (string, error) {
	var missing string
	expanded := substRe.ReplaceAllStringFunc(pattern, func(tok string) string {
		name := tok[2 : len(tok)-1]
		col, ok := t.index[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return tok
		}
		return t.Values[col].group()
	})
	if missing != "" {
		return "", fmt.Errorf("%w: ${%s}", ErrUndefinedValue, missing)
	}
	return expanded, nil
}
