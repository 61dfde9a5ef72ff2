package textfsm

import "regexp"

// Action is the control effect of a matched rule.
type Action uint8

const (
	// ActionNone applies captures only and stays on course.
	ActionNone Action = iota
	// ActionNext is the explicit spelling of ActionNone: consume the
	// line, keep the table, stay in the current state unless the rule
	// also names a transition.
	ActionNext
	// ActionRecord emits the current table as a record, subject to
	// Required validation, then resets all non-Filldown values.
	ActionRecord
	// ActionClear resets all non-Filldown values without emitting.
	ActionClear
	// ActionClearall resets every value, Filldown included.
	ActionClearall
)

// String returns the grammar keyword for the action.
func (a Action) String() string {
	switch a {
	case ActionNext:
		return "Next"
	case ActionRecord:
		return "Record"
	case ActionClear:
		return "Clear"
	case ActionClearall:
		return "Clearall"
	default:
		return ""
	}
}

// Rule is one line pattern of a state, with its action and optional
// transition target.
type Rule struct {
	Match     string // expanded regex source, anchored at line start
	Action    Action
	NextState string // empty means stay in the current state

	re *regexp.Regexp
}

// State is a named, ordered rule list. Rules are evaluated top to bottom
// per input line; the first match wins.
type State struct {
	Name  string
	Rules []*Rule
}

// Template is a compiled extraction grammar: ordered value declarations
// plus named states. A Template is immutable after Compile and safe to
// share across concurrent runs.
type Template struct {
	Values []Value
	States map[string]*State

	index map[string]int // value name -> column
}

// Header returns the declared value names in column order.
func (t *Template) Header() []string {
	names := make([]string, len(t.Values))
	for i, v := range t.Values {
		names[i] = v.Name
	}
	return names
}
