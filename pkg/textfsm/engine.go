package textfsm

import "strings"

// Run is a single extraction pass over one input text. Each Run owns its
// value table and state pointer; construct a fresh Run per input.
type Run struct {
	tmpl  *Template
	lines []string
	pos   int
	state *State
	tab   *table
	done  bool
}

// Run starts a new extraction pass over input, positioned at the Start
// state with an empty value table. Records are produced lazily through
// Next; abandoning a Run mid-input has no side effects.
func (t *Template) Run(input string) *Run {
	return &Run{
		tmpl:  t,
		lines: strings.Split(input, "\n"),
		state: t.States[startState],
		tab:   newTable(len(t.Values)),
	}
}

// ParseText runs the template over input and collects every record.
func (t *Template) ParseText(input string) []Record {
	var records []Record
	run := t.Run(input)
	for {
		rec, ok := run.Next()
		if !ok {
			return records
		}
		records = append(records, rec)
	}
}

// Next advances through the input until the next record is emitted. The
// second return is false once the input is exhausted or the FSM has
// transitioned to EOF.
func (r *Run) Next() (Record, bool) {
	for !r.done && r.pos < len(r.lines) {
		line := r.lines[r.pos]
		r.pos++
		if rec, emitted := r.applyLine(line); emitted {
			return rec, true
		}
	}
	return Record{}, false
}

// applyLine matches line against the current state's rules in order. Lines
// matching no rule are skipped; CLI dumps are full of decoration the
// grammar never names.
func (r *Run) applyLine(line string) (Record, bool) {
	for _, rule := range r.state.Rules {
		loc := rule.re.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		r.capture(rule, line, loc)

		var rec Record
		var emitted bool
		switch rule.Action {
		case ActionRecord:
			rec, emitted = r.emit()
		case ActionClear:
			r.tab.clear(r.tmpl.Values, false)
		case ActionClearall:
			r.tab.clear(r.tmpl.Values, true)
		}

		switch rule.NextState {
		case "":
		case eofState:
			r.done = true
		default:
			r.state = r.tmpl.States[rule.NextState]
		}
		return rec, emitted
	}
	return Record{}, false
}

// capture copies every participating named group into the value table.
// Captures apply regardless of the rule's action. Hand-written groups
// whose name matches no declared value are ignored; only declarations
// have columns.
func (r *Run) capture(rule *Rule, line string, loc []int) {
	for gi, name := range rule.re.SubexpNames() {
		if name == "" {
			continue
		}
		col, ok := r.tmpl.index[name]
		if !ok {
			continue
		}
		start, end := loc[2*gi], loc[2*gi+1]
		if start < 0 {
			continue
		}
		r.tab.assign(col, r.tmpl.Values[col], line[start:end])
	}
}

// emit validates Required values and snapshots the table as a Record.
// Incomplete records are dropped silently, matching the reference grammar;
// the non-Filldown reset still happens either way.
func (r *Run) emit() (Record, bool) {
	complete := true
	for col, v := range r.tmpl.Values {
		if v.Has(Required) && !r.tab.set[col] {
			complete = false
			break
		}
	}

	var rec Record
	if complete {
		rec = newRecord(r.tmpl, r.tab)
	}
	r.tab.clear(r.tmpl.Values, false)
	return rec, complete
}

// table is the mutable current-value state of one Run.
type table struct {
	vals  []string
	lists [][]string
	set   []bool
}

func newTable(n int) *table {
	return &table{
		vals:  make([]string, n),
		lists: make([][]string, n),
		set:   make([]bool, n),
	}
}

func (tb *table) assign(col int, v Value, s string) {
	if v.Has(List) {
		tb.lists[col] = append(tb.lists[col], s)
	} else {
		tb.vals[col] = s
	}
	tb.set[col] = true
}

// clear resets values to unset. Filldown values survive unless all is set.
func (tb *table) clear(values []Value, all bool) {
	for col, v := range values {
		if !all && v.Has(Filldown) {
			continue
		}
		tb.vals[col] = ""
		tb.lists[col] = nil
		tb.set[col] = false
	}
}
