package textfsm

import "strings"

// Record is one emitted row: the declared values' captured strings in
// declaration order, frozen at the moment of the Record action.
type Record struct {
	tmpl   *Template
	fields []string
	lists  [][]string
}

func newRecord(t *Template, tb *table) Record {
	rec := Record{
		tmpl:   t,
		fields: make([]string, len(t.Values)),
	}
	for col, v := range t.Values {
		if v.Has(List) {
			items := make([]string, len(tb.lists[col]))
			copy(items, tb.lists[col])
			if rec.lists == nil {
				rec.lists = make([][]string, len(t.Values))
			}
			rec.lists[col] = items
			rec.fields[col] = strings.Join(items, " ")
		} else {
			rec.fields[col] = tb.vals[col]
		}
	}
	return rec
}

// Fields returns the captured strings in declaration order. The returned
// slice is owned by the Record and must not be modified.
func (r Record) Fields() []string {
	return r.fields
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.fields)
}

// Get returns the captured string for the named value, or "" if the name
// is not declared. List values are returned space-joined.
func (r Record) Get(name string) string {
	if r.tmpl == nil {
		return ""
	}
	col, ok := r.tmpl.index[name]
	if !ok {
		return ""
	}
	return r.fields[col]
}

// GetList returns the accumulated captures for a List value. For non-List
// values it returns a single-element slice holding the current capture.
func (r Record) GetList(name string) []string {
	if r.tmpl == nil {
		return nil
	}
	col, ok := r.tmpl.index[name]
	if !ok {
		return nil
	}
	if r.lists != nil && r.lists[col] != nil {
		return r.lists[col]
	}
	return []string{r.fields[col]}
}
