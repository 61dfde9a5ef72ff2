// Package textfsm implements a template-driven finite-state text extractor
// for semi-structured, line-oriented CLI output.
//
// # Overview
//
// A template declares named values with capture patterns, then a set of
// states whose rules match input lines one at a time. Matched captures
// accumulate in a per-run value table; a Record action snapshots the table
// as one output row. The grammar follows the TextFSM template format used
// by the ntc-templates collection.
//
// # Usage
//
// Compile once, run per input:
//
//	tmpl, err := textfsm.Compile(definition)
//	if err != nil {
//	    return err
//	}
//	for _, rec := range tmpl.ParseText(output) {
//	    fmt.Println(rec.Get("NETWORK"))
//	}
//
// Or pull records lazily:
//
//	run := tmpl.Run(output)
//	for {
//	    rec, ok := run.Next()
//	    if !ok {
//	        break
//	    }
//	    handle(rec)
//	}
//
// # Value options
//
//   - Required: a Record action is suppressed while the value is unset.
//   - Filldown: the captured value persists across records and Clear
//     actions until Clearall resets it or a later line recaptures it.
//   - List: captures accumulate instead of overwriting.
//
// # Permissive runtime policy
//
// Input text never fails a run. Lines matching no rule in the current
// state are skipped, and records missing a Required value are dropped
// without emission or error. Both behaviors are inherited from the
// reference TextFSM semantics; downstream summary counts depend on them,
// so they are deliberate and stable, not bugs to fix.
//
// Only the template itself can fail, at Compile time, with a
// *CompileError wrapping one of the package's sentinel errors.
//
// One divergence from Python TextFSM: exhausting the input never emits a
// final implicit record. Python emits one unless the template declares an
// explicit EOF state; here the run simply stops either way. Templates
// written against the implicit-emission behavior need a closing rule (or
// an explicit Record before end of input) to produce their last record.
package textfsm
