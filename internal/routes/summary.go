package routes

import (
	"fmt"
	"io"
)

// Category is one fixed protocol-code bucket of the summary report.
type Category struct {
	Code  string
	Label string
}

// Categories lists the report's fixed buckets in print order.
var Categories = []Category{
	{Code: "C", Label: "connected"},
	{Code: "D", Label: "EIGRP"},
	{Code: "L", Label: "Local"},
	{Code: "O", Label: "OSPF"},
	{Code: "S", Label: "static"},
}

// routeKey identifies a route for deduplication. Load-balanced routes
// produce one record per next hop; they count as a single route.
type routeKey struct {
	protocol string
	network  string
	mask     string
}

// Summary holds per-protocol counts over the deduplicated route set.
type Summary struct {
	ByProtocol map[string]int
	Unique     int
}

// Summarize deduplicates routes on (protocol, network, mask) and counts
// the distinct keys per protocol code.
func Summarize(parsed []Route) Summary {
	seen := make(map[routeKey]struct{}, len(parsed))
	counts := make(map[string]int)
	for _, rt := range parsed {
		key := routeKey{protocol: rt.Protocol, network: rt.Network, mask: rt.Mask}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		counts[rt.Protocol]++
	}
	return Summary{ByProtocol: counts, Unique: len(seen)}
}

// Count returns the deduplicated route count for a protocol code.
func (s Summary) Count(code string) int {
	return s.ByProtocol[code]
}

// Render writes the fixed-category report for the analyzed source.
func (s Summary) Render(w io.Writer, source string) error {
	lines := []string{
		"************************************************",
		"*                                              *",
		"*              Route Summary                   *",
		"*                                              *",
		"************************************************",
		"",
		"The following file was analyzed: " + source,
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, cat := range Categories {
		if _, err := fmt.Fprintf(w, "The number of %s routes is: %d\n", cat.Label, s.Count(cat.Code)); err != nil {
			return err
		}
	}
	return nil
}
