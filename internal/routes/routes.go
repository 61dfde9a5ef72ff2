// Package routes parses Cisco IOS "show ip route" output into structured
// route entries and summarizes them by protocol.
package routes

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fyrsmithlabs/routefsm/pkg/textfsm"
)

// ciscoIOSShowIPRoute is the ntc-templates grammar for IOS "show ip route".
//
//go:embed templates/cisco_ios_show_ip_route.template
var ciscoIOSShowIPRoute string

// Route is one parsed routing-table entry. Fields mirror the template's
// value declarations; unmatched fields are empty strings.
type Route struct {
	Protocol  string `json:"protocol"`
	Type      string `json:"type,omitempty"`
	Network   string `json:"network"`
	Mask      string `json:"mask,omitempty"`
	Distance  string `json:"distance,omitempty"`
	Metric    string `json:"metric,omitempty"`
	NextHopIP string `json:"nexthop_ip,omitempty"`
	NextHopIF string `json:"nexthop_if,omitempty"`
	Uptime    string `json:"uptime,omitempty"`
}

// FromRecord maps an emitted record onto a Route.
func FromRecord(rec textfsm.Record) Route {
	return Route{
		Protocol:  rec.Get("PROTOCOL"),
		Type:      rec.Get("TYPE"),
		Network:   rec.Get("NETWORK"),
		Mask:      rec.Get("MASK"),
		Distance:  rec.Get("DISTANCE"),
		Metric:    rec.Get("METRIC"),
		NextHopIP: rec.Get("NEXTHOP_IP"),
		NextHopIF: rec.Get("NEXTHOP_IF"),
		Uptime:    rec.Get("UPTIME"),
	}
}

// DefaultTemplate compiles the embedded grammar. The embedded asset is
// validated by tests, so a compile failure here means a broken build.
func DefaultTemplate() (*textfsm.Template, error) {
	tmpl, err := textfsm.Compile(ciscoIOSShowIPRoute)
	if err != nil {
		return nil, fmt.Errorf("embedded show ip route template: %w", err)
	}
	return tmpl, nil
}

// LoadTemplate compiles a caller-supplied template file, falling back to
// the embedded grammar when path is empty. Alternative vendors' route
// table formats slot in this way without code changes.
func LoadTemplate(path string) (*textfsm.Template, error) {
	if path == "" {
		return DefaultTemplate()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	tmpl, err := textfsm.Compile(string(raw))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}

// Parse extracts every route entry from raw "show ip route" output.
func Parse(tmpl *textfsm.Template, input string) []Route {
	records := tmpl.ParseText(input)
	parsed := make([]Route, 0, len(records))
	for _, rec := range records {
		parsed = append(parsed, FromRecord(rec))
	}
	return parsed
}
