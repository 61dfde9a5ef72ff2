package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/routefsm/internal/logging"
	"github.com/fyrsmithlabs/routefsm/internal/routes"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract route entries as JSON or a table",
	Long: `Parse extracts every route entry from a "show ip route" dump and
prints them without deduplication.

Examples:
  # JSON records
  routefsm parse --output json router1.txt

  # Aligned table on the terminal
  routefsm parse router1.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "table", "output format: table or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	content, source, err := readInput(args)
	if err != nil {
		return err
	}
	tmpl, err := routes.LoadTemplate(cfg.Template.Path)
	if err != nil {
		return err
	}

	parsed := routes.Parse(tmpl, content)
	logger.Info("parse complete",
		zap.String("run_id", uuid.NewString()),
		zap.String("source", source),
		zap.Int("records", len(parsed)),
	)

	switch parseOutput {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	case "table":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PROTO\tNETWORK\tMASK\tNEXTHOP\tINTERFACE\tUPTIME")
		for _, rt := range parsed {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rt.Protocol, rt.Network, rt.Mask, rt.NextHopIP, rt.NextHopIF, rt.Uptime)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q: must be table or json", parseOutput)
	}
}
