package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/routefsm/internal/logging"
	"github.com/fyrsmithlabs/routefsm/internal/routes"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize route counts by protocol",
	Long: `Summarize parses a "show ip route" dump and prints the number of
connected, EIGRP, Local, OSPF, and static routes. Load-balanced routes
(same protocol, network, and mask with different next hops) count once.

Examples:
  # Summarize a saved dump
  routefsm summarize router1.txt

  # Summarize from stdin
  ssh router1 "show ip route" | routefsm summarize -

  # Use another vendor's template
  routefsm summarize --template nxos.template router2.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
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

	runID := uuid.NewString()
	parsed := routes.Parse(tmpl, content)
	summary := routes.Summarize(parsed)

	logger.Info("analysis complete",
		zap.String("run_id", runID),
		zap.String("source", source),
		zap.Int("records", len(parsed)),
		zap.Int("unique_routes", summary.Unique),
	)

	return summary.Render(cmd.OutOrStdout(), source)
}
