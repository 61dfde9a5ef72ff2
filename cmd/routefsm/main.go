// Package main implements the routefsm CLI for analyzing router
// "show ip route" output with a TextFSM-style template engine.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/routefsm/internal/config"
)

// version information (set via ldflags during build)
var version = "dev"

var (
	// cfgFile is the optional YAML config path
	cfgFile string
	// templateFile overrides the embedded extraction grammar
	templateFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "routefsm",
	Short: "Template-driven route table analyzer",
	Long: `routefsm extracts structured route entries from router "show ip route"
output using a TextFSM-style template, then summarizes them by protocol.

The embedded template understands Cisco IOS output; pass --template to
analyze other vendors' formats without code changes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&templateFile, "template", "", "path to a template file overriding the embedded grammar")
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves configuration, letting the --template flag win over
// both the file and environment layers.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if templateFile != "" {
		cfg.Template.Path = templateFile
	}
	return cfg, nil
}

// readInput reads the route dump from a file argument or stdin ("-" or no
// argument). Returns the content and a display name for the report.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), "stdin", nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), args[0], nil
}
