package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acip-protocol/dialogue-go/internal/config"
	"github.com/acip-protocol/dialogue-go/internal/observability/metrics"
	"github.com/acip-protocol/dialogue-go/internal/transcript"
	"github.com/acip-protocol/dialogue-go/pkg/dialogue"
	"github.com/acip-protocol/dialogue-go/pkg/logging"
)

// parseLayers validates a list of layer names from the command line.
func parseLayers(names []string) ([]dialogue.Layer, error) {
	if len(names) == 0 {
		return nil, nil
	}
	known := map[string]dialogue.Layer{}
	for _, l := range dialogue.AllLayers {
		known[string(l)] = l
	}
	layers := make([]dialogue.Layer, 0, len(names))
	for _, name := range names {
		l, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown layer %q", name)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func newCheckCmd(cfg *config.Config, logger *logging.Logger) *cobra.Command {
	var (
		strictness string
		layerNames []string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "check <transcript>",
		Short: "Score a conversation transcript for protocol compliance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := transcript.Load(args[0])
			if err != nil {
				return err
			}

			layers, err := parseLayers(layerNames)
			if err != nil {
				return err
			}

			svc := dialogue.NewService(logger, metrics.NewComplianceMetrics(nil))
			report := svc.Check(cmd.Context(), conv, dialogue.CheckOptions{
				Strictness: dialogue.Strictness(strictness),
				Layers:     layers,
			})

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd, report)
			}

			if !report.Compliant {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strictness, "strictness", cfg.Strictness, "strictness profile (strict, moderate, lenient)")
	cmd.Flags().StringSliceVar(&layerNames, "layers", nil, "layers to check (default all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	return cmd
}

func printReport(cmd *cobra.Command, report dialogue.ComplianceReport) {
	out := cmd.OutOrStdout()

	status := "NOT COMPLIANT"
	if report.Compliant {
		status = "COMPLIANT"
	}
	fmt.Fprintf(out, "%s (score %.2f)\n\n", status, report.Score)

	for _, layer := range dialogue.AllLayers {
		lr := report.Layers[layer]
		fmt.Fprintf(out, "%-20s %.2f\n", layer, lr.Score)
		for _, issue := range lr.Issues {
			fmt.Fprintf(out, "  [%s] %s\n", issue.Severity, issue.Message)
			if issue.Suggestion != "" {
				fmt.Fprintf(out, "        suggestion: %s\n", issue.Suggestion)
			}
		}
		for _, s := range lr.Suggestions {
			fmt.Fprintf(out, "  note: %s\n", s)
		}
	}
}
