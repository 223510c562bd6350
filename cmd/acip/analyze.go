package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acip-protocol/dialogue-go/internal/config"
	"github.com/acip-protocol/dialogue-go/internal/observability/metrics"
	"github.com/acip-protocol/dialogue-go/internal/transcript"
	"github.com/acip-protocol/dialogue-go/pkg/dialogue"
	"github.com/acip-protocol/dialogue-go/pkg/logging"
)

func newAnalyzeCmd(cfg *config.Config, logger *logging.Logger) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Produce a diagnostic profile of a conversation transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := transcript.Load(args[0])
			if err != nil {
				return err
			}

			svc := dialogue.NewService(logger, metrics.NewComplianceMetrics(nil))
			analysis := svc.Analyze(cmd.Context(), conv)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			printAnalysis(cmd, analysis)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the analysis as JSON")
	return cmd
}

func printAnalysis(cmd *cobra.Command, a dialogue.ConversationAnalysis) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Messages: %d (user %d, assistant %d, system %d)\n",
		a.MessageCount,
		a.MessagesByRole[dialogue.RoleUser],
		a.MessagesByRole[dialogue.RoleAssistant],
		a.MessagesByRole[dialogue.RoleSystem],
	)

	fmt.Fprintf(out, "Dependency risk: %s (frequency %s, intensity %s)\n",
		a.DependencyRisk.RiskLevel,
		a.DependencyRisk.FrequencyPattern,
		a.DependencyRisk.EmotionalIntensity,
	)

	for _, p := range a.Patterns {
		fmt.Fprintf(out, "Pattern %-22s x%d\n", p.Type, p.Frequency)
	}

	if a.SensitiveData.Detected {
		fmt.Fprintf(out, "Sensitive data: %d match(es) in categories %v\n",
			len(a.SensitiveData.Locations), a.SensitiveData.Categories)
	}

	for _, c := range a.EthicalConcerns {
		fmt.Fprintf(out, "Ethical concern [%s/%s]: %s\n", c.Category, c.Severity, c.Description)
	}

	fmt.Fprintf(out, "Quality: identity %.0f, uncertainty %.2f, boundary %.2f, helpfulness %.2f\n",
		a.Quality.IdentityDisclosureRate,
		a.Quality.UncertaintyExpressionRate,
		a.Quality.BoundaryMaintenanceRate,
		a.Quality.HelpfulnessEstimate,
	)
}
