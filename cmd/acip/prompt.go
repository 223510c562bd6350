package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acip-protocol/dialogue-go/internal/config"
	"github.com/acip-protocol/dialogue-go/pkg/prompts"
)

func newPromptCmd(cfg *config.Config) *cobra.Command {
	var (
		language        string
		style           string
		modelName       string
		capabilities    []string
		limitations     []string
		knowledgeCutoff string
		aiName          string
		includeRes      bool
		crisisHotline   string
		mentalHealth    string
	)

	cmd := &cobra.Command{
		Use:   "prompt <template>",
		Short: "Generate protocol prompt text",
		Long: `Generate the canned prompt text for one protocol layer. Templates:
trust-disclosure, boundary-check, ethics-guard, onboarding, dependency-alert.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := prompts.Language(language)

			var text string
			var err error
			switch args[0] {
			case "trust-disclosure":
				text, err = prompts.TrustDisclosure(prompts.TrustDisclosureOptions{
					ModelName:       modelName,
					Capabilities:    capabilities,
					Limitations:     limitations,
					KnowledgeCutoff: knowledgeCutoff,
					Style:           prompts.DisclosureStyle(style),
					Language:        lang,
				})
			case "boundary-check":
				var res *prompts.CrisisResources
				if crisisHotline != "" || mentalHealth != "" {
					res = &prompts.CrisisResources{Crisis: crisisHotline, MentalHealth: mentalHealth}
				}
				text, err = prompts.BoundaryCheck(prompts.BoundaryCheckOptions{
					SupportLevel: prompts.SupportLevel(style),
					Resources:    res,
					Language:     lang,
				})
			case "ethics-guard":
				text, err = prompts.EthicsGuard(prompts.EthicsGuardOptions{
					Strictness: prompts.EnforcementLevel(style),
					Language:   lang,
				})
			case "onboarding":
				text, err = prompts.Onboarding(prompts.OnboardingOptions{
					AIName:   aiName,
					Style:    prompts.OnboardingStyle(style),
					Language: lang,
				})
			case "dependency-alert":
				text, err = prompts.DependencyAlert(prompts.DependencyAlertOptions{
					Severity:             prompts.AlertSeverity(style),
					IncludeResources:     includeRes,
					CrisisHotline:        crisisHotline,
					MentalHealthResource: mentalHealth,
					Language:             lang,
				})
			default:
				return fmt.Errorf("unknown template %q", args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", cfg.Language, "prompt language (en, zh)")
	cmd.Flags().StringVar(&style, "style", "", "template style/level (template-specific, default per template)")
	cmd.Flags().StringVar(&modelName, "model-name", "AI Assistant", "model name for trust-disclosure")
	cmd.Flags().StringSliceVar(&capabilities, "capabilities", nil, "capability list for trust-disclosure")
	cmd.Flags().StringSliceVar(&limitations, "limitations", nil, "limitation list for trust-disclosure")
	cmd.Flags().StringVar(&knowledgeCutoff, "knowledge-cutoff", "", "knowledge cutoff date for trust-disclosure")
	cmd.Flags().StringVar(&aiName, "ai-name", "", "display name for onboarding")
	cmd.Flags().BoolVar(&includeRes, "include-resources", false, "include crisis resources in dependency-alert")
	cmd.Flags().StringVar(&crisisHotline, "crisis-hotline", "", "crisis hotline to include")
	cmd.Flags().StringVar(&mentalHealth, "mental-health-resource", "", "mental health resource to include")
	return cmd
}
