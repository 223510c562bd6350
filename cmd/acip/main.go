// Command acip analyzes human/AI conversation transcripts for protocol
// compliance and generates protocol prompt text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acip-protocol/dialogue-go/internal/config"
	"github.com/acip-protocol/dialogue-go/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "acip",
	Short: "Analyze conversations against the dialogue interaction protocol",
	Long: `acip scores human/AI conversation transcripts against a five-layer
interaction protocol (trust, emotional boundaries, collaboration, ethics,
privacy) and generates the prompt text implementing each layer.`,
	SilenceUsage: true,
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	rootCmd.AddCommand(newCheckCmd(cfg, logger))
	rootCmd.AddCommand(newAnalyzeCmd(cfg, logger))
	rootCmd.AddCommand(newPromptCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
