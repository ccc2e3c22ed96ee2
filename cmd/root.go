package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cablecheck",
	Short: "AI-assisted IEC 60502-1 cable design validation",
	Long: `Cablecheck turns free-text cable design notes into structured
parameters and validates them against IEC 60502-1 constraints, producing
a PASS, WARN or FAIL verdict with a confidence score.

An optional AI provider refines the extraction; a deterministic pattern
extractor guarantees a verdict even with no model configured at all.
Cablecheck is a decision-support heuristic, not an authoritative IEC
conformance assessment.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
