package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/cablecheck/pkg/config"
	"github.com/user/cablecheck/pkg/engine"
	"github.com/user/cablecheck/pkg/logging"
	"github.com/user/cablecheck/pkg/report"
)

var (
	validateFile    string
	validateJSON    bool
	validateOffline bool
	validateTimeout time.Duration
)

var validateCmd = &cobra.Command{
	Use:   "validate [cable design text]",
	Short: "Validate a cable design against IEC 60502-1",
	Long: `Validate extracts cable design parameters from free text and checks
them against the IEC 60502-1 rule set. The design text is taken from the
arguments, from --file, or from stdin.

The exit code is 1 when the overall verdict is FAIL, and 2 when the input
could not be validated at all.`,
	Example: `  cablecheck validate "IEC 60502-1, 0.6/1 kV, Cu Class 2, 10 sqmm, PVC insulation, 1 mm"
  cablecheck validate --file design.txt --json
  cat design.txt | cablecheck validate --offline`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.SetDebug(DebugMode)

		text, err := readDesignText(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(2)
		}

		ctx := context.Background()
		validator := engine.NewValidator(nil)
		validator.Timeout = cfg.Timeout()
		if validateTimeout > 0 {
			validator.Timeout = validateTimeout
		}

		if !validateOffline {
			provider := buildProvider(ctx, cfg)
			if provider != nil {
				defer closeProvider(provider)
				validator.Model = provider
			}
		}

		result, err := validator.Validate(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if validateJSON {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
				os.Exit(2)
			}
			fmt.Println(string(out))
		} else {
			fmt.Print(report.Render(result))
		}

		if result.OverallStatus == engine.SeverityFail {
			os.Exit(1)
		}
	},
}

// readDesignText assembles the input from arguments, a file, or stdin.
func readDesignText(args []string) (string, error) {
	if validateFile != "" {
		data, err := os.ReadFile(validateFile)
		if err != nil {
			return "", fmt.Errorf("failed to read design file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Read the design text from a file")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the result as JSON")
	validateCmd.Flags().BoolVar(&validateOffline, "offline", false, "Skip the model call and use pattern extraction only")
	validateCmd.Flags().DurationVar(&validateTimeout, "timeout", 0, "Model call budget (overrides the configured value)")

	rootCmd.AddCommand(validateCmd)
}
