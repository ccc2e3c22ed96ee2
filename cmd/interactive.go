package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/cablecheck/pkg/config"
	"github.com/user/cablecheck/pkg/engine"
	"github.com/user/cablecheck/pkg/logging"
	"github.com/user/cablecheck/pkg/report"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive validation session",
	Run: func(cmd *cobra.Command, args []string) {
		logging.SetDebug(DebugMode)

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		ctx := context.Background()
		validator := engine.NewValidator(nil)
		validator.Timeout = cfg.Timeout()

		provider := buildProvider(ctx, cfg)
		if provider != nil {
			defer closeProvider(provider)
			validator.Model = provider
			fmt.Printf("Connected to %s (Model: %s)\n", cfg.SelectedProvider, cfg.SelectedModel)
		} else {
			fmt.Println("No model configured. Using deterministic extraction only.")
		}

		fmt.Println("---------------------------------------------------------")
		fmt.Println("Cablecheck Interactive Validator. One cable design per line.")
		fmt.Println("Example: IEC 60502-1, 0.6/1 kV, Cu Class 2, 10 sqmm, PVC insulation, 1 mm")
		fmt.Println("Type 'exit' or 'quit' to end the session.")
		fmt.Println("---------------------------------------------------------")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "exit" || input == "quit" {
				fmt.Println("Ending session.")
				break
			}
			if input == "" {
				continue
			}

			result, err := validator.Validate(ctx, input)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Print(report.Render(result))
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
