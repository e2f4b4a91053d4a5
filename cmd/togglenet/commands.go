package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	cfgPath string
	verbose bool
	workers int
	part    string

	cfg Config

	rootCmd = &cobra.Command{
		Use:   "togglenet",
		Short: "Solve toggle-network puzzle lines",
		Long: `togglenet answers the two questions a toggle-network puzzle file poses:
the fewest distinct steps that produce each endstate, and the fewest total
step applications that meet each press-count list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			loaded, err := loadConfig(cfgPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve [input-file]",
		Short: "Solve every line of a puzzle file and print part totals",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve, // Defined in solve.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath,
		"path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable per-line debug logging")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&workers, "workers", 0,
		"lines solved in parallel (0 = config value, then all CPUs)")
	solveCmd.Flags().StringVar(&part, "part", "both",
		"which questions to answer: 1, 2 or both")
}
