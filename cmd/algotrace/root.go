package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "algotrace",
	Short: "Step-by-step traces of classic algorithms and data structures",
	Long: `algotrace runs sorting algorithms, stack and queue simulations, binary search
tree operations and graph traversals, recording every comparison, swap and visit
as a step you can print, replay in the terminal, or serve over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colours and markdown styling")
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return cli.CreateLogger(level)
}

func profileFor(cmd *cobra.Command) termenv.Profile {
	plain, _ := cmd.Flags().GetBool("plain")
	return cli.ColorProfile(cmd.OutOrStdout(), plain)
}

// addInputFlags registers --input, --random and --seed.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Comma separated values, e.g. \"5,3,8,1\"")
	cmd.Flags().IntP("random", "n", 0, fmt.Sprintf("Trace N random values in [%d, %d]", input.MinValue, input.MaxValue))
	cmd.Flags().Int64("seed", 0, "Seed for --random (0 picks one from the clock)")
}

// readInput resolves the input flags. Without either flag it draws a
// random array of fallback values.
func readInput(cmd *cobra.Command, fallback int) ([]int, error) {
	raw, _ := cmd.Flags().GetString("input")
	n, _ := cmd.Flags().GetInt("random")
	seed, _ := cmd.Flags().GetInt64("seed")

	if raw != "" && n > 0 {
		return nil, fmt.Errorf("--input and --random cannot be used together")
	}
	if raw != "" {
		return input.ParseArray(raw)
	}
	if n == 0 {
		n = fallback
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return input.RandomArray(n, rand.New(rand.NewSource(seed))), nil
}
