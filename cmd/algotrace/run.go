package main

import (
	"fmt"
	"io"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/internal/presentation/report"
	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/playback"
	"github.com/spf13/cobra"
)

// defaultLength is the random input size when no input flag is given.
const defaultLength = 10

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Trace a sorting algorithm or a stack/queue simulation",
	Long: `Generates the full step trace of an algorithm and prints it, or replays it
in the terminal with --play.

Interactive playback keys: ` + cli.KeyHelp,
	Example: `  algotrace run -a bubble -i 5,3,8,1
  algotrace run -a merge -n 16 --seed 7 --play --speed 2
  algotrace run -a quick -n 30 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("algorithm")
		formatFlag, _ := cmd.Flags().GetString("format")
		play, _ := cmd.Flags().GetBool("play")
		speed, _ := cmd.Flags().GetFloat64("speed")
		plot, _ := cmd.Flags().GetBool("plot")
		bell, _ := cmd.Flags().GetBool("bell")

		alg, err := domain.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		format, err := cli.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		values, err := readInput(cmd, defaultLength)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		engine := cli.CreateEngine(logger)
		steps, err := engine.Generate(sigCtx, alg, values)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		profile := profileFor(cmd)

		if play {
			opts := []playback.Option{playback.WithSpeed(speed), playback.WithLogger(logger)}
			if bell {
				opts = append(opts, playback.WithNotifier(playback.Debounce(cli.Bell{Writer: out}, playback.DefaultDebounce)))
			}
			p := playback.NewPlayer(steps, opts...)
			newHandler := func(w io.Writer) playback.Handler {
				return playback.NewTextHandler(w, playback.WithProfile(profile), playback.WithClear(format == cli.FormatText))
			}
			if format == cli.FormatJSON {
				newHandler = func(w io.Writer) playback.Handler { return playback.NewJSONHandler(w) }
			}
			if err := cli.RunInteractive(sigCtx, p, out, newHandler, logger); err != nil {
				return cli.HandleExecutionError(err)
			}
		} else if err := cli.WriteSteps(sigCtx, out, format, profile, steps); err != nil {
			return err
		}

		if format != cli.FormatText {
			return nil
		}
		summary := analysis.Summarize(alg, len(values), steps)
		report.Summary(out, summary)
		if plot {
			caption := fmt.Sprintf("%s: operations per step", alg)
			fmt.Fprintln(out, report.Plot(analysis.Series(steps, plotWidth), plotHeight, caption))
		}
		return nil
	},
}

const (
	plotWidth  = 60
	plotHeight = 12
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("algorithm", "a", "bubble", "Algorithm: bubble, merge, quick, insertion, selection, stack or queue")
	addInputFlags(runCmd)
	runCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	runCmd.Flags().BoolP("play", "p", false, "Replay the trace in the terminal instead of printing it")
	runCmd.Flags().Float64P("speed", "s", playback.DefaultSpeed, fmt.Sprintf("Playback speed multiplier (%.2f to %.0f)", playback.MinSpeed, playback.MaxSpeed))
	runCmd.Flags().Bool("plot", false, "Plot cumulative operations per step")
	runCmd.Flags().Bool("bell", false, "Ring the terminal bell when playback completes")
}
