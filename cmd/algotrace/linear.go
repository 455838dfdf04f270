package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/pkg/linear"
	"github.com/aretw0/algotrace/pkg/trace"
	"github.com/spf13/cobra"
)

// newLinearCmd builds the stack and queue commands, which differ only in kind.
func newLinearCmd(kind linear.Kind) *cobra.Command {
	name := strings.ToLower(kind.String())
	push, pop := "push", "pop"
	if kind == linear.KindQueue {
		push, pop = "enqueue", "dequeue"
	}

	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Trace the %s demo or a scripted %s session", name, name),
		Long: fmt.Sprintf(`Without --ops, traces the scripted %[1]s demo. With --ops, applies each
command to an interactive %[1]s session and prints its history. "seek N"
rewinds the cursor so the next command branches off step N.`, name),
		Example: fmt.Sprintf(`  algotrace %[1]s
  algotrace %[1]s --ops "%[2]s 5, %[2]s 9, %[3]s"
  algotrace %[1]s --ops "%[2]s 1, %[2]s 2, seek 1, %[2]s 7" --capacity 3`, name, push, pop),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, _ := cmd.Flags().GetString("ops")
			capacity, _ := cmd.Flags().GetInt("capacity")
			out := cmd.OutOrStdout()
			profile := profileFor(cmd)

			if script == "" {
				rec := trace.NewRecorder()
				linear.Demo(kind, rec)
				return cli.WriteSteps(cmd.Context(), out, cli.FormatText, profile, rec.Steps())
			}

			s := linear.NewSession(kind, linear.WithCapacity(capacity))
			scriptErr := cli.ApplyScript(s, script)
			if err := cli.WriteSteps(cmd.Context(), out, cli.FormatText, profile, s.Steps()); err != nil {
				return err
			}
			return scriptErr
		},
	}
	cmd.Flags().String("ops", "", fmt.Sprintf("Comma separated commands: %s N, %s, seek N", push, pop))
	cmd.Flags().Int("capacity", linear.DefaultCapacity, "Maximum number of elements")
	return cmd
}

func init() {
	rootCmd.AddCommand(newLinearCmd(linear.KindStack))
	rootCmd.AddCommand(newLinearCmd(linear.KindQueue))
}
