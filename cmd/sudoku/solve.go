package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file...]",
	Short: "Read puzzles and print their solutions",
	Long: `Reads puzzles from the given files, or from stdin, and prints each
puzzle together with its solution and the time the solve took.
Puzzles are separated by blank lines; within a puzzle, dots and zeros
mark empty cells and all other non-digit characters are ignored.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("solver", "constraint", "solver to use: constraint|backtrack")
	solveCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if on, _ := cmd.Flags().GetBool("profile"); on {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	kind, _ := cmd.Flags().GetString("solver")
	s := pickSolver(kind)

	if len(args) == 0 {
		return solveStream(cmd.Context(), s, os.Stdin, cmd.OutOrStdout())
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = solveStream(cmd.Context(), s, f, cmd.OutOrStdout())
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// solveStream reads blank-line separated grids from r and prints each
// one with its solution and solve time.
func solveStream(ctx context.Context, s ports.Solver, r io.Reader, w io.Writer) error {
	solveOne := func(text string) error {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		p, err := domain.Parse(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p)
		out, st, err := s.Solve(ctx, p)
		if err != nil {
			logrus.WithError(err).WithField("nodes", st.Nodes).Warn("no solution")
			fmt.Fprintln(w, "no solution")
			return nil
		}
		logrus.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("solved")
		fmt.Fprintf(w, "%v(%.6f seconds)\n\n", out, st.Duration.Seconds())
		return nil
	}

	sc := bufio.NewScanner(r)
	var pending strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			if err := solveOne(pending.String()); err != nil {
				return err
			}
			pending.Reset()
			continue
		}
		pending.WriteString(line)
		pending.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return solveOne(pending.String())
}
