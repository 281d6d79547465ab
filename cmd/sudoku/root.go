package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/sudokusolve/internal/ports"
	"svw.info/sudokusolve/internal/solver"
)

var rootCmd = &cobra.Command{
	Use:          "sudoku",
	Short:        "Solve 9x9 sudoku puzzles by constraint propagation",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; env vars use the SUDOKU_ prefix.
		_ = godotenv.Load()
		lvl, err := logrus.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewConstraintSolver()
	}
}
