// Command warehouseplanner is the CLI shim over the operations of spec.md
// §6: plan (which also reports the reachability counts), schedule and
// replan, plus a cron-driven watch mode. It
// reads a JSON scenario file and prints a JSON result — not the HTTP
// surface the spec places out of scope (SPEC_FULL.md §6), grounded on the
// teacher's cmd/mapfhet/main.go entry point, restructured from a single
// hardcoded demo into cobra subcommands per viamrobotics-rdk's CLI shape.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/irfansandyy/kka-warehouse-robot/internal/assign"
	"github.com/irfansandyy/kka-warehouse-robot/internal/config"
	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/cronjob"
	"github.com/irfansandyy/kka-warehouse-robot/internal/obslog"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
	"github.com/irfansandyy/kka-warehouse-robot/internal/planner"
	"github.com/irfansandyy/kka-warehouse-robot/internal/replan"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "warehouseplanner",
		Short: "Multi-robot warehouse task planner",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (viper-merged with env and defaults)")
	root.AddCommand(newPlanCmd(), newScheduleCmd(), newReplanCmd(), newWatchCmd())
	return root
}

func strategyFor(name string, seed int64) assign.Strategy {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case "ga":
		return &assign.GA{Rand: rng}
	case "local_search", "local-search":
		return &assign.LocalSearch{Rand: rng}
	default:
		return assign.Greedy{}
	}
}

func newPlanCmd() *cobra.Command {
	var scenarioPath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run reachability analysis and task assignment (operation 1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			s, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			inst := s.toInstance()
			alg := s.Algorithm
			if alg == "" {
				alg = cfg.Algorithm
			}
			opt := s.Optimizer
			if opt == "" {
				opt = cfg.Optimizer
			}
			lib := pathlib.New(inst.Grid, alg)
			result, err := planner.PlanAssignments(inst, lib, strategyFor(opt, cfg.Seed), nil)
			if err != nil {
				return err
			}
			return writeJSON(result)
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a JSON scenario file")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var scenarioPath string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compose base paths and run CSP temporal scheduling (operation 2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			s, err := loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			inst := s.toInstance()
			alg := s.Algorithm
			if alg == "" {
				alg = cfg.Algorithm
			}
			opt := s.Optimizer
			if opt == "" {
				opt = cfg.Optimizer
			}
			maxOffset := s.MaxOffset
			if maxOffset <= 0 {
				maxOffset = cfg.CSPMaxOffsetSchedule
			}
			lib := pathlib.New(inst.Grid, alg)
			planResult, err := planner.PlanAssignments(inst, lib, strategyFor(opt, cfg.Seed), nil)
			if err != nil {
				return err
			}
			sol, err := planner.ComposeAndSchedule(inst, planResult.Assignment, lib, maxOffset, nil)
			if err != nil {
				if npe, ok := errors.Cause(err).(*planner.NoPathError); ok {
					return writeJSON(map[string]any{"ok": false, "reason": npe.Reason, "robot": npe.Robot, "to": npe.To})
				}
				return err
			}
			return writeJSON(sol)
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a JSON scenario file")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func newReplanCmd() *cobra.Command {
	var scenarioPath string
	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Receding-horizon single-robot replan against known moving obstacles (operation 3)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadReplanScenario(scenarioPath)
			if err != nil {
				return err
			}
			grid := core.NewGrid(s.Grid)
			tasks := make([]core.Cell, len(s.TasksRemaining))
			for i, c := range s.TasksRemaining {
				tasks[i] = c.toCell()
			}
			result, err := replan.Replan(grid, s.Start.toCell(), tasks, toForklifts(s.Forklifts), s.CurrentTime)
			if err != nil {
				if npe, ok := err.(*replan.NoPathError); ok {
					return writeJSON(map[string]any{"ok": false, "reason": "no_path_replan", "task": npe.Task})
				}
				return err
			}
			return writeJSON(map[string]any{"ok": true, "path": result.Path, "nodes_expanded": result.NodesExpanded})
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a JSON scenario file")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var scenarioPath string
	var every time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run replan on a cron schedule against an advancing clock",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := obslog.NewDevelopment()
			defer logger.Sync()

			runner := cronjob.NewReplanWatcher(scenarioPath, logger)
			stop, err := runner.Start(every)
			if err != nil {
				return err
			}
			defer stop()

			select {}
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to a JSON replan scenario file")
	cmd.Flags().DurationVar(&every, "every", 30*time.Second, "tick interval between replans")
	cmd.MarkFlagRequired("scenario")
	return cmd
}
