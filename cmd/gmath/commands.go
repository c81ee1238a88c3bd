package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/zeusync/gmath/internal/scenario"
)

var errScenarioFailed = errors.New("scenario failed")

func demoCommand(ctx context.Context, w io.Writer, runner *scenario.Runner) error {
	report, err := runner.Run(ctx, scenario.Demo())
	if err != nil {
		return err
	}
	for _, res := range report.Results {
		fmt.Fprintf(w, "%s: %s -> %s\n", res.Case.Label(), res.Case.Expression(), res.Got)
	}
	if !report.OK() {
		return errScenarioFailed
	}
	return nil
}

func runCommand(ctx context.Context, w io.Writer, runner *scenario.Runner, files []string) error {
	scenarios := make([]scenario.Scenario, 0, len(files))
	for _, path := range files {
		s, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, *s)
	}

	reports, err := runner.RunAll(ctx, scenarios)
	if err != nil {
		return err
	}

	failed := 0
	for _, report := range reports {
		status := "PASS"
		if !report.OK() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "%s %s (%d/%d)\n", status, report.Name, report.Passed, len(report.Results))

		for _, res := range report.Results {
			switch {
			case res.Err != nil:
				fmt.Fprintf(w, "  %s: %s: %v\n", res.Case.Label(), res.Case.Expression(), res.Err)
			case !res.Pass:
				fmt.Fprintf(w, "  %s: %s -> %s, want %s\n", res.Case.Label(), res.Case.Expression(), res.Got, res.Case.Want)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errScenarioFailed, failed, len(reports))
	}
	return nil
}

func opsCommand(w io.Writer) {
	for _, op := range scenario.All() {
		fmt.Fprintf(w, "%-10s %s\n", op.Name, op.Kind)
	}
}
