package scenario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/gmath/internal/observability/log"
)

// Result is the outcome of one case.
type Result struct {
	Case Case
	Got  Value
	Pass bool
	Err  error
}

// Report collects the results of one scenario run.
type Report struct {
	ID       string
	Name     string
	Results  []Result
	Passed   int
	Failed   int
	Duration time.Duration
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Runner evaluates scenarios and logs each case.
type Runner struct {
	logger log.Log
}

func NewRunner(logger log.Log) *Runner {
	return &Runner{logger: logger}
}

// Run evaluates the cases of s in order. It stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context, s Scenario) (Report, error) {
	if len(s.Cases) == 0 {
		return Report{}, ErrEmptyScenario
	}

	report := Report{
		ID:      uuid.NewString(),
		Name:    s.Name,
		Results: make([]Result, 0, len(s.Cases)),
	}
	ctx = log.ContextWithRunID(ctx, report.ID)
	logger := r.logger.WithContext(ctx).With(log.String("scenario", s.Name))

	start := time.Now()
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		got, pass, err := Check(c)
		res := Result{Case: c, Got: got, Pass: pass && err == nil, Err: err}
		report.Results = append(report.Results, res)

		fields := []log.Field{
			log.String("case", c.Label()),
			log.String("op", c.Op),
			log.Stringer("got", got),
			log.Bool("pass", res.Pass),
		}
		switch {
		case err != nil:
			report.Failed++
			logger.Error("case errored", append(fields, log.Error(err))...)
		case !res.Pass:
			report.Failed++
			logger.Warn("case failed", append(fields, log.Stringer("want", *c.Want))...)
		default:
			report.Passed++
			logger.Debug("case passed", fields...)
		}
	}
	report.Duration = time.Since(start)

	logger.Info("scenario finished",
		log.Int("passed", report.Passed),
		log.Int("failed", report.Failed),
		log.Duration("duration", report.Duration),
	)
	return report, nil
}

// RunAll runs every scenario concurrently. Reports keep the input order.
// The first error cancels the scenarios still running.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) ([]Report, error) {
	reports := make([]Report, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			report, err := r.Run(ctx, s)
			reports[i] = report
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
