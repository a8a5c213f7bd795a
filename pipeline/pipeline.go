package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/blogmesh/logging"
)

// Input holds what the operator provides.
type Input struct {
	Topic string
	Links []string
	Date  time.Time
}

// Result holds every stage output, verbatim.
type Result struct {
	Launches string
	Plan     string
	Draft    string
	Images   string
	Review   string
	Post     string
}

// Output returns the stored output of stage.
func (r *Result) Output(stage Stage) string {
	switch stage {
	case StageSearch:
		return r.Launches
	case StagePlan:
		return r.Plan
	case StageDraft:
		return r.Draft
	case StageImages:
		return r.Images
	case StageReview:
		return r.Review
	case StageFormat:
		return r.Post
	default:
		return ""
	}
}

// Reporter observes stage progress.
type Reporter interface {
	StageStarted(stage Stage)
	StageFinished(stage Stage, output string)
}

// NopReporter ignores all progress.
type NopReporter struct{}

// StageStarted implements Reporter.
func (NopReporter) StageStarted(Stage) {}

// StageFinished implements Reporter.
func (NopReporter) StageFinished(Stage, string) {}

// Options configures a Pipeline.
type Options struct {
	Reporter Reporter
	Logger   logging.Logger
}

// Pipeline runs the six stages in order against one Invoker.
type Pipeline struct {
	invoker  Invoker
	reporter Reporter
	logger   logging.Logger
}

// New creates a Pipeline.
func New(invoker Invoker, optFns ...func(o *Options)) *Pipeline {
	opts := Options{
		Reporter: NopReporter{},
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Pipeline{invoker: invoker, reporter: opts.Reporter, logger: opts.Logger}
}

// Run executes search, plan, draft, images, review and format strictly in
// sequence. The first failing or empty stage halts the run with a
// *StageError; the partial Result is returned alongside it.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	res := &Result{}

	steps := []struct {
		stage Stage
		out   *string
		call  func() (string, error)
	}{
		{StageSearch, &res.Launches, func() (string, error) {
			return SearchLaunches(ctx, p.invoker, in.Topic, in.Date, in.Links)
		}},
		{StagePlan, &res.Plan, func() (string, error) {
			return PlanPost(ctx, p.invoker, in.Topic, res.Launches)
		}},
		{StageDraft, &res.Draft, func() (string, error) {
			return DraftPost(ctx, p.invoker, in.Topic, res.Plan)
		}},
		{StageImages, &res.Images, func() (string, error) {
			return FindImages(ctx, p.invoker, in.Topic, res.Draft)
		}},
		{StageReview, &res.Review, func() (string, error) {
			return ReviewDraft(ctx, p.invoker, in.Topic, res.Draft)
		}},
		{StageFormat, &res.Post, func() (string, error) {
			return FormatPost(ctx, p.invoker, res.Draft, res.Images)
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, &StageError{Stage: step.stage, Err: err}
		}

		p.reporter.StageStarted(step.stage)

		start := time.Now()
		out, err := step.call()
		if err == nil && strings.TrimSpace(out) == "" {
			err = ErrEmptyOutput
		}

		p.logStage(step.stage, time.Since(start), err)

		if err != nil {
			return res, &StageError{Stage: step.stage, Err: err}
		}

		*step.out = out
		p.reporter.StageFinished(step.stage, out)
	}

	return res, nil
}

func (p *Pipeline) logStage(stage Stage, dur time.Duration, err error) {
	if sl, ok := p.logger.(*logging.StructuredLogger); ok {
		sl.WithComponent("pipeline").LogStage(stage.String(), dur, err == nil, err)
		return
	}

	if err != nil {
		p.logger.Error("pipeline.stage.failed", "stage", stage.String(), "duration_ms", dur.Milliseconds(), "error", err)
		return
	}
	p.logger.Info("pipeline.stage.completed", "stage", stage.String(), "duration_ms", dur.Milliseconds())
}
