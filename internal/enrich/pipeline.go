package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"movieinfo/internal/logging"
	"movieinfo/internal/movies"
	"movieinfo/internal/omdb"
	"movieinfo/internal/services"
)

// RowSource yields input queries in order and returns io.EOF when done.
type RowSource interface {
	Next() (movies.Query, error)
}

// RowSink receives output rows in input order.
type RowSink interface {
	Write(movies.OutputRow) error
}

// Pipeline enriches title rows one at a time.
type Pipeline struct {
	looker  omdb.Looker
	logger  *slog.Logger
	timeout time.Duration
	policy  Policy
	observe func(Outcome)
	every   int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTimeout bounds each lookup. Zero disables the per-row deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) {
		if timeout >= 0 {
			p.timeout = timeout
		}
	}
}

// WithPolicy selects the failure policy.
func WithPolicy(policy Policy) Option {
	return func(p *Pipeline) {
		if policy != "" {
			p.policy = policy
		}
	}
}

// WithObserver registers a callback invoked after every row.
func WithObserver(fn func(Outcome)) Option {
	return func(p *Pipeline) {
		p.observe = fn
	}
}

// WithProgressEvery sets how many input rows pass between progress log lines.
func WithProgressEvery(rows int) Option {
	return func(p *Pipeline) {
		p.every = rows
	}
}

// New constructs a pipeline around looker.
func New(looker omdb.Looker, opts ...Option) (*Pipeline, error) {
	if looker == nil {
		return nil, errors.New("enrich: lookup client required")
	}
	p := &Pipeline{
		looker:  looker,
		logger:  logging.NewNop(),
		timeout: 10 * time.Second,
		policy:  PolicyBlank,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "enrich")
	return p, nil
}

// Run processes src until it is exhausted, ctx is cancelled, the sink fails,
// or a lookup fails under PolicyAbort. Rows already handed to sink remain
// written whatever the outcome.
func (p *Pipeline) Run(ctx context.Context, src RowSource, sink RowSink) (summary Summary, err error) {
	if src == nil || sink == nil {
		return summary, errors.New("enrich: source and sink required")
	}
	start := time.Now()
	defer func() { summary.Duration = time.Since(start) }()
	progress := logging.NewProgressSampler(p.every)

	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			summary.Aborted = true
			return summary, err
		}
		query, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			summary.Aborted = true
			return summary, fmt.Errorf("row %d: %w", row, err)
		}
		summary.Read++

		rowCtx := services.WithRow(ctx, row)
		outcome := p.process(rowCtx, row, query)

		if outcome.Status == StatusFailed && errors.Is(outcome.Err, context.Canceled) && ctx.Err() != nil {
			summary.Aborted = true
			return summary, ctx.Err()
		}
		if outcome.Status == StatusFailed && p.policy == PolicyAbort {
			summary.record(outcome)
			p.notify(outcome)
			summary.Aborted = true
			return summary, outcome.Err
		}
		if outcome.Written() {
			if err := sink.Write(outcome.Output); err != nil {
				summary.Aborted = true
				return summary, fmt.Errorf("row %d: %w", row, err)
			}
			summary.Written++
		}
		summary.record(outcome)
		p.notify(outcome)
		if progress.ShouldLog(summary.Read) {
			logging.WithContext(ctx, p.logger).Info("extract progress",
				logging.String(logging.FieldEventType, "extract_progress"),
				logging.Int("rows_read", summary.Read),
				logging.Int("rows_written", summary.Written),
				logging.Int("failed", summary.Failed),
			)
		}
	}
	return summary, nil
}

func (p *Pipeline) process(ctx context.Context, row int, query movies.Query) Outcome {
	outcome := Outcome{Row: row, Query: query}
	logger := logging.WithContext(ctx, p.logger)

	if query.Empty() {
		outcome.Status = StatusSkipped
		logger.Debug("row skipped", logging.String(logging.FieldEventType, "row_skipped"))
		return outcome
	}

	lookupCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	record, err := p.looker.Lookup(lookupCtx, query)
	if err != nil {
		stage := "fetch"
		if errors.Is(err, services.ErrInvalidResponse) {
			stage = "decode"
		}
		reason := services.FailureReason(err)
		if errors.Is(err, context.Canceled) {
			reason = services.ReasonCanceled
		}
		outcome.Status = StatusFailed
		outcome.Reason = reason
		outcome.Err = &RowError{Row: row, Title: query.Title, Stage: stage, Err: err}
		if p.policy == PolicyBlank && !errors.Is(err, context.Canceled) {
			logging.WarnWithContext(logger, "lookup failed; writing blank row", "lookup_failed",
				logging.String("title", query.Title),
				logging.String("year", query.Year),
				logging.String("reason", reason),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check network access and the configured omdb.base_url"),
				logging.String(logging.FieldImpact, "row written with empty Title and Year"),
			)
		}
		return outcome
	}

	outcome.Output = omdb.Project(record)
	outcome.Status = statusFor(outcome.Output)
	if !record.Found() {
		outcome.Remote = record.ErrorMessage()
		logger.Debug("title not found",
			logging.String("title", query.Title),
			logging.String("year", query.Year),
			logging.String("remote_error", outcome.Remote),
		)
	} else {
		logger.Debug("row enriched",
			logging.String("title", query.Title),
			logging.String("status", string(outcome.Status)),
		)
	}
	return outcome
}

func (p *Pipeline) notify(o Outcome) {
	if p.observe != nil {
		p.observe(o)
	}
}
