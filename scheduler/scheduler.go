package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/buspi/arrivals"
	"github.com/theoremus-urban-solutions/buspi/display"
	"github.com/theoremus-urban-solutions/buspi/feed"
	"github.com/theoremus-urban-solutions/buspi/message"
)

// DefaultInterval is the polling cadence when Options.Interval is zero
const DefaultInterval = 60 * time.Second

// States logged on every transition
const (
	StateIdle       = "idle"
	StateAfterHours = "after_hours"
	StatePolling    = "polling"
	StateRendering  = "rendering"
	StateSleeping   = "sleeping"
)

// Fetcher retrieves one raw feed body. *feed.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, ep feed.Endpoint) (feed.Response, error)
}

// EndpointFunc builds the endpoint once at startup
type EndpointFunc func() (feed.Endpoint, error)

// Window is an inclusive time-of-day range during which polling is skipped
type Window struct {
	Start arrivals.TimeOfDay
	End   arrivals.TimeOfDay
}

// Options wires the Scheduler. Fetcher, Parser, Sink and Endpoint are required.
type Options struct {
	Fetcher  Fetcher
	Parser   arrivals.Parser
	Sink     display.Sink
	Endpoint EndpointFunc

	Display       display.Options
	Layout        display.Layout
	Interval      time.Duration
	AfterHours    *Window // nil disables the check
	RenderRetries int

	// Backoff returns the policy used between render attempts. Defaults to
	// an exponential backoff driven by Clock.
	Backoff func() backoff.BackOff
	Clock   Clock
	Sleep   SleepFunc
	Logger  *zap.Logger
}

// Outcome describes one completed cycle
type Outcome struct {
	Cycle      uuid.UUID
	At         time.Time
	AfterHours bool
	Result     arrivals.Result
	Err        error // fetch error, if any
	Message    message.Message
}

// Scheduler drives fetch, parse, compose and render on a fixed cadence.
// It is not safe for concurrent use; Run and Cycle must not overlap.
type Scheduler struct {
	opts     Options
	log      *zap.Logger
	endpoint feed.Endpoint
	started  bool
}

// New validates opts and fills in defaults
func New(opts Options) (*Scheduler, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("scheduler: fetcher is required")
	}
	if opts.Parser == nil {
		return nil, errors.New("scheduler: parser is required")
	}
	if opts.Sink == nil {
		return nil, errors.New("scheduler: sink is required")
	}
	if opts.Endpoint == nil {
		return nil, errors.New("scheduler: endpoint builder is required")
	}
	if opts.RenderRetries < 0 {
		return nil, fmt.Errorf("scheduler: negative render retries %d", opts.RenderRetries)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Scheduler{opts: opts, log: opts.Logger}
	if s.opts.Backoff == nil {
		s.opts.Backoff = s.exponentialBackoff
	}
	return s, nil
}

// Endpoint returns the endpoint built at startup. It is the zero Endpoint
// before Start or when building it failed.
func (s *Scheduler) Endpoint() feed.Endpoint {
	return s.endpoint
}

// Start configures the sink and builds the endpoint. It runs once; later
// calls are no-ops. A failure to build the endpoint is rendered and logged
// but not returned, so the loop keeps running against the zero Endpoint.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.started {
		return nil
	}
	log := s.log.With(zap.String("state", StateIdle))
	log.Info("configuring display",
		zap.Int("rows", s.opts.Display.Rows),
		zap.Int("cols", s.opts.Display.Cols),
		zap.String("hardware_mapping", s.opts.Display.HardwareMapping),
	)
	if err := s.opts.Sink.Configure(s.opts.Display); err != nil {
		return fmt.Errorf("configure display: %w", err)
	}
	s.started = true

	ep, err := s.opts.Endpoint()
	if err != nil {
		log.Error("failed to build endpoint", zap.Error(err))
		if rerr := s.render(ctx, log, message.Broken()); rerr != nil {
			return rerr
		}
		return nil
	}
	s.endpoint = ep
	log.Info("endpoint ready", zap.String("endpoint", ep.Redacted()))
	return nil
}

// Run starts the scheduler and loops until ctx is cancelled, in which case it
// returns nil. Any other return is a render failure that survived the retries.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	for {
		out, err := s.Cycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		s.log.Info("state transition",
			zap.String("state", StateSleeping),
			zap.String("cycle", out.Cycle.String()),
			zap.Duration("interval", s.opts.Interval),
		)
		if err := s.opts.Sleep(ctx, s.opts.Interval); err != nil {
			s.log.Info("scheduler stopped", zap.Error(err))
			return nil
		}
	}
}

// Cycle runs a single poll and render pass and returns what was shown.
// It calls Start first if needed. The error is non-nil only when rendering failed.
func (s *Scheduler) Cycle(ctx context.Context) (Outcome, error) {
	if err := s.Start(ctx); err != nil {
		return Outcome{}, err
	}

	out := Outcome{Cycle: uuid.New(), At: s.opts.Clock.Now()}
	log := s.log.With(zap.String("cycle", out.Cycle.String()))

	if w := s.opts.AfterHours; w != nil && arrivals.FromTime(out.At).Within(w.Start, w.End) {
		log.Info("state transition", zap.String("state", StateAfterHours), zap.Stringer("until", w.End))
		out.AfterHours = true
		out.Message = message.AfterHours(w.End)
	} else {
		log.Info("state transition", zap.String("state", StatePolling), zap.String("endpoint", s.endpoint.Redacted()))
		resp, err := s.opts.Fetcher.Fetch(ctx, s.endpoint)
		if err != nil {
			log.Warn("fetch failed", zap.Error(err))
			out.Err = err
		} else {
			out.Result = s.opts.Parser.Parse(resp, s.opts.Clock.Now())
			if out.Result.Kind == arrivals.KindMalformedFeed {
				log.Warn("malformed feed", zap.Error(out.Result.Err))
			} else {
				log.Debug("parsed feed",
					zap.Stringer("kind", out.Result.Kind),
					zap.Int("arrivals", len(out.Result.Arrivals)),
				)
			}
		}
		out.Message = message.Compose(out.Result, out.Err)
	}

	rlog := log.With(zap.String("state", StateRendering))
	rlog.Info("state transition", zap.Strings("lines", out.Message.Lines))
	if err := s.render(ctx, rlog, out.Message); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Scheduler) render(ctx context.Context, log *zap.Logger, m message.Message) error {
	op := func() error {
		return display.Render(s.opts.Sink, s.opts.Layout, m)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(s.opts.Backoff(), uint64(s.opts.RenderRetries)),
		ctx,
	)
	err := backoff.RetryNotify(op, policy, func(err error, d time.Duration) {
		log.Warn("render failed, retrying", zap.Error(err), zap.Duration("backoff", d))
	})
	if err != nil {
		log.Error("render failed", zap.Error(err), zap.Int("retries", s.opts.RenderRetries))
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (s *Scheduler) exponentialBackoff() backoff.BackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     250 * time.Millisecond,
		RandomizationFactor: 0.2,
		Multiplier:          2,
		MaxInterval:         5 * time.Second,
		MaxElapsedTime:      30 * time.Second,
		Stop:                backoff.Stop,
		Clock:               s.opts.Clock,
	}
}
