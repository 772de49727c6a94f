package worker

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
	"github.com/pratik-mahalle/userboard/internal/pkg/errors"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/metrics"
)

// UserAdder appends a user to the canonical collection
type UserAdder interface {
	Add(ctx context.Context, input user.Input) (*user.User, error)
}

// FeedStatus reports the state of the random user feed
type FeedStatus struct {
	Running    bool       `json:"running"`
	Interval   string     `json:"interval"`
	Added      int        `json:"added"`
	Failed     int        `json:"failed"`
	LastError  string     `json:"lastError,omitempty"`
	LastTickAt *time.Time `json:"lastTickAt,omitempty"`
}

// RandomUserFeed periodically fetches a random user and appends it
type RandomUserFeed struct {
	source   user.RandomSource
	users    UserAdder
	interval time.Duration
	logger   *logger.Logger

	mu        sync.Mutex
	running   bool
	scheduler *cron.Cron
	cancel    context.CancelFunc
	// generation identifies the current schedule; ticks of an older one are ignored
	generation uint64
	added      int
	failed     int
	lastError  string
	lastTickAt time.Time
}

// NewRandomUserFeed creates a stopped feed
func NewRandomUserFeed(source user.RandomSource, users UserAdder, interval time.Duration, log *logger.Logger) *RandomUserFeed {
	if interval < time.Second {
		interval = time.Second
	}
	return &RandomUserFeed{
		source:   source,
		users:    users,
		interval: interval,
		logger:   log.Component("random_user_feed"),
	}
}

// Start schedules the feed. It returns false if the feed was already running.
func (f *RandomUserFeed) Start() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.generation++
	gen := f.generation

	f.scheduler = cron.New(cron.WithChain(cron.Recover(cronLogger{f.logger})))
	f.scheduler.Schedule(cron.Every(f.interval), cron.FuncJob(func() {
		f.tick(ctx, gen)
	}))
	f.scheduler.Start()

	f.cancel = cancel
	f.running = true
	metrics.SetFeedRunning(true)

	f.logger.WithFields(map[string]interface{}{
		"interval": f.interval.String(),
	}).Info("Random user feed started")

	return true
}

// Stop cancels the schedule and any in-flight fetch. It returns false if the
// feed was not running.
func (f *RandomUserFeed) Stop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.running {
		return false
	}

	f.cancel()
	// Running jobs observe the cancelled context; waiting here would deadlock on mu
	f.scheduler.Stop()
	f.scheduler = nil
	f.cancel = nil
	f.running = false
	metrics.SetFeedRunning(false)

	f.logger.Info("Random user feed stopped")

	return true
}

// Running reports whether the feed is scheduled
func (f *RandomUserFeed) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// Status returns a snapshot of the feed state
func (f *RandomUserFeed) Status() FeedStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := FeedStatus{
		Running:   f.running,
		Interval:  f.interval.String(),
		Added:     f.added,
		Failed:    f.failed,
		LastError: f.lastError,
	}
	if !f.lastTickAt.IsZero() {
		t := f.lastTickAt
		st.LastTickAt = &t
	}
	return st
}

// tick fetches one random user and appends it if the schedule that fired
// it is still current
func (f *RandomUserFeed) tick(ctx context.Context, gen uint64) {
	input, err := f.source.FetchRandom(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.current(ctx, gen) {
		metrics.RecordFeedTick("discarded")
		f.logger.Debug("Discarded random user fetched after stop")
		return
	}

	f.lastTickAt = time.Now()

	if err != nil {
		f.recordFailure(errors.FeedFetchFailure(err))
		return
	}

	u, err := f.users.Add(ctx, input)
	if err != nil {
		f.recordFailure(err)
		return
	}

	f.added++
	metrics.RecordFeedTick("added")
	f.logger.With("user_id", u.ID).Debug("Random user appended")
}

// current must be called with mu held
func (f *RandomUserFeed) current(ctx context.Context, gen uint64) bool {
	return f.running && f.generation == gen && ctx.Err() == nil
}

// recordFailure must be called with mu held
func (f *RandomUserFeed) recordFailure(err error) {
	f.failed++
	f.lastError = err.Error()
	metrics.RecordFeedTick("failed")
	f.logger.WarnWithErr(err, "Random user feed tick failed")
}

// cronLogger adapts the application logger to cron.Logger
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.WithFields(kvFields(keysAndValues)).Debug(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.WithFields(kvFields(keysAndValues)).ErrorWithErr(err, msg)
}

func kvFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if k, ok := keysAndValues[i].(string); ok {
			fields[k] = keysAndValues[i+1]
		}
	}
	return fields
}
