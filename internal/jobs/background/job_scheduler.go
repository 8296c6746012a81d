package background

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Check is one periodic maintenance task.
type Check interface {
	Name() string
	Interval() time.Duration
	Run(ctx context.Context) error
}

// CheckFunc adapts a function to Check.
type CheckFunc struct {
	JobName  string
	Every    time.Duration
	Function func(ctx context.Context) error
}

func (c CheckFunc) Name() string                  { return c.JobName }
func (c CheckFunc) Interval() time.Duration       { return c.Every }
func (c CheckFunc) Run(ctx context.Context) error { return c.Function(ctx) }

// JobScheduler runs the registered checks on their intervals. Checks receive
// a context that Stop cancels.
type JobScheduler struct {
	scheduler gocron.Scheduler
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewJobScheduler creates a scheduler and registers checks. Overlapping runs
// of the same check are rescheduled rather than stacked.
func NewJobScheduler(checks ...Check) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	js := &JobScheduler{
		scheduler: scheduler,
		jobs:      make(map[string]gocron.Job),
		ctx:       ctx,
		cancel:    cancel,
	}

	for _, check := range checks {
		if err := js.AddCheck(check); err != nil {
			cancel()
			_ = scheduler.Shutdown()
			return nil, err
		}
	}
	slog.Info("registered background jobs", "count", len(js.jobs))

	return js, nil
}

// AddCheck schedules check under its name
func (js *JobScheduler) AddCheck(check Check) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if _, exists := js.jobs[check.Name()]; exists {
		return fmt.Errorf("job %q already registered", check.Name())
	}

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(check.Interval()),
		gocron.NewTask(func() { runCheck(js.ctx, check) }),
		gocron.WithName(check.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create %s job: %w", check.Name(), err)
	}

	js.jobs[check.Name()] = job
	return nil
}

func runCheck(ctx context.Context, check Check) {
	start := time.Now()
	if err := check.Run(ctx); err != nil {
		slog.Error("background job failed", "job", check.Name(), "error", err)
		return
	}
	slog.Debug("background job finished", "job", check.Name(), "duration", time.Since(start))
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	slog.Info("starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	slog.Info("stopping background job scheduler")
	js.cancel()
	return js.scheduler.Shutdown()
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.jobs, name)
		return err
	}

	return nil
}

// JobNames returns the registered job names in order
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	names := js.JobNames()

	js.mu.RLock()
	defer js.mu.RUnlock()

	next := make(map[string]string, len(names))
	for _, name := range names {
		if run, err := js.jobs[name].NextRun(); err == nil && !run.IsZero() {
			next[name] = run.UTC().Format(time.RFC3339)
		}
	}

	return map[string]interface{}{
		"total_jobs": len(names),
		"jobs":       names,
		"next_run":   next,
	}
}
