// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package refresh

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultInterval matches the ten minute poll of the public site.
const DefaultInterval = 10 * time.Minute

var ErrAlreadyStarted = errors.New("refresh loop already started")

// Task is one unit of scheduled work.
type Task func(ctx context.Context)

// Loop runs a task once immediately and then on a fixed interval.
// Stop cancels the context handed to in-flight runs.
type Loop struct {
	task     Task
	interval time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func NewLoop(task Task, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{task: task, interval: interval}
}

// Start schedules the task. The first run starts right away in the
// background.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cron != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	c := cron.New(cron.WithChain(cron.Recover(cronLogger{})))
	c.Schedule(cron.Every(l.interval), cron.FuncJob(func() { l.run(ctx) }))
	l.cron = c

	l.running.Add(1)
	go func() {
		defer l.running.Done()
		l.task(ctx)
	}()

	c.Start()
	slog.Info("refresh loop started", "interval", l.interval.String())
	return nil
}

// Stop clears the schedule, cancels in-flight runs and waits for them to
// return.
func (l *Loop) Stop() {
	l.mu.Lock()
	c, cancel := l.cron, l.cancel
	l.cron, l.cancel = nil, nil
	l.mu.Unlock()

	if c == nil {
		return
	}

	cancel()
	<-c.Stop().Done()
	l.running.Wait()
	slog.Info("refresh loop stopped")
}

func (l *Loop) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	l.running.Add(1)
	defer l.running.Done()
	l.task(ctx)
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
