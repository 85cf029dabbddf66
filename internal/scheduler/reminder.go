// Package scheduler runs the periodic jobs of the portal. Currently
// a single daily job: reminder mail for tasks due that day.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"warcat/internal/service"
)

// Reminder schedules daily task-due reminder mail.
type Reminder struct {
	cron  *cron.Cron
	tasks *service.TaskService
}

// NewReminder builds the reminder scheduler from a cron spec such as
// "0 8 * * *".
func NewReminder(spec string, tasks *service.TaskService) (*Reminder, error) {
	r := &Reminder{cron: cron.New(), tasks: tasks}
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins the schedule in its own goroutine.
func (r *Reminder) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := r.tasks.SendDueReminders(ctx, time.Now()); err != nil {
		log.Printf("[scheduler] task reminders failed: %v", err)
	}
}
