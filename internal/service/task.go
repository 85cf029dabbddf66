package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"warcat/internal/mailer"
	"warcat/internal/model"
	"warcat/internal/repository"
)

const taskIDPrefix = "warcat-task-"

// TaskService handles task create/edit and due-date reminder mail.
type TaskService struct {
	tasks      repository.ITaskRepository
	visibility *VisibilityService
	mail       MailQueue
}

func NewTaskService(tasks repository.ITaskRepository, visibility *VisibilityService, mail MailQueue) *TaskService {
	return &TaskService{tasks: tasks, visibility: visibility, mail: mail}
}

// Create stores a task and notifies its audience.
func (s *TaskService) Create(ctx context.Context, req *model.CreateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.Create(ctx, &model.Task{
		TaskID:        taskIDPrefix + uuid.NewString(),
		DepartmentIDs: req.DepartmentIDs,
		Tags:          req.Tags,
		Title:         req.Title,
		Description:   req.Description,
		TargetDate:    req.TargetDate,
	})
	if err != nil {
		return nil, err
	}
	if err := s.notify(ctx, task, mailer.FlagAdded); err != nil {
		return nil, err
	}
	return task, nil
}

// Edit applies an allow-listed patch and notifies the audience of
// the patched record.
func (s *TaskService) Edit(ctx context.Context, taskID string, patch *model.TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	patch.Apply(task)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, task, mailer.FlagUpdated); err != nil {
		return nil, err
	}
	return task, nil
}

// SendDueReminders mails the audience of every task due on the given
// day. Called from the daily schedule; each task is independent and
// a failed fan-out only skips that task.
func (s *TaskService) SendDueReminders(ctx context.Context, day time.Time) error {
	tasks, err := s.tasks.FindByTargetDate(ctx, day.Format("2006-01-02"))
	if err != nil {
		return err
	}
	for i := range tasks {
		task := &tasks[i]
		emails, err := s.visibility.NotifyEmails(ctx, task.DepartmentIDs, task.Tags)
		if err != nil {
			log.Printf("[task] reminder fan-out for %s: %v", task.TaskID, err)
			continue
		}
		if len(emails) == 0 {
			continue
		}
		msg, err := mailer.ReminderMessage(emails, task)
		if err != nil {
			log.Printf("[task] render reminder for %s: %v", task.TaskID, err)
			continue
		}
		s.mail.Enqueue(msg)
	}
	return nil
}

func (s *TaskService) notify(ctx context.Context, task *model.Task, flag mailer.Flag) error {
	emails, err := s.visibility.NotifyEmails(ctx, task.DepartmentIDs, task.Tags)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}
	msg, err := mailer.TaskMessage(emails, task, flag)
	if err != nil {
		log.Printf("[task] render %s mail for %s: %v", flag, task.TaskID, err)
		return nil
	}
	s.mail.Enqueue(msg)
	return nil
}
