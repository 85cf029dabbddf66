// Package testutil provides in-memory fakes for the repository
// interfaces and the mail queue, shared by service and handler tests.
package testutil

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/mailer"
	"warcat/internal/model"
	"warcat/internal/storage"
)

// UserRepo is an in-memory IUserRepository.
type UserRepo struct {
	Users []*model.User
}

func (r *UserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	for _, u := range r.Users {
		if u.Email == user.Email {
			return nil, storage.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	r.Users = append(r.Users, user)
	return user, nil
}

func (r *UserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *UserRepo) FindByEmailAndID(_ context.Context, email string, id primitive.ObjectID) (*model.User, error) {
	for _, u := range r.Users {
		if u.Email == email && u.ID == id {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *UserRepo) FindByDepartments(_ context.Context, depIDs []string) ([]model.User, error) {
	wanted := make(map[string]struct{}, len(depIDs))
	for _, id := range depIDs {
		wanted[id] = struct{}{}
	}
	var out []model.User
	for _, u := range r.Users {
		for _, d := range u.Departments {
			if _, ok := wanted[d.DepID]; ok {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	for _, u := range r.Users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *UserRepo) UpdateLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	for _, u := range r.Users {
		if u.ID == id {
			u.LastLogin = at
			return nil
		}
	}
	return storage.ErrNotFound
}

// DepartmentRepo is an in-memory IDepartmentRepository.
type DepartmentRepo struct {
	Departments []model.Department
}

func (r *DepartmentRepo) Create(_ context.Context, dep *model.Department) (*model.Department, error) {
	if dep.ID.IsZero() {
		dep.ID = primitive.NewObjectID()
	}
	r.Departments = append(r.Departments, *dep)
	return dep, nil
}

func (r *DepartmentRepo) FindAll(_ context.Context) ([]model.Department, error) {
	return r.Departments, nil
}

func (r *DepartmentRepo) FindByIDs(_ context.Context, ids []string) ([]model.Department, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []model.Department
	for _, d := range r.Departments {
		if _, ok := wanted[d.ID.Hex()]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// MeetingRepo is an in-memory IMeetingRepository. Meetings are kept
// in insertion order and returned newest first.
type MeetingRepo struct {
	Meetings []model.Meeting
}

func (r *MeetingRepo) Create(_ context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	if meeting.ID.IsZero() {
		meeting.ID = primitive.NewObjectID()
	}
	meeting.CreatedAt = time.Now()
	r.Meetings = append(r.Meetings, *meeting)
	return meeting, nil
}

func (r *MeetingRepo) FindByMeetingID(_ context.Context, meetingID string) (*model.Meeting, error) {
	for _, m := range r.Meetings {
		if m.MeetingID == meetingID {
			cp := m
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *MeetingRepo) Update(_ context.Context, meeting *model.Meeting) error {
	for i, m := range r.Meetings {
		if m.ID == meeting.ID {
			r.Meetings[i] = *meeting
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *MeetingRepo) FindAll(_ context.Context) ([]model.Meeting, error) {
	return newestFirst(r.Meetings), nil
}

func (r *MeetingRepo) FindByDepartments(_ context.Context, depIDs []string) ([]model.Meeting, error) {
	wanted := make(map[string]struct{}, len(depIDs))
	for _, id := range depIDs {
		wanted[id] = struct{}{}
	}
	var out []model.Meeting
	for _, m := range r.Meetings {
		for _, id := range m.DepartmentIDs {
			if _, ok := wanted[id]; ok {
				out = append(out, m)
				break
			}
		}
	}
	return newestFirst(out), nil
}

func newestFirst(in []model.Meeting) []model.Meeting {
	out := make([]model.Meeting, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		out = append(out, in[i])
	}
	return out
}

// TaskRepo is an in-memory ITaskRepository.
type TaskRepo struct {
	Tasks []model.Task
}

func (r *TaskRepo) Create(_ context.Context, task *model.Task) (*model.Task, error) {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	r.Tasks = append(r.Tasks, *task)
	return task, nil
}

func (r *TaskRepo) FindByTaskID(_ context.Context, taskID string) (*model.Task, error) {
	for _, t := range r.Tasks {
		if t.TaskID == taskID {
			cp := t
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *TaskRepo) Update(_ context.Context, task *model.Task) error {
	for i, t := range r.Tasks {
		if t.ID == task.ID {
			r.Tasks[i] = *task
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *TaskRepo) FindByTargetDate(_ context.Context, date string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.Tasks {
		if t.TargetDate == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// PaymentRepo is an in-memory IPaymentRepository.
type PaymentRepo struct {
	Payments []model.Payment
}

func (r *PaymentRepo) Create(_ context.Context, payment *model.Payment) (*model.Payment, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	payment.CreatedAt = time.Now()
	r.Payments = append(r.Payments, *payment)
	return payment, nil
}

// MailQueue records enqueued messages instead of sending them.
type MailQueue struct {
	Messages []mailer.Message
}

func (q *MailQueue) Enqueue(msg mailer.Message) {
	q.Messages = append(q.Messages, msg)
}
