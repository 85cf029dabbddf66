package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TaskID        string             `bson:"taskId" json:"taskId"`
	DepartmentIDs []string           `bson:"department" json:"department"`
	Tags          []string           `bson:"tag" json:"tag"`
	Title         string             `bson:"task_title" json:"task_title"`
	Description   string             `bson:"task_description,omitempty" json:"task_description,omitempty"`
	TargetDate    string             `bson:"target_date" json:"target_date"` // YYYY-MM-DD
	CreatedAt     time.Time          `bson:"timestamp" json:"timestamp"`
}

// TaskPatch is the allow-list for task edits.
type TaskPatch struct {
	DepartmentIDs *[]string `json:"department"`
	Tags          *[]string `json:"tag"`
	Title         *string   `json:"task_title"`
	Description   *string   `json:"task_description"`
	TargetDate    *string   `json:"target_date"`
}

// Apply overlays the patch onto the task.
func (p *TaskPatch) Apply(t *Task) {
	if p.DepartmentIDs != nil {
		t.DepartmentIDs = *p.DepartmentIDs
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.TargetDate != nil {
		t.TargetDate = *p.TargetDate
	}
}
