package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meeting struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MeetingID     string             `bson:"meetingId" json:"meetingId"`
	DepartmentIDs []string           `bson:"departmentIds" json:"departmentIds"`
	Tags          []string           `bson:"tag" json:"tag"` // audience role tags
	Topic         string             `bson:"meetingTopic" json:"meetingTopic"`
	Date          string             `bson:"selectDate" json:"selectDate"`
	Time          string             `bson:"selectTime" json:"selectTime"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt     time.Time          `bson:"timestamp" json:"timestamp"`
}

// MeetingView is a meeting with department ids resolved to display
// names for listing responses.
type MeetingView struct {
	MeetingID       string   `json:"meetingId"`
	Tags            []string `json:"tag"`
	Topic           string   `json:"meetingTopic"`
	Date            string   `json:"selectDate"`
	Time            string   `json:"selectTime"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	DepartmentNames []string `json:"departmentNames"`
}

// MeetingPatch is the allow-list for meeting edits. Only non-nil
// fields are applied; unknown request keys are never copied onto the
// stored record.
type MeetingPatch struct {
	DepartmentIDs *[]string `json:"departmentIds"`
	Tags          *[]string `json:"tag"`
	Topic         *string   `json:"meetingTopic"`
	Date          *string   `json:"selectDate"`
	Time          *string   `json:"selectTime"`
	ImageURL      *string   `json:"imageUrl"`
}

// Apply overlays the patch onto the meeting.
func (p *MeetingPatch) Apply(m *Meeting) {
	if p.DepartmentIDs != nil {
		m.DepartmentIDs = *p.DepartmentIDs
	}
	if p.Tags != nil {
		m.Tags = *p.Tags
	}
	if p.Topic != nil {
		m.Topic = *p.Topic
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
}
