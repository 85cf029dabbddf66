package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"warcat/internal/model"
	"warcat/internal/storage"
	"warcat/internal/testutil"
)

func newMeetingFixture() (*MeetingService, *testutil.UserRepo, *testutil.MeetingRepo, *testutil.MailQueue) {
	users := &testutil.UserRepo{}
	meetings := &testutil.MeetingRepo{}
	departments := &testutil.DepartmentRepo{}
	mail := &testutil.MailQueue{}
	visibility := NewVisibilityService(users, meetings, departments)
	return NewMeetingService(meetings, visibility, mail), users, meetings, mail
}

func TestCreateMeeting_GeneratesUniqueIDsAndNotifies(t *testing.T) {
	svc, users, meetings, mail := newMeetingFixture()
	ctx := context.Background()

	addUser(users, "sec@example.com", "Secretary", "D1")

	req := &model.CreateMeetingRequest{
		DepartmentIDs: []string{"D1"},
		Tags:          []string{"secretary"},
		Topic:         "Quarterly review",
		Date:          "2026-09-01",
		Time:          "10:00",
	}
	m1, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	m2, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if !strings.HasPrefix(m1.MeetingID, "warcat-") {
		t.Fatalf("meeting id missing prefix: %s", m1.MeetingID)
	}
	if m1.MeetingID == m2.MeetingID {
		t.Fatalf("meeting ids must not collide: %s", m1.MeetingID)
	}
	if len(meetings.Meetings) != 2 {
		t.Fatalf("expected two stored meetings, got %d", len(meetings.Meetings))
	}
	if len(mail.Messages) != 2 {
		t.Fatalf("expected a notification per create, got %d", len(mail.Messages))
	}
	if mail.Messages[0].To[0] != "sec@example.com" {
		t.Fatalf("unexpected recipient: %v", mail.Messages[0].To)
	}
	if !strings.Contains(mail.Messages[0].HTML, "Quarterly review") {
		t.Fatalf("notification body missing topic")
	}
}

func TestCreateMeeting_NoAudienceSkipsMail(t *testing.T) {
	svc, _, _, mail := newMeetingFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &model.CreateMeetingRequest{
		DepartmentIDs: []string{"D9"},
		Tags:          []string{"secretary"},
		Topic:         "Nobody comes",
		Date:          "2026-09-01",
		Time:          "10:00",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(mail.Messages) != 0 {
		t.Fatalf("no audience means no mail, got %d", len(mail.Messages))
	}
}

func TestEditMeeting_PartialPatchKeepsOtherFields(t *testing.T) {
	svc, _, _, _ := newMeetingFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateMeetingRequest{
		DepartmentIDs: []string{"D1"},
		Tags:          []string{"secretary"},
		Topic:         "Original topic",
		Date:          "2026-09-01",
		Time:          "10:00",
		ImageURL:      "http://img/x.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTopic := "Renamed topic"
	updated, err := svc.Edit(ctx, created.MeetingID, &model.MeetingPatch{Topic: &newTopic})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Topic != "Renamed topic" {
		t.Fatalf("topic not updated: %q", updated.Topic)
	}
	if updated.Date != "2026-09-01" || updated.Time != "10:00" || updated.ImageURL != "http://img/x.png" {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
	if len(updated.DepartmentIDs) != 1 || updated.DepartmentIDs[0] != "D1" {
		t.Fatalf("department ids changed: %v", updated.DepartmentIDs)
	}
}

func TestEditMeeting_NotifiesPatchedAudience(t *testing.T) {
	svc, users, _, mail := newMeetingFixture()
	ctx := context.Background()

	addUser(users, "d2head@example.com", "head_of_office", "D2")

	created, err := svc.Create(ctx, &model.CreateMeetingRequest{
		DepartmentIDs: []string{"D1"},
		Tags:          []string{"secretary"},
		Topic:         "Moves departments",
		Date:          "2026-09-01",
		Time:          "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(mail.Messages) != 0 {
		t.Fatalf("no mail expected on create, got %d", len(mail.Messages))
	}

	newDeps := []string{"D2"}
	newTags := []string{"head_of_office"}
	if _, err := svc.Edit(ctx, created.MeetingID, &model.MeetingPatch{DepartmentIDs: &newDeps, Tags: &newTags}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if len(mail.Messages) != 1 || mail.Messages[0].To[0] != "d2head@example.com" {
		t.Fatalf("expected update mail to the patched audience, got %+v", mail.Messages)
	}
	if !strings.Contains(mail.Messages[0].Subject, "Updated") {
		t.Fatalf("expected updated wording, got %q", mail.Messages[0].Subject)
	}
}

func TestEditMeeting_UnknownID(t *testing.T) {
	svc, _, _, _ := newMeetingFixture()
	ctx := context.Background()

	topic := "x"
	if _, err := svc.Edit(ctx, "warcat-missing", &model.MeetingPatch{Topic: &topic}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
