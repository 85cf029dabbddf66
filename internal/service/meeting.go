package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"warcat/internal/mailer"
	"warcat/internal/model"
	"warcat/internal/repository"
)

// meetingIDPrefix keeps the human-readable shape clients key edits
// off; the uuid suffix makes the id collision-resistant.
const meetingIDPrefix = "warcat-"

// MeetingService handles meeting create/edit/list and the
// notification fan-out around them.
type MeetingService struct {
	meetings   repository.IMeetingRepository
	visibility *VisibilityService
	mail       MailQueue
}

func NewMeetingService(meetings repository.IMeetingRepository, visibility *VisibilityService, mail MailQueue) *MeetingService {
	return &MeetingService{meetings: meetings, visibility: visibility, mail: mail}
}

// NewMeetingID returns a fresh external meeting identifier. All id
// generation goes through here.
func NewMeetingID() string {
	return meetingIDPrefix + uuid.NewString()
}

// Create stores a meeting and notifies its audience.
func (s *MeetingService) Create(ctx context.Context, req *model.CreateMeetingRequest) (*model.Meeting, error) {
	meeting, err := s.meetings.Create(ctx, &model.Meeting{
		MeetingID:     NewMeetingID(),
		DepartmentIDs: req.DepartmentIDs,
		Tags:          req.Tags,
		Topic:         req.Topic,
		Date:          req.Date,
		Time:          req.Time,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	if err := s.notify(ctx, meeting, mailer.FlagAdded); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Edit applies an allow-listed patch to the meeting with the given
// external id and notifies the audience of the patched record.
func (s *MeetingService) Edit(ctx context.Context, meetingID string, patch *model.MeetingPatch) (*model.Meeting, error) {
	meeting, err := s.meetings.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	patch.Apply(meeting)
	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	if err := s.notify(ctx, meeting, mailer.FlagUpdated); err != nil {
		return nil, err
	}
	return meeting, nil
}

// List delegates to the visibility resolver.
func (s *MeetingService) List(ctx context.Context, userID, roleType string) ([]model.MeetingView, error) {
	return s.visibility.VisibleMeetings(ctx, userID, roleType)
}

// notify resolves the audience and enqueues the notification. The
// recipient lookup is part of the request; the delivery is not.
func (s *MeetingService) notify(ctx context.Context, meeting *model.Meeting, flag mailer.Flag) error {
	emails, err := s.visibility.NotifyEmails(ctx, meeting.DepartmentIDs, meeting.Tags)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}
	msg, err := mailer.MeetingMessage(emails, meeting, flag)
	if err != nil {
		log.Printf("[meeting] render %s mail for %s: %v", flag, meeting.MeetingID, err)
		return nil
	}
	s.mail.Enqueue(msg)
	return nil
}
