package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/model"
	"warcat/internal/repository"
	"warcat/internal/storage"
)

// ErrForbidden is returned when a user's role disallows an operation.
var ErrForbidden = errors.New("user is not authorized")

// VisibilityService resolves which users a meeting fans out to and
// which meetings a requesting user may list.
type VisibilityService struct {
	users       repository.IUserRepository
	meetings    repository.IMeetingRepository
	departments repository.IDepartmentRepository
}

func NewVisibilityService(users repository.IUserRepository, meetings repository.IMeetingRepository, departments repository.IDepartmentRepository) *VisibilityService {
	return &VisibilityService{users: users, meetings: meetings, departments: departments}
}

// NotifyEmails computes the notification recipients for the given
// department ids and audience tags: users in any listed department
// whose role tag equals one of the tags, case-insensitively. The
// result is deduplicated and keeps first-seen order.
func (s *VisibilityService) NotifyEmails(ctx context.Context, depIDs, tags []string) ([]string, error) {
	if len(depIDs) == 0 || len(tags) == 0 {
		return nil, nil
	}
	users, err := s.users.FindByDepartments(ctx, depIDs)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(users))
	var emails []string
	for i := range users {
		u := &users[i]
		if !roleMatchesTags(u.RoleType, tags) {
			continue
		}
		if _, ok := seen[u.Email]; ok {
			continue
		}
		seen[u.Email] = struct{}{}
		emails = append(emails, u.Email)
	}
	return emails, nil
}

// VisibleMeetings returns the meetings the requesting user may list,
// newest first, with department ids resolved to display names.
// Admins see everything. Other users see meetings sharing one of
// their departments whose tags contain the role.
func (s *VisibilityService) VisibleMeetings(ctx context.Context, userID, roleType string) ([]model.MeetingView, error) {
	if roleType == model.RoleAdmin {
		meetings, err := s.meetings.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.project(ctx, meetings)
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user.RoleType != roleType {
		return nil, ErrForbidden
	}

	meetings, err := s.meetings.FindByDepartments(ctx, user.DepartmentIDs())
	if err != nil {
		return nil, err
	}
	var visible []model.Meeting
	for _, m := range meetings {
		if tagsContainRole(m.Tags, roleType) {
			visible = append(visible, m)
		}
	}
	// Empty result is reported as not found, not as an empty success.
	if len(visible) == 0 {
		return nil, storage.ErrNotFound
	}
	return s.project(ctx, visible)
}

// project replaces department ids with display names; ids that do
// not resolve are omitted.
func (s *VisibilityService) project(ctx context.Context, meetings []model.Meeting) ([]model.MeetingView, error) {
	var allIDs []string
	for _, m := range meetings {
		allIDs = append(allIDs, m.DepartmentIDs...)
	}
	deps, err := s.departments.FindByIDs(ctx, allIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(deps))
	for _, d := range deps {
		names[d.ID.Hex()] = d.Name
	}

	views := make([]model.MeetingView, 0, len(meetings))
	for _, m := range meetings {
		depNames := make([]string, 0, len(m.DepartmentIDs))
		for _, id := range m.DepartmentIDs {
			if name, ok := names[id]; ok {
				depNames = append(depNames, name)
			}
		}
		views = append(views, model.MeetingView{
			MeetingID:       m.MeetingID,
			Tags:            m.Tags,
			Topic:           m.Topic,
			Date:            m.Date,
			Time:            m.Time,
			ImageURL:        m.ImageURL,
			DepartmentNames: depNames,
		})
	}
	return views, nil
}

// roleMatchesTags reports whether the role equals any tag,
// case-insensitively and anchored. The role "secretary" does not
// match the tag "secretary-assistant" here, although it would pass
// the looser listing check below. The notify and listing paths
// intentionally diverge; do not unify them.
func roleMatchesTags(role string, tags []string) bool {
	for _, tag := range tags {
		if strings.EqualFold(role, tag) {
			return true
		}
	}
	return false
}

// tagsContainRole reports whether any tag contains the role as a
// case-insensitive substring. This is the broader match used only
// when listing meetings.
func tagsContainRole(tags []string, role string) bool {
	needle := strings.ToLower(role)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
