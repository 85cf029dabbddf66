package mailer

import (
	"bytes"
	"html/template"

	"warcat/internal/model"
)

// Flag selects the added vs updated wording of a notification.
type Flag string

const (
	FlagAdded   Flag = "Added"
	FlagUpdated Flag = "Updated"
)

var (
	registrationTmpl = template.Must(template.New("registration").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:sans-serif;color:#2d2d2d;background-color:#F4F5FF;">
  <div style="background-color:#fff;padding:32px;border-radius:4px;margin:20px 10%;">
    <h1 style="color:rgb(10,0,119);">Warcat</h1>
    <p>Dear {{.Name}},</p>
    <h2 style="margin-top:0;">Welcome to Warcat!</h2>
    <hr>
    {{if .BlockFlat}}<p>Your flat number is: {{.BlockFlat}}.</p>{{end}}
    {{if .PhoneNumber}}<p>Your phone number is: {{.PhoneNumber}}.</p>{{end}}
    <p>Your registration was successful.</p>
    <p><b>Email:</b> {{.Email}}</p>
  </div>
</body>
</html>`))

	meetingTmpl = template.Must(template.New("meeting").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:sans-serif;color:#2d2d2d;background-color:#F4F5FF;">
  <div style="background-color:#fff;padding:32px;border-radius:4px;margin:20px 10%;">
    <h1 style="color:rgb(10,0,119);">Warcat</h1>
    <p>Dear User,</p>
    <h2 style="margin-top:0;">Your meeting has been {{.Flag}} successfully.</h2>
    <hr>
    <p>Meeting Details:</p>
    <b>
      <p>Topic: {{.Meeting.Topic}}</p>
      <p>Date: {{.Meeting.Date}}</p>
      <p>Time: {{.Meeting.Time}}</p>
    </b>
  </div>
</body>
</html>`))

	taskTmpl = template.Must(template.New("task").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:sans-serif;color:#2d2d2d;background-color:#F4F5FF;">
  <div style="background-color:#fff;padding:32px;border-radius:4px;margin:20px 10%;">
    <h1 style="color:rgb(10,0,119);">Warcat</h1>
    <p>Dear User,</p>
    <h2 style="margin-top:0;">Your task has been {{.Flag}} successfully.</h2>
    <hr>
    <p>Task Details:</p>
    <p>Title: <b>{{.Task.Title}}</b><br>
       Target Date: <b>{{.Task.TargetDate}}</b></p>
  </div>
</body>
</html>`))

	reminderTmpl = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html lang="en">
<body style="margin:0;padding:0;font-family:sans-serif;color:#2d2d2d;background-color:#F4F5FF;">
  <div style="background-color:#fff;padding:32px;border-radius:4px;margin:20px 10%;">
    <h1 style="color:rgb(10,0,119);">Warcat</h1>
    <p>Dear User,</p>
    <h2 style="margin-top:0;">Task due today.</h2>
    <hr>
    <p>Title: <b>{{.Title}}</b><br>
       Target Date: <b>{{.TargetDate}}</b></p>
  </div>
</body>
</html>`))
)

// RegistrationMessage renders the welcome mail for a new user.
func RegistrationMessage(u *model.User) (Message, error) {
	html, err := render(registrationTmpl, u)
	if err != nil {
		return Message{}, err
	}
	return Message{To: []string{u.Email}, Subject: "Welcome to Warcat", HTML: html}, nil
}

// MeetingMessage renders the added/updated notification for a meeting.
func MeetingMessage(to []string, m *model.Meeting, flag Flag) (Message, error) {
	html, err := render(meetingTmpl, struct {
		Flag    Flag
		Meeting *model.Meeting
	}{flag, m})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Meeting " + string(flag) + " Successfully", HTML: html}, nil
}

// TaskMessage renders the added/updated notification for a task.
func TaskMessage(to []string, t *model.Task, flag Flag) (Message, error) {
	html, err := render(taskTmpl, struct {
		Flag Flag
		Task *model.Task
	}{flag, t})
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Task " + string(flag) + " Successfully", HTML: html}, nil
}

// ReminderMessage renders the due-today reminder for a task.
func ReminderMessage(to []string, t *model.Task) (Message, error) {
	html, err := render(reminderTmpl, t)
	if err != nil {
		return Message{}, err
	}
	return Message{To: to, Subject: "Task Due Today", HTML: html}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
