package server

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"warcat/internal/auth"
	"warcat/internal/config"
	"warcat/internal/handler"
	"warcat/internal/mailer"
	"warcat/internal/repository"
	"warcat/internal/service"
)

// Repositories holds the persistence layer
type Repositories struct {
	User       repository.IUserRepository
	Department repository.IDepartmentRepository
	Meeting    repository.IMeetingRepository
	Task       repository.ITaskRepository
	Payment    repository.IPaymentRepository
}

// Services holds the business layer
type Services struct {
	Visibility *service.VisibilityService
	User       *service.UserService
	Department *service.DepartmentService
	Meeting    *service.MeetingService
	Task       *service.TaskService
	Payment    *service.PaymentService
}

// Handlers holds the HTTP layer
type Handlers struct {
	User       *handler.UserHandler
	Department *handler.DepartmentHandler
	Meeting    *handler.MeetingHandler
	Task       *handler.TaskHandler
	Payment    *handler.PaymentHandler
}

func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:       repository.NewUserRepository(db),
		Department: repository.NewDepartmentRepository(db),
		Meeting:    repository.NewMeetingRepository(db),
		Task:       repository.NewTaskRepository(db),
		Payment:    repository.NewPaymentRepository(db),
	}
}

func InitServices(repos *Repositories, tokens *auth.TokenManager, mail service.MailQueue) *Services {
	visibility := service.NewVisibilityService(repos.User, repos.Meeting, repos.Department)
	return &Services{
		Visibility: visibility,
		User:       service.NewUserService(repos.User, tokens, mail),
		Department: service.NewDepartmentService(repos.Department),
		Meeting:    service.NewMeetingService(repos.Meeting, visibility, mail),
		Task:       service.NewTaskService(repos.Task, visibility, mail),
		Payment:    service.NewPaymentService(repos.Payment, repos.User),
	}
}

func InitHandlers(s *Services) *Handlers {
	return &Handlers{
		User:       handler.NewUserHandler(s.User),
		Department: handler.NewDepartmentHandler(s.Department),
		Meeting:    handler.NewMeetingHandler(s.Meeting),
		Task:       handler.NewTaskHandler(s.Task),
		Payment:    handler.NewPaymentHandler(s.Payment),
	}
}

// NewDispatcher builds the mail dispatcher. When mail is disabled the
// sender logs instead of dialing SMTP, so the rest of the system is
// unchanged.
func NewDispatcher(cfg *config.Config) *mailer.Dispatcher {
	var sender mailer.Sender
	if cfg.Mail.Enabled {
		sender = mailer.NewSMTPSender(cfg.SMTP)
	} else {
		sender = noopSender{}
	}
	return mailer.NewDispatcher(sender, cfg.Mail.QueueSize)
}

type noopSender struct{}

func (noopSender) Send(msg mailer.Message) error {
	log.Printf("[mailer] mail disabled, skipping %q to %d recipient(s)", msg.Subject, len(msg.To))
	return nil
}

// EnsureIndexes creates the indexes the queries rely on.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return repository.EnsureUserIndexes(ctx, db)
}
