package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/auth"
	"warcat/internal/mailer"
	"warcat/internal/model"
	"warcat/internal/repository"
	"warcat/internal/storage"
)

// ErrWrongPassword is returned when login credentials do not verify.
var ErrWrongPassword = errors.New("wrong password")

// MailQueue accepts rendered messages for best-effort delivery.
type MailQueue interface {
	Enqueue(msg mailer.Message)
}

// UserService handles registration, authentication and profile reads.
type UserService struct {
	users  repository.IUserRepository
	tokens *auth.TokenManager
	mail   MailQueue
}

func NewUserService(users repository.IUserRepository, tokens *auth.TokenManager, mail MailQueue) *UserService {
	return &UserService{users: users, tokens: tokens, mail: mail}
}

// Register stores a new user and issues a session token. The welcome
// mail is enqueued best-effort and never fails the registration.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (string, *model.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return "", nil, storage.ErrDuplicate
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}
	user, err := s.users.Create(ctx, &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		RoleType:     req.RoleType,
		PhoneNumber:  req.PhoneNumber,
		BlockFlat:    req.BlockFlat,
		Payment:      false,
	})
	if err != nil {
		return "", nil, err
	}

	if msg, err := mailer.RegistrationMessage(user); err != nil {
		log.Printf("[user] render registration mail for %s: %v", user.Email, err)
	} else {
		s.mail.Enqueue(msg)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials, records the login time and issues a
// session token.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, ErrWrongPassword
	}
	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return "", nil, err
	}
	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ResetPassword re-hashes and stores a new password for the email.
func (s *UserService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

// Profile returns the public projection of a user.
func (s *UserService) Profile(ctx context.Context, id string) (*model.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	p := user.ToProfile()
	return &p, nil
}
