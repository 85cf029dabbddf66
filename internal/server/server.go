package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"warcat/internal/auth"
	"warcat/internal/config"
	"warcat/internal/mailer"
	"warcat/internal/middleware"
	"warcat/internal/scheduler"
)

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	mongo      *mongo.Client
	dispatcher *mailer.Dispatcher
	reminder   *scheduler.Reminder
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	if err := EnsureIndexes(db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	dispatcher := NewDispatcher(cfg)

	repos := InitRepositories(db)
	services := InitServices(repos, tokens, dispatcher)
	handlers := InitHandlers(services)

	var reminder *scheduler.Reminder
	if cfg.Reminder.Enabled {
		reminder, err = scheduler.NewReminder(cfg.Reminder.Spec, services.Task)
		if err != nil {
			return nil, fmt.Errorf("failed to build reminder schedule: %w", err)
		}
	}

	router := setupRouter(handlers, tokens)

	return &Server{
		cfg:        cfg,
		router:     router,
		mongo:      mongoClient,
		dispatcher: dispatcher,
		reminder:   reminder,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close stops background work and disconnects MongoDB.
func (s *Server) Close() error {
	if s.reminder != nil {
		s.reminder.Stop()
	}
	if s.dispatcher != nil {
		s.dispatcher.Close()
	}
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.dispatcher.Start()
	if s.reminder != nil {
		s.reminder.Start()
	}
	fmt.Printf("Warcat server running on %s\n", s.cfg.Server.Address())
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(h *Handlers, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	api := r.Group("/api")

	// Routes without a session
	api.POST("/register", h.User.Register)
	api.POST("/login", h.User.Login)
	api.POST("/reset-password", h.User.ResetPassword)

	// Everything else requires a Bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	protected.POST("/profile", h.User.Profile)

	departments := protected.Group("/departments")
	{
		departments.GET("", h.Department.List)
		departments.POST("", h.Department.Create)
	}

	meetings := protected.Group("/meetings")
	{
		meetings.GET("", h.Meeting.List)
		meetings.POST("", h.Meeting.Create)
		meetings.PUT("", h.Meeting.Edit)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.POST("", h.Task.Create)
		tasks.PUT("", h.Task.Edit)
	}

	protected.POST("/payments", h.Payment.Record)

	return r
}
