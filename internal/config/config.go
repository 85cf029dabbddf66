package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// JWT configuration. Secret has no default on purpose: the process
// refuses to start without one.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// SMTP configuration for outgoing notification mail
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mail dispatcher configuration
type MailConfig struct {
	Enabled   bool
	QueueSize int
}

// Reminder job configuration
type ReminderConfig struct {
	Enabled bool
	Spec    string
}

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Mail     MailConfig
	Reminder ReminderConfig
}

// Default configuration values
const (
	DefaultServerPort    = "8080"
	DefaultServerHost    = ""
	DefaultMongoURI      = "mongodb://localhost:27017/warcat"
	DefaultMongoDB       = "warcat"
	DefaultJWTTTLMinutes = 60
	DefaultSMTPHost      = "localhost"
	DefaultSMTPPort      = 587
	DefaultMailFrom      = "Warcat <admin@warcat.com>"
	DefaultMailEnabled   = true
	DefaultMailQueueSize = 64
	// Reminder job defaults: every day at 08:00
	DefaultReminderEnabled = true
	DefaultReminderSpec    = "0 8 * * *"
)

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    time.Duration(getEnvInt("JWT_TTL_MINUTES", DefaultJWTTTLMinutes)) * time.Minute,
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", DefaultSMTPHost),
			Port:     getEnvInt("SMTP_PORT", DefaultSMTPPort),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", DefaultMailFrom),
		},
		Mail: MailConfig{
			Enabled:   getEnvBool("MAIL_ENABLED", DefaultMailEnabled),
			QueueSize: getEnvInt("MAIL_QUEUE_SIZE", DefaultMailQueueSize),
		},
		Reminder: ReminderConfig{
			Enabled: getEnvBool("REMINDER_ENABLED", DefaultReminderEnabled),
			Spec:    getEnv("REMINDER_SPEC", DefaultReminderSpec),
		},
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
