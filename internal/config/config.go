package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/mensa-bot/internal/database"
	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/openmensa"
	"github.com/spf13/viper"
)

const (
	keySlackBotToken      = "SLACK_BOT_TOKEN"
	keySlackAppToken      = "SLACK_APP_TOKEN"
	keySlackSigningSecret = "SLACK_SIGNING_SECRET"
	keyDatabasePath       = "DATABASE_PATH"
	keyPort               = "PORT"
	keyOpenMensaURL       = "OPENMENSA_URL"
	keyHTTPTimeout        = "HTTP_TIMEOUT"
	keyReminderTime       = "REMINDER_TIME"
	keyReminderTimezone   = "REMINDER_TIMEZONE"
	keyMisfireGrace       = "MISFIRE_GRACE"
	keySessionTTL         = "SESSION_TTL"
	keyJanitorInterval    = "JANITOR_INTERVAL"
)

type Config struct {
	SlackBotToken      string
	SlackAppToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	OpenMensaURL       string
	HTTPTimeout        time.Duration
	ReminderTime       string
	ReminderTimezone   string
	MisfireGrace       time.Duration
	SessionTTL         time.Duration
	JanitorInterval    time.Duration
}

// Load reads the configuration from the environment and, when configFile is
// set, from that file. Environment variables win over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(keyDatabasePath, database.InMemory)
	v.SetDefault(keyPort, "3000")
	v.SetDefault(keyOpenMensaURL, openmensa.DefaultBaseURL)
	v.SetDefault(keyHTTPTimeout, 10*time.Second)
	v.SetDefault(keyReminderTime, domain.DefaultReminderTime)
	v.SetDefault(keyReminderTimezone, domain.DefaultTimezone)
	v.SetDefault(keyMisfireGrace, time.Minute)
	v.SetDefault(keySessionTTL, 30*24*time.Hour)
	v.SetDefault(keyJanitorInterval, time.Hour)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		SlackBotToken:      v.GetString(keySlackBotToken),
		SlackAppToken:      v.GetString(keySlackAppToken),
		SlackSigningSecret: v.GetString(keySlackSigningSecret),
		DatabasePath:       v.GetString(keyDatabasePath),
		Port:               v.GetString(keyPort),
		OpenMensaURL:       v.GetString(keyOpenMensaURL),
		HTTPTimeout:        v.GetDuration(keyHTTPTimeout),
		ReminderTime:       v.GetString(keyReminderTime),
		ReminderTimezone:   v.GetString(keyReminderTimezone),
		MisfireGrace:       v.GetDuration(keyMisfireGrace),
		SessionTTL:         v.GetDuration(keySessionTTL),
		JanitorInterval:    v.GetDuration(keyJanitorInterval),
	}, nil
}

// Location resolves the reminder timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ReminderTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", keyReminderTimezone, c.ReminderTimezone, err)
	}
	return loc, nil
}

// SocketMode reports whether the bot connects over Socket Mode instead of
// serving HTTP endpoints.
func (c *Config) SocketMode() bool {
	return c.SlackAppToken != ""
}

// Validate checks what the bot needs to talk to Slack
func (c *Config) Validate() error {
	if c.SlackBotToken == "" {
		return errors.New(keySlackBotToken + " is required")
	}
	if !c.SocketMode() && c.SlackSigningSecret == "" {
		return errors.New(keySlackSigningSecret + " is required unless " + keySlackAppToken + " is set")
	}
	if c.JanitorInterval <= 0 {
		return fmt.Errorf("%s must be positive", keyJanitorInterval)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
