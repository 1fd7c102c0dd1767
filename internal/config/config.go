package config

import (
	"time"

	"github.com/spf13/viper"
)

// Demo-site credentials. The passwords are public fixtures of
// saucedemo.com, not secrets.
const (
	standardUser = "standard_user"
	lockedUser   = "locked_out_user"
	problemUser  = "problem_user"
	demoPassword = "secret_sauce"
)

// Config holds the environment-derived harness settings.
type Config struct {
	BaseURL      string
	APIBaseURL   string
	Browser      string
	ImplicitWait time.Duration
	ExplicitWait time.Duration
	AppPort      string
	DBPath       string
	RabbitMQURL  string
}

// Load reads settings from environment variables, falling back to the
// defaults below.
func Load() *Config {
	viper.SetDefault("BASE_URL", "https://www.saucedemo.com")
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("BROWSER", "chrome")
	viper.SetDefault("IMPLICIT_WAIT", 10)
	viper.SetDefault("EXPLICIT_WAIT", 20)
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DB_PATH", "ecommerce_test.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		BaseURL:      viper.GetString("BASE_URL"),
		APIBaseURL:   viper.GetString("API_BASE_URL"),
		Browser:      viper.GetString("BROWSER"),
		ImplicitWait: time.Duration(viper.GetInt("IMPLICIT_WAIT")) * time.Second,
		ExplicitWait: time.Duration(viper.GetInt("EXPLICIT_WAIT")) * time.Second,
		AppPort:      viper.GetString("APP_PORT"),
		DBPath:       viper.GetString("DB_PATH"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
	}
}

// Credentials returns the (username, password) pair for a named user type:
// "standard", "locked" or "problem". Unknown types fall back to standard.
func (c *Config) Credentials(userType string) (string, string) {
	switch userType {
	case "locked":
		return lockedUser, demoPassword
	case "problem":
		return problemUser, demoPassword
	default:
		return standardUser, demoPassword
	}
}
