package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/shift"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds hour-decomposition settings. Shift boundaries are
// configurable so future shift plans don't touch the interval math.
type PayrollConfig struct {
	RoundingStepMinutes int
	LeaveBankHours      float64
	DefaultTimezone     string

	DayStart       string
	DayStandardEnd string
	DayEnd         string
	LunchStart     string
	LunchEnd       string
	NightStart     string
	NightDeepStart string
	NightDeepEnd   string
	NightEnd       string
}

func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments; the environment is
	// already populated there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "shiftpay"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll configuration
	stepMinutes, err := strconv.Atoi(getEnv("PAYROLL_ROUNDING_STEP_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_ROUNDING_STEP_MINUTES: %w", err)
	}
	leaveBank, err := strconv.ParseFloat(getEnv("PAYROLL_LEAVE_BANK_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LEAVE_BANK_HOURS: %w", err)
	}

	config.Payroll = PayrollConfig{
		RoundingStepMinutes: stepMinutes,
		LeaveBankHours:      leaveBank,
		DefaultTimezone:     getEnv("PAYROLL_DEFAULT_TIMEZONE", "Asia/Ho_Chi_Minh"),
		DayStart:            getEnv("SHIFT_DAY_START", "07:00"),
		DayStandardEnd:      getEnv("SHIFT_DAY_STANDARD_END", "16:00"),
		DayEnd:              getEnv("SHIFT_DAY_END", "19:00"),
		LunchStart:          getEnv("SHIFT_LUNCH_START", "12:00"),
		LunchEnd:            getEnv("SHIFT_LUNCH_END", "13:00"),
		NightStart:          getEnv("SHIFT_NIGHT_START", "19:00"),
		NightDeepStart:      getEnv("SHIFT_NIGHT_DEEP_START", "22:00"),
		NightDeepEnd:        getEnv("SHIFT_NIGHT_DEEP_END", "03:00"),
		NightEnd:            getEnv("SHIFT_NIGHT_END", "07:00"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.RoundingStepMinutes <= 0 {
		return fmt.Errorf("PAYROLL_ROUNDING_STEP_MINUTES must be positive")
	}
	if c.Payroll.LeaveBankHours < 0 {
		return fmt.Errorf("PAYROLL_LEAVE_BANK_HOURS must not be negative")
	}
	if _, err := c.Payroll.Schedule(); err != nil {
		return err
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Schedule builds the shift plan from the configured boundary times.
func (p PayrollConfig) Schedule() (shift.Schedule, error) {
	var (
		s   shift.Schedule
		err error
	)
	fields := []struct {
		name  string
		value string
		dst   *shift.Clock
	}{
		{"SHIFT_DAY_START", p.DayStart, &s.DayStart},
		{"SHIFT_DAY_STANDARD_END", p.DayStandardEnd, &s.DayStandardEnd},
		{"SHIFT_DAY_END", p.DayEnd, &s.DayEnd},
		{"SHIFT_LUNCH_START", p.LunchStart, &s.LunchStart},
		{"SHIFT_LUNCH_END", p.LunchEnd, &s.LunchEnd},
		{"SHIFT_NIGHT_START", p.NightStart, &s.NightStart},
		{"SHIFT_NIGHT_DEEP_START", p.NightDeepStart, &s.NightDeepStart},
		{"SHIFT_NIGHT_DEEP_END", p.NightDeepEnd, &s.NightDeepEnd},
		{"SHIFT_NIGHT_END", p.NightEnd, &s.NightEnd},
	}
	for _, f := range fields {
		*f.dst, err = parseClock(f.value)
		if err != nil {
			return shift.Schedule{}, fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}
	return s, nil
}

func parseClock(s string) (shift.Clock, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return shift.Clock{}, fmt.Errorf("clock time %q must be HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return shift.Clock{}, fmt.Errorf("clock time %q has an invalid hour", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return shift.Clock{}, fmt.Errorf("clock time %q has an invalid minute", s)
	}
	return shift.Clock{Hour: hour, Minute: minute}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
