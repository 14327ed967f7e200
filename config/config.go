package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvFile is the dotenv file read from the working directory when no
// other file is specified.
const DefaultEnvFile = ".env"

const (
	SpreadsheetKey   = "SPREADSHEET_KEY"
	SourceFile       = "SOURCE_FILE"
	Credentials      = "GOOGLE_CREDENTIALS"
	Tokens           = "GOOGLE_TOKENS"
	ValueInputOption = "VALUE_INPUT_OPTION"
	LogFile          = "LOG_FILE"
	MetricsFile      = "METRICS_FILE"
)

// Config is the process configuration, built once at startup from an optional
// dotenv file overlaid with the process environment.
type Config struct {
	SpreadsheetKey   string
	SourceFile       string
	Credentials      string
	Tokens           string
	ValueInputOption string
	LogFile          string
	MetricsFile      string
}

// Load reads the dotenv file (if it exists) and the process environment. Process
// environment variables take precedence over the dotenv file.
func Load(dotenv string) (*Config, error) {
	v := viper.New()

	v.SetDefault(ValueInputOption, "RAW")

	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			v.SetConfigFile(dotenv)
			v.SetConfigType("env")

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading %s (%w)", dotenv, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	return &Config{
		SpreadsheetKey:   strings.TrimSpace(v.GetString(SpreadsheetKey)),
		SourceFile:       strings.TrimSpace(v.GetString(SourceFile)),
		Credentials:      strings.TrimSpace(v.GetString(Credentials)),
		Tokens:           strings.TrimSpace(v.GetString(Tokens)),
		ValueInputOption: strings.ToUpper(strings.TrimSpace(v.GetString(ValueInputOption))),
		LogFile:          strings.TrimSpace(v.GetString(LogFile)),
		MetricsFile:      strings.TrimSpace(v.GetString(MetricsFile)),
	}, nil
}

// Validate checks the settings required to upload events.
func (c *Config) Validate() error {
	if c.SpreadsheetKey == "" {
		return fmt.Errorf("%s is not set", SpreadsheetKey)
	}

	if c.SourceFile == "" {
		return fmt.Errorf("%s is not set", SourceFile)
	}

	switch c.ValueInputOption {
	case "RAW", "USER_ENTERED":
	default:
		return fmt.Errorf("invalid %s '%s' - expected RAW or USER_ENTERED", ValueInputOption, c.ValueInputOption)
	}

	return nil
}
