package commands

import (
	"flag"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/printlog/printlog-sheets/config"
	"github.com/printlog/printlog-sheets/logging"
	"github.com/printlog/printlog-sheets/worksheet"
)

const APP = "printlog-sheets"

type Options struct {
	Debug bool
	Env   string
}

// command holds the options shared by the commands that use the event file
// and the spreadsheet. Options not given on the command line are taken from the
// configuration (dotenv file and environment) and then from the defaults.
type command struct {
	credentials string
	tokens      string
	spreadsheet string
	file        string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Path for the Google credentials file. Defaults to %s", DEFAULT_CREDENTIALS))
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Path for the OAuth tokens file. Defaults to <credentials>.tokens")
	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "Spreadsheet key or URL (SPREADSHEET_KEY)")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Print events JSON file (SOURCE_FILE)")

	return flagset
}

func (cmd *command) resolve(conf *config.Config) {
	if strings.TrimSpace(cmd.credentials) == "" {
		cmd.credentials = conf.Credentials
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		cmd.credentials = DEFAULT_CREDENTIALS
	}

	if strings.TrimSpace(cmd.tokens) == "" {
		cmd.tokens = conf.Tokens
	}

	if strings.TrimSpace(cmd.tokens) == "" {
		cmd.tokens = worksheet.TokenFile(cmd.credentials)
	}

	if strings.TrimSpace(cmd.spreadsheet) == "" {
		cmd.spreadsheet = conf.SpreadsheetKey
	}

	if strings.TrimSpace(cmd.file) == "" {
		cmd.file = conf.SourceFile
	}
}

// spreadsheetKey accepts either a bare spreadsheet key or a spreadsheet URL.
func spreadsheetKey(v string) (string, error) {
	v = strings.TrimSpace(v)

	if strings.HasPrefix(v, "https://") {
		match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(v)
		if len(match) < 2 || match[1] == "" {
			return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
		}

		return match[1], nil
	}

	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(v) {
		return "", fmt.Errorf("invalid spreadsheet key '%s'", v)
	}

	return v, nil
}

func setup(debug bool, file string) func() {
	log := logging.New(logging.Config{
		Debug: debug,
		File:  file,
	})

	restore := zap.ReplaceGlobals(log)

	return func() {
		log.Sync()
		restore()
	}
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flagset.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
	}

	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
	fmt.Println("    --env   dotenv file with SPREADSHEET_KEY, SOURCE_FILE, etc. Defaults to ./.env")
}

func debugf(format string, args ...any) {
	zap.S().Debugf(format, args...)
}

func infof(format string, args ...any) {
	zap.S().Infof(format, args...)
}

func warnf(format string, args ...any) {
	zap.S().Warnf(format, args...)
}
