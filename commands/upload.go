package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/printlog/printlog-sheets/config"
	"github.com/printlog/printlog-sheets/metrics"
	"github.com/printlog/printlog-sheets/upload"
	"github.com/printlog/printlog-sheets/worksheet"
)

var UploadCmd = Upload{
	command: command{
		credentials: "",
		tokens:      "",
		spreadsheet: "",
		file:        "",
		debug:       false,
	},

	valueInput: "",
	noclear:    false,
	logfile:    "",
	metrics:    "",
}

type Upload struct {
	command
	valueInput string
	noclear    bool
	logfile    string
	metrics    string
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Uploads completed prints from the print events file to a Google Sheets worksheet"
}

func (cmd *Upload) Usage() string {
	return "--spreadsheet <key> --file <file>"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] upload [options] --spreadsheet <key> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Appends a row to the first worksheet of the spreadsheet for each PRINT_DONE event in the")
	fmt.Println("  events file and then clears the events file. The spreadsheet and file default to the")
	fmt.Println("  SPREADSHEET_KEY and SOURCE_FILE settings in the environment or dotenv file.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s upload\n", APP)
	fmt.Printf("    %s --debug upload --credentials \"service.json\" \\\n", APP)
	fmt.Println(`                                --spreadsheet "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                --file "events.json"`)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("upload")

	flagset.StringVar(&cmd.valueInput, "value-input", cmd.valueInput, "Sheets value input option (RAW or USER_ENTERED). Defaults to RAW")
	flagset.BoolVar(&cmd.noclear, "no-clear", cmd.noclear, "Leaves the events file unchanged after uploading")
	flagset.StringVar(&cmd.logfile, "log-file", cmd.logfile, "Writes the log to a rotated file instead of the console (LOG_FILE)")
	flagset.StringVar(&cmd.metrics, "metrics", cmd.metrics, "Writes the run metrics to a Prometheus textfile (METRICS_FILE)")

	return flagset
}

func (cmd *Upload) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := config.Load(options.Env)
	if err != nil {
		return err
	}

	cmd.resolve(conf)

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	key, err := spreadsheetKey(cmd.spreadsheet)
	if err != nil {
		return err
	}

	defer setup(cmd.debug, cmd.logfile)()

	run := uuid.NewString()
	log := zap.S().With("run", run)
	ctx := context.Background()

	log.Debugf("spreadsheet:%s  file:%s  credentials:%s", key, cmd.file, cmd.credentials)

	// ... authorise
	client, err := worksheet.Authorize(ctx, cmd.credentials, cmd.tokens)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	sheet, err := worksheet.Open(ctx, key, cmd.valueInput, option.WithHTTPClient(client))
	if err != nil {
		return err
	}

	// ... upload
	job := upload.Job{
		Source:     cmd.file,
		KeepSource: cmd.noclear,
		Log:        log,
	}

	result, err := upload.Run(ctx, job, sheet)

	if cmd.metrics != "" {
		if e := metrics.Write(cmd.metrics, result, err, time.Now()); e != nil {
			log.Warnf("could not write metrics to %s (%v)", cmd.metrics, e)
		}
	}

	if err != nil {
		log.Errorf("upload failed after %v of %v rows", result.Appended, result.Extracted)
		return err
	}

	log.Infof("uploaded %v rows from %s to worksheet '%s'", result.Appended, cmd.file, sheet.Title())

	if result.ClearError != nil {
		log.Warnf("could not clear %s (%v)", cmd.file, result.ClearError)
	}

	return nil
}

// resolve completes the shared options and then the upload options from the
// configuration.
func (cmd *Upload) resolve(conf *config.Config) {
	cmd.command.resolve(conf)

	if strings.TrimSpace(cmd.valueInput) == "" {
		cmd.valueInput = conf.ValueInputOption
	}

	if strings.TrimSpace(cmd.logfile) == "" {
		cmd.logfile = conf.LogFile
	}

	if strings.TrimSpace(cmd.metrics) == "" {
		cmd.metrics = conf.MetricsFile
	}
}

func (cmd *Upload) validate() error {
	c := config.Config{
		SpreadsheetKey:   cmd.spreadsheet,
		SourceFile:       cmd.file,
		ValueInputOption: strings.ToUpper(strings.TrimSpace(cmd.valueInput)),
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%v - set it in the environment or use the --spreadsheet/--file/--value-input options", err)
	}

	cmd.valueInput = c.ValueInputOption

	return nil
}
