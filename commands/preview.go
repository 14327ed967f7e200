package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/printlog/printlog-sheets/config"
	"github.com/printlog/printlog-sheets/events"
)

var PreviewCmd = Preview{
	command: command{
		file:  "",
		debug: false,
	},

	tsv: false,
}

// Preview lists the rows an upload would append, without touching the spreadsheet
// or the events file.
type Preview struct {
	command
	tsv bool
}

func (cmd *Preview) Name() string {
	return "preview"
}

func (cmd *Preview) Description() string {
	return "Lists the rows that would be uploaded from the print events file"
}

func (cmd *Preview) Usage() string {
	return "--file <file>"
}

func (cmd *Preview) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] preview [--file <file>] [--tsv]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the rows that would be uploaded from the print events file. Prints a table on a")
	fmt.Println("  terminal and tab separated values otherwise.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s preview --file \"events.json\"\n", APP)
	fmt.Printf("    %s preview --tsv > prints.tsv\n", APP)
	fmt.Println()
}

func (cmd *Preview) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("preview", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "Print events JSON file (SOURCE_FILE)")
	flagset.BoolVar(&cmd.tsv, "tsv", cmd.tsv, "Prints tab separated values even on a terminal")

	return flagset
}

func (cmd *Preview) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := config.Load(options.Env)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		cmd.file = conf.SourceFile
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	defer setup(cmd.debug, "")()

	list, err := events.ExtractFile(cmd.file)
	if err != nil {
		return fmt.Errorf("error extracting events from %s (%w)", cmd.file, err)
	}

	debugf("extracted %v PRINT_DONE events from %s", len(list), cmd.file)

	rows := make([]events.Row, 0, len(list))
	for _, e := range list {
		row, err := events.MakeRow(e.Data)
		if err != nil {
			return fmt.Errorf("event %s (%w)", e.ID, err)
		}

		rows = append(rows, row)
	}

	if !cmd.tsv && term.IsTerminal(int(os.Stdout.Fd())) {
		return rowsToTable(os.Stdout, rows)
	}

	return rowsToTSV(os.Stdout, rows)
}
