package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/printlog/printlog-sheets/config"
	"github.com/printlog/printlog-sheets/lockfile"
)

var ClearCmd = Clear{
	file:  "",
	debug: false,
}

type Clear struct {
	file  string
	debug bool
}

func (cmd *Clear) Name() string {
	return "clear"
}

func (cmd *Clear) Description() string {
	return "Clears the print events file"
}

func (cmd *Clear) Usage() string {
	return "--file <file>"
}

func (cmd *Clear) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] clear [--file <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Overwrites the print events file with an empty JSON object, holding an exclusive lock")
	fmt.Println("  on the file while it is written.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
}

func (cmd *Clear) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("clear", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "Print events JSON file (SOURCE_FILE)")

	return flagset
}

func (cmd *Clear) Execute(args ...any) error {
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

	defer setup(cmd.debug, conf.LogFile)()

	if err := lockfile.Clear(cmd.file); err != nil {
		return fmt.Errorf("could not clear %s (%w)", cmd.file, err)
	}

	infof("cleared %s", cmd.file)

	return nil
}
