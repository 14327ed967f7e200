package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/uhppoted/uhppoted-lib/command"

	"github.com/printlog/printlog-sheets/commands"
	"github.com/printlog/printlog-sheets/config"
)

var cli = []lib.Command{
	&commands.VersionCmd,
	&commands.UploadCmd,
	&commands.PreviewCmd,
	&commands.ClearCmd,
	&commands.AuthoriseCmd,
}

var options = commands.Options{
	Debug: false,
	Env:   config.DefaultEnvFile,
}

var help = lib.NewHelp(commands.APP, cli, &commands.UploadCmd)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Env, "env", options.Env, "dotenv file with the SPREADSHEET_KEY and SOURCE_FILE settings")
	flag.Parse()

	cmd, err := lib.Parse(cli, &commands.UploadCmd, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
