package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/printlog/printlog-sheets/config"
	"github.com/printlog/printlog-sheets/worksheet"
)

var AuthoriseCmd = Authorise{
	command: command{
		credentials: "",
		tokens:      "",
		debug:       false,
	},

	bind: "127.0.0.1:8085",
}

// Authorise runs the OAuth2 'installed application' flow for an OAuth client
// credentials file and saves the resulting tokens for the 'upload' command.
// Service account credentials do not need to be authorised.
type Authorise struct {
	command
	bind string
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises printlog-sheets to access Google Sheets with an OAuth client credentials file"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises printlog-sheets to access Google Sheets and stores the OAuth tokens alongside")
	fmt.Println("  the credentials file. Not required when using service account credentials.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s authorise --credentials \"credentials.json\"\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, fmt.Sprintf("Path for the OAuth client 'credentials.json' file. Defaults to %s", DEFAULT_CREDENTIALS))
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Path for the OAuth tokens file. Defaults to <credentials>.tokens")
	flagset.StringVar(&cmd.bind, "bind", cmd.bind, "Local address for the OAuth redirect")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := config.Load(options.Env)
	if err != nil {
		return err
	}

	cmd.resolve(conf)

	defer setup(cmd.debug, "")()

	oauth, err := worksheet.OAuthConfig(cmd.credentials)
	if err != nil {
		return fmt.Errorf("invalid OAuth client credentials %s (%w)", cmd.credentials, err)
	}

	token, err := cmd.authorise(oauth)
	if err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	} else if token == nil {
		fmt.Printf("\n.. cancelled\n\n")
		return nil
	}

	if err := worksheet.SaveToken(cmd.tokens, token); err != nil {
		return err
	}

	infof("saved OAuth tokens to %s", cmd.tokens)

	return nil
}

func (cmd *Authorise) authorise(oauth *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", cmd.bind)
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()
	oauth.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr())

	authorised := make(chan string, 1)
	failed := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		code := rq.FormValue("code")

		debugf("redirect: %v", rq.URL)

		if rq.FormValue("state") != state || code == "" {
			http.Error(w, "Invalid authorisation response", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "printlog-sheets is authorised - you can close this window")

		select {
		case authorised <- code:
		default:
		}
	})

	srv := &http.Server{
		Handler: mux,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			warnf("%v", err)
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	fmt.Println()
	fmt.Println("Open the following link in your browser to authorise access to Google Sheets:")
	fmt.Println()
	fmt.Printf("  %v\n", oauth.AuthCodeURL(state, oauth2.AccessTypeOffline))
	fmt.Println()

	select {
	case <-interrupt:
		return nil, nil

	case err := <-failed:
		return nil, err

	case code := <-authorised:
		return oauth.Exchange(context.Background(), code)
	}
}
