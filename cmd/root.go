package cmd

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cinema-tui/auth"
	"cinema-tui/config"
	"cinema-tui/service"
	"cinema-tui/store"
	"cinema-tui/tui"
)

const appName = "cinema-tui"

var (
	version = "dev"
	commit  = "none"
)

type rootFlags struct {
	apiURL     string
	configPath string
	startPath  string
}

// env is what every command needs: resolved settings, a logger writing to the
// log file, the current session and an API client bound to it.
type env struct {
	cfg      config.Config
	logger   *logrus.Logger
	session  *auth.Holder
	client   *service.Client
	closeLog func() error
}

func newEnv(flags *rootFlags) (*env, error) {
	path := flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.apiURL != "" {
		cfg.APIURL = flags.apiURL
	}

	logger := logrus.New()
	closeLog, err := cfg.OpenLog(logger)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	session := auth.NewHolder(nil)
	saved, ok, err := store.LoadSession()
	switch {
	case err != nil:
		logger.WithError(err).Warn("load stored session failed")
	case ok:
		session.Set(auth.NewSession(saved.Account, saved.SavedAt))
		if !session.IsAuthenticated() {
			logger.Info("stored session expired")
		}
	}

	client := service.NewClient(
		&http.Client{Timeout: cfg.RequestTimeout},
		service.WithBaseURL(cfg.APIURL),
		service.WithTokenSource(session),
		service.WithLogger(logger),
	)
	logger.WithFields(logrus.Fields{
		"api_url":       client.BaseURL(),
		"authenticated": session.IsAuthenticated(),
	}).Debug("environment ready")

	return &env{cfg: cfg, logger: logger, session: session, client: client, closeLog: closeLog}, nil
}

func (e *env) Close() {
	_ = e.closeLog()
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Cinema booking in the terminal",
		Long:  `Browse movies, manage your profile and review your tickets from the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			model := tui.New(tui.Options{
				API:           e.client,
				Session:       e.session,
				Store:         tui.FileSessionStore{},
				Logger:        e.logger,
				RedirectDelay: e.cfg.RedirectDelay,
				StartPath:     flags.startPath,
			})
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "cinema API base URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cinema-tui/config.yaml)")
	root.Flags().StringVar(&flags.startPath, "path", tui.PathHome, "page to open first, e.g. /profile")

	root.AddCommand(
		newLoginCommand(flags),
		newLogoutCommand(),
		newProfileCommand(flags),
		newTicketsCommand(flags),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(v, c string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
