package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cinema-tui/mockapi"
)

func main() {
	var (
		addr  string
		debug bool
	)
	root := &cobra.Command{
		Use:   "cinema-mockapi",
		Short: "In-memory cinema booking API for local demos",
		Long:  `Serves the /v1 endpoints used by cinema-tui from built-in fixtures. Log in as demo@cinema.local / password.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logrus.New()
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			srv := mockapi.NewServer(mockapi.DefaultFixtures(), mockapi.WithLogger(logger))
			logger.WithField("addr", addr).Info("mock cinema api listening on /v1")
			return srv.Router().Start(addr)
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.Flags().BoolVar(&debug, "debug", false, "log every request")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
