package commands

import (
	"os"

	"github.com/spf13/cobra"

	"blackipher/internal/app"
)

var (
	configPath string
	home       string
	logLevel   string
	appCtx     *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "blackipher",
		Short:        "Educational end-to-end encrypted messaging",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig(configPath)
			if home != "" {
				cfg.Home = home
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			w, err := app.NewWire(cfg, os.Stderr)
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.blackipher/config.yaml)")
	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.blackipher)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")

	root.AddCommand(
		chatCmd(),
		sendCmd(),
		historyCmd(),
		keysCmd(),
		contactsCmd(),
		fingerprintCmd(),
		demoCmd(),
	)
	return root
}
