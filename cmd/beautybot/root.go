package main

import (
	"github.com/spf13/cobra"

	"github.com/nkahoots/beauty-bot/internal/config"
	"github.com/nkahoots/beauty-bot/internal/repl"
)

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:          "beautybot",
	Short:        "N'Kahoots Beauty Bot skincare guide",
	Long:         "Pick your skin type, see recommended products and a daily skincare schedule, and set reminders for your routine.",
	SilenceUsage: true,
	RunE:         runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.GetDefaultConfigPath(), "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func runShell(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	shell, err := repl.NewREPL(a.cfg, a.journal, a.remoteNotifiers()...)
	if err != nil {
		return err
	}
	defer shell.Scheduler().Stop()

	return shell.Start(cmd.Context())
}
