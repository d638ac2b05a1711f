// Command duet sends one prompt to OpenAI and Claude and shows both answers.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YspCoder/duet/config"
	"github.com/YspCoder/duet/utils"
)

const serviceName = "duet"

type app struct {
	configPath string
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "duet: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Compare OpenAI and Claude answers to the same prompt",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("DUET_CONFIG"), "path to a YAML config file")

	root.AddCommand(newServeCommand(a), newAskCommand(a), newVersionCommand())
	return root
}

func (a *app) load(opts ...config.ConfigOption) (*config.Config, utils.Logger, error) {
	cfg, err := config.LoadConfig(a.configPath, opts...)
	if err != nil {
		return nil, nil, err
	}
	level, err := utils.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, utils.NewLogger(level), nil
}
