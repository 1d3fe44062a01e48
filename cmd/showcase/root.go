package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhpenta/showcase"
	"github.com/mhpenta/showcase/internal/config"
	"github.com/mhpenta/showcase/provider/gemini"
)

// app is shared by all subcommands and built in PersistentPreRunE.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	gateway *showcase.Gateway
	out     *renderer
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(gemini.NewProvider)
}

// newRootCmdWith builds the command tree on top of factory.
func newRootCmdWith(factory showcase.ProviderFactory) *cobra.Command {
	var (
		envFile  string
		logLevel string
		a        = &app{}
	)

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Gemini AI showcase: chat, streaming, images and thinking mode",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg)
			a.out = newRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())
			a.gateway = showcase.NewGateway(factory,
				showcase.WithLogger(a.logger),
				showcase.WithCredentialSource(func() (string, error) {
					return cfg.Credential(), nil
				}),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	cmd.AddCommand(
		newChatCmd(a),
		newStreamCmd(a),
		newImageCmd(a),
		newThinkCmd(a),
		newModelsCmd(a),
	)

	return cmd
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// fail prints err as status text and returns it so cobra exits non-zero.
func (a *app) fail(err error) error {
	a.out.Status(showcase.UserMessage(err))
	return err
}
