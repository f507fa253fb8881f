package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tower-defense/config"
	"github.com/lixenwraith/tower-defense/engine"
	"github.com/lixenwraith/tower-defense/game"
)

// options collects the persistent flags shared by every subcommand
type options struct {
	envFile    string
	debug      bool
	mute       bool
	tickMillis int

	cfg config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tower-defense: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tower-defense",
		Short:         "Terminal tower defense on a tick-driven ECS",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "config", "", "env file with TD_* settings")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.mute, "mute", false, "start with audio disabled")
	flags.IntVar(&opts.tickMillis, "tick", 0, "simulation step in milliseconds")

	root.AddCommand(newPlayCmd(opts), newSimCmd(opts))
	return root
}

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}
}

// resolve loads the configuration and applies explicitly set flags on top
func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("mute") {
		cfg.Mute = o.mute
	}
	if flags.Changed("tick") {
		cfg.TickMillis = o.tickMillis
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	return nil
}

func gameOptions(cfg config.Config, log zerolog.Logger, audio engine.AudioPlayer) game.Options {
	return game.Options{
		Logger:       log,
		Audio:        audio,
		StartMoney:   cfg.StartMoney,
		StartHealth:  cfg.StartHealth,
		TargetCount:  cfg.TargetCount,
		TargetSpeed:  cfg.TargetSpeed,
		TargetHealth: cfg.TargetHealth,
	}
}
