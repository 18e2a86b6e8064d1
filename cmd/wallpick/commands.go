package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lvim-tech/wallpick/pkg/config"
	"github.com/lvim-tech/wallpick/pkg/launcher"
	"github.com/lvim-tech/wallpick/pkg/picker"
	"github.com/lvim-tech/wallpick/pkg/utils"
)

// startProcess стартира външните команди; подменя се в тестовете
var startProcess launcher.StartFunc = utils.StartDetachedProcess

type options struct {
	configPath string
	dir        string
	suffixes   []string
	noFilter   bool
	dryRun     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wallpick",
		Short: "Set a random wallpaper",
		Long: `wallpick picks a random image from the wallpaper directory and starts
the configured commands (swww and wallust by default) with its path.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: ~/.config/wallpick/config.toml)")
	flags.StringVarP(&opts.dir, "dir", "d", "", "wallpaper directory, overrides config")
	flags.StringSliceVarP(&opts.suffixes, "suffix", "s", nil, "file name suffix filter, repeatable, overrides config")
	flags.BoolVar(&opts.noFilter, "no-filter", false, "pick from every file in the directory")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	root.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "pick and print, start no commands")

	root.AddCommand(
		newListCmd(opts),
		newInitCmd(),
		newVersionCmd(),
	)

	return root
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List candidate wallpapers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			p := newPicker(cfg, logger)
			candidates, err := p.Candidates()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, &picker.NoCandidatesError{Dir: p.Dir, Label: picker.FilterLabel(p.Suffixes)})
				return nil
			}
			for _, name := range candidates {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize user config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Fprintln(out, "\nYou can now edit the config file to customize wallpick.")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wallpick version %s\n", version)
		},
	}
}

func runPick(cmd *cobra.Command, opts *options) error {
	cfg, logger, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	templates, err := launcher.FromConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid commands config: %w", err)
	}

	out := cmd.OutOrStdout()

	path, err := newPicker(cfg, logger).Pick()
	if picker.IsNoCandidates(err) {
		fmt.Fprintln(out, err)
		return nil
	}
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintf(out, "Would set wallpaper to: %s\n", path)
		return nil
	}

	runner := launcher.NewRunner(templates, logger)
	runner.Start = startProcess
	started := runner.LaunchAll(path)
	logger.Info("wallpaper applied", zap.String("path", path), zap.Int("started", started))

	fmt.Fprintf(out, "Wallpaper set to: %s\n", path)
	utils.NotifyWithConfig(&cfg.Notification, "Wallpaper", filepath.Base(path))

	return nil
}

// setup зарежда config, прилага flags и създава logger
func setup(cmd *cobra.Command, opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	applyFlags(cmd, opts, cfg)

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	logger, err := utils.NewLogger(level)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("config loaded",
		zap.String("directory", cfg.Directory),
		zap.Strings("suffixes", cfg.Suffixes),
		zap.Int("commands", len(cfg.Commands)),
	)

	return cfg, logger, nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	if opts.dir != "" {
		cfg.Directory = opts.dir
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Suffixes = opts.suffixes
	}
	if opts.noFilter {
		cfg.Suffixes = nil
	}
}

func newPicker(cfg *config.Config, logger *zap.Logger) *picker.Picker {
	p := picker.New(utils.ExpandPath(cfg.Directory), cfg.Suffixes)
	p.Logger = logger
	return p
}
