package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lianlian/level"
	"github.com/katalvlaran/lianlian/logging"
)

// settings are the values shared by every subcommand. Each can come from a
// flag, a LIANLIAN_* environment variable or the --config file.
type settings struct {
	Pack string         `mapstructure:"pack"`
	Seed int64          `mapstructure:"seed"`
	Log  logging.Config `mapstructure:"log"`
}

type app struct {
	v   *viper.Viper
	cfg settings
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "lianlian",
		Short: "Connect-the-pair puzzle engine",
		Long: `Generate, inspect and auto-play connect-the-pair boards.

Examples:
  lianlian levels
  lianlian gen --level 3 --seed 7
  lianlian gen --level 2 --format yaml
  lianlian play --level 1 --seed 42`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Settings file (yaml, json or toml)")
	pf.String("pack", "", "Level pack file (default: built-in pack)")
	pf.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	pf.String("log-level", "warn", "Log level: trace, debug, info, warn, error, disabled")
	pf.String("log-format", "console", "Log format: console or json")
	pf.String("log-output", "", "Log destination: stdout or stderr (default: the command's error stream)")

	for key, flag := range map[string]string{
		"pack":       "pack",
		"seed":       "seed",
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.output": "log-output",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newGenCmd(a), newLevelsCmd(a), newPlayCmd(a))
	return root
}

// setup resolves settings and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("LIANLIAN")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	log := logging.NewWithWriter(a.cfg.Log, cmd.ErrOrStderr())
	if a.cfg.Log.Output != "" {
		var err error
		if log, err = logging.New(a.cfg.Log); err != nil {
			return err
		}
	}
	a.log = logging.WithComponent(log, "cli")
	return nil
}

// pack loads the configured level pack, or the built-in one.
func (a *app) pack() (*level.Pack, error) {
	if a.cfg.Pack == "" {
		return level.Default()
	}
	a.log.Debug().Str("path", a.cfg.Pack).Msg("loading level pack")
	return level.Load(a.cfg.Pack)
}

// level resolves id in the configured pack.
func (a *app) level(id int) (level.Config, error) {
	p, err := a.pack()
	if err != nil {
		return level.Config{}, err
	}
	return p.Level(id)
}

// seed returns the configured seed, drawing one from the clock when unset.
func (a *app) seed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	s := time.Now().UnixNano()
	a.log.Debug().Int64("seed", s).Msg("seed drawn from clock")
	return s
}
