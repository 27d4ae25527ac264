package commands

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/config"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by the root command and its subcommands.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ssbenefit",
		Short: "Estimate U.S. Social Security retirement benefits",
		Long: `ssbenefit estimates the monthly Social Security retirement benefit from an
earnings record. The record comes from an SSA statement export, from a
back-projection of a known wage, or both, and can be extended with future
years of earnings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logCfg := zap.NewProductionConfig()
			if a.verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := logCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")

	root.AddCommand(estimateCmd(a), projectCmd(a), wageIndexCmd(a), initConfigCmd(a))
	return root
}

func (a *app) sugar() *zap.SugaredLogger {
	if a.logger == nil {
		return zap.NewNop().Sugar()
	}
	return a.logger.Sugar()
}

// loadConfiguration reads --config when given, or starts from an empty configuration.
func (a *app) loadConfiguration() (*domain.Configuration, error) {
	if a.configPath == "" {
		return &domain.Configuration{}, nil
	}
	cfg, err := config.NewInputParser().LoadFromFile(a.configPath)
	if err != nil {
		return nil, err
	}
	a.sugar().Debugw("loaded configuration", "path", a.configPath)
	return cfg, nil
}
