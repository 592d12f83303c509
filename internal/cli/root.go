// Package cli provides the cobra commands of the dashboard binary.
package cli

import (
	"github.com/rogerio-castellano/commerce-dashboard/internal/config"
	"github.com/rogerio-castellano/commerce-dashboard/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what PersistentPreRunE resolved for the running command.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

// NewRootCmd builds a fresh command tree. Each call gets its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "E-commerce product dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.v.GetString("config"))
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: debug|info|warn|error")
	pf.String("seed", "embedded", "seed source: embedded|file|postgres|fake")
	pf.String("seed-file", "", "JSON product list for --seed file")
	pf.Int("fake-count", 50, "products generated by --seed fake")
	pf.String("database-url", "", "Postgres URL for --seed postgres")
	pf.String("jwt-secret", "", "HS256 secret shared with the identity provider")

	a.bind("config", pf.Lookup("config"))
	a.bind("log.level", pf.Lookup("log-level"))
	a.bind("seed.source", pf.Lookup("seed"))
	a.bind("seed.file", pf.Lookup("seed-file"))
	a.bind("seed.fake_count", pf.Lookup("fake-count"))
	a.bind("database.url", pf.Lookup("database-url"))
	a.bind("auth.jwt_secret", pf.Lookup("jwt-secret"))

	root.AddCommand(
		newServeCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newTokenCmd(a),
	)
	return root
}

// Execute runs the command tree with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
