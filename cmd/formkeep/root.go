package main

import (
	"os"
	"strings"

	"formkeep/internal/config"
	"formkeep/internal/errors"
	"formkeep/internal/fileutil"
	"formkeep/internal/i18n"
	"formkeep/internal/log"
	"formkeep/internal/screen"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgFile string
	debug   bool

	v   *viper.Viper
	cfg *config.Config
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "formkeep",
		Short: "Manage the forms and saved instances on this device",
		Long: `formkeep lists the blank forms and saved instance folders kept on this
device as one naturally sorted list and deletes the ones you pick.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(a.debug)
			return a.loadConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/formkeep/config.yaml)")
	flags.String("forms", "", "forms root (overrides config, env FORMKEEP_FORMS)")
	flags.String("instances", "", "instances root (overrides config, env FORMKEEP_INSTANCES)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	a.v.SetEnvPrefix("FORMKEEP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlag("forms", flags.Lookup("forms"))
	_ = a.v.BindPFlag("instances", flags.Lookup("instances"))

	rootCmd.AddCommand(
		newListCmd(a),
		newDeleteCmd(a),
		newTUICmd(a),
		newGUICmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// loadConfig reads the config file, then lets flags and environment
// override the roots.
func (a *app) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		// a named file must exist; only the default location may be absent
		if _, statErr := os.Stat(a.cfgFile); os.IsNotExist(statErr) {
			return errors.NewConfigError("config file not found", a.cfgFile, errors.ConfigNotFound, statErr)
		}
		cfg, err = config.LoadConfigFile(a.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}

	if a.v.IsSet("forms") && a.v.GetString("forms") != "" {
		cfg.Directories.Forms = a.v.GetString("forms")
	}
	if a.v.IsSet("instances") && a.v.GetString("instances") != "" {
		cfg.Directories.Instances = a.v.GetString("instances")
	}
	cfg.ExpandPaths()
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	log.Debugf("forms root %s, instances root %s", cfg.Directories.Forms, cfg.Directories.Instances)
	return nil
}

func (a *app) store() (*fileutil.Lister, error) {
	return fileutil.NewLister(a.cfg.Settings.Ignore)
}

func (a *app) text() *i18n.Catalog {
	return i18n.NewCatalog(a.cfg.Settings.Language)
}

func (a *app) screenConfig() screen.Config {
	forms, instances := a.cfg.Roots()
	return screen.Config{FormsRoot: forms, InstancesRoot: instances}
}
