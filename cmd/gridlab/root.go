package main

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/widgetry/shell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options collects the command line flags.
type options struct {
	configFile string
	sceneFile  string
	themeFile  string
	width      int
	height     int
	dot        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "gridlab",
		Short:         "Gridlab lays out widget scenes without a window.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./gridlab.yaml, if present)")
	root.AddCommand(newLayoutCmd(opts))
	return root
}

// initConfig reads the configuration and sets up tracing.
func initConfig(opts *options) (schuko.Configuration, error) {
	conf := viperadapter.New("gridlab")
	conf.InitDefaults()
	if opts.configFile != "" {
		path, err := homedir.Expand(opts.configFile)
		if err != nil {
			return nil, err
		}
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("gridlab")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("GRIDLAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || opts.configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return nil, fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return conf, nil
}

// shellConfig merges flags over configuration values. File names may
// start with "~".
func shellConfig(conf schuko.Configuration, opts *options) (shell.Config, error) {
	cfg := shell.ConfigFrom(conf)
	if opts.width > 0 {
		cfg.Width = float64(opts.width)
	}
	if opts.height > 0 {
		cfg.Height = float64(opts.height)
	}
	if opts.sceneFile != "" {
		cfg.SceneFile = opts.sceneFile
	}
	if opts.themeFile != "" {
		cfg.ThemeFile = opts.themeFile
	}
	var err error
	if cfg.SceneFile, err = homedir.Expand(cfg.SceneFile); err != nil {
		return cfg, err
	}
	cfg.ThemeFile, err = homedir.Expand(cfg.ThemeFile)
	return cfg, err
}
