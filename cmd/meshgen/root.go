package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/vtkio/format"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MESHGEN"

type app struct {
	v      *viper.Viper
	logger *logrus.Logger
	out    io.Writer
}

func newApp(out, logOut io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	logger := logrus.New()
	logger.SetOutput(logOut)

	return &app{v: v, logger: logger, out: out}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "meshgen",
		Short:         "Generate sample VTK unstructured grids",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, toml or json)")
	flags.String("log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
	flags.StringP("out-dir", "o", ".", "Output directory")
	flags.StringP("compression", "c", "", "Payload compression: none, zlib, lz4 or lzma (default depends on the command)")
	flags.Bool("json", false, "Print the write reports as JSON")
	flags.Bool("skip-unchanged", true, "Leave files whose content would not change untouched")
	a.bind("", flags.Lookup("config"), flags.Lookup("log-level"), flags.Lookup("out-dir"),
		flags.Lookup("compression"), flags.Lookup("json"), flags.Lookup("skip-unchanged"))

	cmd.AddCommand(a.waveCmd(), a.spiralCmd())

	return cmd
}

// bind registers flags under prefix so that config files and environment
// variables can override their defaults.
func (a *app) bind(prefix string, flags ...*pflag.Flag) {
	for _, f := range flags {
		key := f.Name
		if prefix != "" {
			key = prefix + "." + f.Name
		}
		_ = a.v.BindPFlag(key, f)
	}
}

func (a *app) setup() error {
	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)

	return os.MkdirAll(a.v.GetString("out-dir"), 0o755)
}

// compression returns the codec selected by --compression, or def when unset.
func (a *app) compression(def format.CompressionType) (format.CompressionType, error) {
	name := a.v.GetString("compression")
	if name == "" {
		return def, nil
	}
	ct, ok := format.ParseCompression(name)
	if !ok {
		return 0, fmt.Errorf("unknown compression %q", name)
	}

	return ct, nil
}
