package commands

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli is the state shared by the commands of one invocation.
type cli struct {
	config *config.Config
	viper  *viper.Viper
}

// NewRootCmd returns the keygen command. Without a sub-command it generates
// key pairs, like the generate sub-command.
func NewRootCmd() *cobra.Command {
	c := &cli{
		config: config.NewDefaultConfig(),
		viper:  viper.New(),
	}

	root := &cobra.Command{
		Use:               "keygen",
		Short:             "Elliptic curve key pair generator",
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
		RunE:              c.generate,
	}
	addRootFlags(root, c.config)
	addGenerateFlags(root)

	root.AddCommand(
		newGenerateCmd(c),
		newCurvesCmd(),
		newVerifyCmd(c),
		newVersionCmd(),
	)
	return root
}

// addRootFlags adds the flags shared by every sub-command.
func addRootFlags(cmd *cobra.Command, conf *config.Config) {
	cmd.PersistentFlags().String("datadir", conf.DataDir, "Directory searched for keygen.toml, .yaml or .json")
	cmd.PersistentFlags().String("log", conf.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.PersistentFlags().String("log-file", conf.LogFile, "Also write JSON logs to this file")
	cmd.PersistentFlags().String("curve", conf.Curve, "Curve to generate keys on, see 'keygen curves'")
	cmd.PersistentFlags().Int("count", conf.Count, "Number of key pairs to generate")
	cmd.PersistentFlags().String("format", conf.Format, "Output format: text or json")
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if err := c.bindFlagsLoadViper(cmd); err != nil {
		return err
	}

	c.config.Logger().WithFields(logrus.Fields{
		"DataDir":  c.config.DataDir,
		"LogLevel": c.config.LogLevel,
		"LogFile":  c.config.LogFile,
		"Curve":    c.config.Curve,
		"Count":    c.config.Count,
		"Format":   c.config.Format,
	}).Debug("RUN")

	return c.config.Validate()
}

// Bind all flags and read the config into viper
func (c *cli) bindFlagsLoadViper(cmd *cobra.Command) error {
	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := c.viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	c.viper.SetEnvPrefix("KEYGEN")
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()

	// first unmarshal to read from CLI flags
	if err := c.viper.Unmarshal(c.config); err != nil {
		return err
	}
	c.config.SetLogOutput(cmd.ErrOrStderr())

	// look for config file in [datadir]/keygen.toml (.json, .yaml also work)
	c.viper.SetConfigName("keygen")
	c.viper.AddConfigPath(c.config.DataDir)

	// If a config file is found, read it in.
	if err := c.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	// second unmarshal to read from config file
	if err := c.viper.Unmarshal(c.config); err != nil {
		return err
	}

	if used := c.viper.ConfigFileUsed(); used != "" {
		c.config.Logger().Debugf("Using config file: %s", used)
	} else {
		c.config.Logger().Debugf("No config file found in: %s", c.config.DataDir)
	}
	return nil
}
