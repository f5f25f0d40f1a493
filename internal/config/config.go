package config

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultLogFile  = ""
	DefaultCurve    = "secp256k1"
	DefaultCount    = 1
	DefaultFormat   = FormatText
)

// Config contains all the configuration properties of the keygen command.
type Config struct {
	// DataDir is the directory searched for an optional keygen.toml, .yaml or
	// .json configuration file.
	DataDir string `mapstructure:"datadir"`

	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// LogFile, when set, receives a JSON copy of every log entry.
	LogFile string `mapstructure:"log-file"`

	// Curve is the registry name of the curve keys are generated on.
	Curve string `mapstructure:"curve"`

	// Count is the number of key pairs to generate.
	Count int `mapstructure:"count"`

	// Format selects text or json output.
	Format string `mapstructure:"format"`

	logOut io.Writer
	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		Curve:    DefaultCurve,
		Count:    DefaultCount,
		Format:   DefaultFormat,
	}
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB, level logrus.Level) *Config {
	config := NewDefaultConfig()
	config.logger = NewTestLogger(t, level)
	return config
}

// Validate checks the values that cannot be checked by the flag parser.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q, want %s or %s", c.Format,
			FormatText, FormatJSON)
	}
	return nil
}

// SetLogOutput redirects the log output. It must be called before the first
// call to Logger.
func (c *Config) SetLogOutput(w io.Writer) {
	c.logOut = w
}

// Logger returns a formatted logrus Entry, with prefix set to "keygen".
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
		if c.logOut != nil {
			c.logger.Out = c.logOut
		}
		if c.LogFile != "" {
			pathMap := lfshook.PathMap{}
			for _, level := range logrus.AllLevels {
				pathMap[level] = c.LogFile
			}
			c.logger.Hooks.Add(lfshook.NewHook(pathMap, &logrus.JSONFormatter{}))
		}
	}
	return c.logger.WithField("prefix", "keygen")
}

// DefaultDataDir return the default directory name for the keygen config
// based on the underlying OS, attempting to respect conventions.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, ".Keygen")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Keygen")
		} else {
			return filepath.Join(home, ".keygen")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

// HomeDir returns the user's home directory.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.DebugLevel
	}
}
