package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/domino14/lettercover/cover"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigDictionaryPath            = "dictionary-path"
	ConfigDictionaryLimit           = "dictionary-limit"
	ConfigTimeout                   = "timeout"
	ConfigMinWordLength             = "min-word-length"
	ConfigTwoLetterWhitelist        = "two-letter-whitelist"
	ConfigValidatorLexicon          = "validator-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigHistoryDB                 = "history-db"
	ConfigNatsURL                   = "nats-url"
	ConfigNatsSubject               = "nats-subject"
	ConfigThreads                   = "threads"
	ConfigDebug                     = "debug"
)

// Config wraps a viper instance. Values come, in increasing priority, from
// defaults, a lettercover.yaml config file, LETTERCOVER_* environment
// variables, and command-line flags.
type Config struct {
	viper.Viper
}

func DefaultConfig() Config {
	c := Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDataPath, "./data")
	c.SetDefault(ConfigDictionaryPath, "/usr/share/dict/words")
	c.SetDefault(ConfigDictionaryLimit, 200000)
	c.SetDefault(ConfigTimeout, 15.0)
	c.SetDefault(ConfigMinWordLength, 2)
	c.SetDefault(ConfigTwoLetterWhitelist, true)
	c.SetDefault(ConfigValidatorLexicon, "")
	c.SetDefault(ConfigDefaultLetterDistribution, "scrabble")
	c.SetDefault(ConfigHistoryDB, "")
	c.SetDefault(ConfigNatsURL, "nats://localhost:4222")
	c.SetDefault(ConfigNatsSubject, "lettercover.solve")
	c.SetDefault(ConfigThreads, 4)
	c.SetDefault(ConfigDebug, false)
}

// flagAliases are short names for some of the flags.
var flagAliases = map[string]string{
	"dict":    ConfigDictionaryPath,
	"freq":    ConfigDictionaryLimit,
	"lexicon": ConfigValidatorLexicon,
	"dist":    ConfigDefaultLetterDistribution,
	"v":       ConfigDebug,
}

// Load reads the config file and environment, then parses args as flags
// named after the config keys (e.g. -timeout 3.5). It returns the
// positional arguments left over.
func (c *Config) Load(args []string) ([]string, error) {
	return c.LoadWith(args, nil)
}

// LoadWith is Load, but lets a binary register flags of its own. They are
// not copied into the config.
func (c *Config) LoadWith(args []string, extra func(fs *flag.FlagSet)) ([]string, error) {
	c.Viper = *viper.New()
	c.setDefaults()

	c.SetConfigName("lettercover")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	c.AddConfigPath("$HOME/.lettercover")
	c.SetEnvPrefix("LETTERCOVER")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug().Msg("no-config-file")
	}

	fs := flag.NewFlagSet("lettercover", flag.ContinueOnError)
	fs.String(ConfigDataPath, c.GetString(ConfigDataPath), "directory holding lexica (KWG files)")
	fs.String(ConfigDictionaryPath, c.GetString(ConfigDictionaryPath), "newline-delimited dictionary file")
	fs.Int(ConfigDictionaryLimit, c.GetInt(ConfigDictionaryLimit), "only read the first N dictionary lines (0 = all)")
	fs.Float64(ConfigTimeout, c.GetFloat64(ConfigTimeout), "search timeout in seconds")
	fs.Int(ConfigMinWordLength, c.GetInt(ConfigMinWordLength), "ignore words shorter than this")
	fs.Bool(ConfigTwoLetterWhitelist, c.GetBool(ConfigTwoLetterWhitelist), "only allow listed two-letter words")
	fs.String(ConfigValidatorLexicon, c.GetString(ConfigValidatorLexicon), "only allow words in this KWG lexicon (e.g. NWL23)")
	fs.String(ConfigDefaultLetterDistribution, c.GetString(ConfigDefaultLetterDistribution), "distribution for random pools")
	fs.String(ConfigHistoryDB, c.GetString(ConfigHistoryDB), "sqlite file to record solves in")
	fs.String(ConfigNatsURL, c.GetString(ConfigNatsURL), "NATS server URL")
	fs.String(ConfigNatsSubject, c.GetString(ConfigNatsSubject), "NATS subject to serve solves on")
	fs.Int(ConfigThreads, c.GetInt(ConfigThreads), "pools to solve at once in a batch")
	fs.Bool(ConfigDebug, c.GetBool(ConfigDebug), "debug logging")
	known := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) { known[f.Name] = true })
	for alias, key := range flagAliases {
		// an alias shares its flag's value
		fs.Var(fs.Lookup(key).Value, alias, "shorthand for -"+key)
	}
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	// Only flags that were given override the other sources.
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if key, ok := flagAliases[name]; ok {
			name = key
		}
		if known[name] {
			c.Set(name, f.Value.String())
		}
	})
	return fs.Args(), nil
}

// Timeout returns the configured search timeout.
func (c *Config) Timeout() time.Duration {
	return cover.SecondsToTimeout(c.GetFloat64(ConfigTimeout))
}

// AdjustRelativePaths makes relative data paths relative to basepath,
// normally the directory of the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigDataPath} {
		p := c.GetString(key)
		if strings.HasPrefix(p, "./") {
			c.Set(key, filepath.Join(basepath, p))
			log.Info().Str("key", key).Str("path", c.GetString(key)).Msg("adjusted-relative-path")
		}
	}
}

func (c *Config) WGLConfig() *wglconfig.Config {
	return &wglconfig.Config{DataPath: c.GetString(ConfigDataPath)}
}
