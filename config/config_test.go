package config

import (
	"math"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/namsral/flag"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.GetString(ConfigDictionaryPath), "/usr/share/dict/words")
	is.Equal(c.GetInt(ConfigDictionaryLimit), 200000)
	is.Equal(c.Timeout(), 15*time.Second)
	is.Equal(c.GetInt(ConfigMinWordLength), 2)
	is.True(c.GetBool(ConfigTwoLetterWhitelist))
}

func TestLoadFlagsOverride(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	c := &Config{}
	rest, err := c.Load([]string{"-timeout", "2.5", "-min-word-length", "3", "-debug", "ABCDEF"})
	is.NoErr(err)
	is.Equal(rest, []string{"ABCDEF"})
	is.Equal(c.Timeout(), 2500*time.Millisecond)
	is.Equal(c.GetInt(ConfigMinWordLength), 3)
	is.True(c.GetBool(ConfigDebug))
	// untouched keys keep their defaults
	is.Equal(c.GetString(ConfigNatsSubject), "lettercover.solve")
}

func TestLoadAliases(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	c := &Config{}
	var random int
	rest, err := c.LoadWith([]string{"-dict", "/tmp/w.txt", "-freq", "5000", "-v",
		"-random", "12", "-dist", "uniform"}, func(fs *flag.FlagSet) {
		fs.IntVar(&random, "random", 0, "draw a random pool")
	})
	is.NoErr(err)
	is.Equal(len(rest), 0)
	is.Equal(random, 12)
	is.Equal(c.GetString(ConfigDictionaryPath), "/tmp/w.txt")
	is.Equal(c.GetInt(ConfigDictionaryLimit), 5000)
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.GetString(ConfigDefaultLetterDistribution), "uniform")
	// flags of the binary stay out of the config
	is.True(!c.IsSet("random"))
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("LETTERCOVER_DICTIONARY_PATH", "/tmp/words.txt")
	c := &Config{}
	_, err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.GetString(ConfigDictionaryPath), "/tmp/words.txt")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.AdjustRelativePaths("/opt/lettercover")
	is.Equal(c.GetString(ConfigDataPath), "/opt/lettercover/data")
}

func TestTimeoutSaturates(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.Set(ConfigTimeout, 2.5)
	is.Equal(c.Timeout(), 2500*time.Millisecond)

	c.Set(ConfigTimeout, 1e10)
	is.Equal(c.Timeout(), time.Duration(math.MaxInt64))

	c.Set(ConfigTimeout, math.Inf(1))
	is.Equal(c.Timeout(), time.Duration(math.MaxInt64))
}
