// Package configlib loads the wordlist run configuration from flags, environment and wordlist.yaml
package configlib

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"goWordlist/spelllib"
	"goWordlist/tokenlib"
	"goWordlist/wordlistlib"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the effective configuration of one run
type Config struct {
	Lang        string
	Input       string
	Output      string
	Profanity   string
	Offensive   string
	Description string

	Limit         int
	BigramCeiling int
	// Date is the generation time in unix seconds, 0 meaning now
	Date int64

	HunspellDir string
	Casings     []string
	Tokenizer   string
	Format      string

	FreqOut string
	FreqIn  string
	Redis   string

	Verbose bool
}

/***************************************************************************************************************
****************************************************************************************************************
* Flags and defaults *******************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// SetDefaults registers the default of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("limit", wordlistlib.DefaultLimit)
	v.SetDefault("bigramCeiling", wordlistlib.DefaultBigramCeiling)
	v.SetDefault("hunspellDir", spelllib.DefaultDictDir)
	v.SetDefault("casings", []string{string(spelllib.Lower), string(spelllib.Capitalize)})
	v.SetDefault("tokenizer", "wordpunct")
	v.SetDefault("format", "text")
}

// flagKeys maps flag names onto viper keys
var flagKeys = map[string]string{
	"lang":           "lang",
	"input":          "input",
	"output":         "output",
	"profanity":      "profanity",
	"offensive":      "offensive",
	"description":    "description",
	"limit":          "limit",
	"bigram-ceiling": "bigramCeiling",
	"date":           "date",
	"hunspell-dir":   "hunspellDir",
	"casings":        "casings",
	"tokenizer":      "tokenizer",
	"format":         "format",
	"freq-out":       "freqOut",
	"freq-in":        "freqIn",
	"redis":          "redis",
	"verbose":        "verbose",
}

// AddFlags defines the command line flags on fs
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP("lang", "l", "", "Language code")
	fs.StringP("input", "i", "", "Path to language dump file (- for stdin)")
	fs.StringP("output", "o", "", "Path to output file (- for stdout)")
	fs.String("profanity", "", "Path to file of words to mark as profanity")
	fs.String("offensive", "", "Path to file of words to mark as potentially offensive")
	fs.StringP("description", "m", "", "Dictionary description")
	fs.IntP("limit", "n", wordlistlib.DefaultLimit, "Maximum number of monograms and bigrams to write")
	fs.Int("bigram-ceiling", wordlistlib.DefaultBigramCeiling, "Maximum number of bigrams whatever the limit")
	fs.Int64("date", 0, "Generation time in unix seconds (0 = now)")
	fs.String("hunspell-dir", spelllib.DefaultDictDir, "Directory holding <code>.aff and <code>.dic")
	fs.StringSlice("casings", []string{"lower", "capitalize"}, "Casings tried against the dictionary, in order")
	fs.String("tokenizer", "wordpunct", "Tokenizer: wordpunct or prose")
	fs.String("format", "text", "Input format: text or html")
	fs.String("freq-out", "", "Also save counted frequency tables to this file")
	fs.String("freq-in", "", "Load frequency tables from this file instead of counting the input")
	fs.String("redis", "", "Redis address caching dictionary verdicts across runs")
	fs.BoolP("verbose", "v", false, "Log every skipped entry")
	fs.String("config", "", "Config file (default ./wordlist.yaml)")
}

// BindFlags makes the flags of fs override the matching viper keys
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

/***************************************************************************************************************
****************************************************************************************************************
* Loading ******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Load reads configFile, or wordlist.yaml from the working directory when
// configFile is empty (a missing default file is fine), then resolves every
// key through v
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("WORDLIST")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("wordlist") // name of config file (without extension)
		v.AddConfigPath(".")        // look for config in the working directory
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	c := &Config{
		Lang:          v.GetString("lang"),
		Input:         v.GetString("input"),
		Output:        v.GetString("output"),
		Profanity:     v.GetString("profanity"),
		Offensive:     v.GetString("offensive"),
		Description:   v.GetString("description"),
		Limit:         v.GetInt("limit"),
		BigramCeiling: v.GetInt("bigramCeiling"),
		Date:          v.GetInt64("date"),
		HunspellDir:   v.GetString("hunspellDir"),
		Casings:       v.GetStringSlice("casings"),
		Tokenizer:     v.GetString("tokenizer"),
		Format:        v.GetString("format"),
		FreqOut:       v.GetString("freqOut"),
		FreqIn:        v.GetString("freqIn"),
		Redis:         v.GetString("redis"),
		Verbose:       v.GetBool("verbose"),
	}
	return c, c.Validate()
}

// Validate checks required keys and value ranges
func (c *Config) Validate() error {
	var problems []string
	if c.Lang == "" {
		problems = append(problems, "lang is required")
	}
	if c.Input == "" && c.FreqIn == "" {
		problems = append(problems, "input is required")
	}
	if c.Output == "" {
		problems = append(problems, "output is required")
	}
	if c.Description == "" {
		problems = append(problems, "description is required")
	}
	if strings.ContainsAny(c.Description, "\r\n") {
		problems = append(problems, "description must be a single line")
	}
	if c.Limit < 0 {
		problems = append(problems, "limit must not be negative")
	}
	if c.BigramCeiling < 0 {
		problems = append(problems, "bigramCeiling must not be negative")
	}
	if c.Date < 0 {
		problems = append(problems, "date must not be negative")
	}
	if _, err := tokenlib.New(c.Tokenizer); err != nil {
		problems = append(problems, err.Error())
	}
	if f := strings.ToLower(c.Format); f != "text" && f != "html" {
		problems = append(problems, fmt.Sprintf("format %q is not text or html", c.Format))
	}
	if _, err := spelllib.ParseCasings(c.Casings); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// BigramLimit is the number of bigrams kept for this run
func (c *Config) BigramLimit() int {
	return wordlistlib.BigramLimit(c.Limit, c.BigramCeiling)
}

// GenerationTime returns the configured date, or now() when none is set
func (c *Config) GenerationTime(now func() time.Time) time.Time {
	if c.Date > 0 {
		return time.Unix(c.Date, 0)
	}
	return now()
}

// IsHTML reports whether the corpus must be converted from HTML first
func (c *Config) IsHTML() bool {
	return strings.EqualFold(c.Format, "html")
}
