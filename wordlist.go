// generates AOSP keyboard wordlists from language dump files
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"goWordlist/configlib"
	"goWordlist/corpusfreqlib"
	"goWordlist/iolib"
	"goWordlist/redislib"
	"goWordlist/spelllib"
	"goWordlist/tokenlib"
	"goWordlist/wordlistlib"
)

/***************************************************************************************************************
****************************************************************************************************************
* Pipeline *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// app carries what a run needs from the outside world
type app struct {
	stdin  io.Reader
	stdout io.Writer
	log    *log.Logger
	now    func() time.Time

	// openValidator acquires the dictionary for lang; release must be called
	openValidator func(cfg *configlib.Config) (v spelllib.Validator, release func(), err error)
}

func newApp() *app {
	return &app{
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		log:           log.New(os.Stderr, "[wordlist] ", 0),
		now:           time.Now,
		openValidator: openValidator,
	}
}

// openValidator opens the Hunspell dictionary once for the whole run,
// memoized in memory and, when configured, in Redis
func openValidator(cfg *configlib.Config) (spelllib.Validator, func(), error) {
	h, err := spelllib.OpenHunspell(cfg.HunspellDir, cfg.Lang)
	if err != nil {
		return nil, nil, err
	}
	release := func() { h.Close() }

	var store spelllib.Store
	if cfg.Redis != "" {
		rs := redislib.NewStore(redislib.NewPool(cfg.Redis))
		if err := rs.Ping(); err != nil {
			release()
			rs.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.Redis, err)
		}
		store = rs
		release = func() {
			h.Close()
			rs.Close()
		}
	}

	return spelllib.NewCached(h, store, "hunspell:"+h.Code+":"), release, nil
}

// tables counts the corpus, or loads previously saved tables
func (a *app) tables(cfg *configlib.Config, profanity map[string]bool) ([]corpusfreqlib.Monogram, []corpusfreqlib.Bigram, error) {
	if cfg.FreqIn != "" {
		a.log.Printf("loading frequency tables from %s", cfg.FreqIn)
		return corpusfreqlib.LoadTables(cfg.FreqIn)
	}

	tok, err := tokenlib.New(cfg.Tokenizer)
	if err != nil {
		return nil, nil, err
	}

	var in io.Reader = a.stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		in = f
	}
	if cfg.IsHTML() {
		if in, err = tokenlib.HTMLReader(in); err != nil {
			return nil, nil, err
		}
	}

	c := corpusfreqlib.NewCounter(tok, profanity)
	c.Log = a.log
	if err := c.AddReader(in); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	a.log.Printf("counted %d lines from %s", c.Lines(), cfg.Input)
	return c.Monograms(), c.Bigrams(), nil
}

// run is the two phase pipeline: count everything, then score and write
func (a *app) run(cfg *configlib.Config) (err error) {
	if cfg.Verbose {
		goDebug.Print("config", cfg)
	}

	profanity, err := iolib.ReadWordSet(cfg.Profanity)
	if err != nil {
		return fmt.Errorf("profanity list: %w", err)
	}
	offensive, err := iolib.ReadWordSet(cfg.Offensive)
	if err != nil {
		return fmt.Errorf("offensive list: %w", err)
	}

	ms, bs, err := a.tables(cfg, profanity)
	if err != nil {
		return err
	}
	a.log.Printf("%d monograms, %d bigrams", len(ms), len(bs))

	if cfg.FreqOut != "" {
		if err := corpusfreqlib.SaveTables(cfg.FreqOut, ms, bs); err != nil {
			return fmt.Errorf("frequency tables: %w", err)
		}
		a.log.Printf("saved frequency tables to %s", cfg.FreqOut)
	}

	ms, bs = wordlistlib.Truncate(ms, bs, cfg.Limit, cfg.BigramCeiling)
	if err := wordlistlib.CheckTables(ms, cfg.Limit); err != nil {
		return err
	}

	casings, err := spelllib.ParseCasings(cfg.Casings)
	if err != nil {
		return err
	}
	v, release, err := a.openValidator(cfg)
	if err != nil {
		return err
	}
	defer release()

	var out io.Writer = a.stdout
	if cfg.Output != "-" {
		f, cerr := os.Create(cfg.Output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			cerr := f.Close()
			if err == nil {
				err = cerr
			}
		}()
		out = f
	}

	asm := &wordlistlib.Assembler{
		Resolver:  spelllib.NewResolver(v, casings),
		Offensive: iolib.Union(offensive, profanity),
	}
	if cfg.Verbose {
		asm.Log = a.log
	}
	meta := wordlistlib.Meta{Lang: cfg.Lang, Description: cfg.Description, Date: cfg.GenerationTime(a.now)}

	st, err := asm.Assemble(out, ms, bs, meta)
	if err != nil {
		return err
	}
	a.log.Printf("wrote %d words and %d bigrams to %s (skipped %d words, %d bigrams, %d unencodable)",
		st.Words, st.Bigrams, cfg.Output, st.SkippedWords, st.SkippedBigrams, st.Unencodable)
	if c, ok := v.(*spelllib.Cached); ok {
		a.log.Printf("dictionary lookups: %d cached, %d asked, %d verdicts kept", c.Hits, c.Misses, c.Len())
	}
	return nil
}

/***************************************************************************************************************
****************************************************************************************************************
* MAIN *********************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

func newRootCmd(a *app) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "wordlist",
		Short:        "Generate AOSP keyboard wordlist from language dump file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cfg, err := configlib.Load(v, configFile)
			if err != nil {
				return err
			}
			return a.run(cfg)
		},
	}
	configlib.AddFlags(cmd.Flags())
	if err := configlib.BindFlags(v, cmd.Flags()); err != nil {
		panic(fmt.Errorf("Fatal error binding flags: %s", err))
	}
	return cmd
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
