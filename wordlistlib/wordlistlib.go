// Package wordlistlib writes counted tables as an AOSP keyboard combined wordlist.
//
// The output is line oriented:
//
//	dictionary=main:de,locale=de,description=German,date=1700000000,version=1
//	 word=der,f=174
//	  bigram=Mann,f=230
//	 word=verdammt,f=0,possibly_offensive=true
//
// Word lines follow the unigram order; the bigrams led by a word come right
// after its line in the bigram table order.
package wordlistlib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"goWordlist/corpusfreqlib"
	"goWordlist/scorelib"
	"goWordlist/spelllib"
)

const (
	// DefaultLimit caps the number of unigrams written
	DefaultLimit = 10000000
	// DefaultBigramCeiling caps the number of bigrams whatever the limit
	DefaultBigramCeiling = 50000
)

// ErrDegenerateCorpus means the corpus gave no word with a nonzero count, so
// nothing can be placed on the frequency scale
var ErrDegenerateCorpus = errors.New("wordlistlib: corpus has no countable words")

// CheckTables rejects a unigram table that cannot be scored. With limit 0
// nothing is scored, so any table passes.
func CheckTables(ms []corpusfreqlib.Monogram, limit int) error {
	if limit == 0 {
		return nil
	}
	if maxMonogram(ms) == 0 {
		return fmt.Errorf("%w (%d words, all suppressed or none)", ErrDegenerateCorpus, len(ms))
	}
	return nil
}

// Meta is the dictionary header metadata
type Meta struct {
	Lang        string
	Description string
	// Date is written as unix seconds; callers pass it so output is reproducible
	Date time.Time
}

// Header renders the first line of the wordlist, without newline
func Header(m Meta) string {
	return fmt.Sprintf("dictionary=main:%s,locale=%s,description=%s,date=%d,version=1",
		strings.ToLower(m.Lang), m.Lang, m.Description, m.Date.Unix())
}

// Stats reports what Assemble wrote and skipped
type Stats struct {
	Words          int
	Bigrams        int
	SkippedWords   int
	SkippedBigrams int
	Unencodable    int
}

/***************************************************************************************************************
****************************************************************************************************************
* Limits and grouping ******************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// BigramLimit is the smaller of ceiling and limit
func BigramLimit(limit, ceiling int) int {
	if ceiling < limit {
		return ceiling
	}
	return limit
}

// Truncate cuts the unigram table to limit and the bigram table to BigramLimit
func Truncate(ms []corpusfreqlib.Monogram, bs []corpusfreqlib.Bigram, limit, ceiling int) ([]corpusfreqlib.Monogram, []corpusfreqlib.Bigram) {
	if limit < 0 {
		limit = 0
	}
	if limit < len(ms) {
		ms = ms[:limit]
	}
	if bl := BigramLimit(limit, ceiling); bl < len(bs) {
		if bl < 0 {
			bl = 0
		}
		bs = bs[:bl]
	}
	return ms, bs
}

// GroupBigrams indexes bigrams by their leading word, keeping table order within each group
func GroupBigrams(bs []corpusfreqlib.Bigram) map[string][]corpusfreqlib.Bigram {
	groups := make(map[string][]corpusfreqlib.Bigram)
	for _, b := range bs {
		groups[b.Lead] = append(groups[b.Lead], b)
	}
	return groups
}

func maxMonogram(ms []corpusfreqlib.Monogram) int {
	max := 0
	for _, m := range ms {
		if m.Count > max {
			max = m.Count
		}
	}
	return max
}

func maxBigram(bs []corpusfreqlib.Bigram) int {
	max := 0
	for _, b := range bs {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

/***************************************************************************************************************
****************************************************************************************************************
* Assembly *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Assembler renders tables through a resolver
type Assembler struct {
	Resolver *spelllib.Resolver
	// Offensive holds normalized words flagged possibly_offensive, profanity included
	Offensive map[string]bool
	// Log receives skipped entries; nil discards them
	Log *log.Logger
}

// Assemble writes the wordlist for already truncated tables
func Assemble(w io.Writer, ms []corpusfreqlib.Monogram, bs []corpusfreqlib.Bigram, meta Meta,
	offensive map[string]bool, resolver *spelllib.Resolver) (Stats, error) {
	a := &Assembler{Resolver: resolver, Offensive: offensive}
	return a.Assemble(w, ms, bs, meta)
}

// Assemble writes the header, then every resolvable word followed by its bigrams
func (a *Assembler) Assemble(w io.Writer, ms []corpusfreqlib.Monogram, bs []corpusfreqlib.Bigram, meta Meta) (Stats, error) {
	var st Stats
	logger := a.Log
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	scale := scorelib.NewScale(maxMonogram(ms), maxBigram(bs))
	groups := GroupBigrams(bs)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header(meta))

	for _, m := range ms {
		form, ok, err := a.resolve(m.Word, &st)
		if err != nil {
			return st, err
		}
		if !ok {
			st.SkippedWords++
			st.SkippedBigrams += len(groups[m.Word])
			logger.Printf("skip word %q", m.Word)
			continue
		}

		f, err := scale.Score(m.Count, scorelib.Unigram)
		if err != nil {
			return st, fmt.Errorf("word %q: %w", m.Word, err)
		}
		fmt.Fprintf(bw, " word=%s,f=%d%s\n", form, f, a.suffix(m.Word, form))
		st.Words++

		for _, b := range groups[m.Word] {
			trail, ok, err := a.resolve(b.Trail, &st)
			if err != nil {
				return st, err
			}
			if !ok {
				st.SkippedBigrams++
				logger.Printf("skip bigram %q %q", b.Lead, b.Trail)
				continue
			}
			f, err := scale.Score(b.Count, scorelib.Bigram)
			if err != nil {
				return st, fmt.Errorf("bigram %q %q: %w", b.Lead, b.Trail, err)
			}
			fmt.Fprintf(bw, "  bigram=%s,f=%d%s\n", trail, f, a.suffix(b.Trail, trail))
			st.Bigrams++
		}
	}

	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("write wordlist: %w", err)
	}
	return st, nil
}

// resolve treats unencodable forms as a miss; other validator errors are fatal
func (a *Assembler) resolve(key string, st *Stats) (string, bool, error) {
	form, ok, err := a.Resolver.Resolve(key)
	if errors.Is(err, spelllib.ErrUnencodable) {
		st.Unencodable++
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("validate %q: %w", key, err)
	}
	return form, ok, nil
}

func (a *Assembler) suffix(key, form string) string {
	if a.Offensive[key] || a.Offensive[form] {
		return ",possibly_offensive=true"
	}
	return ""
}
