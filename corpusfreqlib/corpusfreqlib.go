// Package corpusfreqlib counts unigram and bigram frequencies over a line oriented corpus
package corpusfreqlib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"sort"
	"unicode/utf8"

	"goWordlist/stringlib"
	"goWordlist/tokenlib"
)

// ErrUndecodableLine is returned when a corpus line is not valid UTF-8
var ErrUndecodableLine = errors.New("corpusfreqlib: undecodable line")

const scannerBufSize = 4 * 1024 * 1024 // very long lines in dumps

// Monogram is a normalized word and its count. A count of 0 marks a known
// word whose frequency is forced to zero (profanity).
type Monogram struct {
	Word  string
	Count int
}

// Bigram is an ordered pair of adjacent normalized words and its count
type Bigram struct {
	Lead  string
	Trail string
	Count int
}

type pair struct {
	lead, trail string
}

// Counter accumulates frequency tables line by line
type Counter struct {
	tok       tokenlib.Tokenizer
	profanity map[string]bool
	monograms map[string]int
	bigrams   map[pair]int
	lines     int

	// Log receives progress lines; nil discards them
	Log *log.Logger
}

// NewCounter returns an empty counter. profanity must hold normalized words.
func NewCounter(tok tokenlib.Tokenizer, profanity map[string]bool) *Counter {
	if profanity == nil {
		profanity = map[string]bool{}
	}
	return &Counter{
		tok:       tok,
		profanity: profanity,
		monograms: make(map[string]int),
		bigrams:   make(map[pair]int),
	}
}

/***************************************************************************************************************
****************************************************************************************************************
* Counting *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// AddLine tokenizes one line and updates both tables
func (c *Counter) AddLine(line string) error {
	c.lines++
	if !utf8.ValidString(line) {
		return fmt.Errorf("%w %d", ErrUndecodableLine, c.lines)
	}
	tokens, err := c.tok.Tokenize(line)
	if err != nil {
		return fmt.Errorf("line %d: %w", c.lines, err)
	}

	keys := make([]string, len(tokens))
	alpha := make([]bool, len(tokens))
	for i, t := range tokens {
		keys[i] = stringlib.Normalize(t)
		alpha[i] = stringlib.IsAlpha(keys[i])
	}

	for i, key := range keys {
		if !alpha[i] {
			continue
		}
		if _, ok := c.monograms[key]; !ok {
			c.monograms[key] = 0
		}
		if !c.profanity[key] {
			c.monograms[key]++
		}
	}

	for i := 1; i < len(keys); i++ {
		lead, trail := keys[i-1], keys[i]
		if !alpha[i-1] || !alpha[i] || c.profanity[lead] || c.profanity[trail] {
			continue
		}
		c.bigrams[pair{lead, trail}]++
	}

	return nil
}

// AddReader feeds every line of r into the counter
func (c *Counter) AddReader(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)
	for sc.Scan() {
		if err := c.AddLine(sc.Text()); err != nil {
			return err
		}
		if c.lines%100000 == 0 {
			c.logger().Printf("%d lines counted, %d words, %d bigrams", c.lines, len(c.monograms), len(c.bigrams))
		}
	}
	return sc.Err()
}

// Lines returns how many lines have been counted
func (c *Counter) Lines() int {
	return c.lines
}

// Monograms returns the unigram table by descending count, ties by word
func (c *Counter) Monograms() []Monogram {
	ms := make([]Monogram, 0, len(c.monograms))
	for w, n := range c.monograms {
		ms = append(ms, Monogram{Word: w, Count: n})
	}
	SortMonograms(ms)
	return ms
}

// Bigrams returns the bigram table by descending count, ties by lead then trail
func (c *Counter) Bigrams() []Bigram {
	bs := make([]Bigram, 0, len(c.bigrams))
	for p, n := range c.bigrams {
		bs = append(bs, Bigram{Lead: p.lead, Trail: p.trail, Count: n})
	}
	SortBigrams(bs)
	return bs
}

func (c *Counter) logger() *log.Logger {
	if c.Log == nil {
		return log.New(ioutil.Discard, "", 0)
	}
	return c.Log
}

// Count builds both tables from every line of r
func Count(r io.Reader, tok tokenlib.Tokenizer, profanity map[string]bool) ([]Monogram, []Bigram, error) {
	c := NewCounter(tok, profanity)
	if err := c.AddReader(r); err != nil {
		return nil, nil, err
	}
	return c.Monograms(), c.Bigrams(), nil
}

// CountLines is Count over lines already in memory
func CountLines(lines []string, tok tokenlib.Tokenizer, profanity map[string]bool) ([]Monogram, []Bigram, error) {
	c := NewCounter(tok, profanity)
	for _, l := range lines {
		if err := c.AddLine(l); err != nil {
			return nil, nil, err
		}
	}
	return c.Monograms(), c.Bigrams(), nil
}

/***************************************************************************************************************
****************************************************************************************************************
* Ordering *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// SortMonograms orders by descending count, then ascending word
func SortMonograms(ms []Monogram) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Count == ms[j].Count {
			return ms[i].Word < ms[j].Word
		}
		return ms[i].Count > ms[j].Count
	})
}

// SortBigrams orders by descending count, then ascending lead and trail
func SortBigrams(bs []Bigram) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].Count != bs[j].Count {
			return bs[i].Count > bs[j].Count
		}
		if bs[i].Lead != bs[j].Lead {
			return bs[i].Lead < bs[j].Lead
		}
		return bs[i].Trail < bs[j].Trail
	})
}
