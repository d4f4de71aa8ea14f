// Package tokenlib splits corpus lines into word and punctuation tokens
package tokenlib

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
	"jaytaylor.com/html2text"
)

// ErrUnknownTokenizer is returned by New for an unsupported tokenizer name
var ErrUnknownTokenizer = errors.New("tokenlib: unknown tokenizer")

// Tokenizer turns one line of text into its tokens
type Tokenizer interface {
	Tokenize(line string) ([]string, error)
}

// New returns the tokenizer registered under name ("wordpunct" or "prose")
func New(name string) (Tokenizer, error) {
	switch strings.ToLower(name) {
	case "", "wordpunct":
		return WordPunct{}, nil
	case "prose":
		return Prose{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTokenizer, name)
}

/***************************************************************************************************************
****************************************************************************************************************
* Word / punctuation tokenizer *********************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Runs of word characters, or runs of anything that is neither a word character nor space.
var wordPunctRe = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]+`)

// WordPunct splits on word boundaries keeping punctuation runs as their own
// tokens: "don't stop." gives [don ' t stop .]
type WordPunct struct{}

// Tokenize implements Tokenizer
func (WordPunct) Tokenize(line string) ([]string, error) {
	return wordPunctRe.FindAllString(line, -1), nil
}

/***************************************************************************************************************
****************************************************************************************************************
* prose tokenizer **********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Prose uses the prose Penn-Treebank style tokenizer: "don't" gives [do n't]
type Prose struct{}

// Tokenize implements Tokenizer
func (Prose) Tokenize(line string) ([]string, error) {
	doc, err := prose.NewDocument(line,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}
	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out, nil
}

/***************************************************************************************************************
****************************************************************************************************************
* HTML corpora *************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// HTMLReader converts an HTML document into its plain text rendering, one
// paragraph per line, so it can be counted like a text corpus
func HTMLReader(r io.Reader) (io.Reader, error) {
	plain, err := html2text.FromReader(r, html2text.Options{PrettyTables: false})
	if err != nil {
		return nil, fmt.Errorf("html2text: %w", err)
	}
	return strings.NewReader(plain), nil
}
