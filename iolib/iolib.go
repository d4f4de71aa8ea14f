// Package iolib provides the file helpers around the wordlist pipeline
package iolib

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"goWordlist/stringlib"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

/***************************************************************************************************************
****************************************************************************************************************
* Word lists ***************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// yamlWordList is the YAML form of a word list:
//
//	terms:
//	  - damn
//	  - heck
type yamlWordList struct {
	Terms []string `yaml:"terms"`
}

// ParseWordList reads one word per line, trimming whitespace and skipping
// blank lines and # comments
func ParseWordList(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	return words, sc.Err()
}

// ParseYAMLWordList reads the terms sequence of a YAML word list
func ParseYAMLWordList(r io.Reader) ([]string, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var wl yamlWordList
	if err := yaml.Unmarshal(b, &wl); err != nil {
		return nil, err
	}
	var words []string
	for _, w := range wl.Terms {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// ReadWordList loads a word list file; .yaml and .yml files use the YAML form
func ReadWordList(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		words, err = ParseYAMLWordList(f)
	default:
		words, err = ParseWordList(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return words, nil
}

// ReadWordSet loads a word list as a set of normalized words. An empty
// filename gives an empty set.
func ReadWordSet(filename string) (map[string]bool, error) {
	set := make(map[string]bool)
	if filename == "" {
		return set, nil
	}
	words, err := ReadWordList(filename)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		set[stringlib.Normalize(w)] = true
	}
	return set, nil
}

// Union returns a new set holding the members of all sets
func Union(sets ...map[string]bool) map[string]bool {
	u := make(map[string]bool)
	for _, s := range sets {
		for w := range s {
			u[w] = true
		}
	}
	return u
}
