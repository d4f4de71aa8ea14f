package corpusfreqlib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadFreqLine is returned by ReadTables for a line it cannot parse
var ErrBadFreqLine = errors.New("corpusfreqlib: bad frequency line")

/***************************************************************************************************************
****************************************************************************************************************
* Frequency files **********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// A frequency file stores both tables so counting and assembly can run
// separately. Unigrams are "<count> <word>", bigrams "<count> <lead> <trail>",
// one per line; lines starting with # are comments.

// WriteTables dumps both tables to w in frequency file format
func WriteTables(w io.Writer, ms []Monogram, bs []Bigram) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d monograms, %d bigrams\n", len(ms), len(bs))
	for _, m := range ms {
		fmt.Fprintf(bw, "%d %s\n", m.Count, m.Word)
	}
	for _, b := range bs {
		fmt.Fprintf(bw, "%d %s %s\n", b.Count, b.Lead, b.Trail)
	}
	return bw.Flush()
}

// SaveTables writes both tables to the file named filename
func SaveTables(filename string, ms []Monogram, bs []Bigram) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return WriteTables(f, ms, bs)
}

// ReadTables parses a frequency file. Both tables come back sorted.
func ReadTables(r io.Reader) ([]Monogram, []Bigram, error) {
	var ms []Monogram
	var bs []Bigram

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)
	numLine := 0
	for sc.Scan() {
		numLine++
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, nil, fmt.Errorf("%w %d: %q", ErrBadFreqLine, numLine, l)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("%w %d: %q", ErrBadFreqLine, numLine, l)
		}
		if len(fields) == 2 {
			ms = append(ms, Monogram{Word: fields[1], Count: n})
			continue
		}
		if n == 0 {
			return nil, nil, fmt.Errorf("%w %d: zero count bigram", ErrBadFreqLine, numLine)
		}
		bs = append(bs, Bigram{Lead: fields[1], Trail: fields[2], Count: n})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	SortMonograms(ms)
	SortBigrams(bs)
	return ms, bs, nil
}

// LoadTables reads the frequency file named filename
func LoadTables(filename string) ([]Monogram, []Bigram, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadTables(f)
}
