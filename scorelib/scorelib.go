// Package scorelib maps raw corpus counts onto the 0-255 keyboard frequency scale.
//
// Unigrams take scores 1..174, bigrams 176..255, and 0 is reserved for known
// words whose frequency is suppressed. Counts are placed on a base 1.15
// logarithmic scale relative to the largest count of the same table.
package scorelib

import (
	"errors"
	"fmt"
	"math"
)

// Kind selects the score sub-range
type Kind int

const (
	Unigram Kind = iota
	Bigram
)

const (
	// MonogramSpace is the size of the unigram sub-range, 0 included
	MonogramSpace = 175
	// MaxScore is the top of the bigram sub-range
	MaxScore = 255
	// LogBase is the base of the logarithmic scale
	LogBase = 1.15
)

// ErrDegenerateTable is returned when a count cannot be placed on the scale
// because the table maximum is missing or smaller than the count
var ErrDegenerateTable = errors.New("scorelib: degenerate frequency table")

func logBase(x float64) float64 {
	return math.Log(x) / math.Log(LogBase)
}

// Quantize scores count against the table maximum maxCount
func Quantize(count, maxCount int, kind Kind) (int, error) {
	if count == 0 {
		return 0, nil
	}
	if count < 0 || maxCount < 1 || count > maxCount {
		return 0, fmt.Errorf("%w: count %d, max %d", ErrDegenerateTable, count, maxCount)
	}

	ratio := 1.0
	if maxCount > 1 {
		ratio = logBase(float64(count)) / logBase(float64(maxCount))
	}

	if kind == Bigram {
		return int(math.RoundToEven((MaxScore-MonogramSpace-1)*ratio + MonogramSpace + 1)), nil
	}
	return int(math.RoundToEven((MonogramSpace-2)*ratio + 1)), nil
}

// Scale holds the run-wide maxima every entry is scored against
type Scale struct {
	MaxUnigram int
	MaxBigram  int
}

// NewScale builds a scale from the maxima of both tables
func NewScale(maxUnigram, maxBigram int) Scale {
	return Scale{MaxUnigram: maxUnigram, MaxBigram: maxBigram}
}

// Score quantizes count against the maximum of its kind
func (s Scale) Score(count int, kind Kind) (int, error) {
	if kind == Bigram {
		return Quantize(count, s.MaxBigram, Bigram)
	}
	return Quantize(count, s.MaxUnigram, Unigram)
}
