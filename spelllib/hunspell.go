package spelllib

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/client9/gospell"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultDictDir is where distributions install Hunspell dictionaries
const DefaultDictDir = "/usr/share/hunspell/"

var (
	// ErrDictionaryNotFound is returned when the .aff or .dic file is missing
	ErrDictionaryNotFound = errors.New("spelllib: hunspell dictionary not found")
	// ErrUnknownCharset is returned for an aff SET the decoder does not know
	ErrUnknownCharset = errors.New("spelllib: unknown dictionary charset")
	// ErrClosed is returned by IsWord after Close
	ErrClosed = errors.New("spelllib: dictionary closed")
)

// DictCode returns the dictionary file stem for a language: "de" gives
// "de_DE", "pt_BR" is kept as is
func DictCode(lang string) string {
	if strings.Contains(lang, "_") {
		return lang
	}
	return strings.ToLower(lang) + "_" + strings.ToUpper(lang)
}

// Hunspell validates forms against a Hunspell .aff/.dic pair
type Hunspell struct {
	Code    string
	Charset string

	speller *gospell.GoSpell
	enc     encoding.Encoding // nil for UTF-8
}

// OpenHunspell loads <dir>/<code>.aff and <dir>/<code>.dic for lang
func OpenHunspell(dir, lang string) (*Hunspell, error) {
	if dir == "" {
		dir = DefaultDictDir
	}
	code := DictCode(lang)
	affPath := filepath.Join(dir, code+".aff")
	dicPath := filepath.Join(dir, code+".dic")

	aff, err := os.Open(affPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, affPath)
		}
		return nil, err
	}
	defer aff.Close()

	dic, err := os.Open(dicPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, dicPath)
		}
		return nil, err
	}
	defer dic.Close()

	return NewHunspell(code, aff, dic)
}

// NewHunspell builds a validator from the contents of an affix and a
// dictionary file, decoding both from the charset the affix file declares
func NewHunspell(code string, aff, dic io.Reader) (*Hunspell, error) {
	affData, err := ioutil.ReadAll(aff)
	if err != nil {
		return nil, err
	}
	charset := affCharset(affData)
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}

	var affR, dicR io.Reader = bytes.NewReader(affData), dic
	if enc != nil {
		affR = transform.NewReader(affR, enc.NewDecoder())
		dicR = transform.NewReader(dicR, enc.NewDecoder())
	}

	speller, err := gospell.NewGoSpellReader(affR, dicR)
	if err != nil {
		return nil, fmt.Errorf("hunspell %s: %w", code, err)
	}
	return &Hunspell{Code: code, Charset: charset, speller: speller, enc: enc}, nil
}

// IsWord implements Validator. Forms the dictionary charset cannot hold
// give ErrUnencodable.
func (h *Hunspell) IsWord(form string) (bool, error) {
	if h.speller == nil {
		return false, ErrClosed
	}
	if h.enc != nil {
		if _, err := h.enc.NewEncoder().String(form); err != nil {
			return false, fmt.Errorf("%w: %q in %s", ErrUnencodable, form, h.Charset)
		}
	}
	return h.speller.Spell(form), nil
}

// Close releases the dictionary
func (h *Hunspell) Close() error {
	h.speller = nil
	return nil
}

/***************************************************************************************************************
****************************************************************************************************************
* Charsets *****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var isoDashless = regexp.MustCompile(`^ISO8859-(\d+)$`)

// affCharset returns the SET declaration of an affix file, UTF-8 when absent
func affCharset(aff []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(aff))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "SET" {
			return fields[1]
		}
	}
	return "UTF-8"
}

// lookupCharset maps a Hunspell SET name onto an encoding, nil meaning UTF-8
func lookupCharset(name string) (encoding.Encoding, error) {
	upper := strings.ToUpper(name)
	switch upper {
	case "", "UTF-8", "UTF8":
		return nil, nil
	case "MICROSOFT-CP1251":
		upper = "WINDOWS-1251"
	}
	if m := isoDashless.FindStringSubmatch(upper); m != nil {
		upper = "ISO-8859-" + m[1]
	}

	if enc, err := ianaindex.IANA.Encoding(upper); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(upper); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
}
