package spelllib

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// mapValidator accepts the forms it holds and fails on the ones in bad
type mapValidator struct {
	words map[string]bool
	bad   map[string]bool
	calls []string
}

func (m *mapValidator) IsWord(form string) (bool, error) {
	m.calls = append(m.calls, form)
	if m.bad[form] {
		return false, ErrUnencodable
	}
	return m.words[form], nil
}

func newMap(words ...string) *mapValidator {
	m := &mapValidator{words: map[string]bool{}, bad: map[string]bool{}}
	for _, w := range words {
		m.words[w] = true
	}
	return m
}

// ---------------------------------------------------------------------------
// Resolver
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    string
		words  []string
		want   string
		wantOK bool
	}{
		{name: "lowercase accepted", key: "cat", words: []string{"cat"}, want: "cat", wantOK: true},
		{name: "capitalized fallback", key: "berlin", words: []string{"Berlin"}, want: "Berlin", wantOK: true},
		{name: "lowercase wins over capitalized", key: "may", words: []string{"may", "May"}, want: "may", wantOK: true},
		{name: "no form accepted", key: "qwx", words: []string{"cat"}, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewResolver(newMap(tt.words...), nil)
			got, ok, err := r.Resolve(tt.key)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.key, err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveOrderAndDedup(t *testing.T) {
	t.Parallel()

	m := newMap()
	r := NewResolver(m, []Casing{Lower, Capitalize, Lower, Upper})
	if _, ok, _ := r.Resolve("nasa"); ok {
		t.Fatal("unexpected acceptance")
	}
	want := []string{"nasa", "Nasa", "NASA"}
	if !reflect.DeepEqual(m.calls, want) {
		t.Errorf("calls = %q, want %q", m.calls, want)
	}
}

func TestResolveUnencodable(t *testing.T) {
	t.Parallel()

	m := newMap("Straße")
	m.bad["straße"] = true
	_, ok, err := NewResolver(m, nil).Resolve("straße")
	if ok || !errors.Is(err, ErrUnencodable) {
		t.Errorf("Resolve = %v, %v; want ErrUnencodable", ok, err)
	}
}

func TestParseCasings(t *testing.T) {
	t.Parallel()

	got, err := ParseCasings([]string{"Lower", " title ", "upper"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Casing{Lower, Title, Upper}; !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCasings = %v, want %v", got, want)
	}
	if got, _ := ParseCasings(nil); !reflect.DeepEqual(got, DefaultCasings) {
		t.Errorf("ParseCasings(nil) = %v", got)
	}
	if _, err := ParseCasings([]string{"sentence"}); !errors.Is(err, ErrUnknownCasing) {
		t.Errorf("ParseCasings(sentence) err = %v", err)
	}
}

// ---------------------------------------------------------------------------
// Cached
// ---------------------------------------------------------------------------

type memStore map[string]bool

func (s memStore) GetVerdict(key string) (bool, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

func (s memStore) SetVerdict(key string, verdict bool) error {
	s[key] = verdict
	return nil
}

func TestCached(t *testing.T) {
	t.Parallel()

	m := newMap("cat")
	c := NewCached(m, nil, "")
	for i := 0; i < 3; i++ {
		if ok, err := c.IsWord("cat"); !ok || err != nil {
			t.Fatalf("IsWord(cat) = %v, %v", ok, err)
		}
		if ok, err := c.IsWord("dog"); ok || err != nil {
			t.Fatalf("IsWord(dog) = %v, %v", ok, err)
		}
	}
	if len(m.calls) != 2 {
		t.Errorf("validator called %d times, want 2", len(m.calls))
	}
	if c.Hits != 4 || c.Misses != 2 || c.Len() != 2 {
		t.Errorf("hits %d misses %d len %d", c.Hits, c.Misses, c.Len())
	}
}

func TestCachedErrorsNotCached(t *testing.T) {
	t.Parallel()

	m := newMap()
	m.bad["ß"] = true
	c := NewCached(m, nil, "")
	for i := 0; i < 2; i++ {
		if _, err := c.IsWord("ß"); !errors.Is(err, ErrUnencodable) {
			t.Fatalf("IsWord err = %v", err)
		}
	}
	if len(m.calls) != 2 || c.Len() != 0 {
		t.Errorf("calls %d len %d", len(m.calls), c.Len())
	}
}

func TestCachedStore(t *testing.T) {
	t.Parallel()

	store := memStore{"de_DE:haus": true}
	m := newMap("katze")
	c := NewCached(m, store, "de_DE:")

	if ok, _ := c.IsWord("haus"); !ok {
		t.Error("stored verdict not used")
	}
	if ok, _ := c.IsWord("katze"); !ok {
		t.Error("katze rejected")
	}
	if !store["de_DE:katze"] {
		t.Errorf("verdict not written to store: %v", store)
	}
	if !reflect.DeepEqual(m.calls, []string{"katze"}) {
		t.Errorf("calls = %q", m.calls)
	}
}

// ---------------------------------------------------------------------------
// Hunspell
// ---------------------------------------------------------------------------

func TestDictCode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"de": "de_DE", "NL": "nl_NL", "pt_BR": "pt_BR"} {
		if got := DictCode(in); got != want {
			t.Errorf("DictCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHunspellUTF8(t *testing.T) {
	t.Parallel()

	h, err := NewHunspell("xx_XX", strings.NewReader("SET UTF-8\n"), strings.NewReader("3\ncat\nthe\nBerlin\n"))
	if err != nil {
		t.Fatalf("NewHunspell: %v", err)
	}
	defer h.Close()

	tests := map[string]bool{"cat": true, "the": true, "Berlin": true, "berlin": false, "dog": false}
	for form, want := range tests {
		got, err := h.IsWord(form)
		if err != nil {
			t.Errorf("IsWord(%q): %v", form, err)
		}
		if got != want {
			t.Errorf("IsWord(%q) = %v, want %v", form, got, want)
		}
	}

	r := NewResolver(h, nil)
	if form, ok, _ := r.Resolve("berlin"); !ok || form != "Berlin" {
		t.Errorf("Resolve(berlin) = %q, %v", form, ok)
	}
}

func TestHunspellLatin1(t *testing.T) {
	t.Parallel()

	h, err := NewHunspell("xx_XX", strings.NewReader("SET ISO8859-1\n"), strings.NewReader("2\ncaf\xe9\nthe\n"))
	if err != nil {
		t.Fatalf("NewHunspell: %v", err)
	}
	if ok, err := h.IsWord("café"); !ok || err != nil {
		t.Errorf("IsWord(café) = %v, %v", ok, err)
	}
	if _, err := h.IsWord("кот"); !errors.Is(err, ErrUnencodable) {
		t.Errorf("IsWord(кот) err = %v, want ErrUnencodable", err)
	}

	h.Close()
	if _, err := h.IsWord("the"); !errors.Is(err, ErrClosed) {
		t.Errorf("IsWord after Close err = %v", err)
	}
}

func TestOpenHunspellMissing(t *testing.T) {
	t.Parallel()

	if _, err := OpenHunspell(t.TempDir(), "xx"); !errors.Is(err, ErrDictionaryNotFound) {
		t.Errorf("OpenHunspell err = %v, want ErrDictionaryNotFound", err)
	}
}

func TestLookupCharset(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"ISO8859-1", "ISO8859-2", "KOI8-R", "microsoft-cp1251"} {
		enc, err := lookupCharset(name)
		if err != nil || enc == nil {
			t.Errorf("lookupCharset(%q) = %v, %v", name, enc, err)
		}
	}
	if enc, err := lookupCharset("UTF-8"); enc != nil || err != nil {
		t.Errorf("lookupCharset(UTF-8) = %v, %v", enc, err)
	}
	if _, err := lookupCharset("NOT-A-CHARSET"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("lookupCharset(bogus) err = %v", err)
	}
}
