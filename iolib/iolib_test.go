package iolib

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.txt", "x")
	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false", path)
	}
	if FileExists(filepath.Dir(path)) {
		t.Errorf("FileExists(dir) = true")
	}
	if FileExists(path + ".missing") {
		t.Errorf("FileExists(missing) = true")
	}
}

func TestParseWordList(t *testing.T) {
	t.Parallel()

	got, err := ParseWordList(strings.NewReader("  damn \n\n# comment\nheck\t\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"damn", "heck"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseWordList = %q, want %q", got, want)
	}
}

func TestReadWordSetNormalizes(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "profanity.txt", "DAMN\nCafé\n")
	got, err := ReadWordSet(path)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"damn": true, "café": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadWordSet = %v, want %v", got, want)
	}
}

func TestReadWordSetYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "offensive.yaml", "terms:\n  - Idiot\n  - jerk\n")
	got, err := ReadWordSet(path)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"idiot": true, "jerk": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadWordSet = %v, want %v", got, want)
	}
}

func TestReadWordSetEmptyName(t *testing.T) {
	t.Parallel()

	got, err := ReadWordSet("")
	if err != nil || len(got) != 0 {
		t.Errorf("ReadWordSet(\"\") = %v, %v", got, err)
	}
}

func TestReadWordSetMissing(t *testing.T) {
	t.Parallel()

	if _, err := ReadWordSet(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ReadWordSet(missing) err = nil")
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	got := Union(map[string]bool{"a": true}, map[string]bool{"b": true}, nil)
	want := map[string]bool{"a": true, "b": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Union = %v, want %v", got, want)
	}
}
