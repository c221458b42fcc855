package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("Canon AE-1\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Title?", &out)
	if err != nil || got != "Canon AE-1" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Title?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetFloat(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("249.99\n"))
	var out bytes.Buffer
	got, err := GetFloat(in, "Price?", &out)
	if err != nil || got != 249.99 {
		t.Fatalf("got %v, err=%v", got, err)
	}

	in = bufio.NewReader(strings.NewReader("cheap\n"))
	if _, err := GetFloat(in, "Price?", &out); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseIndex(t *testing.T) {
	if _, ok := parseIndex(nil, 3); ok {
		t.Fatal("missing argument should fail")
	}
	if _, ok := parseIndex([]string{"x"}, 3); ok {
		t.Fatal("non-numeric argument should fail")
	}
	if _, ok := parseIndex([]string{"0"}, 3); ok {
		t.Fatal("index below range should fail")
	}
	if _, ok := parseIndex([]string{"4"}, 3); ok {
		t.Fatal("index above range should fail")
	}
	idx, ok := parseIndex([]string{"2"}, 3)
	if !ok || idx != 1 {
		t.Fatalf("got %d, ok=%v", idx, ok)
	}
}
