package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTokenizeInput_Stdin(t *testing.T) {
	lines, err := readTokenizeInput("-", strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("readTokenizeInput error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("lines = %q; want [a b]", lines)
	}
}

func TestReadTokenizeInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	lines, err := readTokenizeInput(path, nil)
	if err != nil {
		t.Fatalf("readTokenizeInput error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "hello world" {
		t.Errorf("lines = %q; want [hello world]", lines)
	}
}

func TestReadTokenizeInput_MissingFile(t *testing.T) {
	_, err := readTokenizeInput(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil {
		t.Fatal("readTokenizeInput error = nil; want error")
	}
}

func TestReadTokenizeInput_InvalidEncoding(t *testing.T) {
	_, err := readTokenizeInput("-", bytes.NewReader([]byte{0xff, 0xfe}))
	if err == nil || !strings.Contains(err.Error(), "UTF-8") {
		t.Fatalf("readTokenizeInput error = %v; want UTF-8 message", err)
	}
}

func TestWriteTokenizeOutput_Stdout(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTokenizeOutput("-", []string{"a", "b"}, &buf); err != nil {
		t.Fatalf("writeTokenizeOutput error: %v", err)
	}
	if got, want := buf.String(), "a\nb\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestWriteTokenizeOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := writeTokenizeOutput(path, []string{"x"}, nil); err != nil {
		t.Fatalf("writeTokenizeOutput error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "x\n" {
		t.Errorf("file contents = %q; want %q", b, "x\n")
	}
}

func TestTokenizeCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(in, []byte("Dr. Smith can't pay 1,234.56 dollars.\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"tokenize", "-i", in, "-o", out, "--language", "en"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "Dr. Smith ca n't pay 1,234.56 dollars .\n"
	if string(b) != want {
		t.Errorf("output = %q; want %q", b, want)
	}
}

func TestTokenizeCommand_UnknownLanguage(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"tokenize", "--language", "xx", "-i", "-"})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(""))

	if err := root.Execute(); err == nil {
		t.Fatal("Execute error = nil; want unknown language error")
	}
}
