package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestLanguagesCommand_ListsCodes(t *testing.T) {
	var out bytes.Buffer

	root := NewRootCmd()
	root.SetArgs([]string{"languages"})
	root.SetOut(&out)
	root.SetErr(new(bytes.Buffer))

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	lines := strings.Fields(out.String())
	seen := make(map[string]bool, len(lines))
	for _, code := range lines {
		seen[code] = true
	}

	for _, code := range []string{"en", "fr", "de", "so", "tdt", "zh"} {
		if !seen[code] {
			t.Errorf("code %q missing from output", code)
		}
	}
}
