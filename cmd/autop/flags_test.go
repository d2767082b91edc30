package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	var usage bytes.Buffer
	f, files, err := parseFlags([]string{
		"-c", "site", "-s", "code", "--shortcode", "raw",
		"--no-br", "--excerpt", "-o", "out", "-w", "3", "-v",
		"a.txt", "b.txt",
	}, &usage)
	if err != nil {
		t.Fatalf("parseFlags() unexpected error: %v", err)
	}

	if f.config != "site" {
		t.Errorf("config = %q, want site", f.config)
	}
	if !reflect.DeepEqual(f.shortcodes, []string{"code", "raw"}) {
		t.Errorf("shortcodes = %v, want [code raw]", f.shortcodes)
	}
	if !f.noBreaks || !f.excerpt || !f.verbose || f.quiet {
		t.Errorf("bool flags = %+v", f)
	}
	if f.outputDir != "out" || f.workers != 3 {
		t.Errorf("outputDir = %q, workers = %d", f.outputDir, f.workers)
	}
	if !reflect.DeepEqual(files, []string{"a.txt", "b.txt"}) {
		t.Errorf("files = %v, want [a.txt b.txt]", files)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	f, files, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() unexpected error: %v", err)
	}
	if len(files) != 0 || f.noBreaks || f.excerpt || f.workers != 0 || f.version {
		t.Errorf("unexpected defaults %+v, files %v", f, files)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"bad int", []string{"-w", "many"}},
		{"quiet and verbose", []string{"-q", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseFlags(tt.args, &bytes.Buffer{}); err == nil {
				t.Error("parseFlags() expected error")
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var usage bytes.Buffer
	_, _, err := parseFlags([]string{"--help"}, &usage)
	if !isHelp(err) {
		t.Fatalf("parseFlags(--help) error = %v, want help", err)
	}
	for _, want := range []string{"Usage: autop", "--shortcode", "--no-br", "Exit codes"} {
		if !strings.Contains(usage.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
