package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "golox")
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	path := writeTemp(t, dir, "golox.yaml", "log_level: debug\ncolor: false\nprompt: \"lox> \"\ndump_ast: true\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.Color || cfg.Prompt != "lox> " || !cfg.DumpAST {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.HistoryFile != defaultConfig().HistoryFile {
		t.Errorf("unset keys should keep their default, got %q", cfg.HistoryFile)
	}

	empty := writeTemp(t, dir, "empty.yaml", "")
	cfg, err = loadConfig(empty)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() {
		t.Errorf("an empty file should give the defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"level.yaml", "log_level: loud\n", "not a valid logrus Level"},
		{"unknown.yaml", "colour: true\n", "field colour not found"},
		{"broken.yaml", "prompt: [\n", "config: parse"},
	}
	for _, test := range tests {
		path := writeTemp(t, dir, test.name, test.content)
		if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), test.msg) {
			t.Errorf("%s: expected an error containing %q, got %v", test.name, test.msg, err)
		}
	}

	if _, err := loadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestRun(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	cfg := writeTemp(t, dir, "golox.yaml", "color: false\n")
	ok := writeTemp(t, dir, "ok.lox", "print 1;")
	compile := writeTemp(t, dir, "compile.lox", "print ;")
	runtime := writeTemp(t, dir, "runtime.lox", "print -nil;")

	tests := []struct {
		args []string
		code int
	}{
		{[]string{"-config", cfg, ok}, 0},
		{[]string{"-config", cfg, "-ast", ok}, 0},
		{[]string{"-config", cfg, compile}, 64},
		{[]string{"-config", cfg, "-ast", compile}, 64},
		{[]string{"-config", cfg, runtime}, 70},
		{[]string{"-config", cfg, filepath.Join(dir, "missing.lox")}, 74},
		{[]string{"-config", cfg, ok, ok}, 64},
		{[]string{"-config", filepath.Join(dir, "missing.yaml"), ok}, 64},
		{[]string{"-unknown"}, 64},
	}
	for _, test := range tests {
		if code := run(test.args); code != test.code {
			t.Errorf("%v: exit code should be %d instead of %d", test.args, test.code, code)
		}
	}
}
