package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{"cssinline"}, args...))
	return out.String(), err
}

func TestRunInlinesFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mail.html")
	doc := `<html><head><style>h1 { color: red }</style></head><body><h1>Hi</h1></body></html>`
	if err := os.WriteFile(fname, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, fname)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("output = %s", out)
	if !strings.Contains(out, `<h1 style="color: red">Hi</h1>`) {
		t.Errorf("expected inlined heading, have %s", out)
	}
	if strings.Contains(out, "<style>") {
		t.Errorf("expected <style> to be removed")
	}
}

func TestRunUsage(t *testing.T) {
	if _, err := runApp(t); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error for missing argument, have %v", err)
	}
	if _, err := runApp(t, "a.html", "b.html"); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error for too many arguments, have %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	_, err := runApp(t, filepath.Join(t.TempDir(), "nope.html"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected file-not-found error, have %v", err)
	}
}

func TestConfig(t *testing.T) {
	conf := config{}
	conf.InitDefaults()
	if conf.GetString("tracing.adapter") != "go" {
		t.Errorf("expected tracing adapter 'go', have %q", conf.GetString("tracing.adapter"))
	}
	conf["n"] = "42"
	conf["b"] = "TRUE"
	if conf.GetInt("n") != 42 || !conf.GetBool("b") || conf.IsSet("x") {
		t.Errorf("unexpected config values %v", conf)
	}
}
