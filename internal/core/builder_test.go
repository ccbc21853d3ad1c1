package core

import (
	"bytes"
	"testing"

	"genact/config"
	"genact/internal/registry"
	"genact/util"
)

func testEnv(t *testing.T, out *bytes.Buffer) *Env {
	t.Helper()
	reg, err := registry.New(&stubModule{name: "cargo"}, &stubModule{name: "cc"})
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	return &Env{
		Stdout:   out,
		Logger:   util.NewLogger(0),
		Registry: reg,
		Flags:    config.NewFlagSet("genact", cfg, reg),
		Version:  "0.0.0-test",
	}
}

// TestBuild_Run verifies the default mode runs modules.
func TestBuild_Run(t *testing.T) {
	cfg := config.New()
	mode, err := Build(cfg, testEnv(t, &bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	run, ok := mode.(*RunMode)
	if !ok {
		t.Fatalf("expected *RunMode, got %T", mode)
	}
	if run.Metrics == nil || run.Logger == nil {
		t.Error("run mode should get a collector and a logger")
	}
}

// TestBuild_List verifies --list-modules selects ListMode.
func TestBuild_List(t *testing.T) {
	cfg := config.New()
	cfg.ListModulesAndExit = true

	mode, err := Build(cfg, testEnv(t, &bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mode.(*ListMode); !ok {
		t.Errorf("expected *ListMode, got %T", mode)
	}
}

// TestBuild_Precedence verifies output-only flags win over each other in
// a fixed order.
func TestBuild_Precedence(t *testing.T) {
	cfg := config.New()
	cfg.ListModulesAndExit = true
	cfg.PrintManpage = true

	mode, err := Build(cfg, testEnv(t, &bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mode.(*ManpageMode); !ok {
		t.Errorf("expected *ManpageMode, got %T", mode)
	}

	cfg.PrintCompletions = "zsh"
	mode, err = Build(cfg, testEnv(t, &bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	cm, ok := mode.(*CompletionMode)
	if !ok {
		t.Fatalf("expected *CompletionMode, got %T", mode)
	}
	if cm.Shell != "zsh" {
		t.Errorf("shell = %q", cm.Shell)
	}
}

// TestBuild_Errors verifies missing dependencies are reported.
func TestBuild_Errors(t *testing.T) {
	if _, err := Build(config.New(), nil); err == nil {
		t.Error("expected error without env")
	}

	env := testEnv(t, &bytes.Buffer{})
	env.Flags = nil
	cfg := config.New()
	cfg.PrintManpage = true
	if _, err := Build(cfg, env); err == nil {
		t.Error("expected error for man page without flags")
	}
}
