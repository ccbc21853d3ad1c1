package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"genact/config"
)

func TestListMode(t *testing.T) {
	var out bytes.Buffer
	env := testEnv(t, &out)

	if err := (&ListMode{Registry: env.Registry, Out: &out}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("list output = %q, want 2 lines", out.String())
	}
	for i, name := range []string{"cargo", "cc"} {
		fields := strings.Fields(lines[i])
		if len(fields) != 3 || fields[0] != name || fields[2] != "--"+name {
			t.Errorf("line %d = %q, want %s and its signature", i, lines[i], name)
		}
	}
}

func TestDocsModes(t *testing.T) {
	var out bytes.Buffer
	env := testEnv(t, &out)

	cfg := config.New()
	cfg.PrintCompletions = "bash"
	mode, err := Build(cfg, env)
	if err != nil {
		t.Fatal(err)
	}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "complete -F _genact") {
		t.Errorf("bash completion not written: %q", out.String())
	}

	out.Reset()
	cfg = config.New()
	cfg.PrintManpage = true
	mode, err = Build(cfg, env)
	if err != nil {
		t.Fatal(err)
	}
	if err := mode.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "v0.0.0\\-test") {
		t.Errorf("man page missing version: %q", out.String())
	}
}
