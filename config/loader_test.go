package config

import (
	"slices"
	"testing"
	"time"

	gerrors "genact/internal/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	r := &ArgsResolver{Getenv: envMap(map[string]string{
		"GENACT_MODULES":             "cc, cargo",
		"GENACT_SPEED_FACTOR":        "2.5",
		"GENACT_INSTANT_PRINT_LINES": "7",
		"GENACT_EXIT_AFTER_TIME":     "1min",
		"GENACT_EXIT_AFTER_MODULES":  "4",
		"GENACT_VERBOSE":             "3",
	})}

	cfg, err := r.Config(testRegistry)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Modules, []string{"cc", "cargo"}) {
		t.Errorf("Modules = %v", cfg.Modules)
	}
	if cfg.SpeedFactor != 2.5 {
		t.Errorf("SpeedFactor = %v", cfg.SpeedFactor)
	}
	if cfg.InstantPrintLines != 7 {
		t.Errorf("InstantPrintLines = %d", cfg.InstantPrintLines)
	}
	if cfg.ExitAfterTime == nil || *cfg.ExitAfterTime != time.Minute {
		t.Errorf("ExitAfterTime = %v", cfg.ExitAfterTime)
	}
	if cfg.ExitAfterModules == nil || *cfg.ExitAfterModules != 4 {
		t.Errorf("ExitAfterModules = %v", cfg.ExitAfterModules)
	}
	if cfg.Verbose != 3 {
		t.Errorf("Verbose = %d", cfg.Verbose)
	}
}

func TestLoadFromEnv_FlagsWin(t *testing.T) {
	r := &ArgsResolver{
		Args: []string{"-s", "3", "-m", "bootlog"},
		Getenv: envMap(map[string]string{
			"GENACT_SPEED_FACTOR": "9",
			"GENACT_MODULES":      "cc",
		}),
	}
	cfg, err := r.Config(testRegistry)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SpeedFactor != 3 {
		t.Errorf("SpeedFactor = %v, flag should win over env", cfg.SpeedFactor)
	}
	if !slices.Equal(cfg.Modules, []string{"bootlog"}) {
		t.Errorf("Modules = %v, flag should replace env", cfg.Modules)
	}
}

func TestLoadFromEnv_InvalidNamesVariable(t *testing.T) {
	tests := []struct {
		key, value string
		want       error
	}{
		{"GENACT_SPEED_FACTOR", "0.001", gerrors.ErrOutOfRange},
		{"GENACT_EXIT_AFTER_MODULES", "0", gerrors.ErrOutOfRange},
		{"GENACT_MODULES", "bogus", gerrors.ErrUnknownModule},
		{"GENACT_EXIT_AFTER_TIME", "later", gerrors.ErrMalformed},
		{"GENACT_VERBOSE", "loud", gerrors.ErrMalformed},
		{"GENACT_VERBOSE", "-1", gerrors.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			r := &ArgsResolver{Getenv: envMap(map[string]string{tt.key: tt.value})}
			cfg, err := r.Config(testRegistry)
			if cfg != nil {
				t.Error("no configuration may be returned on error")
			}
			if !gerrors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var ce *gerrors.ConfigError
			if !gerrors.As(err, &ce) || ce.Field != tt.key {
				t.Errorf("error should be attributed to %s, got %v", tt.key, err)
			}
		})
	}
}

func TestLoadFromEnv_EmptyIgnored(t *testing.T) {
	r := &ArgsResolver{Getenv: envMap(map[string]string{"GENACT_SPEED_FACTOR": "  "})}
	cfg, err := r.Config(testRegistry)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SpeedFactor != DefaultSpeedFactor {
		t.Errorf("SpeedFactor = %v, want default", cfg.SpeedFactor)
	}
}
