//go:build !(js && wasm)

package web

import (
	"errors"
	"os"
	"testing"

	"genact/config"
)

type fakeRegistry []string

func (r fakeRegistry) Names() []string { return r }
func (r fakeRegistry) Has(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}

func TestHref_OutsideBrowser(t *testing.T) {
	if _, err := Href(); !errors.Is(err, ErrNoBrowser) {
		t.Errorf("err = %v, want ErrNoBrowser", err)
	}
	if Output() != os.Stdout {
		t.Error("Output should fall back to stdout")
	}
}

// TestHref_ResolverFallsBack verifies the browser resolver treats a
// missing location as an empty URL and yields the defaults.
func TestHref_ResolverFallsBack(t *testing.T) {
	reg := fakeRegistry{"cargo", "cc"}
	res, err := (&config.URLResolver{Href: Href}).Resolve(reg)
	if err != nil {
		t.Fatal(err)
	}
	base := res.Base()
	if len(base.Modules) != 2 || base.SpeedFactor != config.DefaultSpeedFactor || base.InstantPrintLines != 0 {
		t.Errorf("defaults = %+v", base)
	}
	if l := res.Limits(); l.ExitAfterTime != nil || l.ExitAfterModules != nil {
		t.Errorf("browser config must have no limits: %+v", l)
	}
}
