package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/nlnwa/whatwg-url/url"
)

// URLResolver resolves a WebConfig from the query string of the page the
// browser build runs on.  It is the fail-soft strategy: there is nowhere
// to report errors, so bad values fall back to defaults and unknown
// module names are dropped.
type URLResolver struct {
	// Href returns the current page location.
	Href func() (string, error)
}

// Policy reports FailSoft.
func (r *URLResolver) Policy() Policy { return FailSoft }

// Resolve implements Resolver.  It never returns an error.
func (r *URLResolver) Resolve(reg Registry) (Resolved, error) {
	var href string
	if r.Href != nil {
		if h, err := r.Href(); err == nil {
			href = h
		}
	}
	return FromURL(href, reg), nil
}

// FromURL builds a WebConfig from a page URL.  Recognised parameters:
//
//	module               repeatable; names outside reg are ignored
//	speed-factor         first occurrence; default 1
//	instant-print-lines  first occurrence; default 0
func FromURL(rawURL string, reg Registry) *WebConfig {
	cfg := &WebConfig{Settings: Settings{
		SpeedFactor:       DefaultSpeedFactor,
		InstantPrintLines: DefaultInstantPrintLines,
	}}

	if u, err := url.Parse(rawURL); err == nil {
		params := u.SearchParams()

		for _, name := range params.GetAll(QueryModule) {
			if reg.Has(name) && !slices.Contains(cfg.Modules, name) {
				cfg.Modules = append(cfg.Modules, name)
			}
		}
		if params.Has(QuerySpeedFactor) {
			cfg.SpeedFactor = querySpeedFactor(params.Get(QuerySpeedFactor))
		}
		if params.Has(QueryInstantPrintLines) {
			cfg.InstantPrintLines = queryUint32(params.Get(QueryInstantPrintLines))
		}
	}

	cfg.Modules = defaultModules(cfg.Modules, reg)
	return cfg
}

func querySpeedFactor(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validSpeedFactor(f) {
		return DefaultSpeedFactor
	}
	return f
}

func queryUint32(s string) uint32 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return DefaultInstantPrintLines
	}
	return uint32(n)
}
