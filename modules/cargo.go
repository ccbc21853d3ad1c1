package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"genact/internal/session"
)

// Cargo pretends to build a Rust project.
type Cargo struct{}

func (Cargo) Name() string      { return "cargo" }
func (Cargo) Signature() string { return "cargo build --release" }

func (Cargo) Run(ctx context.Context, s *session.Session) error {
	verb := s.Style().Bold(true).Foreground(lipgloss.Color("2"))
	start := time.Now()

	n := s.Between(10, len(crates))
	perm := s.Rand.Perm(len(crates))[:n]
	for _, i := range perm {
		c := crates[i]
		line := fmt.Sprintf("%12s %s v%d.%d.%d", "Compiling", c, s.Between(0, 3), s.Between(0, 30), s.Between(0, 20))
		if err := s.Println(verb.Render(line[:12]) + line[12:]); err != nil {
			return err
		}
		if stop, err := pause(ctx, s, s.Millis(100, 2000)); stop {
			return err
		}
	}

	elapsed := time.Since(start).Seconds()
	return s.Println(verb.Render(fmt.Sprintf("%12s", "Finished")) +
		fmt.Sprintf(" `release` profile [optimized] target(s) in %.2fs", elapsed))
}

var crates = []string{
	"aho-corasick", "anyhow", "autocfg", "bitflags", "bytes", "cc", "cfg-if",
	"clap", "crossbeam-utils", "either", "futures-core", "getrandom", "hashbrown",
	"itoa", "lazy_static", "libc", "log", "memchr", "mio", "num-traits",
	"once_cell", "parking_lot", "pin-project-lite", "proc-macro2", "quote",
	"rand", "regex", "ryu", "serde", "serde_derive", "serde_json", "smallvec",
	"socket2", "syn", "thiserror", "tokio", "tokio-macros", "tracing",
	"unicode-ident", "version_check",
}
