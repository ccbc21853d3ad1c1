package modules

import (
	"context"
	"fmt"
	"strings"

	"genact/internal/session"
)

// CC pretends to compile a C project with make.
type CC struct{}

func (CC) Name() string      { return "cc" }
func (CC) Signature() string { return "make -j" }

func (CC) Run(ctx context.Context, s *session.Session) error {
	compiler := session.Pick(s, []string{"gcc", "clang", "cc"})
	project := session.Pick(s, ccProjects)
	flags := strings.Join(pickSome(s, ccFlags, 2, 5), " ")

	n := s.Between(8, len(ccSources))
	objects := make([]string, 0, n)
	for _, i := range s.Rand.Perm(len(ccSources))[:n] {
		src := ccSources[i]
		obj := strings.TrimSuffix(src, ".c") + ".o"
		objects = append(objects, obj)

		if err := s.Printf("%s -c %s -I include -o build/%s src/%s", compiler, flags, obj, src); err != nil {
			return err
		}
		if s.Chance(0.05) {
			if err := s.Printf("src/%s:%d:%d: warning: unused variable 'tmp' [-Wunused-variable]",
				src, s.Between(10, 900), s.Between(2, 40)); err != nil {
				return err
			}
		}
		if stop, err := pause(ctx, s, s.Millis(50, 600)); stop {
			return err
		}
	}

	link := fmt.Sprintf("%s -o %s build/%s -lm -lpthread", compiler, project, strings.Join(objects, " build/"))
	if err := s.Println(link); err != nil {
		return err
	}
	_, err := pause(ctx, s, s.Millis(300, 1500))
	return err
}

// pickSome returns between lo and hi distinct elements of xs.
func pickSome(s *session.Session, xs []string, lo, hi int) []string {
	n := s.Between(lo, min(hi, len(xs)))
	out := make([]string, 0, n)
	for _, i := range s.Rand.Perm(len(xs))[:n] {
		out = append(out, xs[i])
	}
	return out
}

var ccProjects = []string{"libfoo", "netd", "tinyhttpd", "zlib", "sqlite3", "mkimage"}

var ccFlags = []string{"-O2", "-g", "-Wall", "-Wextra", "-pedantic", "-fPIC", "-std=c11", "-DNDEBUG", "-pthread"}

var ccSources = []string{
	"alloc.c", "buffer.c", "config.c", "crc32.c", "deflate.c", "event.c",
	"hash.c", "http.c", "inflate.c", "list.c", "log.c", "main.c", "net.c",
	"parser.c", "pool.c", "queue.c", "signal.c", "socket.c", "strbuf.c",
	"thread.c", "timer.c", "trees.c", "util.c", "vector.c",
}
