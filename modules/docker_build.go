package modules

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"genact/internal/session"
)

// DockerBuild pretends to build a container image.
type DockerBuild struct{}

func (DockerBuild) Name() string      { return "docker_build" }
func (DockerBuild) Signature() string { return "docker build -t app ." }

func (DockerBuild) Run(ctx context.Context, s *session.Session) error {
	base := session.Pick(s, dockerBases)
	steps := append([]string{"FROM " + base}, pickSome(s, dockerSteps, 3, len(dockerSteps))...)

	for i, step := range steps {
		if err := s.Printf("Step %d/%d : %s", i+1, len(steps), step); err != nil {
			return err
		}
		if i > 0 && s.Chance(0.3) {
			if err := s.Println(" ---> Using cache"); err != nil {
				return err
			}
		} else if i > 0 {
			if err := s.Printf(" ---> Running in %s", shortID()); err != nil {
				return err
			}
			if stop, err := pause(ctx, s, s.Millis(300, 3000)); stop {
				return err
			}
			if err := s.Printf("Removing intermediate container %s", shortID()); err != nil {
				return err
			}
		}
		if err := s.Printf(" ---> %s", shortID()); err != nil {
			return err
		}
		if stop, err := pause(ctx, s, s.Millis(50, 400)); stop {
			return err
		}
	}

	if err := s.Printf("Successfully built %s", shortID()); err != nil {
		return err
	}
	return s.Printf("Successfully tagged %s:latest", session.Pick(s, dockerTags))
}

// shortID returns a 12-digit hex id in the style docker prints.
func shortID() string {
	return strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:12]
}

var dockerBases = []string{
	"alpine:3.19", "debian:bookworm-slim", "golang:1.22-alpine", "node:20-alpine",
	"python:3.12-slim", "ubuntu:22.04", "rust:1.77",
}

var dockerSteps = []string{
	"WORKDIR /app",
	"COPY go.mod go.sum ./",
	"RUN go mod download",
	"COPY . .",
	"RUN apk add --no-cache ca-certificates tzdata",
	"RUN npm ci --omit=dev",
	"RUN pip install --no-cache-dir -r requirements.txt",
	"ENV APP_ENV=production",
	"EXPOSE 8080",
	"USER 65532:65532",
	`ENTRYPOINT ["/app/server"]`,
}

var dockerTags = []string{"api", "worker", "frontend", "gateway", "registry.local/app"}
