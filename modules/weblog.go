package modules

import (
	"context"
	"fmt"
	"time"

	"genact/internal/session"
)

// Weblog tails a web server access log in combined log format.
type Weblog struct{}

func (Weblog) Name() string      { return "weblog" }
func (Weblog) Signature() string { return "tail -f /var/log/nginx/access.log" }

const combinedTime = "02/Jan/2006:15:04:05 -0700"

func (Weblog) Run(ctx context.Context, s *session.Session) error {
	n := s.Between(50, 300)
	now := time.Now()

	for i := 0; i < n; i++ {
		now = now.Add(s.Millis(0, 1500))
		line := fmt.Sprintf(`%d.%d.%d.%d - - [%s] "%s %s HTTP/1.1" %d %d "-" "%s"`,
			s.Between(1, 223), s.Between(0, 255), s.Between(0, 255), s.Between(1, 254),
			now.Format(combinedTime),
			session.Pick(s, httpMethods), session.Pick(s, httpPaths),
			session.Pick(s, httpStatuses), s.Between(0, 50000),
			session.Pick(s, userAgents))
		if err := s.Println(line); err != nil {
			return err
		}
		if stop, err := pause(ctx, s, s.Millis(10, 500)); stop {
			return err
		}
	}
	return nil
}

var httpMethods = []string{"GET", "GET", "GET", "GET", "POST", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}

var httpPaths = []string{
	"/", "/index.html", "/api/v1/users", "/api/v1/orders?page=2", "/login",
	"/static/js/app.3f9a1c.js", "/static/css/main.css", "/favicon.ico",
	"/healthz", "/metrics", "/robots.txt", "/api/v1/session", "/wp-login.php",
}

var httpStatuses = []int{200, 200, 200, 200, 200, 201, 204, 301, 304, 304, 400, 401, 403, 404, 500, 502}

var userAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15",
	"curl/8.5.0",
	"Go-http-client/1.1",
	"Prometheus/2.51.1",
	"Googlebot/2.1 (+http://www.google.com/bot.html)",
}
