// Package web is the browser build's view of its host page: where the
// page was loaded from and where output should go.
package web

import "errors"

// ErrNoBrowser is returned outside a browser.
var ErrNoBrowser = errors.New("web: not running in a browser")
