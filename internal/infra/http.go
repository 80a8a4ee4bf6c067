package infra

import "net/http"

// HTTPClient is the client used for statistics API calls. It intentionally carries no
// timeout of its own: the invocation context's deadline is the only bound.
func HTTPClient() *http.Client {
	return &http.Client{}
}
