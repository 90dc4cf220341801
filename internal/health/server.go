package health

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const livenessMessage = "THOR DOWNLOADER is running!"

// NewRouter builds the liveness router: a single unauthenticated GET /.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, livenessMessage)
	})
	return r
}

// Run serves the liveness endpoint on the given port. It blocks, so
// callers normally run it on its own goroutine.
func Run(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[HEALTH] Listening on %s", addr)
	return http.ListenAndServe(addr, NewRouter())
}
