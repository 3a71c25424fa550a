// Package health keeps the hosting platform happy: a liveness HTTP endpoint
// for the external uptime monitor and an optional outbound keepalive pinger.
// Neither shares any state with command dispatch.
package health

import (
	"context"
	"fmt"
	"log"
	"net/http"
)

// Handler returns the liveness routes: 200 on the root path, 204 on the
// favicon path the monitors tend to probe.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "Bot is running!")
	})
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// Run starts the liveness server and blocks until it exits or ctx is
// cancelled; run in a goroutine. A listener error is logged, not fatal — the
// bot keeps serving commands without its uptime endpoint.
func Run(ctx context.Context, addr string) {
	srv := &http.Server{Addr: addr, Handler: Handler()}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down health server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Health server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Health server exited: %v", err)
	}
}
