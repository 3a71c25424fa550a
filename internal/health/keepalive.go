package health

import (
	"context"
	"log"
	"net/http"
	"time"
)

// KeepAlive issues a GET against url on every tick until ctx is cancelled.
// Hosting platforms that idle quiet processes treat the traffic as activity.
// A no-op when url is empty.
func KeepAlive(ctx context.Context, url string, interval time.Duration) {
	if url == "" {
		return
	}

	log.Printf("[INFO] Keepalive pinger running every %s against %s", interval, url)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			resp, err := http.Get(url)
			if err != nil {
				log.Printf("[WARN] Keepalive ping failed: %v", err)
				continue
			}
			resp.Body.Close()
		}
	}
}
