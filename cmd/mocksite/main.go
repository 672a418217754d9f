// mocksite serves the deadoralive client-service API against an
// in-memory catalog, for developing and demoing the checker without a
// real client site. Seed URLs are passed as arguments.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/deadoralive/checker/internal/clientsite"
	"github.com/deadoralive/checker/internal/domain"
	"github.com/deadoralive/checker/internal/logging"
	"github.com/deadoralive/checker/internal/repo/memory"
)

func main() {
	addr := os.Getenv("MOCKSITE_ADDR")
	if addr == "" {
		addr = "127.0.0.1:5000"
	}
	apikey := os.Getenv("MOCKSITE_APIKEY")
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	logger, err := logging.NewLogger(logDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store := memory.New()
	ctx := context.Background()
	for _, u := range os.Args[1:] {
		r := &domain.Resource{URL: u}
		if err := store.Add(ctx, r); err != nil {
			log.Fatal(err)
		}
		logger.Info("resource_seeded", zap.String("id", string(r.ID)), zap.String("url", u))
	}

	site := clientsite.NewServer(logger, store, apikey)
	logger.Info("mocksite_listen", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, site.Router()); err != nil {
		log.Fatal(err)
	}
}
