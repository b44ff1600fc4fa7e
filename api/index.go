package handler

import (
	"net/http"
	"pureheart/config"
	"pureheart/di"
	"pureheart/shared/logger"
	"pureheart/transport/http/response"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	service http.Handler
	initErr error
)

// Handler serves the API from a serverless function. The service graph is
// built on the first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		service, _, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("Failed to initialize service")
		}
	})

	if initErr != nil {
		response.WithUnhealthy(w)

		return
	}

	service.ServeHTTP(w, r)
}
