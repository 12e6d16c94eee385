package handler

import (
	"net/http"
	"stay/config"
	"stay/di"
	"stay/shared/logger"
	"sync"
)

var (
	once    sync.Once
	handler http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		server, _ := di.InitializeService()
		handler = server.Adaptor()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
