package http

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/chartview/api/http/handler"
)

type Server struct {
	srv http.Server
}

func NewServer(
	viewHandler *handler.ViewHandler,
	candleHandler *handler.CandleHandler,
	port int,
) *Server {
	router := mux.NewRouter()
	router.HandleFunc("/api/view", viewHandler.GetViewState).Methods(http.MethodGet)
	router.HandleFunc("/api/view/reset", viewHandler.ResetView).Methods(http.MethodPost)
	router.HandleFunc("/api/view/symbol", viewHandler.SetSymbol).Methods(http.MethodPut)
	router.HandleFunc("/api/candles", candleHandler.GetCandleChart).Methods(http.MethodGet)

	return &Server{
		srv: http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

func (s *Server) Start(ctx context.Context) {
	s.srv.BaseContext = func(listener net.Listener) context.Context {
		return ctx
	}
	go func() {
		log.Info("[*] Http server is started")
		for err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed; {
			log.Info(err)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Info("shutdown")
	}
}
