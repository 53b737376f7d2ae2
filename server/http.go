package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type HTTP struct{ srv *http.Server }

func StartHTTPServer(host string, port int, handler http.Handler) *HTTP {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return &HTTP{srv: srv}
}

func (h *HTTP) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.srv.Shutdown(ctx)
}
