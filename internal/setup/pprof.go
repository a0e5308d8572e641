package setup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"go.uber.org/zap"
)

// debugServer serves the pprof endpoints on a localhost-only listener so
// profiling is never reachable from the public interface.
type debugServer struct {
	srv      *http.Server
	listener net.Listener
	logger   *zap.Logger
}

// newDebugServer binds the debug listener and starts serving in the
// background. The handlers are registered on a private mux rather than
// http.DefaultServeMux to keep them off any other server in the process.
func newDebugServer(port int, logger *zap.Logger) (*debugServer, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	addr := fmt.Sprintf("localhost:%d", port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	server := &debugServer{
		srv: &http.Server{
			Handler:           mux,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: listener,
		logger:   logger.Named("debug"),
	}

	go server.serve(addr)

	return server, nil
}

func (d *debugServer) serve(addr string) {
	d.logger.Info("Serving pprof endpoints", zap.String("address", addr))

	if err := d.srv.Serve(d.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		d.logger.Error("Debug server failed", zap.Error(err))
	}
}

// Shutdown stops the debug server and releases its listener.
func (d *debugServer) Shutdown(ctx context.Context) {
	if err := d.srv.Shutdown(ctx); err != nil {
		d.logger.Error("Failed to shutdown debug server", zap.Error(err))
	}

	d.listener.Close()
}
