package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jamesx-improving/valkey-glide-go/conf"
)

// Server exposes the binding's operational endpoints over HTTP: the
// prometheus scrape path, the log-level handle and pprof, all hanging
// off the default mux. It satisfies the server surface continuous
// expects, so the binary hosts it next to the compat harness.
type Server struct {
	statusServer *http.Server
	addr         string
}

// NewServer builds the status server from its config section
func NewServer(config *conf.Status) *Server {
	return &Server{
		addr:         config.Listen,
		statusServer: &http.Server{Handler: http.DefaultServeMux},
	}
}

// Serve accepts connections on lis until the server is stopped
func (s *Server) Serve(lis net.Listener) error {
	zap.L().Info("status server start", zap.String("addr", s.addr))
	return s.statusServer.Serve(lis)
}

// Stop closes the listener and all active connections
func (s *Server) Stop() error {
	if s.statusServer == nil {
		return nil
	}
	if err := s.statusServer.Close(); err != nil {
		zap.L().Error("status server stop failed", zap.String("addr", s.addr), zap.Error(err))
		return err
	}
	zap.L().Info("status server stopped", zap.String("addr", s.addr))
	return nil
}

// GracefulStop drains in-flight scrapes before shutting down, bounded
// by a short deadline
func (s *Server) GracefulStop() error {
	if s.statusServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.statusServer.Shutdown(ctx); err != nil {
		zap.L().Error("status server graceful stop failed", zap.String("addr", s.addr), zap.Error(err))
		return err
	}
	zap.L().Info("status server stopped", zap.String("addr", s.addr))
	return nil
}

// ListenAndServe binds addr and serves until stopped
func (s *Server) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		zap.L().Error("status server listen failed", zap.String("addr", addr), zap.Error(err))
		return err
	}
	return s.Serve(lis)
}
