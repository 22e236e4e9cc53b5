package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MetalBlockchain/calldata/chain/constants"
	"github.com/MetalBlockchain/metalgo/utils/json"
	"github.com/MetalBlockchain/metalgo/utils/logging"
	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"
)

const (
	Endpoint = "/rpc"

	shutdownTimeout = 5 * time.Second
)

// CreateHandlers registers [service] as a JSON-RPC service named
// constants.AppName, keyed by the endpoint it is served on.
func CreateHandlers(service *Service) (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	server.RegisterInterceptFunc(service.metrics.InterceptRequest)
	server.RegisterAfterFunc(service.metrics.AfterRequest)

	err := server.RegisterService(service, constants.AppName)
	return map[string]http.Handler{
		Endpoint: server,
	}, err
}

func NewMux(handlers map[string]http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for endpoint, handler := range handlers {
		mux.Handle(endpoint, handler)
	}
	return mux
}

// Serve runs an HTTP server on [addr] until [ctx] is cancelled.
func Serve(
	ctx context.Context,
	log logging.Logger,
	addr string,
	readHeaderTimeout time.Duration,
	handlers map[string]http.Handler,
) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewMux(handlers),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("starting API server", zap.String("address", addr))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
