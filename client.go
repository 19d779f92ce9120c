package glide

import (
	"errors"

	"go.uber.org/zap"

	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/context"
	"github.com/jamesx-improving/valkey-glide-go/engine"
	"github.com/jamesx-improving/valkey-glide-go/metrics"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

var idgen = GetClientID()

// Client is one handle over the glide command core. It owns exclusive
// access to one underlying connection context; the core may be
// multi-threaded internally but presents a blocking call boundary, so a
// handle must not be shared between goroutines without external
// coordination. All per-call buffers are call-scoped.
type Client struct {
	cliCtx *context.ClientContext
	exec   engine.Executor
}

// New creates a client handle over an established core executor
func New(exec engine.Executor) *Client {
	logVersionInfo()
	cliCtx := context.NewClientContext(idgen(), GenerateTraceID())
	zap.L().Info("client handle created",
		zap.Int64("clientid", cliCtx.ID),
		zap.String("traceid", cliCtx.TraceID))
	return &Client{cliCtx: cliCtx, exec: exec}
}

// Close releases the underlying core handle
func (c *Client) Close() error {
	return c.exec.Close()
}

// dispatch validates the vector arity, runs one synchronous engine call
// and normalizes error replies. Once an error is detected no further
// engine interaction happens for the call.
func (c *Client) dispatch(t command.RequestType, args [][]byte) (resp.Value, error) {
	v, err := c.execOne(t, args)
	if err != nil {
		return resp.NullValue(), err
	}
	if msg, e := v.ErrMsg(); e == nil {
		metrics.GetMetrics().CommandFailuresCounterVec.WithLabelValues(t.String()).Inc()
		return resp.NullValue(), errors.New(msg)
	}
	return v, nil
}

// noteMismatch counts a soft decode failure. The typed-empty result
// still reaches the caller, mismatches only surface in the error value.
func (c *Client) noteMismatch(t command.RequestType, err error) {
	if errors.Is(err, command.ErrDecodeMismatch) {
		metrics.GetMetrics().DecodeMismatchCounterVec.WithLabelValues(t.String()).Inc()
		zap.L().Debug("reply shape mismatch",
			zap.Int64("clientid", c.cliCtx.ID),
			zap.String("command", t.String()),
			zap.String("traceid", c.cliCtx.TraceID))
	}
}
