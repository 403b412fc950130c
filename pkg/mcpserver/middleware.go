package mcpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// loggingMiddleware logs every received MCP request with a generated
// request id and handling latency.
func loggingMiddleware(log zerolog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			reqLog := log.With().
				Str("method", method).
				Str("request_id", uuid.NewString()).
				Logger()
			result, err := next(ctx, method, req)
			evt := reqLog.Debug()
			if err != nil {
				evt = reqLog.Warn().Err(err)
			}
			evt.Dur("duration", time.Since(start)).Msg("Handled MCP request")
			return result, err
		}
	}
}
