package logger

import (
	log "log/slog"

	"github.com/go-resty/resty/v2"
)

// SetupResty 为出站 HTTP 客户端挂载请求日志
func SetupResty(client *resty.Client, name string) *resty.Client {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		fields := []any{
			log.String("client", name),
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Int("status", resp.StatusCode()),
			log.Duration("latency", resp.Time()),
		}
		if resp.IsError() {
			body := resp.String()
			if len(body) > 500 {
				body = body[:500] + "...[truncated]"
			}
			log.WarnContext(req.Context(), "HTTP_OUT_ERROR", append(fields, log.String("res_body", body))...)
		} else {
			log.InfoContext(req.Context(), "HTTP_OUT", fields...)
		}
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		log.ErrorContext(req.Context(), "HTTP_OUT_FAILED",
			log.String("client", name),
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Any("err", err),
		)
	})
	return client
}
