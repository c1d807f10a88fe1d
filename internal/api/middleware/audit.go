package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const maxAuditBody = 16384

// replayBody 已读出的前缀 + 剩余原始请求体
type replayBody struct {
	io.Reader
	io.Closer
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxAuditBody {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求与响应，登录请求体与文件上传不落日志
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		reqBody := "[omitted]"
		if auditableBody(c.Request) {
			reqBody = peekBody(c.Request)
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", reqBody),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		resBody := w.body.String()
		if strings.HasSuffix(c.Request.URL.Path, "/login") {
			resBody = "[omitted]"
		}
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", resBody),
		)
	}
}

func auditableBody(r *http.Request) bool {
	if r.Body == nil || r.ContentLength > maxAuditBody {
		return false
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return false
	}
	return !strings.HasSuffix(r.URL.Path, "/login")
}

// peekBody 至多读取 maxAuditBody 字节用于日志，handler 仍能读到完整请求体
func peekBody(r *http.Request) string {
	body := r.Body
	raw, _ := io.ReadAll(io.LimitReader(body, maxAuditBody+1))
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(raw), body), Closer: body}
	if len(raw) > maxAuditBody {
		return string(raw[:maxAuditBody]) + "...[truncated]"
	}
	return string(raw)
}
