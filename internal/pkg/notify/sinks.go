package notify

import (
	"Brightline/internal/api/config"
	"Brightline/internal/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Sink 一个外部通知渠道
type Sink interface {
	Name() string
	Send(ctx context.Context, sub *Submission) error
}

// PayloadFunc 按渠道格式构造请求体
type PayloadFunc func(sub *Submission) any

// webhookSink 以 JSON POST 投递的通用渠道
type webhookSink struct {
	name    string
	url     string
	headers map[string]string
	client  *resty.Client
	payload PayloadFunc
}

func NewWebhookSink(name, url string, client *resty.Client, payload PayloadFunc) Sink {
	return &webhookSink{
		name:    name,
		url:     url,
		client:  client,
		payload: payload,
	}
}

func (s *webhookSink) Name() string {
	return s.name
}

func (s *webhookSink) Send(ctx context.Context, sub *Submission) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(s.headers).
		SetBody(s.payload(sub)).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", s.name, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s responded %s", s.name, resp.Status())
	}
	return nil
}

// NewHTTPClient 所有渠道共用的出站客户端
func NewHTTPClient(timeout time.Duration) *resty.Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Brightline-Notifier/1.0").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)
	return logger.SetupResty(client, "notify")
}

// SinksFromConfig 只创建配置了目标地址的渠道
func SinksFromConfig(cfg config.NotifyConfig, client *resty.Client) []Sink {
	var sinks []Sink

	if cfg.EmailWebhookURL != "" {
		to := cfg.AdminEmail
		sinks = append(sinks, NewWebhookSink("email", cfg.EmailWebhookURL, client, func(sub *Submission) any {
			return map[string]any{
				"to":      to,
				"subject": Subject(sub),
				"text":    TextBlock(sub),
				"html":    HTMLBlock(sub),
			}
		}))
	}

	if cfg.ResendAPIKey != "" {
		to := cfg.EmailTo
		if to == "" {
			to = cfg.AdminEmail
		}
		if to != "" && cfg.EmailFrom != "" {
			from := cfg.EmailFrom
			sinks = append(sinks, &webhookSink{
				name:    "resend",
				url:     cfg.ResendAPIURL,
				headers: map[string]string{"Authorization": "Bearer " + cfg.ResendAPIKey},
				client:  client,
				payload: func(sub *Submission) any {
					return map[string]any{
						"from":     from,
						"to":       []string{to},
						"reply_to": sub.Email,
						"subject":  Subject(sub),
						"html":     HTMLBlock(sub),
						"text":     TextBlock(sub),
					}
				},
			})
		}
	}

	if cfg.SlackWebhookURL != "" {
		sinks = append(sinks, NewWebhookSink("slack", cfg.SlackWebhookURL, client, func(sub *Submission) any {
			return map[string]string{"text": SlackText(sub)}
		}))
	}

	if cfg.DiscordWebhookURL != "" {
		sinks = append(sinks, NewWebhookSink("discord", cfg.DiscordWebhookURL, client, func(sub *Submission) any {
			return DiscordMessage(sub)
		}))
	}

	if cfg.ZapierWebhookURL != "" {
		sinks = append(sinks, NewWebhookSink("zapier", cfg.ZapierWebhookURL, client, automationPayload))
	}

	if cfg.MakeWebhookURL != "" {
		sinks = append(sinks, NewWebhookSink("make", cfg.MakeWebhookURL, client, automationPayload))
	}

	if cfg.GoogleScriptURL != "" {
		sinks = append(sinks, NewWebhookSink("sheets", cfg.GoogleScriptURL, client, func(sub *Submission) any {
			return map[string]any{
				"sheet": SheetName(sub),
				"row":   SheetRow(sub),
			}
		}))
	}

	return sinks
}

// automationPayload Zapier / Make 直接接收原始记录
func automationPayload(sub *Submission) any {
	return struct {
		*Submission
		SubmittedAt string `json:"submitted_at"`
	}{
		Submission:  sub,
		SubmittedAt: sub.CreatedAt.UTC().Format(time.RFC3339),
	}
}
