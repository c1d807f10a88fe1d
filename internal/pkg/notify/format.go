package notify

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const (
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
	NoMessage    = "No message"

	ContactTitle = "New Contact Form Submission"
	BookingTitle = "New Booking Request"

	// Discord embed 颜色
	ContactColor = 0x22c55e
	BookingColor = 0x3b82f6
)

// Field 一行展示字段
type Field struct {
	Label string
	Value string
}

// Title 通知标题
func Title(s *Submission) string {
	if s.IsBooking() {
		return BookingTitle
	}
	return ContactTitle
}

// Subject 邮件主题
func Subject(s *Submission) string {
	return fmt.Sprintf("%s from %s", Title(s), s.Name)
}

// Fields 固定顺序的字段列表，缺省字段使用统一的占位文案
func Fields(s *Submission) []Field {
	fields := []Field{
		{Label: "Name", Value: s.Name},
		{Label: "Email", Value: s.Email},
		{Label: "Phone", Value: orDefault(s.Phone, NotProvided)},
		{Label: "Company", Value: orDefault(s.Company, NotProvided)},
	}
	if s.IsBooking() {
		fields = append(fields,
			Field{Label: "Date", Value: s.Date},
			Field{Label: "Time", Value: s.Time},
		)
	} else {
		fields = append(fields,
			Field{Label: "Service", Value: orDefault(s.Service, NotSpecified)},
			Field{Label: "Budget", Value: orDefault(s.Budget, NotSpecified)},
		)
	}
	return append(fields, Field{Label: "Message", Value: orDefault(s.Message, NoMessage)})
}

// TextBlock 纯文本格式 (邮件 / 通用 webhook)
func TextBlock(s *Submission) string {
	var b strings.Builder
	b.WriteString(Title(s))
	b.WriteString("\n\n")
	for _, f := range Fields(s) {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SlackText Slack mrkdwn 格式
func SlackText(s *Submission) string {
	var b strings.Builder
	b.WriteString("*" + Title(s) + "*\n\n")
	for _, f := range Fields(s) {
		b.WriteString("*" + f.Label + ":* " + f.Value + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// HTMLBlock 邮件 HTML 正文
func HTMLBlock(s *Submission) string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(Title(s)) + "</h2>")
	for _, f := range Fields(s) {
		b.WriteString("<p><strong>" + f.Label + ":</strong> " + html.EscapeString(f.Value) + "</p>")
	}
	return b.String()
}

type DiscordPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

type DiscordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []DiscordEmbedField `json:"fields"`
	Timestamp string              `json:"timestamp,omitempty"`
}

type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// DiscordMessage 联系表单绿色、预约蓝色
func DiscordMessage(s *Submission) *DiscordPayload {
	color := ContactColor
	if s.IsBooking() {
		color = BookingColor
	}

	fields := Fields(s)
	embedFields := make([]DiscordEmbedField, 0, len(fields))
	for _, f := range fields {
		embedFields = append(embedFields, DiscordEmbedField{
			Name:   f.Label,
			Value:  f.Value,
			Inline: f.Label != "Message",
		})
	}

	embed := DiscordEmbed{
		Title:  Title(s),
		Color:  color,
		Fields: embedFields,
	}
	if !s.CreatedAt.IsZero() {
		embed.Timestamp = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return &DiscordPayload{Embeds: []DiscordEmbed{embed}}
}

// SheetRow Google Sheets 备份行，列顺序固定
func SheetRow(s *Submission) []string {
	ts := s.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	row := []string{ts.UTC().Format(time.RFC3339), s.Name, s.Email, s.Phone, s.Company}
	if s.IsBooking() {
		return append(row, s.Date, s.Time, s.Message, "scheduled")
	}
	return append(row, s.Service, s.Budget, s.Message, "new")
}

// SheetName 备份表名
func SheetName(s *Submission) string {
	if s.IsBooking() {
		return "Bookings"
	}
	return "Contacts"
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
