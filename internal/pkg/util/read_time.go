package util

import (
	"Brightline/internal/pkg/consts"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText 提取 HTML 正文中的可见文本
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}

// ReadTime 按每分钟 200 词估算阅读时长，至少 1 分钟
func ReadTime(html string) string {
	words := len(strings.Fields(PlainText(html)))
	minutes := (words + consts.WordsPerMinute - 1) / consts.WordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
