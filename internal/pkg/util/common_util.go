package util

import (
	"strings"
)

// OptionalString 去除首尾空白，空串视为未填写
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ContainsFold 大小写不敏感的子串匹配
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
