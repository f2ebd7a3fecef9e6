package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error API 错误。后端错误体是动态 JSON，解析为
// 字段错误表或纯 detail 消息两种形态之一，不信任其他结构。
type Error struct {
	Status int
	Detail string
	Fields map[string][]string
}

// Error 拼接为单条可读消息：字段错误逐字段串联，
// 否则回退到 detail，再回退到状态文本。
func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for key := range e.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], ", ")))
		}
		return strings.Join(parts, "; ")
	}
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API error: %s", http.StatusText(e.Status))
}

// IsUnauthorized 是否为 401 认证失败
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// parseError 从非 2xx 响应体构造 Error。体不是 JSON 或为空时
// 只保留状态码。
func parseError(status int, body []byte) *Error {
	apiErr := &Error{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	fields := make(map[string][]string)
	for key, value := range raw {
		messages := parseFieldMessages(value)
		if len(messages) == 0 {
			continue
		}
		if key == "detail" || key == "message" || key == "error" {
			if apiErr.Detail == "" {
				apiErr.Detail = strings.Join(messages, ", ")
			}
			continue
		}
		fields[key] = messages
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}

// parseFieldMessages 字段值可能是字符串或字符串数组
func parseFieldMessages(value json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(value, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return nil
		}
		return []string{single}
	}
	var many []string
	if err := json.Unmarshal(value, &many); err == nil {
		out := make([]string, 0, len(many))
		for _, m := range many {
			if strings.TrimSpace(m) != "" {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
