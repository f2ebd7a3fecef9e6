package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nexus-commerce/storefront/internal/logger"
)

const refreshPath = "/auth/token/refresh/"

// expiryLeeway 发请求前判定 access token 是否即将过期的提前量
const expiryLeeway = 30 * time.Second

// TokenSource 凭证读写接口，由 auth.Credentials 实现
type TokenSource interface {
	Access() string
	Refresh() string
	AccessExpired(leeway time.Duration) bool
	Save(access, refresh string) error
	Clear() error
}

// Client REST API 客户端。401 时自动刷新凭证并重试一次（见 do）。
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New 创建 API 客户端。tokens 可为 nil（纯游客模式）。
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out, nil)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out, nil)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do 发送一次请求。体序列化为 JSON，响应解析进 out（可为 nil）。
// access token 已过期（或在 expiryLeeway 内即将过期）时先刷新再发；
// 否则收到 401 时走一次刷新-重试，重试仍 401 则清空凭证、
// 返回最初的 401 错误。单个请求最多刷新一次。
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, headers map[string]string) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request failed: %w", err)
		}
		payload = data
	}

	refreshed := false
	if c.canRefresh(path) && c.tokens.AccessExpired(expiryLeeway) {
		refreshed = true
		if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
			logger.Warnw("token_refresh_failed", "error", refreshErr)
		}
	}

	status, respBody, err := c.send(ctx, method, path, payload, headers, c.accessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && c.canRefresh(path) {
		origErr := parseError(status, respBody)
		if refreshed {
			_ = c.tokens.Clear()
			return origErr
		}
		if refreshErr := c.refreshTokens(ctx); refreshErr != nil {
			logger.Warnw("token_refresh_failed", "error", refreshErr)
			_ = c.tokens.Clear()
			return origErr
		}
		status, respBody, err = c.send(ctx, method, path, payload, headers, c.accessToken())
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			_ = c.tokens.Clear()
			return origErr
		}
	}

	if status < 200 || status > 299 {
		return parseError(status, respBody)
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response failed: %w", err)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, headers map[string]string, accessToken string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response failed: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func (c *Client) accessToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Access()
}

// canRefresh 刷新端点自身的 401 不再触发刷新
func (c *Client) canRefresh(path string) bool {
	return c.tokens != nil && c.tokens.Refresh() != "" && path != refreshPath
}

// refreshTokens 用 refresh token 换取新的 access token。
// 后端轮换 refresh token 时一并保存。
func (c *Client) refreshTokens(ctx context.Context) error {
	var resp TokenResponse
	err := c.do(ctx, http.MethodPost, refreshPath, map[string]string{
		"refresh": c.tokens.Refresh(),
	}, &resp, nil)
	if err != nil {
		return err
	}
	if resp.Access == "" {
		return fmt.Errorf("refresh response missing access token")
	}
	refresh := resp.Refresh
	if refresh == "" {
		refresh = c.tokens.Refresh()
	}
	return c.tokens.Save(resp.Access, refresh)
}
