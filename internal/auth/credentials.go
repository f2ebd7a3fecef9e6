package auth

import (
	"time"

	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Credentials 本地凭证存储。access/refresh 分别落在独立的固定键下，
// 实现 api.TokenSource。
type Credentials struct {
	store   *store.Store
	access  string
	refresh string
}

// NewCredentials 创建凭证存储并加载已持久化的凭证
func NewCredentials(s *store.Store) *Credentials {
	c := &Credentials{store: s}
	c.access = c.loadKey(accessTokenKey)
	c.refresh = c.loadKey(refreshTokenKey)
	return c
}

func (c *Credentials) loadKey(key string) string {
	if c.store == nil {
		return ""
	}
	value, found, err := c.store.Get(key)
	if err != nil {
		logger.Warnw("credential_load_failed", "key", key, "error", err)
		return ""
	}
	if !found {
		return ""
	}
	return string(value)
}

// Access 当前 access token，未登录时为空串
func (c *Credentials) Access() string {
	return c.access
}

// Refresh 当前 refresh token
func (c *Credentials) Refresh() string {
	return c.refresh
}

// Save 保存凭证对并持久化
func (c *Credentials) Save(access, refresh string) error {
	c.access = access
	c.refresh = refresh
	if c.store == nil {
		return nil
	}
	if err := c.store.Put(accessTokenKey, []byte(access)); err != nil {
		return err
	}
	return c.store.Put(refreshTokenKey, []byte(refresh))
}

// Clear 清空全部凭证（等效登出）
func (c *Credentials) Clear() error {
	c.access = ""
	c.refresh = ""
	if c.store == nil {
		return nil
	}
	if err := c.store.Delete(accessTokenKey); err != nil {
		return err
	}
	return c.store.Delete(refreshTokenKey)
}

// AccessExpired 校验 access token 是否已过期（或在 leeway 内即将过期）。
// 只做本地不验签解析，真正的拒绝由后端 401 决定。
// 解析失败或缺少 exp 时按未过期处理，交给后端裁决。
func (c *Credentials) AccessExpired(leeway time.Duration) bool {
	if c.access == "" {
		return true
	}
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(c.access, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().Add(leeway).After(claims.ExpiresAt.Time)
}
