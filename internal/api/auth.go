package api

import (
	"context"

	"github.com/nexus-commerce/storefront/internal/models"
)

// TokenResponse 登录/刷新响应的凭证对。
// 刷新端点可能不轮换 refresh，此时该字段为空。
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// LoginInput 登录请求
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput 注册请求
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Login 邮箱密码登录，返回凭证对
func (c *Client) Login(ctx context.Context, input LoginInput) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.post(ctx, "/auth/token/", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register 注册新用户
func (c *Client) Register(ctx context.Context, input RegisterInput) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.post(ctx, "/auth/register/", input, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// BlacklistToken 注销时作废 refresh token
func (c *Client) BlacklistToken(ctx context.Context, refreshToken string) error {
	return c.post(ctx, "/auth/token/blacklist/", map[string]string{"refresh": refreshToken}, nil)
}

// GetProfile 获取当前用户资料
func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "/auth/me/", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileUpdate 资料更新字段（nil 表示不修改）
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// UpdateProfile 更新当前用户资料
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.patch(ctx, "/auth/me/", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
