package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexus-commerce/storefront/internal/api"
	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/models"

	"github.com/go-playground/validator/v10"
)

const passwordMinLength = 8

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", passwordMinLength)
)

// FieldErrors 表单校验错误，按字段聚合。校验失败不会发起网络请求。
type FieldErrors map[string]string

// Error 拼接为单条可读消息
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	return strings.Join(parts, "; ")
}

// Service 账户流程：登录、注册、注销、资料维护
type Service struct {
	client   *api.Client
	creds    *Credentials
	validate *validator.Validate
}

// NewService 创建账户服务
func NewService(client *api.Client, creds *Credentials) *Service {
	return &Service{
		client:   client,
		creds:    creds,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// IsAuthenticated 是否已持有访问凭证
func (s *Service) IsAuthenticated() bool {
	return s.creds != nil && s.creds.Access() != ""
}

// Login 登录并拉取用户资料
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	if fieldErrs := s.validateLogin(email, password); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	tokens, err := s.client.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.creds.Save(tokens.Access, tokens.Refresh); err != nil {
		return nil, err
	}
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infow("login_succeeded", "email", email)
	return profile, nil
}

// Register 注册后自动登录
func (s *Service) Register(ctx context.Context, input api.RegisterInput) (*models.UserProfile, error) {
	if fieldErrs := s.validateRegister(input); len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	profile, err := s.client.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	if _, err := s.Login(ctx, input.Email, input.Password); err != nil {
		// 注册成功但自动登录失败，账号已创建，返回资料并提示重新登录
		logger.Warnw("auto_login_after_register_failed", "email", input.Email, "error", err)
		return profile, err
	}
	return profile, nil
}

// Logout 作废 refresh token 并清空本地凭证。
// 作废请求失败也照样清空本地凭证。
func (s *Service) Logout(ctx context.Context) error {
	refresh := s.creds.Refresh()
	var blacklistErr error
	if refresh != "" {
		blacklistErr = s.client.BlacklistToken(ctx, refresh)
		if blacklistErr != nil {
			logger.Warnw("token_blacklist_failed", "error", blacklistErr)
		}
	}
	if err := s.creds.Clear(); err != nil {
		return err
	}
	return blacklistErr
}

// Profile 获取当前用户资料
func (s *Service) Profile(ctx context.Context) (*models.UserProfile, error) {
	return s.client.GetProfile(ctx)
}

// UpdateProfile 更新当前用户资料
func (s *Service) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.UserProfile, error) {
	return s.client.UpdateProfile(ctx, update)
}

func (s *Service) validateLogin(email, password string) FieldErrors {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(email) == "" {
		fieldErrs["email"] = "required"
	} else if err := s.validate.Var(email, "email"); err != nil {
		fieldErrs["email"] = "invalid email address"
	}
	if password == "" {
		fieldErrs["password"] = "required"
	}
	return fieldErrs
}

func (s *Service) validateRegister(input api.RegisterInput) FieldErrors {
	fieldErrs := s.validateLogin(input.Email, input.Password)
	if input.Password != "" && len(input.Password) < passwordMinLength {
		fieldErrs["password"] = ErrPasswordTooShort.Error()
	}
	if input.Password2 != input.Password {
		fieldErrs["password2"] = ErrPasswordMismatch.Error()
	}
	if strings.TrimSpace(input.FirstName) == "" {
		fieldErrs["first_name"] = "required"
	}
	if strings.TrimSpace(input.LastName) == "" {
		fieldErrs["last_name"] = "required"
	}
	return fieldErrs
}

// ValidateAddress 按结构体 tag 校验收货地址，返回字段错误表
func (s *Service) ValidateAddress(address models.Address) FieldErrors {
	err := s.validate.Struct(address)
	if err == nil {
		return nil
	}
	fieldErrs := FieldErrors{}
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		for _, fieldErr := range invalid {
			switch fieldErr.Tag() {
			case "email":
				fieldErrs[fieldErr.Field()] = "invalid email address"
			default:
				fieldErrs[fieldErr.Field()] = "required"
			}
		}
		return fieldErrs
	}
	fieldErrs["address"] = err.Error()
	return fieldErrs
}
