package checkout

import "github.com/nexus-commerce/storefront/internal/models"

// Step 结账向导步骤（1 到 4）
type Step int

const (
	ShippingStep     Step = 1 // 收货地址
	PaymentStep      Step = 2 // 配送方式与支付方式
	ReviewStep       Step = 3 // 订单确认
	ConfirmationStep Step = 4 // 下单完成
)

// Status 提交状态，与步骤正交
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// PaymentMethod 支付方式（封闭枚举）
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "Card"
)

// Session 结账向导状态机。每次结账新建一个，成功或取消后 Reset，
// 从不持久化。
type Session struct {
	Step            Step
	Status          Status
	Err             string
	ShippingAddress *models.Address
	BillingAddress  *models.Address
	SelectedRate    *models.ShippingRate
	PaymentMethod   PaymentMethod
	PaymentIntentID string // 预留给支付网关协作方，核心流程不使用
}

// NewSession 创建初始状态的会话（步骤 1，idle）
func NewSession() *Session {
	return &Session{Step: ShippingStep, Status: StatusIdle}
}

// SetStep 直接跳转到指定步骤，用于回退导航；
// 不校验前序步骤是否完成，回退永远允许。
func (s *Session) SetStep(step Step) {
	if step < ShippingStep || step > ConfirmationStep {
		return
	}
	s.Step = step
}

// Advance 前进一步，封顶在步骤 4（越过 4 是空操作）
func (s *Session) Advance() {
	if s.Step < ConfirmationStep {
		s.Step++
	}
}

// SetShippingAddress 记录收货地址，同时镜像为账单地址
// （核心流程没有独立的账单地址录入）
func (s *Session) SetShippingAddress(address models.Address) {
	s.ShippingAddress = &address
	billing := address
	s.BillingAddress = &billing
}

// SetBillingAddress 单独覆盖账单地址
func (s *Session) SetBillingAddress(address models.Address) {
	s.BillingAddress = &address
}

// SetShippingRate 记录选中的配送方式
func (s *Session) SetShippingRate(rate models.ShippingRate) {
	s.SelectedRate = &rate
}

// SetPaymentMethod 记录支付方式
func (s *Session) SetPaymentMethod(method PaymentMethod) {
	s.PaymentMethod = method
}

// BeginSubmission 进入提交中状态并清除上次错误
func (s *Session) BeginSubmission() {
	s.Status = StatusSubmitting
	s.Err = ""
}

// SubmissionSucceeded 标记提交成功。推进到确认页
// 由调用方另行 Advance。
func (s *Session) SubmissionSucceeded() {
	s.Status = StatusSucceeded
}

// SubmissionFailed 标记提交失败并记录错误消息；
// 步骤不变，用户停留在确认页重试。
func (s *Session) SubmissionFailed(message string) {
	s.Status = StatusFailed
	s.Err = message
}

// Reset 回到完整初始状态（步骤 1、idle、所有字段置空）
func (s *Session) Reset() {
	*s = *NewSession()
}
