package cli

import (
	"fmt"

	"github.com/nexus-commerce/storefront/internal/checkout"
	"github.com/nexus-commerce/storefront/internal/models"

	"github.com/spf13/cobra"
)

// newCheckoutCommand 结账向导。四步向导在 CLI 里由参数一次性驱动：
// 地址（步骤 1）→ 配送与支付方式（步骤 2）→ 对账与下单（步骤 3）→ 确认（步骤 4）。
func newCheckoutCommand(app *App) *cobra.Command {
	var address models.Address
	var rateID string
	var method string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "对购物车内容走完结账流程",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Cart.IsEmpty() {
				return fmt.Errorf("cart is empty")
			}

			if fieldErrs := app.Auth.ValidateAddress(address); len(fieldErrs) > 0 {
				return fieldErrs
			}
			rate, ok := checkout.FindShippingRate(rateID)
			if !ok {
				return fmt.Errorf("unknown shipping rate %q", rateID)
			}
			payment := checkout.PaymentMethod(method)
			if payment != checkout.PaymentCOD && payment != checkout.PaymentCard {
				return fmt.Errorf("unknown payment method %q", method)
			}

			session := checkout.NewSession()
			session.SetShippingAddress(address)
			session.Advance()
			session.SetShippingRate(rate)
			session.SetPaymentMethod(payment)
			session.Advance()

			// 确认页：先对账再下单
			reconciler := checkout.NewReconciler(app.Client)
			reconciler.Sync(cmd.Context(), app.Cart.Items())

			submitter := checkout.NewSubmitter(app.Client)
			confirmation, err := submitter.PlaceOrder(cmd.Context(), session, app.Cart, app.Auth.IsAuthenticated())
			if err != nil {
				return fmt.Errorf("%s", session.Err)
			}

			fmt.Fprintf(out, "order placed: %s\n", confirmation.OrderID)
			fmt.Fprintf(out, "total: %s\n", confirmation.Total.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&address.FirstName, "first-name", "", "名")
	cmd.Flags().StringVar(&address.LastName, "last-name", "", "姓")
	cmd.Flags().StringVar(&address.PhoneNumber, "phone", "", "联系电话")
	cmd.Flags().StringVar(&address.Email, "email", "", "联系邮箱")
	cmd.Flags().StringVar(&address.AddressLine1, "address", "", "地址第一行")
	cmd.Flags().StringVar(&address.AddressLine2, "address-2", "", "地址第二行（可选）")
	cmd.Flags().StringVar(&address.City, "city", "", "城市")
	cmd.Flags().StringVar(&address.StateProvince, "state", "", "省/州")
	cmd.Flags().StringVar(&address.PostalCode, "postal-code", "", "邮编")
	cmd.Flags().StringVar(&address.Country, "country", "", "国家")
	cmd.Flags().StringVar(&rateID, "rate", "standard", "配送方式 (standard|express)")
	cmd.Flags().StringVar(&method, "method", "COD", "支付方式 (COD|Card)")
	return cmd
}
