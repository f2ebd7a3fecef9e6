package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newOrdersCommand 订单查询命令（需登录）
func newOrdersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "查询历史订单",
	}
	cmd.AddCommand(newOrdersListCommand(app))
	cmd.AddCommand(newOrdersShowCommand(app))
	cmd.AddCommand(newOrdersPayCommand(app))
	return cmd
}

func newOrdersListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出当前用户的订单",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(orders) == 0 {
				fmt.Fprintln(out, "no orders")
				return nil
			}
			for _, order := range orders {
				fmt.Fprintf(out, "%-36s  %-12s  %s\n", order.ID, order.Status, order.TotalPrice.String())
			}
			return nil
		},
	}
}

func newOrdersShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "查看订单详情",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Client.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order %s (%s)\n", order.ID, order.Status)
			for _, item := range order.Items {
				fmt.Fprintf(out, "  %-30s  x%d  %s\n", item.ProductName, item.Quantity, item.ExtendedPrice.String())
			}
			fmt.Fprintf(out, "total: %s\n", order.TotalPrice.String())
			return nil
		},
	}
}

func newOrdersPayCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <order-id>",
		Short: "触发订单支付",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Client.PayOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s: %s (paid at %s)\n", resp.OrderID, resp.Status, resp.PaidAt)
			return nil
		},
	}
}
