package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newCartCommand 本地购物车命令
func newCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "管理本地购物车",
	}
	cmd.AddCommand(newCartShowCommand(app))
	cmd.AddCommand(newCartAddCommand(app))
	cmd.AddCommand(newCartRemoveCommand(app))
	cmd.AddCommand(newCartSetQtyCommand(app))
	cmd.AddCommand(newCartClearCommand(app))
	return cmd
}

func newCartShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "查看购物车内容与合计",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			items := app.Cart.Items()
			if len(items) == 0 {
				fmt.Fprintln(out, "cart is empty")
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%-36s  %-30s  %s x%d = %s\n",
					item.ProductID, item.Name, item.UnitPrice.String(), item.Quantity, item.LineTotal().String())
			}
			fmt.Fprintf(out, "items: %d  total: %s\n", app.Cart.Count(), app.Cart.Total().String())
			return nil
		},
	}
}

func newCartAddCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "加入商品（已存在则数量 +1）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := app.Client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.Cart.AddItem(*product)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s, total %s\n", product.Name, app.Cart.Total().String())
			return nil
		},
	}
}

func newCartRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "移除商品",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Cart.RemoveItem(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "removed, total %s\n", app.Cart.Total().String())
			return nil
		},
	}
}

func newCartSetQtyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-qty <product-id> <quantity>",
		Short: "设置商品数量（0 等价于移除）",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			app.Cart.SetQuantity(args[0], quantity)
			fmt.Fprintf(cmd.OutOrStdout(), "updated, total %s\n", app.Cart.Total().String())
			return nil
		},
	}
}

func newCartClearCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "清空购物车",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Cart.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "cart cleared")
			return nil
		},
	}
}
