package cli

import (
	"fmt"

	"github.com/nexus-commerce/storefront/internal/api"

	"github.com/spf13/cobra"
)

// newProductsCommand 商品浏览命令
func newProductsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "浏览商品目录",
	}
	cmd.AddCommand(newProductsListCommand(app))
	cmd.AddCommand(newProductsShowCommand(app))
	return cmd
}

func newProductsListCommand(app *App) *cobra.Command {
	filter := api.ProductFilter{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "分页列出商品",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Client.ListProducts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			for _, product := range page.Results {
				available := " "
				if !product.IsAvailable {
					available = "!"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-36s  %-30s  %s\n",
					available, product.ID, product.Name, product.SalePrice.String())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", page.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "按分类 slug 过滤")
	cmd.Flags().StringVar(&filter.Search, "search", "", "关键词搜索")
	cmd.Flags().StringVar(&filter.MinPrice, "min-price", "", "最低价格")
	cmd.Flags().StringVar(&filter.MaxPrice, "max-price", "", "最高价格")
	cmd.Flags().StringVar(&filter.Ordering, "ordering", "", "排序字段")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&filter.PageSize, "page-size", 0, "每页数量")
	return cmd
}

func newProductsShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "查看商品详情",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := app.Client.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", product.Name)
			fmt.Fprintf(out, "  id:       %s\n", product.ID)
			fmt.Fprintf(out, "  category: %s\n", product.Category.Name)
			fmt.Fprintf(out, "  price:    %s (base %s)\n", product.SalePrice.String(), product.BasePrice.String())
			fmt.Fprintf(out, "  stock:    %d\n", product.StockQuantity)
			if product.Description != "" {
				fmt.Fprintf(out, "  %s\n", product.Description)
			}
			return nil
		},
	}
}
