package cli

import (
	"fmt"

	"github.com/nexus-commerce/storefront/internal/api"

	"github.com/spf13/cobra"
)

// newAuthCommand 账户命令
func newAuthCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "登录、注册与账户管理",
	}
	cmd.AddCommand(newAuthLoginCommand(app))
	cmd.AddCommand(newAuthRegisterCommand(app))
	cmd.AddCommand(newAuthLogoutCommand(app))
	cmd.AddCommand(newAuthWhoamiCommand(app))
	return cmd
}

func newAuthLoginCommand(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "邮箱密码登录",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s %s <%s>\n",
				profile.FirstName, profile.LastName, profile.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "邮箱")
	cmd.Flags().StringVar(&password, "password", "", "密码")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAuthRegisterCommand(app *App) *cobra.Command {
	var input api.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "注册新账号（注册后自动登录）",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Auth.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", profile.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "邮箱")
	cmd.Flags().StringVar(&input.Password, "password", "", "密码")
	cmd.Flags().StringVar(&input.Password2, "password2", "", "重复密码")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "名")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "姓")
	return cmd
}

func newAuthLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "注销并清除本地凭证",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				// 本地凭证已清除，服务端作废失败只提示
				fmt.Fprintf(cmd.OutOrStdout(), "logged out (server-side revoke failed: %v)\n", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newAuthWhoamiCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "查看当前登录用户",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Auth.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			profile, err := app.Auth.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", profile.FirstName, profile.LastName, profile.Email)
			return nil
		},
	}
}
