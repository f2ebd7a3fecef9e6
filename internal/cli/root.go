package cli

import (
	"time"

	"github.com/nexus-commerce/storefront/internal/api"
	"github.com/nexus-commerce/storefront/internal/auth"
	"github.com/nexus-commerce/storefront/internal/cart"
	"github.com/nexus-commerce/storefront/internal/config"
	"github.com/nexus-commerce/storefront/internal/logger"
	"github.com/nexus-commerce/storefront/internal/store"

	"github.com/spf13/cobra"
)

// App 命令共享的应用上下文。进程启动时构造一次，
// 各命令通过引用传递使用（不依赖包级单例）。
type App struct {
	Config *config.Config
	Store  *store.Store
	Creds  *auth.Credentials
	Client *api.Client
	Auth   *auth.Service
	Cart   *cart.Cart
}

// NewRootCommand 创建 storefront 根命令
func NewRootCommand() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "storefront - headless storefront client",
		Long:          "从命令行驱动的店面客户端：商品浏览、本地购物车、结账向导与账户操作。",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.bootstrap()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				_ = app.Store.Close()
			}
		},
	}

	cmd.AddCommand(newProductsCommand(app))
	cmd.AddCommand(newCartCommand(app))
	cmd.AddCommand(newCheckoutCommand(app))
	cmd.AddCommand(newOrdersCommand(app))
	cmd.AddCommand(newAuthCommand(app))

	return cmd
}

func (a *App) bootstrap() error {
	a.Config = config.Load()
	logger.Init(a.Config.Mode, a.Config.Log.ToLoggerOptions())

	localStore, err := store.Open(a.Config.Store.Path)
	if err != nil {
		return err
	}
	a.Store = localStore
	a.Creds = auth.NewCredentials(localStore)
	a.Client = api.New(
		a.Config.API.BaseURL,
		time.Duration(a.Config.API.TimeoutSeconds)*time.Second,
		a.Creds,
	)
	a.Auth = auth.NewService(a.Client, a.Creds)
	a.Cart = cart.Load(localStore)
	return nil
}
