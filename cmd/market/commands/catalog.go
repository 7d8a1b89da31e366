package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/light-bringer/market-service/cmd/market/output"
	"github.com/light-bringer/market-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/market-service/internal/app/product/queries/latest_products"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_catalog"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_user_products"
	"github.com/light-bringer/market-service/internal/services"
)

var (
	// Catalog flags
	catalogReq list_catalog.Request

	// Latest flags
	latestLimit int

	// User products flags
	userScope string
)

// catalogCmd prints one catalog page
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print a catalog page",
	Long: `Print one page of the public catalog: products for sale that no cart holds.

Examples:
  market catalog --page 2
  market catalog --search lamp --category 3 --sort price --direction asc
  market catalog --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
			page, err := opts.ListCatalog.Execute(ctx, &catalogReq)
			if err != nil {
				return err
			}
			if jsonOutput {
				return output.JSON(os.Stdout, page)
			}
			output.Products(os.Stdout, page.Products)
			output.PageFooter(os.Stdout, page.CurrentPage, page.PagesCount)
			return nil
		})
	},
}

// latestCmd prints the newest products
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recently added products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
			req := &latest_products.Request{}
			if cmd.Flag("limit").Changed {
				req.Limit = &latestLimit
			}
			views, err := opts.LatestProducts.Execute(ctx, req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return output.JSON(os.Stdout, views)
			}
			output.Products(os.Stdout, views)
			return nil
		})
	},
}

// showCmd prints one product with its category and seller contact
var showCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Print a product detail page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be an integer: %w", err)
		}
		return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
			detail, err := opts.GetProduct.Detail(ctx, &get_product.Request{ProductID: id})
			if err != nil {
				return err
			}
			if jsonOutput {
				return output.JSON(os.Stdout, detail)
			}
			output.Detail(os.Stdout, detail)
			return nil
		})
	},
}

// userProductsCmd prints one of a user's account views
var userProductsCmd = &cobra.Command{
	Use:   "user-products <user-id>",
	Short: "Print a user's products by lifecycle scope",
	Long: `Print a user's products in one scope:
  bought    purchases validated in the last seven days
  in_sale   the user's products for sale
  in_cart   the user's products held by a cart
  sold      the user's sold products`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be an integer: %w", err)
		}
		return withServices(cmd.Context(), func(ctx context.Context, opts *services.ServiceOptions) error {
			views, err := opts.ListUserProducts.Execute(ctx, &list_user_products.Request{
				UserID: id,
				Scope:  list_user_products.Scope(userScope),
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return output.JSON(os.Stdout, views)
			}
			output.Products(os.Stdout, views)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd, latestCmd, showCmd, userProductsCmd)

	catalogCmd.Flags().StringVar(&catalogReq.Page, "page", "1", "Page number")
	catalogCmd.Flags().StringVar(&catalogReq.Search, "search", "", "Case-insensitive title search")
	catalogCmd.Flags().StringVar(&catalogReq.Category, "category", "", "Category id")
	catalogCmd.Flags().StringVar(&catalogReq.Sort, "sort", "date", "Sort field: date, price, title or id")
	catalogCmd.Flags().StringVar(&catalogReq.Direction, "direction", "desc", "Sort direction: asc or desc")

	latestCmd.Flags().IntVar(&latestLimit, "limit", latest_products.DefaultLimit, "Number of products, 0 for all")

	userProductsCmd.Flags().StringVar(&userScope, "scope", string(list_user_products.ScopeInSale), "bought, in_sale, in_cart or sold")
}

// withServices connects the configured store for the duration of fn.
func withServices(ctx context.Context, fn func(context.Context, *services.ServiceOptions) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer opts.Close()

	return fn(ctx, opts)
}
