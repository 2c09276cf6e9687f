package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/avelasco/productos-client/config"
	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product"
	"github.com/avelasco/productos-client/internal/product/client"
	"github.com/avelasco/productos-client/internal/product/dto"
	"github.com/avelasco/productos-client/internal/product/usecase"
	"github.com/avelasco/productos-client/pkg/cache"
	"github.com/avelasco/productos-client/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const usage = `usage: productosctl <command> [args]

commands:
  list                                  fetch and print the product list
  get <id>                              fetch the list and print one product
  create <nombre> <precio> [imagenUrl]  create a product
  update <id> <nombre> <precio> [imagenUrl]
                                        replace a product
  delete <id>                           delete a product
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Client.AppEnv == "dev" || cfg.Client.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	restClient := client.NewRESTClient(&cfg.Client, appLogger)
	listCache := cache.NewListCache()

	policy := product.PatchLocally
	if cfg.Sync.RefreshAfterMutation {
		policy = product.RefreshAfterMutation
	}
	uc := usecase.NewProductUseCase(restClient, listCache, policy, appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Client.TimeoutSeconds+5)*time.Second)
	defer cancel()

	if err := run(ctx, uc, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "productosctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, uc product.UseCase, command string, args []string) error {
	switch command {
	case "list":
		products, err := uc.RefreshProducts(ctx)
		if err != nil {
			return err
		}
		printProducts(products)
		return nil

	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get takes exactly one argument\n%s", usage)
		}
		id, err := cast.ToInt64E(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		products, err := uc.RefreshProducts(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.ID == id {
				printProducts([]model.Product{p})
				return nil
			}
		}
		return fmt.Errorf("product %d not found", id)

	case "create":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("create takes nombre, precio and an optional imagenUrl\n%s", usage)
		}
		price, err := cast.ToFloat64E(args[1])
		if err != nil {
			return fmt.Errorf("invalid precio %q", args[1])
		}
		input := &dto.CreateProductInput{Name: args[0], Price: price}
		if len(args) == 3 {
			input.ImageURL = args[2]
		}
		created, err := uc.CreateProduct(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("created product %d\n", created.ID)
		printProducts(uc.Products())
		return nil

	case "update":
		if len(args) < 3 || len(args) > 4 {
			return fmt.Errorf("update takes id, nombre, precio and an optional imagenUrl\n%s", usage)
		}
		id, err := cast.ToInt64E(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		price, err := cast.ToFloat64E(args[2])
		if err != nil {
			return fmt.Errorf("invalid precio %q", args[2])
		}
		input := &dto.UpdateProductInput{ID: id, Name: args[1], Price: price}
		if len(args) == 4 {
			input.ImageURL = args[3]
		}
		updated, err := uc.UpdateProduct(ctx, input)
		if err != nil {
			return err
		}
		fmt.Printf("updated product %d\n", updated.ID)
		printProducts(uc.Products())
		return nil

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete takes exactly one argument\n%s", usage)
		}
		id, err := cast.ToInt64E(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := uc.DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted product %d\n", id)
		printProducts(uc.Products())
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func printProducts(products []model.Product) {
	if len(products) == 0 {
		fmt.Println("(no products)")
		return
	}
	for _, p := range products {
		image := "-"
		if p.ImageURL != nil {
			image = *p.ImageURL
		}
		fmt.Printf("%d\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Price, image)
	}
}
