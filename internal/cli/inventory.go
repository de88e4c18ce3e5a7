package cli

import (
	"context"
	"errors"

	"github.com/pac-cee/mongocli/internal/errs"
	"github.com/pac-cee/mongocli/internal/service"
)

// InventoryMenu builds the inventory system menu.
func InventoryMenu(svc *service.Inventory) *Menu {
	return &Menu{
		Title: "Inventory System",
		Items: []Item{
			{Label: "Add Product", Run: addProduct(svc)},
			{Label: "Update Stock", Run: updateStock(svc)},
			{Label: "List Products", Run: listProducts(svc)},
			{Label: "Product Report", Run: productReport(svc)},
		},
	}
}

func addProduct(svc *service.Inventory) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter product name: ", "Name is required.")
		if err != nil {
			return err
		}
		stock, err := p.NonNegativeInt("Enter initial stock: ", "Invalid stock value.")
		if err != nil {
			return err
		}
		if err := svc.AddProduct(ctx, name, stock); err != nil {
			return err
		}
		p.Println("Product added!")
		return nil
	}
}

func updateStock(svc *service.Inventory) Handler {
	return func(ctx context.Context, p *Prompter) error {
		name, err := p.String("Enter product name: ", "Name is required.")
		if err != nil {
			return err
		}
		delta, err := p.Int("Enter stock change (+/-): ", "Invalid change value.")
		if err != nil {
			return err
		}
		switch err := svc.AdjustStock(ctx, name, delta); {
		case errors.Is(err, errs.ErrNotFound):
			p.Println("Product not found.")
		case errors.Is(err, errs.ErrStockBelowZero):
			p.Println("Stock cannot be negative.")
		case err != nil:
			return err
		default:
			p.Println("Stock updated!")
		}
		return nil
	}
}

func listProducts(svc *service.Inventory) Handler {
	return func(ctx context.Context, p *Prompter) error {
		products, err := svc.Products(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			p.Println("No products found.")
			return nil
		}
		p.Println("\nProducts:")
		for i, pr := range products {
			p.Printf("%d. Name: %s, Stock: %d\n", i+1, pr.Name, pr.Stock)
		}
		return nil
	}
}

func productReport(svc *service.Inventory) Handler {
	return func(ctx context.Context, p *Prompter) error {
		products, err := svc.LowStock(ctx)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			p.Println("No products with low stock.")
			return nil
		}
		p.Println("\nLow Stock Products:")
		for i, pr := range products {
			p.Printf("%d. Name: %s, Stock: %d\n", i+1, pr.Name, pr.Stock)
		}
		return nil
	}
}
