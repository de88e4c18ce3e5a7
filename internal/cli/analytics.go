package cli

import (
	"context"

	"github.com/pac-cee/mongocli/internal/service"
)

// AnalyticsMenu builds the e-commerce analytics menu.
func AnalyticsMenu(svc *service.Analytics) *Menu {
	return &Menu{
		Title: "E-commerce Analytics",
		Items: []Item{
			{Label: "Add Order", Run: addOrder(svc)},
			{Label: "List Orders", Run: listOrders(svc)},
			{Label: "Sales by Product", Run: salesByProduct(svc)},
			{Label: "Top Customers", Run: topCustomers(svc)},
		},
	}
}

func addOrder(svc *service.Analytics) Handler {
	return func(ctx context.Context, p *Prompter) error {
		customer, err := p.String("Enter customer name: ", "Name is required.")
		if err != nil {
			return err
		}
		product, err := p.String("Enter product name: ", "Name is required.")
		if err != nil {
			return err
		}
		quantity, err := p.PositiveInt("Enter quantity: ", "Invalid quantity.")
		if err != nil {
			return err
		}
		if err := svc.AddOrder(ctx, customer, product, quantity); err != nil {
			return err
		}
		p.Println("Order added!")
		return nil
	}
}

func listOrders(svc *service.Analytics) Handler {
	return func(ctx context.Context, p *Prompter) error {
		orders, err := svc.Orders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			p.Println("No orders found.")
			return nil
		}
		p.Println("\nOrders:")
		for i, o := range orders {
			p.Printf("%d. Customer: %s, Product: %s, Quantity: %d, Date: %s\n",
				i+1, o.Customer, o.Product, o.Quantity, o.Date.Format(timeLayout))
		}
		return nil
	}
}

func salesByProduct(svc *service.Analytics) Handler {
	return func(ctx context.Context, p *Prompter) error {
		rows, err := svc.SalesByProduct(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			p.Println("No sales data.")
			return nil
		}
		p.Println("\nSales by Product:")
		for i, r := range rows {
			p.Printf("%d. Product: %s, Total Sold: %d\n", i+1, r.Product, r.TotalSold)
		}
		return nil
	}
}

func topCustomers(svc *service.Analytics) Handler {
	return func(ctx context.Context, p *Prompter) error {
		rows, err := svc.TopCustomers(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			p.Println("No customer data.")
			return nil
		}
		p.Println("\nTop Customers:")
		for i, r := range rows {
			p.Printf("%d. Customer: %s, Total Ordered: %d\n", i+1, r.Customer, r.TotalOrdered)
		}
		return nil
	}
}
