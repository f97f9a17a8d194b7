package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"orderdesk/internal/store"
)

func (m *Menu) productMenu(ctx context.Context) {
	for {
		fmt.Fprint(m.out, "\n\n1. View products\n2. Create product\n3. Update product\n4. Delete product\n0. Main menu\n")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.viewProducts(ctx)
		case 2:
			m.createProduct(ctx)
		case 3:
			m.updateProduct(ctx)
		case 4:
			m.deleteProduct(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) viewProducts(ctx context.Context) {
	products, err := m.catalog.List(ctx)
	if err != nil {
		m.reportError(err)
		return
	}

	fmt.Fprintln(m.out, "\nOur available products are:")
	tw := tablewriter.NewWriter(m.out)
	tw.Header("ID", "Name", "Price", "Qty in Stock")
	for _, p := range products {
		tw.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			"£" + p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
		})
	}
	tw.Render()
}

func (m *Menu) createProduct(ctx context.Context) {
	name, ok := m.prompt("Enter new product name: ")
	if !ok {
		return
	}
	priceStr, ok := m.prompt("Enter new product price: ")
	if !ok {
		return
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() {
		fmt.Fprintln(m.out, "\nInvalid price! Try again!")
		return
	}
	stockStr, ok := m.prompt("Enter new product stock Qty: ")
	if !ok {
		return
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil || stock < 0 {
		fmt.Fprintln(m.out, "\nInvalid stock! Try again!")
		return
	}

	if _, err := m.catalog.Create(ctx, name, price, stock); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nProduct created!")
}

func (m *Menu) updateProduct(ctx context.Context) {
	id, ok := m.promptInt64("Enter product Id to update: ")
	if !ok {
		return
	}

	var upd store.ProductUpdate
	upd.Name = m.optionalField("Would you like to update the name? (y/n): ", "Enter new product name: ")

	if raw := m.optionalField("Would you like to update the price? (y/n): ", "Enter new product price: "); raw != nil {
		price, err := decimal.NewFromString(*raw)
		if err != nil || price.IsNegative() {
			fmt.Fprintln(m.out, "\nInvalid price! Try again!")
			return
		}
		upd.Price = &price
	}

	if raw := m.optionalField("Would you like to update the stock? (y/n): ", "Enter new product stock: "); raw != nil {
		stock, err := strconv.Atoi(*raw)
		if err != nil || stock < 0 {
			fmt.Fprintln(m.out, "\nInvalid stock! Try again!")
			return
		}
		upd.Stock = &stock
	}

	if err := m.catalog.Update(ctx, id, upd); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nProduct updated!")
}

func (m *Menu) deleteProduct(ctx context.Context) {
	id, ok := m.promptInt64("Enter product Id to delete: ")
	if !ok {
		return
	}
	if err := m.catalog.Delete(ctx, id); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nProduct deleted.")
}
