package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"orderdesk/internal/models"
	"orderdesk/internal/service"
	"orderdesk/internal/store"
)

func (m *Menu) orderMenu(ctx context.Context) {
	for {
		fmt.Fprint(m.out, "\n\n1. View orders\n2. Create order\n3. Update order status\n4. Check open orders by status\n0. Main menu\n")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.viewOrders(ctx)
		case 2:
			m.createOrder(ctx)
		case 3:
			m.updateOrderStatus(ctx)
		case 4:
			m.viewOrdersByStatus(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) viewOrders(ctx context.Context) {
	orders, err := m.orders.List(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nExisting orders are:")
	m.renderOrders(ctx, orders)
}

// renderOrders resolves courier names once and prints the orders table.
func (m *Menu) renderOrders(ctx context.Context, orders []models.Order) {
	courierNames := make(map[int64]string)
	if couriers, err := m.roster.List(ctx); err == nil {
		for _, c := range couriers {
			courierNames[c.ID] = c.Name
		}
	}

	tw := tablewriter.NewWriter(m.out)
	tw.Header("ID", "Name", "Email", "Phone", "Address", "Items", "Status", "Courier")
	for _, o := range orders {
		courier := courierNames[o.CourierID]
		if courier == "" {
			courier = strconv.FormatInt(o.CourierID, 10)
		}
		tw.Append([]string{
			strconv.FormatInt(o.ID, 10),
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.CustomerAddress,
			o.Items,
			o.Status,
			courier,
		})
	}
	tw.Render()
}

func (m *Menu) createOrder(ctx context.Context) {
	name, ok := m.prompt("Customer name: ")
	if !ok {
		return
	}
	address, ok := m.prompt("Customer address: ")
	if !ok {
		return
	}
	phone, ok := m.prompt("Customer phone: ")
	if !ok {
		return
	}
	email, ok := m.prompt("Customer email: ")
	if !ok {
		return
	}

	items := m.selectItems(ctx)

	order, err := m.orders.Create(ctx, &service.CreateOrderRequest{
		CustomerName:    name,
		CustomerAddress: address,
		CustomerPhone:   phone,
		CustomerEmail:   email,
		Items:           items,
	})
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "\nOrder created! Reference: %s\n", order.Reference)
}

// selectItems accumulates item names one product id at a time. Unknown ids
// and out-of-stock products are reported and skipped; duplicates are
// allowed, each standing for quantity one.
func (m *Menu) selectItems(ctx context.Context) []string {
	var items []string
	for {
		line, ok := m.prompt("Enter item Id to order: ")
		if !ok {
			return items
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, "\nInvalid option!")
		} else {
			product, err := m.catalog.Get(ctx, id)
			switch {
			case errors.Is(err, store.ErrNotFound):
				fmt.Fprintln(m.out, "\nProduct not found! Try again!")
			case err != nil:
				m.reportError(err)
			case product.Stock == 0:
				fmt.Fprintln(m.out, "\nOut of stock! Try again!")
			default:
				items = append(items, product.Name)
			}
		}
		if !m.confirm("Do you want to add another item? (y/n): ") {
			return items
		}
	}
}

func (m *Menu) updateOrderStatus(ctx context.Context) {
	id, ok := m.promptInt64("Order Id to update: ")
	if !ok {
		return
	}

	choice, ok := m.promptInt64("Choose status:\n1. Ready\n2. Collected\n3. Abandoned\n\nEnter option: ")
	if !ok {
		return
	}
	var status string
	switch choice {
	case 1:
		status = models.OrderStatusReady
	case 2:
		status = models.OrderStatusCollected
	case 3:
		status = models.OrderStatusAbandoned
	default:
		fmt.Fprintln(m.out, "\nIncorrect choice! Try again!")
		return
	}

	if err := m.orders.UpdateStatus(ctx, id, status); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nOrder status updated.")
}

func (m *Menu) viewOrdersByStatus(ctx context.Context) {
	choice, ok := m.promptInt64("Choose order status to view all orders:\n1. Preparing\n2. Ready\n3. Collected\n4. Abandoned\n\nEnter choice: ")
	if !ok {
		return
	}
	var status string
	switch choice {
	case 1:
		status = models.OrderStatusPreparing
	case 2:
		status = models.OrderStatusReady
	case 3:
		status = models.OrderStatusCollected
	case 4:
		status = models.OrderStatusAbandoned
	default:
		fmt.Fprintln(m.out, "\nIncorrect choice! Try again!")
		return
	}

	orders, err := m.orders.ListByStatus(ctx, status)
	if err != nil {
		m.reportError(err)
		return
	}
	m.renderOrders(ctx, orders)
}
