package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func (m *Menu) courierMenu(ctx context.Context) {
	for {
		fmt.Fprint(m.out, "\n\n1. View couriers\n2. Add courier\n3. Delete courier\n4. Open orders by courier\n0. Main menu\n")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.viewCouriers(ctx)
		case 2:
			m.addCourier(ctx)
		case 3:
			m.deleteCourier(ctx)
		case 4:
			m.courierOrders(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) viewCouriers(ctx context.Context) {
	couriers, err := m.roster.List(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\n\nAvailable couriers:")
	tw := tablewriter.NewWriter(m.out)
	tw.Header("ID", "Name")
	for _, c := range couriers {
		tw.Append([]string{strconv.FormatInt(c.ID, 10), c.Name})
	}
	tw.Render()
}

func (m *Menu) addCourier(ctx context.Context) {
	name, ok := m.prompt("Courier name: ")
	if !ok {
		return
	}
	if _, err := m.roster.Create(ctx, name); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nCourier added.")
}

func (m *Menu) deleteCourier(ctx context.Context) {
	id, ok := m.promptInt64("Courier Id to delete: ")
	if !ok {
		return
	}
	if err := m.roster.Delete(ctx, id); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nCourier deleted.")
}

func (m *Menu) courierOrders(ctx context.Context) {
	id, ok := m.promptInt64("Courier Id: ")
	if !ok {
		return
	}
	courier, orders, err := m.roster.OrdersFor(ctx, id)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(m.out, "No orders found!")
		return
	}
	m.renderOrders(ctx, orders)
	fmt.Fprintf(m.out, "\nThere are %d orders for courier: %s.\n", len(orders), courier.Name)
}
