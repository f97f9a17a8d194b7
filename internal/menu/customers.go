package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"orderdesk/internal/store"
)

func (m *Menu) customerMenu(ctx context.Context) {
	for {
		fmt.Fprint(m.out, "\n\n1. View customers\n2. Add customer\n3. Delete customer\n4. Update customer\n0. Main menu\n")

		choice, ok := m.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			m.viewCustomers(ctx)
		case 2:
			m.addCustomer(ctx)
		case 3:
			m.deleteCustomer(ctx)
		case 4:
			m.updateCustomer(ctx)
		case 0:
			return
		default:
			fmt.Fprintln(m.out, "Invalid option!")
		}
	}
}

func (m *Menu) viewCustomers(ctx context.Context) {
	customers, err := m.directory.List(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	tw := tablewriter.NewWriter(m.out)
	tw.Header("ID", "Name", "Email", "Phone", "Spending")
	for _, c := range customers {
		tw.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			c.Phone,
			"£" + c.TotalSpend.StringFixed(2),
		})
	}
	tw.Render()
}

func (m *Menu) addCustomer(ctx context.Context) {
	name, ok := m.prompt("Customer name: ")
	if !ok {
		return
	}
	email, ok := m.prompt("Customer email: ")
	if !ok {
		return
	}
	phone, ok := m.prompt("Customer phone: ")
	if !ok {
		return
	}
	if _, err := m.directory.Create(ctx, name, email, phone); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nCustomer created!")
}

func (m *Menu) deleteCustomer(ctx context.Context) {
	id, ok := m.promptInt64("Customer Id to delete: ")
	if !ok {
		return
	}
	if err := m.directory.Delete(ctx, id); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nCustomer deleted.")
}

func (m *Menu) updateCustomer(ctx context.Context) {
	id, ok := m.promptInt64("Customer Id to update: ")
	if !ok {
		return
	}

	var upd store.CustomerUpdate
	upd.Name = m.optionalField("Would you like to update the name? (y/n): ", "New name: ")
	upd.Email = m.optionalField("Would you like to update the email? (y/n): ", "Customer email: ")
	upd.Phone = m.optionalField("Would you like to update the phone? (y/n): ", "Customer phone: ")

	if err := m.directory.Update(ctx, id, upd); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "\nCustomer updated.")
}
