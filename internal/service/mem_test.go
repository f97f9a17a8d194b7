package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"orderdesk/internal/models"
	"orderdesk/internal/store"
)

// memStore is an in-memory stand-in for the sqlx store, shared by the
// service tests. It mirrors the store's semantics: not-found signalled via
// store.ErrNotFound, stock deduction without bounds checks, price sums over
// every product row matching a name.
type memStore struct {
	products  []models.Product
	customers []models.Customer
	couriers  []models.Courier
	orders    []models.Order
	nextID    int64
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) id() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), m.products...), nil
}

func (m *memStore) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, store.ErrNotFound)
}

func (m *memStore) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ID = m.id()
	m.products = append(m.products, *p)
	return nil
}

func (m *memStore) UpdateProduct(ctx context.Context, id int64, upd store.ProductUpdate) error {
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		if upd.Name != nil {
			m.products[i].Name = *upd.Name
		}
		if upd.Price != nil {
			m.products[i].Price = *upd.Price
		}
		if upd.Stock != nil {
			m.products[i].Stock = *upd.Stock
		}
		return nil
	}
	return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
}

func (m *memStore) DeleteProduct(ctx context.Context, id int64) error {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", id, store.ErrNotFound)
}

func (m *memStore) DeductStock(ctx context.Context, items []string) error {
	for _, name := range items {
		for i := range m.products {
			if m.products[i].Name == name {
				m.products[i].Stock--
			}
		}
	}
	return nil
}

func (m *memStore) SumItemPrices(ctx context.Context, items []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, name := range items {
		for i := range m.products {
			if m.products[i].Name == name {
				total = total.Add(m.products[i].Price)
			}
		}
	}
	return total, nil
}

func (m *memStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return append([]models.Customer(nil), m.customers...), nil
}

func (m *memStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	c.ID = m.id()
	m.customers = append(m.customers, *c)
	return nil
}

func (m *memStore) UpdateCustomer(ctx context.Context, id int64, upd store.CustomerUpdate) error {
	for i := range m.customers {
		if m.customers[i].ID != id {
			continue
		}
		if upd.Name != nil {
			m.customers[i].Name = *upd.Name
		}
		if upd.Email != nil {
			m.customers[i].Email = *upd.Email
		}
		if upd.Phone != nil {
			m.customers[i].Phone = *upd.Phone
		}
		return nil
	}
	return fmt.Errorf("customer %d: %w", id, store.ErrNotFound)
}

func (m *memStore) DeleteCustomer(ctx context.Context, id int64) error {
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("customer %d: %w", id, store.ErrNotFound)
}

func (m *memStore) FindCustomerIDByEmail(ctx context.Context, email string) (int64, error) {
	for i := range m.customers {
		if m.customers[i].Email == email {
			return m.customers[i].ID, nil
		}
	}
	return 0, fmt.Errorf("customer with email %s: %w", email, store.ErrNotFound)
}

func (m *memStore) AccrueCustomerSpend(ctx context.Context, id int64, amount decimal.Decimal) error {
	for i := range m.customers {
		if m.customers[i].ID == id {
			m.customers[i].TotalSpend = m.customers[i].TotalSpend.Add(amount)
			return nil
		}
	}
	return fmt.Errorf("customer %d: %w", id, store.ErrNotFound)
}

func (m *memStore) ListCouriers(ctx context.Context) ([]models.Courier, error) {
	return append([]models.Courier(nil), m.couriers...), nil
}

func (m *memStore) GetCourierByID(ctx context.Context, id int64) (*models.Courier, error) {
	for i := range m.couriers {
		if m.couriers[i].ID == id {
			c := m.couriers[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("courier %d: %w", id, store.ErrNotFound)
}

func (m *memStore) CreateCourier(ctx context.Context, c *models.Courier) error {
	c.ID = m.id()
	m.couriers = append(m.couriers, *c)
	return nil
}

func (m *memStore) DeleteCourier(ctx context.Context, id int64) error {
	for i := range m.couriers {
		if m.couriers[i].ID == id {
			m.couriers = append(m.couriers[:i], m.couriers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("courier %d: %w", id, store.ErrNotFound)
}

func (m *memStore) OrdersByCourier(ctx context.Context, courierID int64) ([]models.Order, error) {
	var orders []models.Order
	for i := range m.orders {
		if m.orders[i].CourierID == courierID {
			orders = append(orders, m.orders[i])
		}
	}
	return orders, nil
}

func (m *memStore) CourierOrderCounts(ctx context.Context) (map[int64]int, error) {
	counts := make(map[int64]int)
	for i := range m.orders {
		counts[m.orders[i].CourierID]++
	}
	return counts, nil
}

func (m *memStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), m.orders...), nil
}

func (m *memStore) ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	for i := range m.orders {
		if m.orders[i].Status == status {
			orders = append(orders, m.orders[i])
		}
	}
	return orders, nil
}

func (m *memStore) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, store.ErrNotFound)
}

func (m *memStore) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order %d: %w", id, store.ErrNotFound)
}

func (m *memStore) PlaceOrderTx(ctx context.Context, order *models.Order, customerID int64, items []string) error {
	order.ID = m.id()
	m.orders = append(m.orders, *order)
	if err := m.DeductStock(ctx, items); err != nil {
		return err
	}
	total, err := m.SumItemPrices(ctx, items)
	if err != nil {
		return err
	}
	return m.AccrueCustomerSpend(ctx, customerID, total)
}
