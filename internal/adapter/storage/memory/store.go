// Package memory keeps all shop data in process memory. It serves local runs without a database
// and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
)

var _ port.Repository = (*Store)(nil)

type state struct {
	products map[uint64]domain.Product
	clients  map[uint64]domain.Client
	orders   map[uint64]domain.Order
	payments map[uint64]domain.Payment
	promos   map[string]domain.PromoCode
	lastID   map[string]uint64
}

func newState() *state {
	return &state{
		products: make(map[uint64]domain.Product),
		clients:  make(map[uint64]domain.Client),
		orders:   make(map[uint64]domain.Order),
		payments: make(map[uint64]domain.Payment),
		promos:   make(map[string]domain.PromoCode),
		lastID:   make(map[string]uint64),
	}
}

func (st *state) clone() *state {
	c := &state{
		products: make(map[uint64]domain.Product, len(st.products)),
		clients:  make(map[uint64]domain.Client, len(st.clients)),
		orders:   make(map[uint64]domain.Order, len(st.orders)),
		payments: make(map[uint64]domain.Payment, len(st.payments)),
		promos:   make(map[string]domain.PromoCode, len(st.promos)),
		lastID:   make(map[string]uint64, len(st.lastID)),
	}
	for k, v := range st.products {
		c.products[k] = v
	}
	for k, v := range st.clients {
		c.clients[k] = v
	}
	for k, v := range st.orders {
		c.orders[k] = v
	}
	for k, v := range st.payments {
		c.payments[k] = v
	}
	for k, v := range st.promos {
		c.promos[k] = v
	}
	for k, v := range st.lastID {
		c.lastID[k] = v
	}
	return c
}

func (st *state) nextID(table string) uint64 {
	st.lastID[table]++
	return st.lastID[table]
}

type scope struct {
	st *state
}

type scopeKey struct{}

// Store implements the repository ports. A transaction holds the store lock until it ends and works
// on a private copy of the data that replaces the shared one on commit.
type Store struct {
	mu   sync.Mutex
	data *state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if parent, ok := ctx.Value(scopeKey{}).(*scope); ok {
		nested := &scope{st: parent.st.clone()}
		if err := fn(context.WithValue(ctx, scopeKey{}, nested)); err != nil {
			return err
		}
		parent.st = nested.st
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &scope{st: s.data.clone()}
	if err := fn(context.WithValue(ctx, scopeKey{}, tx)); err != nil {
		return err
	}
	s.data = tx.st
	return nil
}

// view runs fn on the transaction data held by ctx, or on the shared data under the store lock.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if tx, ok := ctx.Value(scopeKey{}).(*scope); ok {
		return fn(tx.st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func copyItems(items []domain.OrderItem) []domain.OrderItem {
	if items == nil {
		return nil
	}
	return append([]domain.OrderItem(nil), items...)
}

func orderCopy(o domain.Order) *domain.Order {
	o.Items = copyItems(o.Items)
	o.Shortages = nil
	return &o
}

// * Catalog.

func (s *Store) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	var product domain.Product
	err := s.view(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.Deleted {
			return domain.ErrProductNotFound
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) GetProductIncludingDeleted(ctx context.Context, productID uint64) (*domain.Product, error) {
	var product domain.Product
	err := s.view(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok {
			return domain.ErrProductNotFound
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, page domain.Page) ([]*domain.Product, error) {
	list := make([]*domain.Product, 0)
	err := s.view(ctx, func(st *state) error {
		for _, p := range st.products {
			if p.Deleted {
				continue
			}
			p := p
			list = append(list, &p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	from := min(page.Offset(), len(list))
	to := min(from+page.Size, len(list))
	return list[from:to], nil
}

func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var created domain.Product
	err := s.view(ctx, func(st *state) error {
		created = *product
		created.ID = st.nextID("products")
		st.products[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var updated domain.Product
	err := s.view(ctx, func(st *state) error {
		existing, ok := st.products[product.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		updated = *product
		updated.Stock = existing.Stock
		st.products[product.ID] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DecrementStock(ctx context.Context, productID uint64, qty int) (bool, error) {
	applied := false
	err := s.view(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok || p.Deleted || p.Stock < qty {
			return nil
		}
		p.Stock -= qty
		st.products[productID] = p
		applied = true
		return nil
	})
	return applied, err
}

func (s *Store) IncrementStock(ctx context.Context, productID uint64, qty int) error {
	return s.view(ctx, func(st *state) error {
		p, ok := st.products[productID]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.Stock += qty
		st.products[productID] = p
		return nil
	})
}

// * Clients.

func emailTaken(st *state, email string, except uint64) bool {
	for id, c := range st.clients {
		if id != except && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var created domain.Client
	err := s.view(ctx, func(st *state) error {
		if emailTaken(st, client.Email, 0) {
			return domain.ErrConflictingData
		}
		created = *client
		created.ID = st.nextID("clients")
		st.clients[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) GetClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	var client domain.Client
	err := s.view(ctx, func(st *state) error {
		c, ok := st.clients[clientID]
		if !ok {
			return domain.ErrClientNotFound
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClientForUpdate is GetClient: a transaction already holds the whole store.
func (s *Store) GetClientForUpdate(ctx context.Context, clientID uint64) (*domain.Client, error) {
	return s.GetClient(ctx, clientID)
}

func (s *Store) ListClients(ctx context.Context) ([]*domain.Client, error) {
	list := make([]*domain.Client, 0)
	err := s.view(ctx, func(st *state) error {
		for _, c := range st.clients {
			c := c
			list = append(list, &c)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

func (s *Store) SaveClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	var saved domain.Client
	err := s.view(ctx, func(st *state) error {
		if _, ok := st.clients[client.ID]; !ok {
			return domain.ErrClientNotFound
		}
		if emailTaken(st, client.Email, client.ID) {
			return domain.ErrConflictingData
		}
		saved = *client
		st.clients[client.ID] = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *Store) DeleteClient(ctx context.Context, clientID uint64) error {
	return s.view(ctx, func(st *state) error {
		if _, ok := st.clients[clientID]; !ok {
			return domain.ErrClientNotFound
		}
		for _, o := range st.orders {
			if o.ClientID == clientID {
				return domain.ErrClientHasOrders
			}
		}
		delete(st.clients, clientID)
		return nil
	})
}

// * Orders.

func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var created *domain.Order
	err := s.view(ctx, func(st *state) error {
		if _, ok := st.clients[order.ClientID]; !ok {
			return domain.ErrClientNotFound
		}
		stored := *orderCopy(*order)
		stored.ID = st.nextID("orders")
		st.orders[stored.ID] = stored
		created = orderCopy(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	var order *domain.Order
	err := s.view(ctx, func(st *state) error {
		o, ok := st.orders[orderID]
		if !ok {
			return domain.ErrOrderNotFound
		}
		order = orderCopy(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) ReadOrderForUpdate(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.ReadOrder(ctx, orderID)
}

func (s *Store) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var updated *domain.Order
	err := s.view(ctx, func(st *state) error {
		existing, ok := st.orders[order.ID]
		if !ok {
			return domain.ErrOrderNotFound
		}
		stored := *orderCopy(*order)
		stored.Items = existing.Items
		st.orders[order.ID] = stored
		updated = orderCopy(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0)
	err := s.view(ctx, func(st *state) error {
		for _, o := range st.orders {
			if filter.ClientID != 0 && o.ClientID != filter.ClientID {
				continue
			}
			if filter.Status != "" && o.Status != filter.Status {
				continue
			}
			list = append(list, orderCopy(o))
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

// * Payments.

func (s *Store) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	var created domain.Payment
	err := s.view(ctx, func(st *state) error {
		if _, ok := st.orders[payment.OrderID]; !ok {
			return domain.ErrOrderNotFound
		}
		for _, p := range st.payments {
			if p.OrderID == payment.OrderID && p.Number == payment.Number {
				return domain.ErrConflictingData
			}
		}
		created = *payment
		created.ID = st.nextID("payments")
		st.payments[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) ReadPayment(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	var payment domain.Payment
	err := s.view(ctx, func(st *state) error {
		p, ok := st.payments[paymentID]
		if !ok {
			return domain.ErrPaymentNotFound
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Store) ReadPaymentForUpdate(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	return s.ReadPayment(ctx, paymentID)
}

func (s *Store) UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	var updated domain.Payment
	err := s.view(ctx, func(st *state) error {
		if _, ok := st.payments[payment.ID]; !ok {
			return domain.ErrPaymentNotFound
		}
		updated = *payment
		st.payments[payment.ID] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) ListPaymentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Payment, error) {
	list := make([]*domain.Payment, 0)
	err := s.view(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.OrderID != orderID {
				continue
			}
			p := p
			list = append(list, &p)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })
	return list, err
}

// * Promo codes.

func (s *Store) CreatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	var created domain.PromoCode
	err := s.view(ctx, func(st *state) error {
		if _, ok := st.promos[promo.Code]; ok {
			return domain.ErrConflictingData
		}
		created = *promo
		created.ID = st.nextID("promo_codes")
		st.promos[created.Code] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) FindPromoByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	err := s.view(ctx, func(st *state) error {
		p, ok := st.promos[code]
		if !ok {
			return domain.ErrPromoNotFound
		}
		promo = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (s *Store) ListPromos(ctx context.Context) ([]*domain.PromoCode, error) {
	list := make([]*domain.PromoCode, 0)
	err := s.view(ctx, func(st *state) error {
		for _, p := range st.promos {
			p := p
			list = append(list, &p)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, err
}

func (s *Store) UpdatePromo(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	var updated domain.PromoCode
	err := s.view(ctx, func(st *state) error {
		existing, ok := st.promos[promo.Code]
		if !ok {
			return domain.ErrPromoNotFound
		}
		updated = *promo
		updated.CurrentUsage = existing.CurrentUsage
		st.promos[promo.Code] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) IncrementPromoUsage(ctx context.Context, code string) (bool, error) {
	applied := false
	err := s.view(ctx, func(st *state) error {
		p, ok := st.promos[code]
		if !ok || !p.Active || !p.HasRemainingUsage() {
			return nil
		}
		p.CurrentUsage++
		st.promos[code] = p
		applied = true
		return nil
	})
	return applied, err
}
