package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/govalues/decimal"
)

// jsonDecimal is a monetary amount written as a JSON number with its scale kept. It reads both
// numbers and quoted strings.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

func (j *jsonDecimal) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if string(data) == "null" || len(data) == 0 {
		return nil
	}
	d, err := decimal.Parse(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	*j = jsonDecimal(d)
	return nil
}

func (j jsonDecimal) decimal() decimal.Decimal {
	return decimal.Decimal(j)
}

const dateLayout = "2006-01-02"

type productRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       jsonDecimal `json:"price"`
	Stock       int         `json:"stock"`
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

type productResponse struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       jsonDecimal `json:"price"`
	Stock       int         `json:"stock"`
	Deleted     bool        `json:"deleted,omitempty"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       jsonDecimal(p.Price),
		Stock:       p.Stock,
		Deleted:     p.Deleted,
	}
}

type clientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type clientResponse struct {
	ID           uint64      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Tier         string      `json:"tier"`
	TotalOrders  int         `json:"total_orders"`
	TotalSpent   jsonDecimal `json:"total_spent"`
	FirstOrderAt *time.Time  `json:"first_order_at,omitempty"`
	LastOrderAt  *time.Time  `json:"last_order_at,omitempty"`
}

func newClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Tier:         string(c.Tier),
		TotalOrders:  c.TotalOrders,
		TotalSpent:   jsonDecimal(c.TotalSpent),
		FirstOrderAt: c.FirstOrderAt,
		LastOrderAt:  c.LastOrderAt,
	}
}

type orderLineRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderRequest struct {
	ClientID  uint64             `json:"client_id"`
	Items     []orderLineRequest `json:"items"`
	PromoCode string             `json:"promo_code"`
}

type orderItemResponse struct {
	ProductID   uint64      `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    int         `json:"quantity"`
	UnitPrice   jsonDecimal `json:"unit_price"`
	LineTotal   jsonDecimal `json:"line_total"`
}

type orderResponse struct {
	ID              uint64                          `json:"id"`
	ClientID        uint64                          `json:"client_id"`
	Status          string                          `json:"status"`
	CreatedAt       time.Time                       `json:"created_at"`
	Items           []orderItemResponse             `json:"items"`
	Subtotal        jsonDecimal                     `json:"subtotal"`
	DiscountAmount  jsonDecimal                     `json:"discount_amount"`
	TaxAmount       jsonDecimal                     `json:"tax_amount"`
	TotalAmount     jsonDecimal                     `json:"total_amount"`
	RemainingAmount jsonDecimal                     `json:"remaining_amount"`
	PromoCode       string                          `json:"promo_code,omitempty"`
	Shortages       map[string]domain.StockShortage `json:"shortages,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:   i.ProductID,
			ProductName: i.ProductName,
			Quantity:    i.Quantity,
			UnitPrice:   jsonDecimal(i.UnitPrice),
			LineTotal:   jsonDecimal(i.LineTotal),
		})
	}
	return orderResponse{
		ID:              o.ID,
		ClientID:        o.ClientID,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		Items:           items,
		Subtotal:        jsonDecimal(o.Subtotal),
		DiscountAmount:  jsonDecimal(o.DiscountAmount),
		TaxAmount:       jsonDecimal(o.TaxAmount),
		TotalAmount:     jsonDecimal(o.TotalAmount),
		RemainingAmount: jsonDecimal(o.RemainingAmount),
		PromoCode:       o.PromoCode,
		Shortages:       o.Shortages,
	}
}

type paymentRequest struct {
	OrderID   uint64      `json:"order_id"`
	Amount    jsonDecimal `json:"amount"`
	Method    string      `json:"method"`
	Reference string      `json:"reference"`
	Bank      string      `json:"bank"`
	DueDate   string      `json:"due_date"`
}

func (r paymentRequest) toDomain() (domain.PaymentRequest, error) {
	req := domain.PaymentRequest{
		OrderID:   r.OrderID,
		Amount:    r.Amount.decimal(),
		Method:    domain.PaymentMethod(r.Method),
		Reference: r.Reference,
		Bank:      r.Bank,
	}
	if r.DueDate != "" {
		due, err := time.Parse(dateLayout, r.DueDate)
		if err != nil {
			return req, domain.Validationf("due date must be formatted as %s", dateLayout)
		}
		req.DueDate = &due
	}
	return req, nil
}

type paymentResponse struct {
	ID        uint64      `json:"id"`
	OrderID   uint64      `json:"order_id"`
	Number    int         `json:"number"`
	Amount    jsonDecimal `json:"amount"`
	Method    string      `json:"method"`
	Status    string      `json:"status"`
	PaidAt    time.Time   `json:"paid_at"`
	ClearedAt *time.Time  `json:"cleared_at,omitempty"`
	Reference string      `json:"reference,omitempty"`
	Bank      string      `json:"bank,omitempty"`
	DueDate   string      `json:"due_date,omitempty"`
}

func newPaymentResponse(p *domain.Payment) paymentResponse {
	resp := paymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Number:    p.Number,
		Amount:    jsonDecimal(p.Amount),
		Method:    string(p.Method),
		Status:    string(p.Status),
		PaidAt:    p.PaidAt,
		ClearedAt: p.ClearedAt,
		Reference: p.Reference,
		Bank:      p.Bank,
	}
	if p.DueDate != nil {
		resp.DueDate = p.DueDate.Format(dateLayout)
	}
	return resp
}

type promoRequest struct {
	Code               string      `json:"code"`
	DiscountPercentage jsonDecimal `json:"discount_percentage"`
	MaxUsage           *int        `json:"max_usage"`
}

type promoResponse struct {
	ID                 uint64      `json:"id"`
	Code               string      `json:"code"`
	DiscountPercentage jsonDecimal `json:"discount_percentage"`
	Active             bool        `json:"active"`
	MaxUsage           *int        `json:"max_usage,omitempty"`
	CurrentUsage       int         `json:"current_usage"`
}

func newPromoResponse(p *domain.PromoCode) promoResponse {
	return promoResponse{
		ID:                 p.ID,
		Code:               p.Code,
		DiscountPercentage: jsonDecimal(p.DiscountPercentage),
		Active:             p.Active,
		MaxUsage:           p.MaxUsage,
		CurrentUsage:       p.CurrentUsage,
	}
}

func mapList[T any, R any](list []T, fn func(T) R) []R {
	result := make([]R, 0, len(list))
	for _, item := range list {
		result = append(result, fn(item))
	}
	return result
}
