package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"venue_booking/model"
)

// supabaseOrderRow is the snake_case row shape of the orders table.
type supabaseOrderRow struct {
	ID            string           `json:"id"`
	PublicCode    string           `json:"public_code"`
	Items         []model.LineItem `json:"items"`
	PaymentStatus string           `json:"payment_status"`
	Status        string           `json:"status"`
	CustomerName  string           `json:"customer_name"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (r supabaseOrderRow) toOrder() model.Order {
	return model.Order{
		ID:            r.ID,
		PublicCode:    r.PublicCode,
		Items:         r.Items,
		PaymentStatus: r.PaymentStatus,
		Status:        r.Status,
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Email:         r.Email,
		CreatedAt:     r.CreatedAt,
	}
}

type SupabaseOrderStore struct {
	client *supa.Client
	table  string
}

func NewSupabaseOrderStore(url, serviceKey string) (*SupabaseOrderStore, error) {
	client, err := supa.NewClient(url, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &SupabaseOrderStore{client: client, table: "orders"}, nil
}

// Find queries PostgREST. The client has no context support, so ctx is only
// checked before the call.
func (s *SupabaseOrderStore) Find(ctx context.Context, q OrderQuery) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query := s.client.From(s.table).Select("*", "", false)
	if !q.IsZero() {
		col, ok := columnFor(q.Field)
		if !ok {
			return nil, fmt.Errorf("unsupported order filter %q", q.Field)
		}
		query = query.Eq(col, q.Value)
	}
	data, _, err := query.Order("created_at", &postgrest.OrderOpts{Ascending: false}).Execute()
	if err != nil {
		return nil, err
	}
	var rows []supabaseOrderRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	orders := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.toOrder())
	}
	return orders, nil
}
