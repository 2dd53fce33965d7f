// Package client is the shared kit behind the customer app and the worker
// dashboard: a typed HTTP client for the backend, the in-memory cart, and
// the polling loops that keep each view in sync.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"food-ordering/internal/domain"
	"food-ordering/internal/services"
)

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// OrderPayload is the POST /orders body built from a cart at checkout.
type OrderPayload struct {
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	CustomerEmail   string           `json:"customerEmail,omitempty"`
	DeliveryAddress string           `json:"deliveryAddress,omitempty"`
	OrderType       domain.OrderType `json:"orderType"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Items           []OrderLine      `json:"items"`
}

type OrderLine struct {
	MenuItemID uint64 `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type OrderReceipt struct {
	ID     uint64             `json:"id"`
	Status domain.OrderStatus `json:"status"`
	Total  float64            `json:"total"`
}

func (c *APIClient) GetCatalog(ctx context.Context) ([]domain.MenuCategory, error) {
	var cats []domain.MenuCategory
	if err := c.get(ctx, "/menu/catalog", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *APIClient) GetBusinessInfo(ctx context.Context) (*domain.BusinessInfo, error) {
	var info domain.BusinessInfo
	if err := c.get(ctx, "/business", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *APIClient) SubmitOrder(ctx context.Context, payload OrderPayload) (*OrderReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("order submission returned status %d", resp.StatusCode)
	}
	var receipt OrderReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *APIClient) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	path := "/orders"
	if status != "" {
		path += "?status=" + string(status)
	}
	var orders []domain.Order
	if err := c.get(ctx, path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *APIClient) GetOrderStatus(ctx context.Context, id uint64) (*services.OrderStatusView, error) {
	var view services.OrderStatusView
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/status", id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *APIClient) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/orders/%d/status", id), map[string]any{"status": status})
}

func (c *APIClient) CancelOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	return c.putOrder(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil)
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *APIClient) putOrder(ctx context.Context, path string, body any) (*domain.Order, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	var order domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
