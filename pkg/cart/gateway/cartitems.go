package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"shopsquare/pkg/cart/service"
)

// CartItemGateway talks to the cart-item service over plain HTTP. Responses
// are relayed untouched; only transport failures become errors.
type CartItemGateway struct {
	client  *http.Client
	baseURL string
}

func NewCartItemGateway(serviceName string) *CartItemGateway {
	return NewCartItemGatewayWithBase("http://" + serviceName)
}

func NewCartItemGatewayWithBase(baseURL string) *CartItemGateway {
	return &CartItemGateway{client: http.DefaultClient, baseURL: baseURL}
}

func (g *CartItemGateway) CreateItem(ctx context.Context, payload map[string]interface{}) (*service.ProxyResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode cart item payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/cart-items", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build cart item create request")
	}
	req.Header.Set("Content-Type", "application/json")

	return g.relay(req)
}

func (g *CartItemGateway) ItemsByCartID(ctx context.Context, cartID int) (*service.ProxyResponse, error) {
	url := fmt.Sprintf("%s/api/cart-items?cartId=%d", g.baseURL, cartID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build cart item list request")
	}

	return g.relay(req)
}

func (g *CartItemGateway) relay(req *http.Request) (*service.ProxyResponse, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call cart item service")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read cart item service response")
	}
	return &service.ProxyResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
