package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ProductStockGateway calls the product service's stock decrement endpoint
// over plain HTTP.
type ProductStockGateway struct {
	client  *http.Client
	baseURL string
}

func NewProductStockGateway(serviceName string) *ProductStockGateway {
	return NewProductStockGatewayWithBase("http://" + serviceName)
}

func NewProductStockGatewayWithBase(baseURL string) *ProductStockGateway {
	return &ProductStockGateway{client: http.DefaultClient, baseURL: baseURL}
}

func (g *ProductStockGateway) DecrementStock(ctx context.Context, productID, qty int) error {
	url := fmt.Sprintf("%s/api/products/%d/decrement?qty=%d", g.baseURL, productID, qty)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return errors.Wrap(err, "build stock decrement request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call product service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("product service returned status %d for product %d", resp.StatusCode, productID)
	}
	return nil
}
