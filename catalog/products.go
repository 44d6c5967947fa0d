package catalog

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"productshelf/models"

	"github.com/avast/retry-go/v4"
)

// Client exposes the catalog operations the UI needs. All business rules,
// persistence and id assignment live on the service side; this binding only
// moves payloads.
type Client interface {
	ListProducts(ctx context.Context) (*models.ProductList, error)
	CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (*models.Product, error)
}

type productClient struct {
	b Backend
}

func NewClient(backend Backend) Client {
	return &productClient{b: backend}
}

// Reads retry a couple of times; mutations are sent exactly once so a slow
// catalog never multiplies a create or delete.
func listRetryOpts(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100 * time.Millisecond),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	}
}

func (p *productClient) ListProducts(ctx context.Context) (*models.ProductList, error) {
	return retry.DoWithData(func() (*models.ProductList, error) {
		var list models.ProductList
		if err := p.b.Call(ctx, http.MethodGet, "/products", nil, &list); err != nil {
			return nil, err
		}
		return &list, nil
	}, listRetryOpts(ctx)...)
}

func (p *productClient) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := p.b.Call(ctx, http.MethodPost, "/products/add", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) UpdateProduct(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := p.b.Call(ctx, http.MethodPut, "/products/"+url.PathEscape(id), req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.b.Call(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}
