package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/flymarket_pos/internal/core/ports/repositories"
	"github.com/SscSPs/flymarket_pos/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	productsPath      = "products.json"
	customerTypesPath = "customerTypes.json"

	// maxErrorBody bounds how much of a failed response is kept in the error.
	maxErrorBody = 512
)

var (
	// ErrFeedServer is returned when the feed answers with a non-2xx status or cannot be reached.
	ErrFeedServer = errors.New("feed server error")
	// ErrFeedDecoding is returned when the feed body is not the expected JSON document.
	ErrFeedDecoding = errors.New("feed decoding error")
)

// productIDNamespace scopes the deterministic product IDs derived from feed records.
var productIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("flymarket-pos/products"))

type productsResponse struct {
	Products []productRecord `json:"products"`
}

type productRecord struct {
	ImageURL  string          `json:"imageUrl"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Category  string          `json:"category"`
}

type customerTypesResponse struct {
	CustomerTypes []customerTypeRecord `json:"customerTypes"`
}

type customerTypeRecord struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// HTTPFeed reads the catalog documents from a static JSON host.
type HTTPFeed struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFeed creates a feed client rooted at baseURL. Every request is bounded by timeout.
func NewHTTPFeed(baseURL string, timeout time.Duration) *HTTPFeed {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPFeed{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

var _ portsrepo.CatalogFeed = (*HTTPFeed)(nil)

// FetchProducts retrieves products.json. Records that fail validation are skipped.
func (f *HTTPFeed) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var resp productsResponse
	if err := f.get(ctx, productsPath, &resp); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp.Products))
	for i, r := range resp.Products {
		p := domain.Product{
			ProductID: productID(i, r),
			Name:      strings.TrimSpace(r.Name),
			ImageURL:  r.ImageURL,
			Units:     r.Units,
			BasePrice: r.BasePrice,
			Category:  strings.TrimSpace(r.Category),
		}
		if err := p.Validate(); err != nil {
			logger.Warn("Skipping invalid product record", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// FetchCustomerTypes retrieves customerTypes.json. Records that fail validation are skipped.
func (f *HTTPFeed) FetchCustomerTypes(ctx context.Context) ([]domain.CustomerType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var resp customerTypesResponse
	if err := f.get(ctx, customerTypesPath, &resp); err != nil {
		return nil, err
	}

	types := make([]domain.CustomerType, 0, len(resp.CustomerTypes))
	for i, r := range resp.CustomerTypes {
		ct := domain.CustomerType{
			CustomerTypeID:     strings.TrimSpace(r.ID),
			Name:               r.Name,
			DiscountPercentage: r.DiscountPercentage,
		}
		if err := ct.Validate(); err != nil {
			logger.Warn("Skipping invalid customer type record", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		types = append(types, ct)
	}
	return types, nil
}

func (f *HTTPFeed) get(ctx context.Context, path string, out any) error {
	url := f.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrFeedServer, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: GET %s returned %d: %s", ErrFeedServer, url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFeedDecoding, path, err)
	}
	return nil
}

// productID derives a stable ID from the record position and content, so the
// same feed document always yields the same IDs across reloads.
func productID(index int, r productRecord) string {
	key := fmt.Sprintf("%d:%s:%s", index, r.Category, r.Name)
	return uuid.NewSHA1(productIDNamespace, []byte(key)).String()
}
