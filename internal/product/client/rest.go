package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avelasco/productos-client/config"
	"github.com/avelasco/productos-client/internal/model"
	"github.com/avelasco/productos-client/internal/product"
	"github.com/avelasco/productos-client/pkg/logger"
	"github.com/google/uuid"
	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"go.uber.org/zap"
)

const collectionPath = "/api/productos"

// RESTClient implements product.Client against the HTTP contract of the
// remote service: GET/POST on the collection, PUT/DELETE on /{id}.
type RESTClient struct {
	baseURL string
	g       *dataflow.Gout
	logger  logger.ZapLogger
}

func NewRESTClient(cfg *config.ClientConfig, log logger.ZapLogger) *RESTClient {
	hc := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	return &RESTClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		g:       gout.New(hc),
		logger:  log,
	}
}

func (c *RESTClient) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, c.baseURL+collectionPath, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RESTClient) Create(ctx context.Context, draft *model.Product) (*model.Product, error) {
	// The server assigns ids; whatever the draft carries is dropped.
	body := draft.Clone()
	body.ID = 0

	var created model.Product
	if err := c.do(ctx, http.MethodPost, c.baseURL+collectionPath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) Update(ctx context.Context, id int64, p *model.Product) (*model.Product, error) {
	body := p.Clone()
	body.ID = id

	var updated model.Product
	url := fmt.Sprintf("%s%s/%d", c.baseURL, collectionPath, id)
	if err := c.do(ctx, http.MethodPut, url, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s%s/%d", c.baseURL, collectionPath, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

// do issues a single request and maps the outcome onto the error taxonomy:
// no response at all becomes TransportError, a non-2xx response becomes
// RemoteError. The raw body is bound first so status handling stays ours.
func (c *RESTClient) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	requestID := uuid.New().String()

	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = c.g.GET(url)
	case http.MethodPost:
		df = c.g.POST(url)
	case http.MethodPut:
		df = c.g.PUT(url)
	case http.MethodDelete:
		df = c.g.DELETE(url)
	default:
		return fmt.Errorf("unsupported method %q", method)
	}

	df = df.WithContext(ctx).SetHeader(gout.H{
		"X-Request-Id": requestID,
		"Accept":       "application/json",
	})
	if body != nil {
		df = df.SetJSON(body)
	}

	c.logger.Debug("issuing request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", requestID))

	var raw []byte
	var code int
	if err := df.BindBody(&raw).Code(&code).Do(); err != nil {
		c.logger.Warn("request failed before a response arrived",
			zap.String("method", method),
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &product.TransportError{Method: method, URL: url, Err: err}
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		c.logger.Warn("request rejected by server",
			zap.String("method", method),
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Int("status", code))
		return &product.RemoteError{Method: method, URL: url, Status: code, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, url, err)
		}
	}
	return nil
}
