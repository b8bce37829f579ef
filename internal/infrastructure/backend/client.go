// Package backend implementa el cliente HTTP hacia el backend de negocio:
// la capa de fetch de los reportes y el reenvío genérico del proxy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tu-usuario/panel-comercial/internal/domain"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
	"github.com/tu-usuario/panel-comercial/pkg/config"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

// Client cliente hacia BACKEND_URL. Las lecturas y escrituras usan timeouts
// distintos (5s / 10s por defecto) vía context por petición.
type Client struct {
	cfg  config.BackendConfig
	http *http.Client
	log  *logger.Logger
}

// New construye el cliente. El *http.Client no lleva Timeout propio: el plazo
// se controla con context.WithTimeout según el verbo.
func New(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  log,
	}
}

// ProxyResult respuesta cruda del backend, lista para relé.
type ProxyResult struct {
	Status      int
	Body        []byte
	ContentType string
}

// OK indica respuesta 2xx.
func (r *ProxyResult) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Forward reenvía la petición al backend y devuelve la respuesta cruda.
// Fallos de red o timeout se reportan como domain.ErrBackendUnavailable;
// las respuestas no-2xx NO son error aquí, se relayan aguas arriba.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*ProxyResult, error) {
	timeout := c.cfg.ReadTimeout
	if isWrite(method) {
		timeout = c.cfg.WriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: construir petición: %w", err)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leyendo respuesta: %v", domain.ErrBackendUnavailable, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	return &ProxyResult{Status: resp.StatusCode, Body: b, ContentType: ct}, nil
}

func isWrite(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// ErrorMessage extrae el mensaje de error del cuerpo del backend
// ({"message": ...} o {"error": ...}); si no hay, mensaje genérico.
func ErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "Backend server error"
}

// ── Capa de fetch para los reportes ───────────────────────────────────────────

// ListOrders descarga hasta limit órdenes.
func (c *Client) ListOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	var rows []entity.Order
	err := c.listJSON(ctx, "/orders", limit, &rows)
	return rows, err
}

// ListCustomers descarga hasta limit clientes.
func (c *Client) ListCustomers(ctx context.Context, limit int) ([]entity.Customer, error) {
	var rows []entity.Customer
	err := c.listJSON(ctx, "/customers", limit, &rows)
	return rows, err
}

// ListOrderItems descarga hasta limit líneas de orden.
func (c *Client) ListOrderItems(ctx context.Context, limit int) ([]entity.OrderItem, error) {
	var rows []entity.OrderItem
	err := c.listJSON(ctx, "/order-items", limit, &rows)
	return rows, err
}

// ListProducts descarga hasta limit productos.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	var rows []entity.Product
	err := c.listJSON(ctx, "/products", limit, &rows)
	return rows, err
}

// listJSON hace GET path?limit=N y decodifica un arreglo JSON en out.
// Un cuerpo 2xx que no sea arreglo degrada a colección vacía (se loguea,
// no se propaga error): los agregadores producen resultado vacío.
func (c *Client) listJSON(ctx context.Context, path string, limit int, out any) error {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	res, err := c.Forward(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if !res.OK() {
		return &domain.BackendError{Status: res.Status, Message: ErrorMessage(res.Body)}
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		c.log.Warn().Str("path", path).Err(err).
			Msg("respuesta del backend no es un arreglo JSON; se degrada a colección vacía")
	}
	return nil
}

// GetInvoice descarga una factura por id. Devuelve nil sin error si no existe.
func (c *Client) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	res, err := c.Forward(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	if res.Status == http.StatusNotFound {
		return nil, nil
	}
	if !res.OK() {
		return nil, &domain.BackendError{Status: res.Status, Message: ErrorMessage(res.Body)}
	}
	var inv entity.Invoice
	if err := json.Unmarshal(res.Body, &inv); err != nil {
		return nil, fmt.Errorf("backend: decodificar factura: %w", err)
	}
	return &inv, nil
}
