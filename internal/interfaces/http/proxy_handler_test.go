package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-comercial/internal/application/billing"
	"github.com/tu-usuario/panel-comercial/internal/application/report"
	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
	"github.com/tu-usuario/panel-comercial/internal/infrastructure/backend"
	infrapdf "github.com/tu-usuario/panel-comercial/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/panel-comercial/internal/interfaces/http"
	"github.com/tu-usuario/panel-comercial/pkg/config"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testToken = "Bearer token-de-prueba"

var testProfile = entity.CompanyProfile{
	Name:  "Comercial El Faro",
	TaxID: "900123456-7",
}

// buildTestApp levanta la app completa (router real) contra un backend falso.
// jwtSecret vacío = solo se valida presencia del Bearer token.
func buildTestApp(t *testing.T, backendHandler http.Handler, jwtSecret string) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	client := backend.New(config.BackendConfig{
		BaseURL:      srv.URL,
		ReadTimeout:  200 * time.Millisecond,
		WriteTimeout: 400 * time.Millisecond,
		FetchLimit:   100,
	}, log)

	app := fiber.New()
	proxy := apphttp.NewProxyHandler(client, log)
	apphttp.Router(app, apphttp.RouterDeps{
		Proxy:      proxy,
		Reports:    apphttp.NewReportHandler(report.NewUseCase(client, 100), log),
		Dashboard:  apphttp.NewDashboardHandler(proxy),
		InvoicePDF: apphttp.NewInvoiceHandler(billing.NewDocumentUseCase(client, infrapdf.NewMarotoInvoiceRenderer(), testProfile), log),
		JWTSecret:  jwtSecret,
	})
	return app
}

// doRequest lanza una petición con el Authorization indicado.
func doRequest(t *testing.T, app *fiber.App, method, target, authHeader string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Error
}

// okBackend responde 200 con un arreglo vacío a todo.
func okBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
}

// slowBackend duerme más que el read timeout del cliente de test.
func slowBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(600 * time.Millisecond)
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación del proxy
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 {"error":"Unauthorized"}.
func TestProxy_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(t, okBackend(), "")
	resp := doRequest(t, app, http.MethodGet, "/api/orders", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", errorBody(t, resp))
}

func TestProxy_HeaderMalformado_Retorna401(t *testing.T) {
	app := buildTestApp(t, okBackend(), "")
	for _, header := range []string{"token-sin-esquema", "Basic abc123", "Bearer "} {
		resp := doRequest(t, app, http.MethodGet, "/api/orders", header, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header=%q", header)
		resp.Body.Close()
	}
}

func TestProxy_ConToken_Reenvia(t *testing.T) {
	app := buildTestApp(t, okBackend(), "")
	resp := doRequest(t, app, http.MethodGet, "/api/orders", testToken, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reenvío y allow-list de query params
// ──────────────────────────────────────────────────────────────────────────────

func TestProxy_FiltraQueryParams(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodGet,
		"/api/orders?limit=5&status=pending&hack=1&search=x", testToken, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, gotQuery, "limit=5")
	assert.Contains(t, gotQuery, "status=pending")
	assert.NotContains(t, gotQuery, "hack", "params fuera de la allow-list se descartan")
	assert.NotContains(t, gotQuery, "search", "search no es param de /orders")
}

func TestProxy_EscrituraReenviaCuerpoLiteral(t *testing.T) {
	var gotBody string
	var gotMethod string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotMethod = r.Method
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":99}`))
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodPost, "/api/orders", testToken,
		strings.NewReader(`{"customer_id":1,"total_amount":"50"}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.JSONEq(t, `{"customer_id":1,"total_amount":"50"}`, gotBody)

	b, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"id":99}`, string(b))
}

func TestProxy_RutaConID(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodPut, "/api/products/37", testToken,
		strings.NewReader(`{"name":"Nuevo"}`))
	defer resp.Body.Close()

	assert.Equal(t, "/products/37", gotPath)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

// Timeout del backend → 503 {"error":"Backend server not available"}.
func TestProxy_TimeoutRetorna503(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(600 * time.Millisecond) // supera el read timeout de 200ms
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodGet, "/api/orders", testToken, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Backend server not available", errorBody(t, resp))
}

// Rechazo explícito del backend → status relayado con su mensaje.
func TestProxy_RelayaRechazoDelBackend(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"order not found"}`))
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodGet, "/api/orders/123", testToken, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order not found", errorBody(t, resp))
}

// Backend con error sin mensaje → mensaje genérico.
func TestProxy_RechazoSinMensaje(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	})
	app := buildTestApp(t, handler, "")

	resp := doRequest(t, app, http.MethodGet, "/api/activities", testToken, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Backend server error", errorBody(t, resp))
}
