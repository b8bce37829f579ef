package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/internal/domain"
	"github.com/tu-usuario/panel-comercial/internal/infrastructure/backend"
	"github.com/tu-usuario/panel-comercial/pkg/logger"
)

// commonParams query params aceptados en todas las rutas proxy.
var commonParams = []string{"limit", "sort", "order"}

// ProxyRoute describe una ruta que se reenvía tal cual al backend.
// Params lista los query params propios de la ruta (además de los comunes);
// todo lo que no esté en la lista se descarta antes de reenviar.
type ProxyRoute struct {
	BackendPath string
	Params      []string
}

// ProxyHandler reenvía peticiones autenticadas al backend de negocio y relaya
// la respuesta, mapeando fallos según la taxonomía del servicio:
// timeout/red → 503, rechazo del backend → status relayado, resto → 500.
type ProxyHandler struct {
	client *backend.Client
	log    *logger.Logger
}

// NewProxyHandler construye el handler.
func NewProxyHandler(client *backend.Client, log *logger.Logger) *ProxyHandler {
	return &ProxyHandler{client: client, log: log}
}

// Relay devuelve el fiber.Handler para la ruta indicada. Soporta el parámetro
// de ruta :id; los verbos de escritura reenvían el cuerpo JSON literal.
func (h *ProxyHandler) Relay(route ProxyRoute) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := route.BackendPath
		if id := c.Params("id"); id != "" {
			path += "/" + url.PathEscape(id)
		}

		query := filterQuery(c, route.Params)

		var body []byte
		method := c.Method()
		if method != fiber.MethodGet && method != fiber.MethodHead {
			body = c.Body()
		}

		res, err := h.client.Forward(c.Context(), method, path, query, body)
		if err != nil {
			return RespondError(c, h.log, err)
		}
		if !res.OK() {
			return c.Status(res.Status).JSON(dto.ErrorResponse{Error: backend.ErrorMessage(res.Body)})
		}

		c.Set(fiber.HeaderContentType, res.ContentType)
		return c.Status(res.Status).Send(res.Body)
	}
}

// filterQuery copia solo los params permitidos (comunes + propios de la ruta).
func filterQuery(c *fiber.Ctx, routeParams []string) url.Values {
	query := url.Values{}
	for _, name := range commonParams {
		if v := c.Query(name); v != "" {
			query.Set(name, v)
		}
	}
	for _, name := range routeParams {
		if v := c.Query(name); v != "" {
			query.Set(name, v)
		}
	}
	return query
}

// RespondError mapea un error interno al cuerpo {"error": ...} del contrato.
func RespondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if errors.Is(err, domain.ErrBackendUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(dto.ErrorResponse{Error: "Backend server not available"})
	}
	if be, ok := domain.AsBackendError(err); ok {
		return c.Status(be.Status).JSON(dto.ErrorResponse{Error: be.Message})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno del proxy")
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.ErrorResponse{Error: "Internal server error"})
}
