package http

import (
	"log/slog"

	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP router: the OpenAPI request filter, the generated
// API routes, the API document and the Swagger UI.
func NewEcho(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "HTTP")

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validation, err := requestValidation(doc)
	if err != nil {
		return nil, err
	}
	registerSwagger(doc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warn("request",
					"method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "error", v.Error)
				return nil
			}
			logger.Info("request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(validation)

	servers.RegisterHandlers(e, server)
	e.GET("/openapi.json", openAPIJSON(doc))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
