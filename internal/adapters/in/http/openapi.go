package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// requestValidation checks requests against the OpenAPI document before they
// reach the handlers. Routes the document does not describe pass through.
func requestValidation(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return failure(ctx, http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return failure(ctx, http.StatusBadRequest, validationMessage(err))
			}
			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil && reqErr.Err != nil {
			return "invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Err.Error()
		}
		if reqErr.RequestBody != nil && reqErr.Err != nil {
			return "invalid request body: " + reqErr.Err.Error()
		}
	}
	return err.Error()
}

// apiDoc feeds the embedded document to swag so that echo-swagger can serve it.
type apiDoc struct {
	doc *openapi3.T
}

func (d apiDoc) ReadDoc() string {
	data, err := d.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

var registerDoc sync.Once

func registerSwagger(doc *openapi3.T) {
	registerDoc.Do(func() {
		swag.Register(swag.Name, apiDoc{doc: doc})
	})
}

func openAPIJSON(doc *openapi3.T) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, []byte(apiDoc{doc: doc}.ReadDoc()))
	}
}
