package http

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var openAPISpec []byte

var registerSwaggerOnce sync.Once

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// RequestValidator rejects requests that do not match doc with 400.
// Requests to paths the document does not describe pass through unchecked.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return findErr
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: validateErr.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}

// swaggerDoc serves the OpenAPI document to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc publishes doc under swag.Name. swag only accepts one
// registration per name, so later calls are ignored.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
