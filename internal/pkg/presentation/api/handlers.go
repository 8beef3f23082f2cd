package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/diwise/animal-sorter/internal/pkg/application/sorter"
	"github.com/diwise/animal-sorter/internal/pkg/presentation/api/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

const (
	contentTypeJSON string = "application/json"
	contentTypeYAML string = "application/yaml"
)

func RegisterHandlers(ctx context.Context, r chi.Router, logger *slog.Logger, policies io.Reader, app sorter.Sorter) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(Logger(logger))

		r.Get("/kinds", NewRetrieveKindsHandler())

		r.With(
			RequiredContentTypes([]string{contentTypeJSON, contentTypeYAML, "application/x-yaml", "text/yaml"}),
		).Post("/animals", NewSortAnimalsHandler(app, authenticator))
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

// boolParam treats a present parameter without a value (?reverse) as true
func boolParam(r *http.Request, name string) (bool, error) {
	values, ok := r.URL.Query()[name]
	if !ok {
		return false, nil
	}

	if len(values) == 0 || values[0] == "" {
		return true, nil
	}

	b, err := strconv.ParseBool(values[0])
	if err != nil {
		return false, fmt.Errorf("query parameter %s must be a boolean", name)
	}

	return b, nil
}
