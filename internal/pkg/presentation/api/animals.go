package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/animal-sorter/internal/pkg/application/sorter"
	"github.com/diwise/animal-sorter/internal/pkg/presentation/api/auth"
	apierrors "github.com/diwise/animal-sorter/internal/pkg/presentation/api/errors"
	"github.com/diwise/animal-sorter/pkg/animals"
	"github.com/diwise/animal-sorter/pkg/animals/encoding"
	animalerrors "github.com/diwise/animal-sorter/pkg/animals/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("animal-sorter/api/animals")

// NewSortAnimalsHandler handles POST requests carrying a sequence of animal records
// and responds with the known animals, sorted according to the query parameters
func NewSortAnimalsHandler(app sorter.Sorter, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "sort-animals")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		defer func() { addLabelIfError(err, labeler) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		opts := animals.SortOptions{}

		if opts.ByColor, err = boolParam(r, "color"); err == nil {
			if opts.ByWeight, err = boolParam(r, "weight"); err == nil {
				opts.Reverse, err = boolParam(r, "reverse")
			}
		}

		if err != nil {
			apierrors.ReportNewInvalidRequest(w, err.Error(), traceID)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			apierrors.ReportNewBadRequestData(w, "unable to read request body", traceID)
			return
		}

		collection, err := app.Resolve(ctx, body, formatFromContentType(r.Header.Get("Content-Type")))
		if err != nil {
			if errors.Is(err, animalerrors.ErrMalformedInput) {
				apierrors.ReportNewBadRequestData(w, err.Error(), traceID)
			} else {
				log.Error("failed to resolve animals", "err", err.Error())
				apierrors.ReportNewInternalError(w, "failed to resolve animals", traceID)
			}
			return
		}

		err = authenticator.CheckAccess(ctx, r, kindsOf(collection))
		if err != nil {
			log.Warn("access not granted", "err", err.Error())
			apierrors.ReportUnauthorizedRequest(w, "access denied", traceID)
			return
		}

		responseFormat, contentType := formatFromAccept(r.Header.Get("Accept"))

		responseBody, err := app.Render(ctx, collection, opts, responseFormat)
		if err != nil {
			log.Error("failed to render animals", "err", err.Error())
			apierrors.ReportNewInternalError(w, "failed to render animals", traceID)
			return
		}

		w.Header().Add("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(responseBody)
	})
}

// NewRetrieveKindsHandler responds with the kinds of animals that are known
func NewRetrieveKindsHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responseBody, err := json.Marshal(animals.Kinds())
		if err != nil {
			apierrors.ReportNewInternalError(w, "failed to marshal kinds", "")
			return
		}

		w.Header().Add("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		w.Write(responseBody)
	})
}

func kindsOf(collection []animals.Animal) []string {
	seen := map[animals.Kind]bool{}
	kinds := []string{}

	for _, a := range collection {
		if !seen[a.Kind()] {
			seen[a.Kind()] = true
			kinds = append(kinds, a.Kind().String())
		}
	}

	return kinds
}

func formatFromContentType(contentType string) encoding.Format {
	if strings.Contains(contentType, "yaml") {
		return encoding.YAML
	}
	return encoding.JSON
}

func formatFromAccept(accept string) (encoding.Format, string) {
	if strings.Contains(accept, "yaml") {
		return encoding.YAML, contentTypeYAML
	}
	return encoding.JSON, contentTypeJSON
}

func addLabelIfError(err error, labeler *otelhttp.Labeler) {
	if err != nil && labeler != nil {
		labeler.Add(attribute.Bool("error", true))
	}
}
