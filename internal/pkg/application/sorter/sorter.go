package sorter

import (
	"context"

	"github.com/diwise/animal-sorter/pkg/animals"
	"github.com/diwise/animal-sorter/pkg/animals/encoding"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("animal-sorter/sorter")

//go:generate moq -rm -out sorter_mock.go . Sorter

// Sorter turns a document of animal records into a sorted document of animals
type Sorter interface {
	// Resolve decodes a document and resolves its records into animals, dropping
	// records of unknown kinds
	Resolve(ctx context.Context, body []byte, format encoding.Format) ([]animals.Animal, error)
	// Render orders the animals according to opts and encodes them
	Render(ctx context.Context, collection []animals.Animal, opts animals.SortOptions, format encoding.Format) ([]byte, error)
	// Run resolves and renders a document in one go
	Run(ctx context.Context, body []byte, in, out encoding.Format, opts animals.SortOptions) ([]byte, error)
}

type sorterImpl struct{}

func New() Sorter {
	return &sorterImpl{}
}

func (s *sorterImpl) Resolve(ctx context.Context, body []byte, format encoding.Format) ([]animals.Animal, error) {
	var err error

	ctx, span := tracer.Start(ctx, "resolve-animals", trace.WithAttributes(attribute.String("format", string(format))))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	records, err := encoding.Decode(format, body)
	if err != nil {
		return nil, err
	}

	collection := animals.FromRecords(records)

	dropped := len(records) - len(collection)
	span.SetAttributes(attribute.Int("records", len(records)), attribute.Int("dropped", dropped))

	if dropped > 0 {
		log.Debug("dropped records of unknown kinds", "records", len(records), "dropped", dropped)
	}

	return collection, nil
}

func (s *sorterImpl) Render(ctx context.Context, collection []animals.Animal, opts animals.SortOptions, format encoding.Format) ([]byte, error) {
	var err error

	_, span := tracer.Start(ctx, "render-animals",
		trace.WithAttributes(
			attribute.Bool("sort_by_color", opts.ByColor),
			attribute.Bool("sort_by_weight", opts.ByWeight),
			attribute.Bool("reverse", opts.Reverse),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	animals.Sort(collection, opts)

	b, err := encoding.Encode(format, collection)
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *sorterImpl) Run(ctx context.Context, body []byte, in, out encoding.Format, opts animals.SortOptions) ([]byte, error) {
	collection, err := s.Resolve(ctx, body, in)
	if err != nil {
		return nil, err
	}

	return s.Render(ctx, collection, opts, out)
}
