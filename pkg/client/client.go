package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"github.com/diwise/animal-sorter/pkg/animals"
	"github.com/diwise/animal-sorter/pkg/animals/encoding"
	"github.com/diwise/animal-sorter/pkg/animals/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AnimalsClient talks to an animals-api service
type AnimalsClient interface {
	SortAnimals(ctx context.Context, records []animals.Record, opts animals.SortOptions) ([]animals.Animal, error)
	RetrieveKinds(ctx context.Context) ([]animals.Kind, error)
}

func Debug(enabled string) func(*apiClient) {
	return func(c *apiClient) {
		c.debug = (enabled == "true")
	}
}

func Token(token string) func(*apiClient) {
	return func(c *apiClient) {
		c.token = token
	}
}

func NewAnimalsClient(baseURL string, options ...func(*apiClient)) AnimalsClient {
	c := &apiClient{
		baseURL: baseURL,
		debug:   false,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

var tracer = otel.Tracer("animals-api-client")

type apiClient struct {
	baseURL    string
	token      string
	debug      bool
	httpClient http.Client
}

func (c *apiClient) SortAnimals(ctx context.Context, records []animals.Record, opts animals.SortOptions) ([]animals.Animal, error) {
	var err error

	ctx, span := tracer.Start(ctx, "sort-animals",
		trace.WithAttributes(attribute.Int("records", len(records))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if records == nil {
		records = []animals.Record{}
	}

	body, err := json.Marshal(records)
	if err != nil {
		err = errors.NewSerializationError(fmt.Sprintf("failed to marshal records: %s", err.Error()))
		return nil, err
	}

	params := url.Values{}
	params.Add("color", strconv.FormatBool(opts.ByColor))
	params.Add("weight", strconv.FormatBool(opts.ByWeight))
	params.Add("reverse", strconv.FormatBool(opts.Reverse))

	response, responseBody, err := c.callAPI(ctx, http.MethodPost, c.baseURL+"/api/v0/animals?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		err = errors.NewErrorFromProblemReport(response.StatusCode, response.Header.Get("Content-Type"), responseBody)
		return nil, err
	}

	sorted, err := encoding.Decode(encoding.JSON, responseBody)
	if err != nil {
		err = fmt.Errorf("failed to decode response: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, err
	}

	return animals.FromRecords(sorted), nil
}

func (c *apiClient) RetrieveKinds(ctx context.Context) ([]animals.Kind, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-kinds")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, responseBody, err := c.callAPI(ctx, http.MethodGet, c.baseURL+"/api/v0/kinds", nil)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		err = errors.NewErrorFromProblemReport(response.StatusCode, response.Header.Get("Content-Type"), responseBody)
		return nil, err
	}

	kinds := []animals.Kind{}
	err = json.Unmarshal(responseBody, &kinds)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal kinds: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, err
	}

	return kinds, nil
}

func (c *apiClient) callAPI(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Accept", "application/json")

	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
