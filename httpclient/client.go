package httpclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/andyle182810/gapireq/logutil"
	"github.com/andyle182810/gapireq/validator"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Verb string

const (
	VerbGet    Verb = "GET"
	VerbPost   Verb = "POST"
	VerbDelete Verb = "DELETE"
)

// Descriptor describes a single call. An empty AuthToken and a nil Payload mean
// the caller supplied none.
type Descriptor struct {
	Verb      Verb   `field:"verb"    validate:"oneof=GET POST DELETE"`
	BaseURI   string `field:"baseUri" validate:"required"`
	Endpoint  string
	AuthToken string
	Payload   map[string]any
}

func (d Descriptor) URL() string {
	return d.BaseURI + d.Endpoint
}

type Headers map[string]string

// BuildHeaders returns the client header set: JSON content type always, bearer
// authorization only for a non-empty token.
func BuildHeaders(authToken string) Headers {
	headers := Headers{
		HeaderContentType: ContentTypeJSON,
	}

	if authToken != "" {
		headers[HeaderAuthorization] = BearerPrefix + authToken
	}

	return headers
}

type ClientFactory func(headers Headers) *resty.Client

func NewRestyClient(headers Headers) *resty.Client {
	return resty.New().SetHeaders(headers)
}

type Dispatcher struct {
	newClient    ClientFactory
	logger       zerolog.Logger
	validator    *validator.Validator
	requestIDKey any
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		newClient:    nil,
		logger:       log.Logger,
		validator:    validator.New(),
		requestIDKey: nil,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

var defaultDispatcher = NewDispatcher()

// Request issues verb against baseURI+endpoint with the default dispatcher.
func Request(
	ctx context.Context,
	verb Verb,
	baseURI string,
	endpoint string,
	authToken string,
	payload map[string]any,
) (*resty.Response, error) {
	return defaultDispatcher.Request(ctx, verb, baseURI, endpoint, authToken, payload)
}

func (d *Dispatcher) Request(
	ctx context.Context,
	verb Verb,
	baseURI string,
	endpoint string,
	authToken string,
	payload map[string]any,
) (*resty.Response, error) {
	return d.Do(ctx, Descriptor{
		Verb:      verb,
		BaseURI:   baseURI,
		Endpoint:  endpoint,
		AuthToken: authToken,
		Payload:   payload,
	})
}

// Do dispatches desc on a client built for this call only. Successful responses
// are returned untouched; every failure is a *RequestError.
func (d *Dispatcher) Do(ctx context.Context, desc Descriptor) (*resty.Response, error) {
	if err := d.validator.Validate(desc); err != nil {
		return nil, newRequestError(nil, err)
	}

	client := d.buildClient(BuildHeaders(desc.AuthToken))
	client.OnAfterResponse(rejectUnsuccessful)

	requestID := d.extractRequestID(ctx)
	target := desc.URL()

	logger := d.logger.With().
		Str("verb", string(desc.Verb)).
		Str("url", target).
		Str("request_id", requestID).
		Logger()

	req := client.R().
		SetContext(ctx).
		SetHeader(HeaderXRequestID, requestID)

	logger.Debug().Msg("Dispatching request")

	var (
		resp *resty.Response
		err  error
	)

	switch desc.Verb {
	case VerbGet:
		if len(desc.Payload) > 0 {
			req.SetQueryParamsFromValues(queryValues(desc.Payload))
		}

		resp, err = req.Get(target)
	case VerbPost:
		if desc.Payload != nil {
			req.SetBody(desc.Payload)
		}

		resp, err = req.Post(target)
	case VerbDelete:
		resp, err = req.Delete(target)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedVerb, desc.Verb)
	}

	if err != nil {
		reqErr := newRequestError(resp, err)

		logger.Debug().
			Err(err).
			Int("status", reqErr.HTTPStatusCode).
			Msg("Request failed")

		return nil, reqErr
	}

	logger.Debug().Int("status", resp.StatusCode()).Msg("Request completed")

	return resp, nil
}

// buildClient routes resty output to the dispatcher logger only for clients it
// builds itself; a custom factory keeps whatever logger it configured. A factory
// returning nil falls back to the default client.
func (d *Dispatcher) buildClient(headers Headers) *resty.Client {
	if d.newClient != nil {
		if client := d.newClient(headers); client != nil {
			return client
		}
	}

	return NewRestyClient(headers).SetLogger(logutil.NewRestyLogger(d.logger))
}

func (d *Dispatcher) extractRequestID(ctx context.Context) string {
	if d.requestIDKey != nil {
		if id, ok := ctx.Value(d.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

// queryValues skips nil entries and expands slices into repeated keys.
func queryValues(payload map[string]any) url.Values {
	values := make(url.Values, len(payload))

	for key, value := range payload {
		switch typed := value.(type) {
		case nil:
			continue
		case []string:
			for _, item := range typed {
				values.Add(key, item)
			}
		case []any:
			for _, item := range typed {
				values.Add(key, fmt.Sprint(item))
			}
		default:
			values.Add(key, fmt.Sprint(typed))
		}
	}

	return values
}
