package httpclient

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// Service binds a base URI and an optional token so callers only name endpoints.
// It keeps no HTTP client; every call still builds its own.
type Service struct {
	baseURI    string
	authToken  string
	dispatcher *Dispatcher
}

func NewService(baseURI string, opts ...ServiceOption) *Service {
	s := &Service{
		baseURI:    baseURI,
		authToken:  "",
		dispatcher: defaultDispatcher,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) BaseURI() string {
	return s.baseURI
}

func (s *Service) Request(
	ctx context.Context,
	verb Verb,
	endpoint string,
	payload map[string]any,
) (*resty.Response, error) {
	return s.dispatcher.Request(ctx, verb, s.baseURI, endpoint, s.authToken, payload)
}

func (s *Service) Get(ctx context.Context, endpoint string, query map[string]any) (*resty.Response, error) {
	return s.dispatcher.Request(ctx, VerbGet, s.baseURI, endpoint, s.authToken, query)
}

func (s *Service) Post(ctx context.Context, endpoint string, body map[string]any) (*resty.Response, error) {
	return s.dispatcher.Request(ctx, VerbPost, s.baseURI, endpoint, s.authToken, body)
}

func (s *Service) Delete(ctx context.Context, endpoint string) (*resty.Response, error) {
	return s.dispatcher.Request(ctx, VerbDelete, s.baseURI, endpoint, s.authToken, nil)
}
