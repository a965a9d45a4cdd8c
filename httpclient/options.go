package httpclient

import (
	"github.com/rs/zerolog"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)

type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch diagnostics and resty's own output.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithClientFactory replaces the factory that builds the per-call resty client.
// Clients from the factory keep their own resty logger; a nil client falls back
// to NewRestyClient.
func WithClientFactory(factory ClientFactory) Option {
	return func(d *Dispatcher) {
		if factory != nil {
			d.newClient = factory
		}
	}
}

// WithRequestIDKey makes the dispatcher forward the string stored under key in the
// request context as X-Request-ID instead of generating one.
func WithRequestIDKey(key any) Option {
	return func(d *Dispatcher) {
		d.requestIDKey = key
	}
}

type ServiceOption func(*Service)

func WithAuthToken(token string) ServiceOption {
	return func(s *Service) {
		s.authToken = token
	}
}

func WithDispatcher(dispatcher *Dispatcher) ServiceOption {
	return func(s *Service) {
		if dispatcher != nil {
			s.dispatcher = dispatcher
		}
	}
}
