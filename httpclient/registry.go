package httpclient

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-resty/resty/v2"
)

var ErrServiceNotRegistered = errors.New("service not registered")

// Registry maps names onto APIs, each with its own base URI and token. It only
// stores those bindings; every dispatched call still builds its own client.
type Registry struct {
	mu          sync.RWMutex
	services    map[string]*Service
	defaultOpts []ServiceOption
}

func NewRegistry(defaultOpts ...ServiceOption) *Registry {
	return &Registry{
		mu:          sync.RWMutex{},
		services:    make(map[string]*Service),
		defaultOpts: defaultOpts,
	}
}

// Register binds name to baseURI. Registry-wide options apply first, so opts can
// override a shared token for one API. Registering a name again replaces it.
func (r *Registry) Register(name, baseURI string, opts ...ServiceOption) *Registry {
	service := NewService(baseURI, slices.Concat(r.defaultOpts, opts)...)

	r.mu.Lock()
	r.services[name] = service
	r.mu.Unlock()

	return r
}

// GetService resolves name. An unknown name is reported as a *RequestError
// without a status, like any other failure before dispatch.
func (r *Registry) GetService(name string) (*Service, error) {
	r.mu.RLock()
	service, ok := r.services[name]
	r.mu.RUnlock()

	if !ok {
		return nil, newRequestError(nil, fmt.Errorf("%w: %q", ErrServiceNotRegistered, name))
	}

	return service, nil
}

// Request dispatches verb against the named API's base URI and token.
func (r *Registry) Request(
	ctx context.Context,
	name string,
	verb Verb,
	endpoint string,
	payload map[string]any,
) (*resty.Response, error) {
	service, err := r.GetService(name)
	if err != nil {
		return nil, err
	}

	return service.Request(ctx, verb, endpoint, payload)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
