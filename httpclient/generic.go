//nolint:ireturn
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

func DecodeJSON[T any](resp *resty.Response) (T, error) {
	var result T

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return result, nil
}

func GetJSON[T any](ctx context.Context, s *Service, endpoint string, query map[string]any) (T, error) {
	resp, err := s.Get(ctx, endpoint, query)
	if err != nil {
		var zero T

		return zero, err
	}

	return DecodeJSON[T](resp)
}

func PostJSON[T any](ctx context.Context, s *Service, endpoint string, body map[string]any) (T, error) {
	resp, err := s.Post(ctx, endpoint, body)
	if err != nil {
		var zero T

		return zero, err
	}

	return DecodeJSON[T](resp)
}

func DeleteJSON[T any](ctx context.Context, s *Service, endpoint string) (T, error) {
	resp, err := s.Delete(ctx, endpoint)
	if err != nil {
		var zero T

		return zero, err
	}

	return DecodeJSON[T](resp)
}
