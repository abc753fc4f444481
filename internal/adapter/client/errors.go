package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
)

// wrapRequestError maps a transport-level failure onto the service sentinels.
// Dial failures (refused, DNS, dial timeout) mean the server is not running.
func wrapRequestError(err error) error {
	if err == nil {
		return nil
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w", service.ErrServiceUnavailable, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) || errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %w", service.ErrServiceUnavailable, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", service.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", service.ErrTransport, err)
}

// wrapDecodeError separates bodies cut short by the client timeout from bodies
// that are not valid JSON.
func wrapDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %w", service.ErrMalformedResponse, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", service.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", service.ErrMalformedResponse, err)
}
