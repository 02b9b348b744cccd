package http

import (
	"net/http"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/net/http/bind"
)

// reply maps a handler result onto the envelope: errors by code, values as 200
func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	return OK(out)
}

// JSONHandler binds the request body into T, validates it, and replies with fn's result
// opts overrides the default body limit and unknown-field policy
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

// JSONHandlerNoBody replies with fn's result without touching the body (GET routes)
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return reply(fn(r)) })
}
