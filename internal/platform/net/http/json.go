package http

import (
	"net/http"

	"aidetect/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T body, calls fn, and wraps the result
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return bodyHandler(fn, result, opts)
}

// PlainJSONHandler is JSONHandler without the success envelope
func PlainJSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return bodyHandler(fn, plainResult, opts)
}

// NoBodyHandler calls fn without touching the body and wraps the result
func NoBodyHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// PlainHandler is NoBodyHandler without the success envelope
func PlainHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return plainResult(fn(r)) })
}

func bodyHandler[T any](fn func(*http.Request, T) (any, error), wrap func(any, error) Response, opts []bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return wrap(fn(r, in))
	})
}

// result lets handlers return either plain data or a ready Response
func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

func plainResult(out any, err error) Response {
	resp := result(out, err)
	if err == nil {
		resp.Plain = true
	}
	return resp
}
