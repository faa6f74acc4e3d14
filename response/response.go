// Package response holds the value returned by generated converters.
//
// A converter generated by httperror-generator has the signature
//
//	func APIErrorResponse(v APIError) response.Response
//
// and its result can be written to any http.ResponseWriter.
package response

import (
	"io"
	"net/http"
)

// ContentType is the media type of every generated body.
const ContentType = "application/json"

// Response is a status code paired with a JSON body.
type Response struct {
	Status int
	Body   string
}

// Write writes the response to w.
func (r Response) Write(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(r.Status)

	_, err := io.WriteString(w, r.Body)

	return err
}

// ServeHTTP implements http.Handler.
func (r Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	_ = r.Write(w)
}

// StatusText returns the reason phrase of the status code.
func (r Response) StatusText() string {
	return http.StatusText(r.Status)
}

// Responder is implemented by values that describe themselves as a response.
type Responder interface {
	Response() Response
}

// Func adapts a generated converter to a Responder factory.
type Func[T any] func(T) Response

// For returns a Responder describing v.
func (f Func[T]) For(v T) Responder {
	return bound[T]{f: f, v: v}
}

type bound[T any] struct {
	f Func[T]
	v T
}

func (b bound[T]) Response() Response {
	return b.f(b.v)
}
