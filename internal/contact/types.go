package contact

import (
	"context"
	"fmt"
	"net/http"
)

// Response messages returned to the caller.
const (
	MessageReceived      = "Message received successfully!"
	MessageMissingFields = "Missing required fields"
	MessageSendFailed    = "Failed to send message"
)

// Submission is one contact-form payload. It lives for a single request.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ErrorKind classifies a failed submission.
type ErrorKind string

const (
	ValidationError ErrorKind = "validation_error"
	InternalError   ErrorKind = "internal_error"
)

// Status returns the HTTP status reported for the kind.
func (k ErrorKind) Status() int {
	if k == ValidationError {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage is the only detail the caller ever sees.
func (k ErrorKind) PublicMessage() string {
	if k == ValidationError {
		return MessageMissingFields
	}
	return MessageSendFailed
}

// Error is a classified submission failure. Err holds the server-side cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Result is the outcome of handling one submission.
type Result struct {
	Status  int
	Message string
	Err     *Error
}

func success() Result {
	return Result{Status: http.StatusOK, Message: MessageReceived}
}

func failure(kind ErrorKind, cause error) Result {
	return Result{
		Status: kind.Status(),
		Err:    &Error{Kind: kind, Err: cause},
	}
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool { return r.Err == nil }

// Body returns the JSON response body for the result.
func (r Result) Body() map[string]string {
	if r.Err != nil {
		return map[string]string{"error": r.Err.Kind.PublicMessage()}
	}
	return map[string]string{"message": r.Message}
}

// Recorder receives every accepted submission.
type Recorder interface {
	Record(ctx context.Context, s Submission) error
}

// Recorders fans a submission out to several recorders in order, stopping
// at the first failure.
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, s Submission) error {
	for _, r := range rs {
		if err := r.Record(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

type ctxKey struct{}

// WithRemoteAddr attaches the submitter's address to ctx for recorders.
func WithRemoteAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, ctxKey{}, addr)
}

// RemoteAddr returns the address set by WithRemoteAddr, or "".
func RemoteAddr(ctx context.Context) string {
	addr, _ := ctx.Value(ctxKey{}).(string)
	return addr
}
