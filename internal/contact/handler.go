// Package contact implements the contact form endpoint: it validates a
// submission, records it and acknowledges it after a short artificial delay.
// Nothing is ever emailed.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// DefaultDelay simulates processing latency before the acknowledgement.
const DefaultDelay = time.Second

// DefaultMaxBodyBytes bounds the request body read by ServeHTTP.
const DefaultMaxBodyBytes = 64 * 1024

// Handler serves POST /api/contact.
type Handler struct {
	recorder     Recorder
	delay        time.Duration
	maxBodyBytes int64
	logger       *zap.Logger
	wait         func(ctx context.Context, d time.Duration) error
}

// NewHandler creates a Handler. A negative delay is treated as zero and a
// non-positive body limit falls back to DefaultMaxBodyBytes.
func NewHandler(recorder Recorder, delay time.Duration, maxBodyBytes int64, logger *zap.Logger) *Handler {
	if delay < 0 {
		delay = 0
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		recorder:     recorder,
		delay:        delay,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
		wait:         sleep,
	}
}

// RegisterRoutes mounts the contact endpoint on the given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.With(middleware.Timeout(h.delay+30*time.Second)).Post("/api/contact", h.ServeHTTP)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))

	var res Result
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		res = failure(InternalError, fmt.Errorf("reading body: %w", err))
	} else {
		res, err = h.Handle(WithRemoteAddr(r.Context(), r.RemoteAddr), body)
		if err != nil {
			// The client went away during the delay; there is nobody to answer.
			logger.Debug("contact submission abandoned", zap.Error(err))
			return
		}
	}

	if !res.OK() {
		if res.Err.Kind == InternalError {
			logger.Error("contact form error", zap.Error(res.Err))
		} else {
			logger.Debug("contact form rejected", zap.String("reason", res.Err.Error()))
		}
	}

	writeJSON(w, res.Status, res.Body())
}

// Handle processes one raw request body. The returned error is non-nil only
// when ctx ends before the acknowledgement is due.
func (h *Handler) Handle(ctx context.Context, body []byte) (Result, error) {
	sub, res, ok := parse(body)
	if !ok {
		return res, nil
	}

	if err := h.recorder.Record(ctx, sub); err != nil {
		return failure(InternalError, fmt.Errorf("recording submission: %w", err)), nil
	}

	if err := h.wait(ctx, h.delay); err != nil {
		return Result{}, err
	}
	return success(), nil
}

// parse decodes and validates the body. ok is false when res already holds
// the failure to report. JSON values other than objects carry no fields and
// fail validation; only undecodable bodies and null are internal failures.
func parse(body []byte) (sub Submission, res Result, ok bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return sub, failure(InternalError, fmt.Errorf("decoding body: %w", err)), false
	}
	if _, err := dec.Token(); err != io.EOF {
		return sub, failure(InternalError, errors.New("decoding body: trailing data")), false
	}
	if payload == nil {
		return sub, failure(InternalError, errors.New("decoding body: null payload")), false
	}

	fields, _ := payload.(map[string]any)
	name, okName := field(fields, "name")
	email, okEmail := field(fields, "email")
	message, okMessage := field(fields, "message")
	if !okName || !okEmail || !okMessage {
		return sub, failure(ValidationError, errors.New("name, email and message are required")), false
	}

	return Submission{Name: name, Email: email, Message: message}, Result{}, true
}

// field returns the string form of a truthy JSON value.
func field(fields map[string]any, key string) (string, bool) {
	v, present := fields[key]
	if !present || !truthy(v) {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		// Out-of-range literals parse to ±Inf, which is truthy; underflow is zero.
		f, _ := strconv.ParseFloat(t.String(), 64)
		return f != 0
	default:
		return true
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
