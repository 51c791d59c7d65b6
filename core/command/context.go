package command

import (
	"context"
	"net/http"
	"time"
)

type commandIDCtx struct{}

// WithCommandID attaches a command ID to the context for tracing and correlation.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDCtx{}, id)
}

// CommandID extracts the command ID from the context.
// Returns empty string if not present.
func CommandID(ctx context.Context) string {
	if id, ok := ctx.Value(commandIDCtx{}).(string); ok {
		return id
	}
	return ""
}

type commandNameCtx struct{}

// WithCommandName attaches a command name to the context for logging and metrics.
func WithCommandName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandNameCtx{}, name)
}

// CommandName extracts the command name from the context.
// Returns empty string if not present.
func CommandName(ctx context.Context) string {
	if name, ok := ctx.Value(commandNameCtx{}).(string); ok {
		return name
	}
	return ""
}

type headersCtx struct{}

// WithHeaders attaches the inbound request headers to the context.
// Handlers must treat them as read-only.
func WithHeaders(ctx context.Context, h http.Header) context.Context {
	return context.WithValue(ctx, headersCtx{}, h)
}

// Headers extracts the inbound request headers from the context.
// Returns nil if not present.
func Headers(ctx context.Context) http.Header {
	if h, ok := ctx.Value(headersCtx{}).(http.Header); ok {
		return h
	}
	return nil
}

// WithCommandMeta attaches the command metadata (ID, Name) to the context.
func WithCommandMeta(ctx context.Context, cmd Command) context.Context {
	if cmd.ID != "" {
		ctx = WithCommandID(ctx, cmd.ID)
	}
	return WithCommandName(ctx, cmd.Name)
}

type startProcessingAt struct{}

// WithStartProcessingTime attaches the processing start time to the context for handler duration metrics.
func WithStartProcessingTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startProcessingAt{}, t)
}

// StartProcessingTime extracts the processing start time from the context.
// Returns zero time if not present.
func StartProcessingTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(startProcessingAt{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}
