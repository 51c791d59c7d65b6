package command

import (
	"reflect"
	"sync"
)

// commandNameCache caches reflection results for command name lookups.
// Key is reflect.Type, value is the command name string.
var commandNameCache sync.Map

// getCommandName derives the command name from a reflect.Type.
// For structs, it returns the struct name.
// For pointers to structs, it returns the struct name.
// Results are cached to avoid repeated reflection overhead.
func getCommandName(t reflect.Type) string {
	if name, ok := commandNameCache.Load(t); ok {
		return name.(string)
	}

	original := t
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var name string
	if t.Name() != "" {
		name = t.Name()
	} else {
		name = t.String()
	}

	commandNameCache.Store(original, name)
	return name
}

// chainMiddleware applies multiple middleware in order.
// The first middleware in the slice is the outermost (executed first).
func chainMiddleware(handler Handler, middleware []Middleware) Handler {
	// Reverse order required: wrapping innermost first makes it execute last
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}
