// Package handler provides the service-side command handler registry.
//
// The core protocol stack ends at "deliver a parsed invocation to a
// handler" — vibrate/screenshot/filesystem/etc. handlers are platform
// collaborators registered here by the host application, not part of
// the core.
package handler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/apparata/appconsole/parser"
)

// Result is what a handler hands back to the session layer for
// delivery to the client as one or more response messages.
type Result struct {
	// Output is sent as a consoleOutput message if non-empty.
	Output string
	// Screenshot, if non-nil, is sent as a screenshot message.
	Screenshot []byte
	// Files are sent as file messages, in order.
	Files []File
}

// File is a named byte blob delivered as a file message.
type File struct {
	Name string
	Data []byte
}

// Func executes one resolved invocation.
type Func func(ctx context.Context, invocation *parser.Invocation) (Result, error)

// Definition describes one registered command handler.
type Definition struct {
	// Key is the invocation's command chain joined with a space,
	// e.g. "stuff process".
	Key         string
	Description string
	Handler     Func
}

// key builds the registry key for an invocation's command chain.
func key(commands []string) string {
	return strings.Join(commands, " ")
}

// Registry dispatches parsed invocations to registered handlers by
// command chain.
type Registry struct {
	handlers map[string]*Definition
	mu       sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]*Definition),
	}
}

// Register adds a handler for the given command chain.
func (r *Registry) Register(def *Definition) error {
	if def.Key == "" {
		return fmt.Errorf("handler key is required")
	}
	if def.Handler == nil {
		return fmt.Errorf("handler func is required for %q", def.Key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[def.Key] = def
	return nil
}

// Has reports whether a handler is registered for the given command chain.
func (r *Registry) Has(commands []string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[key(commands)]
	return ok
}

// Dispatch runs the handler registered for invocation.Commands.
func (r *Registry) Dispatch(ctx context.Context, invocation *parser.Invocation) (Result, error) {
	k := key(invocation.Commands)

	r.mu.RLock()
	def, ok := r.handlers[k]
	r.mu.RUnlock()

	if !ok {
		return Result{}, fmt.Errorf("no handler registered for command %q", k)
	}

	return def.Handler(ctx, invocation)
}

// List returns the command chains with a registered handler.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	return keys
}
