package srv

import (
	"context"
	"fmt"
)

type named interface {
	Name() string
}

func name(s Service) string {
	if n, ok := s.(named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

// cleanup only does work on shutdown.
type cleanup struct {
	name string
	fn   func() error
}

func (c *cleanup) Name() string { return c.name }

func (c *cleanup) Start(context.Context) error { return nil }

func (c *cleanup) Shutdown(context.Context) error {
	if c.fn == nil {
		return nil
	}
	return c.fn()
}

// NewCleanup wraps a closer, such as a database handle, as a Service.
func NewCleanup(name string, fn func() error) Service {
	return &cleanup{name: name, fn: fn}
}
