package llm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

// providerBox gives atomic.Pointer one concrete type to hold.
type providerBox struct {
	core.AIProvider
}

// DynamicProvider lets the model change at runtime without restarting.
type DynamicProvider struct {
	config  core.ProviderConfig
	current atomic.Pointer[providerBox]
	mu      sync.RWMutex
}

func NewDynamicProvider(
	ctx context.Context,
	config core.ProviderConfig,
) (*DynamicProvider, error) {
	d := &DynamicProvider{
		config: config,
	}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial provider: %w", err)
	}

	d.current.Store(&providerBox{provider})
	return d, nil
}

func (d *DynamicProvider) load() core.AIProvider {
	return d.current.Load().AIProvider
}

func (d *DynamicProvider) Chat(ctx context.Context, history []core.Message, tools []core.Tool) (core.Message, error) {
	return d.load().Chat(ctx, history, tools)
}

// Models lists models when the active back-end supports it.
func (d *DynamicProvider) Models(ctx context.Context) ([]core.Model, error) {
	lister, ok := d.load().(core.ModelLister)
	if !ok {
		return nil, fmt.Errorf("provider %q cannot list models", d.config.GetProvider())
	}
	return lister.Models(ctx)
}

func (d *DynamicProvider) GetModel() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.config.GetModel()
}

func (d *DynamicProvider) SetModel(ctx context.Context, model string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Update config (persist)
	if err := d.config.SetModel(model); err != nil {
		return err
	}

	newProvider, err := NewProvider(ctx, d.config)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	d.current.Store(&providerBox{newProvider})
	return nil
}
