package state

import (
	"context"
	"errors"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

var ErrEmptyModel = errors.New("model name is required")

type provider interface {
	GetModel() string
	SetModel(ctx context.Context, model string) error
}

// GlobalState holds process-wide switches shared by every transport.
type GlobalState struct {
	provider provider
}

func NewGlobalState(
	provider provider,
) *GlobalState {
	return &GlobalState{
		provider: provider,
	}
}

func (s *GlobalState) ChangeModel(ctx context.Context, model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return ErrEmptyModel
	}

	prev := s.provider.GetModel()
	if err := s.provider.SetModel(ctx, model); err != nil {
		return err
	}

	log.FromCtx(ctx).Info().Str("from", prev).Str("to", model).Msg("chat model changed")
	return nil
}
