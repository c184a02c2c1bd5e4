package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "x", key("x", nil))
	assert.Equal(t, "x{a=1,b=2}", key("x", Labels{"b": "2", "a": "1"}))
}

func TestRegistry_Inc(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	r.Inc(ctx, QuickActions, Labels{"result": "handled"}, 1)
	r.Inc(ctx, QuickActions, Labels{"result": "handled"}, 2)
	r.Inc(ctx, QuickActions, Labels{"result": "delegated"}, 1)

	assert.Equal(t, int64(3), r.Value(QuickActions, Labels{"result": "handled"}))
	assert.Equal(t, int64(1), r.Value(QuickActions, Labels{"result": "delegated"}))
	assert.Equal(t, int64(0), r.Value(WeatherFallbacks, nil))
	assert.Equal(t, []string{
		"quick_actions_total{result=delegated} 1",
		"quick_actions_total{result=handled} 3",
	}, r.SnapshotLines())
}

func TestRegistry_NilIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.Inc(context.Background(), HTTPRequests, nil, 1)
	})
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Inc(context.Background(), ChatRequests, Labels{"source": "rules"}, 1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(50), r.Value(ChatRequests, Labels{"source": "rules"}))
}

func TestRegistry_EchoHandlerText(t *testing.T) {
	r := NewRegistry()
	r.Inc(context.Background(), WeatherFallbacks, nil, 2)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/metrics", nil), rec)

	require.NoError(t, r.EchoHandlerText(c))
	assert.Equal(t, "weather_fallbacks_total 2\n", rec.Body.String())
	assert.Equal(t, echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
}
