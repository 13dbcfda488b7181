package calc

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowDebug())
		svc := NewLoggingService(logger, New())

		v, err := svc.Evaluate("1+1")
		require.NoError(t, err)
		assert.Equal(t, "2", v.String())
		out := buf.String()
		assert.Contains(t, out, "level=debug")
		assert.Contains(t, out, "method=evaluate")
		assert.Contains(t, out, "expr=1+1")
		assert.Contains(t, out, "result=2")

		buf.Reset()
		_, err = svc.Evaluate("5xyz")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "bad currency")

		buf.Reset()
		_, err = svc.Report(v)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "method=report")
		assert.Contains(t, buf.String(), "lines=1")
	})

	t.Run("info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowInfo())
		svc := NewLoggingService(logger, New())

		_, err := svc.Evaluate("1+1")
		require.NoError(t, err)
		assert.Empty(t, buf.String())

		r, err := svc.SetExchangeRate("key=50")
		require.NoError(t, err)
		assert.Equal(t, "1 key = 50 ref", r.String())
		out := buf.String()
		assert.Contains(t, out, "level=info")
		assert.Contains(t, out, "method=set_exchange_rate")
		assert.Contains(t, out, `rate="1 key = 50 ref"`)
	})
}
