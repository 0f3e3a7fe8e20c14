package executable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUnterminatedBindingIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	exe, err := Parse(stream(0, []rawSection{padded("BIND", "foo\x00partial")}))
	require.NoError(t, err)
	require.Equal(t, []string{"foo"}, exe.LinkingUnits[0].Bind.Names)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	require.Equal(t, "partial", fields["binding"])
	require.Equal(t, "BIND", fields["section"])

	require.NotEmpty(t, logs.FilterMessage("decoded section").All())
	require.Len(t, logs.FilterMessage("decoded executable").All(), 1)
}

func TestLoggerDefaultsToNop(t *testing.T) {
	require.NotNil(t, Logger())
}
