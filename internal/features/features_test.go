package features_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasmkit/wasmkit/internal/features"
)

func init() {
	os.Setenv(features.EnvVarName, features.GC+","+features.Threads+",nope")
}

func TestEnableFromEnvironment(t *testing.T) {
	features.EnableFromEnvironment()
	require.True(t, features.Enabled(features.GC))
	require.True(t, features.Enabled(features.Threads))
	require.False(t, features.Enabled("nope"))
}

func TestEnableDisable(t *testing.T) {
	features.Enable(features.TailCall)
	require.True(t, features.Enabled(features.TailCall))

	features.Disable(features.TailCall)
	require.False(t, features.Enabled(features.TailCall))
}

func TestAllocsEnabled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("accessing features allocates memory on windows")
	}
	features.Enable(features.GC)
	require.Equal(t, 0.0, testing.AllocsPerRun(100, func() {
		features.Enabled(features.GC)
	}))
}
