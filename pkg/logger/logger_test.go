package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitRejectsUnknownSettings(t *testing.T) {
	_, err := Init("verbose", "json")
	require.Error(t, err)

	_, err = Init("info", "xml")
	require.Error(t, err)
}

func TestInitInstallsGlobal(t *testing.T) {
	l, err := Init("debug", "console")
	require.NoError(t, err)
	require.Same(t, l, L())
	Sync()
}
