package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMethodFromCache(t *testing.T) {
	require.True(t, MethodCache.FromCache())
	require.True(t, MethodDNSCached.FromCache())
	require.True(t, MethodRegistryCached.FromCache())

	require.False(t, MethodDNS.FromCache())
	require.False(t, MethodRegistry.FromCache())
	require.False(t, MethodRegistryTimeout.FromCache())
	require.False(t, MethodRegistryError.FromCache())
	require.False(t, MethodBlocked.FromCache())
	require.False(t, MethodError.FromCache())
}
