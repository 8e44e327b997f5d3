package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droidplan/internal/core/domain"
	"go.trai.ch/droidplan/internal/engine/resolver"
)

func TestSelectVariant(t *testing.T) {
	variants := flutterProject().Variants

	release, err := resolver.SelectVariant(variants, "release")
	require.NoError(t, err)
	assert.Equal(t, variants[1], release)
	assert.Equal(t, domain.SigningPolicy{SigningConfig: "upload"}, release.Signing)

	debug, err := resolver.SelectVariant(variants, "debug")
	require.NoError(t, err)
	assert.True(t, debug.Signing.UsesDebugKeys())
}

func TestSelectVariant_Unknown(t *testing.T) {
	_, err := resolver.SelectVariant(flutterProject().Variants, "staging")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	_, err = resolver.SelectVariant(nil, "debug")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}
