package resolvers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	mocksheet "github.com/KirkDiggler/character-validator/internal/domain/sheet/mock"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/resolvers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChain_FallsThroughOnNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	first := mocksheet.NewMockAssetResolver(ctrl)
	second := mocksheet.NewMockAssetResolver(ctrl)
	want := assets.NewMetadataAsset(assets.AssetTypeProficiency, assets.MetaData{ID: "perception"})

	gomock.InOrder(
		first.EXPECT().FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception").
			Return(nil, dnderr.NotFoundf("proficiency 'perception' not found")),
		second.EXPECT().FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception").
			Return(want, nil),
	)

	chain := resolvers.NewChain(first, nil, second)
	assert.Equal(t, 2, chain.Len())

	got, err := chain.FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestChain_StopsOnOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	first := mocksheet.NewMockAssetResolver(ctrl)
	second := mocksheet.NewMockAssetResolver(ctrl)

	first.EXPECT().FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception").
		Return(nil, errors.New("disk on fire"))

	_, err := resolvers.NewChain(first, second).FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception")
	assert.EqualError(t, err, "disk on fire")
}

func TestChain_AllMiss(t *testing.T) {
	ctx := context.Background()

	chain := resolvers.NewChain(resolvers.NewInMemory(nil), resolvers.NewInMemory(nil))

	_, err := chain.FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = resolvers.NewChain().FetchAssetDefinition(ctx, assets.AssetTypeProficiency, "perception")
	assert.True(t, dnderr.IsNotFound(err))
}
