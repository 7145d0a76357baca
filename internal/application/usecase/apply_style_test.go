package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dimmer/internal/application/port/mocks"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/stylesheet"
)

func TestStyleApplicator_Apply(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().UpsertStyleSheet(mock.Anything, stylesheet.StyleID, stylesheet.DarkModeCSS(entity.IntensityMedium)).Return(nil)
	doc.EXPECT().AddClass(mock.Anything, stylesheet.MarkerClass).Return(nil)

	require.NoError(t, usecase.NewStyleApplicator().Apply(ctx, doc, entity.IntensityMedium))
}

func TestStyleApplicator_ApplyUnknownIntensityUsesDefault(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().UpsertStyleSheet(mock.Anything, stylesheet.StyleID, stylesheet.DarkModeCSS(entity.DefaultIntensity)).Return(nil)
	doc.EXPECT().AddClass(mock.Anything, stylesheet.MarkerClass).Return(nil)

	require.NoError(t, usecase.NewStyleApplicator().Apply(ctx, doc, "neon"))
}

func TestStyleApplicator_ApplyStopsOnSheetFailure(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().UpsertStyleSheet(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("detached"))

	err := usecase.NewStyleApplicator().Apply(ctx, doc, entity.IntensityDeep)
	require.Error(t, err)
	doc.AssertNotCalled(t, "AddClass", mock.Anything, mock.Anything)
}

func TestStyleApplicator_ApplyState(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)
	styles := usecase.NewStyleApplicator()

	doc.EXPECT().RemoveStyleSheet(mock.Anything, stylesheet.StyleID).Return(nil)
	doc.EXPECT().RemoveClass(mock.Anything, stylesheet.MarkerClass).Return(nil)
	require.NoError(t, styles.ApplyState(ctx, doc, entity.EffectiveState{Enabled: false}))

	doc.EXPECT().UpsertStyleSheet(mock.Anything, stylesheet.StyleID, mock.Anything).Return(nil)
	doc.EXPECT().AddClass(mock.Anything, stylesheet.MarkerClass).Return(nil)
	require.NoError(t, styles.ApplyState(ctx, doc, entity.EffectiveState{Enabled: true, Intensity: entity.IntensityLight}))
}

func TestStyleApplicator_ApplyAggressive(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().UpsertStyleSheet(mock.Anything, stylesheet.AggressiveStyleID, stylesheet.AggressiveCSS()).Return(nil)

	require.NoError(t, usecase.NewStyleApplicator().ApplyAggressive(ctx, doc))
	doc.AssertNotCalled(t, "AddClass", mock.Anything, mock.Anything)
}

func TestStyleApplicator_RemoveError(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().RemoveStyleSheet(mock.Anything, stylesheet.StyleID).Return(nil)
	doc.EXPECT().RemoveClass(mock.Anything, stylesheet.MarkerClass).Return(errors.New("no body"))

	assert.Error(t, usecase.NewStyleApplicator().Remove(ctx, doc))
}

func TestStyleApplicator_RemoveAggressiveKeepsToggle(t *testing.T) {
	ctx := testContext()
	doc := portmocks.NewMockDocument(t)

	doc.EXPECT().RemoveStyleSheet(mock.Anything, stylesheet.AggressiveStyleID).Return(nil)

	require.NoError(t, usecase.NewStyleApplicator().RemoveAggressive(ctx, doc))
	doc.AssertNotCalled(t, "RemoveClass", mock.Anything, mock.Anything)
}
