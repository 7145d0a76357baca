package usecase_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/dimmer/internal/application/port/mocks"
	mock_port "github.com/bnema/dimmer/internal/application/port/mockgen"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/url"
)

func sortedIDs(ids []entity.PageID) []entity.PageID {
	out := append([]entity.PageID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestBroadcastUseCase_DeliversToEveryReachablePage(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	pages := portmocks.NewMockPageRegistry(t)
	messenger := mock_port.NewMockPageMessenger(ctrl)

	pages.EXPECT().OpenPages(mock.Anything).Return([]entity.Page{
		{ID: "1", URL: "https://a.example/"},
		{ID: "2", URL: "https://b.example/"},
		{ID: "3", URL: "https://c.example/"},
		{ID: "4", URL: "https://gone.example/"},
		{ID: "5", URL: "chrome://extensions"},
		{ID: "6", URL: ""},
	}, nil)

	on := entity.ToggleDarkMode{Enabled: true}
	for _, id := range []entity.PageID{"1", "2", "3"} {
		messenger.EXPECT().SendToPage(gomock.Any(), id, on).Return(entity.OK("Dark mode toggled"), nil)
	}
	messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("4"), on).
		Return(nil, &entity.DeliveryError{PageID: "4", Err: entity.ErrNoListener})

	snapshot := entity.DefaultSettings()
	snapshot.Global.DarkModeEnabled = true

	uc := usecase.NewBroadcastUseCase(pages, messenger, url.DefaultPrivilegedSchemes(), 2)
	report, err := uc.Broadcast(ctx, snapshot)
	require.NoError(t, err)

	assert.Equal(t, []entity.PageID{"1", "2", "3"}, sortedIDs(report.Delivered))
	assert.Equal(t, []entity.PageID{"4"}, report.Failed)
	assert.Equal(t, []entity.PageID{"5", "6"}, report.Skipped)
	assert.Equal(t, 4, report.Targets())
}

func TestBroadcastUseCase_SendsEachPageItsResolvedState(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	pages := portmocks.NewMockPageRegistry(t)
	messenger := mock_port.NewMockPageMessenger(ctrl)

	pages.EXPECT().OpenPages(mock.Anything).Return([]entity.Page{
		{ID: "1", URL: "https://news.example/a"},
		{ID: "2", URL: "https://blog.example/"},
	}, nil)

	messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("1"), entity.ToggleDarkMode{Enabled: false}).
		Return(entity.OK(""), nil)
	messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("2"), entity.ToggleDarkMode{Enabled: true}).
		Return(entity.OK(""), nil)

	snapshot := entity.DefaultSettings()
	snapshot.Global.DarkModeEnabled = true
	snapshot.Websites["news.example"] = entity.WebsiteSetting{DarkModeEnabled: false}

	uc := usecase.NewBroadcastUseCase(pages, messenger, nil, 0)
	report, err := uc.Broadcast(ctx, snapshot)
	require.NoError(t, err)
	assert.Len(t, report.Delivered, 2)
}

func TestBroadcastUseCase_FailedReplyCountsAsFailure(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	pages := portmocks.NewMockPageRegistry(t)
	messenger := mock_port.NewMockPageMessenger(ctrl)

	pages.EXPECT().OpenPages(mock.Anything).Return([]entity.Page{{ID: "1", URL: "https://a.example/"}}, nil)
	messenger.EXPECT().SendToPage(gomock.Any(), entity.PageID("1"), gomock.Any()).
		Return(entity.Fail("Failed to toggle dark mode"), nil)

	report, err := usecase.NewBroadcastUseCase(pages, messenger, nil, 1).Broadcast(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, report.Delivered)
	assert.Equal(t, []entity.PageID{"1"}, report.Failed)
}

func TestBroadcastUseCase_NoPages(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	pages := portmocks.NewMockPageRegistry(t)
	messenger := mock_port.NewMockPageMessenger(ctrl)
	pages.EXPECT().OpenPages(mock.Anything).Return(nil, nil)

	report, err := usecase.NewBroadcastUseCase(pages, messenger, nil, 1).Broadcast(ctx, entity.DefaultSettings())
	require.NoError(t, err)
	assert.Zero(t, report.Targets())
}

func TestBroadcastUseCase_ListError(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	pages := portmocks.NewMockPageRegistry(t)
	messenger := mock_port.NewMockPageMessenger(ctrl)
	pages.EXPECT().OpenPages(mock.Anything).Return(nil, errors.New("host gone"))

	_, err := usecase.NewBroadcastUseCase(pages, messenger, nil, 1).Broadcast(ctx, entity.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host gone")
}
