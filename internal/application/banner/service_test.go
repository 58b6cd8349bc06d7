package banner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/infrastructure/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

type mockBannerStore struct{ mock.Mock }

func (m *mockBannerStore) Put(ctx context.Context, b *domain.Banner) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBannerStore) Replace(ctx context.Context, b *domain.Banner) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBannerStore) Get(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if b, _ := args.Get(0).(*domain.Banner); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBannerStore) List(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}
func (m *mockBannerStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func gif() *asset.Upload {
	return &asset.Upload{Reader: bytes.NewReader(gifBytes), Filename: "b.gif"}
}

func TestBanner_Lifecycle(t *testing.T) {
	mem := afero.NewMemMapFs()
	repo := &mockBannerStore{}
	svc := NewService(ServiceDeps{BannerRepo: repo, Assets: asset.NewManager(localfs.NewStoreFs(mem), nil)})
	ctx := context.Background()

	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	b, err := svc.Create(ctx, gif())
	require.NoError(t, err)
	first := b.Image.Key
	assert.Contains(t, first, "banners/")

	repo.On("Get", mock.Anything, b.BannerID).Return(&domain.Banner{BannerID: b.BannerID, Image: b.Image}, nil)
	repo.On("Replace", mock.Anything, mock.Anything).Return(nil)
	b2, err := svc.Update(ctx, b.BannerID, gif())
	require.NoError(t, err)
	assert.NotEqual(t, first, b2.Image.Key)
	exists, _ := afero.Exists(mem, "/"+first)
	assert.False(t, exists)

	entries, err := afero.ReadDir(mem, "/banners")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdate_RequiresImage(t *testing.T) {
	repo := &mockBannerStore{}
	svc := NewService(ServiceDeps{BannerRepo: repo, Assets: asset.NewManager(localfs.NewStoreFs(afero.NewMemMapFs()), nil)})

	_, err := svc.Update(context.Background(), "b1", nil)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
