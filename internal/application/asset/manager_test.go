package asset

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/infrastructure/localfs"
	snsinfra "github.com/institute-cms/internal/infrastructure/sns"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	pdfBytes = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyOrphan(ctx context.Context, alert snsinfra.OrphanAlert) error {
	return m.Called(ctx, alert).Error(0)
}

type failingDeleteStore struct {
	ObjectStore
	err error
}

func (s failingDeleteStore) Delete(context.Context, string) error { return s.err }

func newTestManager(t *testing.T) (*Manager, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	m := NewManager(localfs.NewStoreFs(mem), nil)
	n := 0
	m.newName = func() string {
		n++
		return strings.Repeat(string(rune('a'+n-1)), 8)
	}
	return m, mem
}

func upload(b []byte, name string) *Upload {
	return &Upload{Reader: bytes.NewReader(b), Filename: name}
}

func countFiles(t *testing.T, fsys afero.Fs, dir string) int {
	t.Helper()
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return 0
	}
	return len(entries)
}

func TestManager_Store_KeepsWholeBody(t *testing.T) {
	m, mem := newTestManager(t)
	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{7}, 2*sniffLen)...)

	a, err := m.Store(context.Background(), domain.AssetCourse, upload(big, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/aaaaaaaa.png", a.Key)
	assert.Equal(t, "/uploads/aaaaaaaa.png", a.URL)

	data, err := afero.ReadFile(mem, "/"+a.Key)
	require.NoError(t, err)
	assert.Equal(t, big, data)
}

func TestManager_Store_RejectsDisallowedType(t *testing.T) {
	m, mem := newTestManager(t)

	_, err := m.Store(context.Background(), domain.AssetCourse, upload([]byte("just some text"), "notes.png"))
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	_, err = m.Store(context.Background(), domain.AssetBanner, upload(pdfBytes, "banner.pdf"))
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Equal(t, 0, countFiles(t, mem, "/banners"))
}

func TestManager_Store_CertificateAcceptsPDF(t *testing.T) {
	m, _ := newTestManager(t)

	a, err := m.Store(context.Background(), domain.AssetCertificate, upload(pdfBytes, "cert.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "certificates/aaaaaaaa.pdf", a.Key)
}

func TestManager_Store_MissingOrEmpty(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Store(context.Background(), domain.AssetCourse, nil)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))

	_, err = m.Store(context.Background(), domain.AssetCourse, upload(nil, "empty.png"))
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestManager_Create_DiscardsOnCommitFailure(t *testing.T) {
	m, mem := newTestManager(t)

	_, err := m.Create(context.Background(), domain.AssetPlacement, upload(pngBytes, "p.png"), func(domain.Asset) error {
		return errors.New("dynamo down")
	})
	require.EqualError(t, err, "dynamo down")
	assert.Equal(t, 0, countFiles(t, mem, "/placements"))
}

func TestManager_Replace_LeavesOnlyNewAsset(t *testing.T) {
	m, mem := newTestManager(t)
	ctx := context.Background()

	old, err := m.Store(ctx, domain.AssetCourse, upload(pngBytes, "old.png"))
	require.NoError(t, err)

	var committed domain.Asset
	a, err := m.Replace(ctx, old.Key, domain.AssetCourse, upload(pngBytes, "new.png"), func(a domain.Asset) error {
		committed = a
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, *a, committed)
	assert.NotEqual(t, old.Key, a.Key)
	assert.Equal(t, 1, countFiles(t, mem, "/uploads"))

	exists, _ := afero.Exists(mem, "/"+old.Key)
	assert.False(t, exists)
}

func TestManager_Replace_KeepsOldAssetWhenCommitFails(t *testing.T) {
	m, mem := newTestManager(t)
	ctx := context.Background()

	old, err := m.Store(ctx, domain.AssetCourse, upload(pngBytes, "old.png"))
	require.NoError(t, err)

	_, err = m.Replace(ctx, old.Key, domain.AssetCourse, upload(pngBytes, "new.png"), func(domain.Asset) error {
		return domain.ErrNotFound
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	exists, _ := afero.Exists(mem, "/"+old.Key)
	assert.True(t, exists)
	assert.Equal(t, 1, countFiles(t, mem, "/uploads"))
}

func TestManager_Delete_MissingIsNoop(t *testing.T) {
	n := &mockNotifier{}
	m := NewManager(localfs.NewStoreFs(afero.NewMemMapFs()), n)

	m.Delete(context.Background(), "uploads/gone.png")
	m.Delete(context.Background(), "")
	n.AssertNotCalled(t, "NotifyOrphan", mock.Anything, mock.Anything)
}

func TestManager_Delete_FailureIsReportedAsOrphan(t *testing.T) {
	n := &mockNotifier{}
	n.On("NotifyOrphan", mock.Anything, mock.MatchedBy(func(a snsinfra.OrphanAlert) bool {
		return a.Key == "uploads/x.png" && a.Reason == "permission denied"
	})).Return(nil).Once()
	m := NewManager(failingDeleteStore{err: errors.New("permission denied")}, n)

	m.Discard(context.Background(), &domain.Asset{Key: "uploads/x.png"})
	n.AssertExpectations(t)
}

func TestManager_Delete_SurvivesCancelledContext(t *testing.T) {
	m, mem := newTestManager(t)
	a, err := m.Store(context.Background(), domain.AssetBanner, upload(pngBytes, "b.png"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Delete(ctx, a.Key)

	exists, _ := afero.Exists(mem, "/"+a.Key)
	assert.False(t, exists)
}
