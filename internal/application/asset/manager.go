package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/institute-cms/internal/domain"
	snsinfra "github.com/institute-cms/internal/infrastructure/sns"
)

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

var imageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
	"image/x-icon",
}

// ObjectStore is the storage backend behind the manager. Put returns the
// public locator of the stored object; Delete of a missing key succeeds.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Upload is a file received from a client.
type Upload struct {
	Reader   io.Reader
	Filename string
}

// Manager stores, replaces and deletes the assets owned by content records.
type Manager struct {
	store    ObjectStore
	notifier snsinfra.Notifier
	newName  func() string
}

func NewManager(store ObjectStore, notifier snsinfra.Notifier) *Manager {
	return &Manager{store: store, notifier: notifier, newName: uuid.NewString}
}

// Store validates the upload against the allow-list for kind and writes it
// under a fresh key.
func (m *Manager) Store(ctx context.Context, kind domain.AssetKind, up *Upload) (*domain.Asset, error) {
	if up == nil || up.Reader == nil {
		return nil, fmt.Errorf("file is required: %w", domain.ErrBadRequest)
	}
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(up.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("file is empty: %w", domain.ErrBadRequest)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !allowed(kind, mt) {
		return nil, fmt.Errorf("file type %s not allowed for %s: %w", mt.String(), kind, domain.ErrBadRequest)
	}

	key := fmt.Sprintf("%s/%s%s", kind, m.newName(), mt.Extension())
	body := io.MultiReader(bytes.NewReader(head), up.Reader)
	url, err := m.store.Put(ctx, key, body, mt.String())
	if err != nil {
		return nil, fmt.Errorf("store %s asset: %w", kind, err)
	}
	return &domain.Asset{URL: url, Key: key}, nil
}

// Create stores the upload and hands it to commit, which persists the owning
// record. If commit fails the new asset is discarded.
func (m *Manager) Create(ctx context.Context, kind domain.AssetKind, up *Upload, commit func(domain.Asset) error) (*domain.Asset, error) {
	a, err := m.Store(ctx, kind, up)
	if err != nil {
		return nil, err
	}
	if err := commit(*a); err != nil {
		m.Discard(ctx, a)
		return nil, err
	}
	return a, nil
}

// Replace stores the new upload, runs commit to point the owning record at
// it, then removes the asset at oldKey. The old asset is only touched after
// the record no longer references it.
func (m *Manager) Replace(ctx context.Context, oldKey string, kind domain.AssetKind, up *Upload, commit func(domain.Asset) error) (*domain.Asset, error) {
	a, err := m.Create(ctx, kind, up, commit)
	if err != nil {
		return nil, err
	}
	if oldKey != a.Key {
		m.Delete(ctx, oldKey)
	}
	return a, nil
}

// Delete removes the asset at key. It never fails the caller: the owning
// record is already gone, so a failure here is reported as an orphan.
func (m *Manager) Delete(ctx context.Context, key string) {
	if key == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	err := m.store.Delete(ctx, key)
	if err == nil {
		return
	}
	slog.Error("orphaned asset", "key", key, "err", err)
	if m.notifier == nil {
		return
	}
	alert := snsinfra.OrphanAlert{Key: key, Reason: err.Error(), At: time.Now().UTC()}
	if nerr := m.notifier.NotifyOrphan(ctx, alert); nerr != nil {
		slog.Warn("orphan alert not published", "key", key, "err", nerr)
	}
}

// Discard rolls back an asset whose owning record was never written.
func (m *Manager) Discard(ctx context.Context, a *domain.Asset) {
	if a == nil {
		return
	}
	m.Delete(ctx, a.Key)
}

func allowed(kind domain.AssetKind, mt *mimetype.MIME) bool {
	if kind == domain.AssetCertificate && mt.Is("application/pdf") {
		return true
	}
	for _, t := range imageTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}
