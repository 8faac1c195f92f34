package agents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/place-of-your-own/artworks/internal/models"
)

type fakeObjectStore struct {
	uploads   []string
	deletes   []string
	uploadErr map[string]bool // keyed by prefix match on slug
	deleteErr error
}

func (f *fakeObjectStore) Upload(_ context.Context, key string, _ io.Reader, _ string, _ int64) error {
	f.uploads = append(f.uploads, key)
	for prefix := range f.uploadErr {
		if strings.HasPrefix(key, prefix) {
			return errors.New("upload refused")
		}
	}
	return nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return f.deleteErr
}

type fakeRecorder struct {
	created   []*models.Artwork
	failAfter int // fail inserts once this many have succeeded; -1 never fails
}

func (f *fakeRecorder) Create(_ context.Context, artwork *models.Artwork) error {
	if f.failAfter >= 0 && len(f.created) >= f.failAfter {
		return errors.New("insert failed")
	}
	f.created = append(f.created, artwork)
	return nil
}

func storableImage(theme string) models.StorableImage {
	return models.StorableImage{
		Data:      []byte("png-bytes"),
		Prompt:    "a prompt",
		Source:    models.SourceGenerated,
		Theme:     theme,
		IssueDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestStoreAllSucceed(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecorder{failAfter: -1}
	agent := NewStorageAgent(objects, records)

	images := []models.StorableImage{
		storableImage("Garden Strolls"),
		storableImage("Garden Strolls"),
		storableImage("Garden Strolls"),
	}

	stored, failed := agent.Store(context.Background(), images)
	if stored != 3 || failed != 0 {
		t.Fatalf("stored/failed = %d/%d, want 3/0", stored, failed)
	}

	seen := map[string]bool{}
	for _, key := range objects.uploads {
		if !strings.HasPrefix(key, "garden-strolls/") {
			t.Errorf("key %q not under theme slug", key)
		}
		if !strings.HasSuffix(key, ".png") {
			t.Errorf("key %q missing .png suffix", key)
		}
		if seen[key] {
			t.Errorf("duplicate object key %q within one batch", key)
		}
		seen[key] = true
	}

	for _, a := range records.created {
		if a.IsApproved {
			t.Error("new artwork must not be pre-approved")
		}
		if a.Source != models.SourceGenerated {
			t.Errorf("source = %q, want %q", a.Source, models.SourceGenerated)
		}
		if a.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Error("artwork id not assigned")
		}
	}
}

func TestStoreUploadFailureIsIsolated(t *testing.T) {
	objects := &fakeObjectStore{uploadErr: map[string]bool{"broken-theme": true}}
	records := &fakeRecorder{failAfter: -1}
	agent := NewStorageAgent(objects, records)

	images := []models.StorableImage{
		storableImage("good theme"),
		storableImage("broken theme"),
		storableImage("good theme"),
	}

	stored, failed := agent.Store(context.Background(), images)
	if stored != 2 || failed != 1 {
		t.Fatalf("stored/failed = %d/%d, want 2/1", stored, failed)
	}
	if len(records.created) != 2 {
		t.Errorf("metadata rows = %d, want 2 (no row for failed upload)", len(records.created))
	}
}

func TestStoreCompensatesFailedInsert(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecorder{failAfter: 1}
	agent := NewStorageAgent(objects, records)

	images := []models.StorableImage{
		storableImage("gardens"),
		storableImage("gardens"),
	}

	stored, failed := agent.Store(context.Background(), images)
	if stored != 1 || failed != 1 {
		t.Fatalf("stored/failed = %d/%d, want 1/1", stored, failed)
	}
	if len(objects.deletes) != 1 {
		t.Fatalf("compensating deletes = %d, want 1", len(objects.deletes))
	}
	if objects.deletes[0] != objects.uploads[1] {
		t.Errorf("deleted %q, want the key of the failed item %q", objects.deletes[0], objects.uploads[1])
	}
}

func TestStoreCompensatingDeleteFailureStillCounts(t *testing.T) {
	objects := &fakeObjectStore{deleteErr: errors.New("delete refused")}
	records := &fakeRecorder{failAfter: 0}
	agent := NewStorageAgent(objects, records)

	stored, failed := agent.Store(context.Background(), []models.StorableImage{storableImage("gardens")})
	if stored != 0 || failed != 1 {
		t.Fatalf("stored/failed = %d/%d, want 0/1", stored, failed)
	}
}

func TestStoreDefaultsTagsFromTheme(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecorder{failAfter: -1}
	agent := NewStorageAgent(objects, records)

	tagged := storableImage("Garden Strolls")
	tagged.Tags = []string{"watercolor", "outdoors"}
	untagged := storableImage("Garden Strolls")

	agent.Store(context.Background(), []models.StorableImage{tagged, untagged})

	if len(records.created) != 2 {
		t.Fatalf("metadata rows = %d, want 2", len(records.created))
	}
	if got := records.created[0].Tags; len(got) != 2 || got[0] != "watercolor" {
		t.Errorf("explicit tags not preserved: %v", got)
	}
	if got := records.created[1].Tags; len(got) != 2 || got[0] != "Garden" || got[1] != "Strolls" {
		t.Errorf("default tags = %v, want theme words", got)
	}
}

func TestStorageKey(t *testing.T) {
	tests := []struct {
		theme string
		slug  string
	}{
		{"Garden Strolls", "garden-strolls"},
		{"  spaced   out  ", "spaced-out"},
		{"", "untitled"},
		{"one", "one"},
	}

	for _, tt := range tests {
		key := storageKey(tt.theme)
		if !strings.HasPrefix(key, tt.slug+"/") {
			t.Errorf("storageKey(%q) = %q, want prefix %q/", tt.theme, key, tt.slug)
		}
		if !strings.HasSuffix(key, ".png") {
			t.Errorf("storageKey(%q) = %q, want .png suffix", tt.theme, key)
		}
	}

	if storageKey("gardens") == storageKey("gardens") {
		t.Error("consecutive keys for one theme collided")
	}
}
