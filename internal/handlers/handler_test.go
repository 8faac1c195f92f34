package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/place-of-your-own/artworks/internal/coach"
	"github.com/place-of-your-own/artworks/internal/database"
	"github.com/place-of-your-own/artworks/internal/models"
)

// Fakes for the handler's collaborator interfaces, shared by the tests in
// this package.

type fakeRunner struct {
	gotReq *models.RunRequest
	stats  *models.PipelineStats
	err    error
}

func (f *fakeRunner) Run(_ context.Context, req *models.RunRequest) (*models.PipelineStats, error) {
	f.gotReq = req
	return f.stats, f.err
}

type fakeArtworkRepo struct {
	artworks  map[uuid.UUID]*models.Artwork
	listed    []*models.Artwork
	listErr   error
	updateErr error
	deleted   []uuid.UUID
}

func newFakeArtworkRepo(artworks ...*models.Artwork) *fakeArtworkRepo {
	repo := &fakeArtworkRepo{artworks: map[uuid.UUID]*models.Artwork{}}
	for _, a := range artworks {
		repo.artworks[a.ID] = a
		repo.listed = append(repo.listed, a)
	}
	return repo
}

func (f *fakeArtworkRepo) List(_ context.Context, _ database.ArtworkFilter) ([]*models.Artwork, error) {
	return f.listed, f.listErr
}

func (f *fakeArtworkRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Artwork, error) {
	a, ok := f.artworks[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtworkRepo) Update(_ context.Context, id uuid.UUID, isApproved *bool, tags *[]string) (*models.Artwork, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	a, ok := f.artworks[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if isApproved != nil {
		a.IsApproved = *isApproved
	}
	if tags != nil {
		a.Tags = *tags
	}
	return a, nil
}

func (f *fakeArtworkRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.artworks[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.artworks, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeObjects struct {
	deleted   []string
	deleteErr error
	objects   map[string][]byte
	getErr    error
}

func (f *fakeObjects) ObjectURL(key string) string {
	return "https://cdn.example/" + key
}

func (f *fakeObjects) GetObject(_ context.Context, key string) (io.ReadCloser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

type fakeCoach struct{}

func (fakeCoach) Respond(_ context.Context, message string, history []coach.Message) coach.Response {
	return coach.Response{Message: "echo: " + message, Type: coach.Classify(message, history)}
}

var errBoom = errors.New("boom")

func newTestHandler(runner *fakeRunner, repo *fakeArtworkRepo, objects *fakeObjects) *Handler {
	if runner == nil {
		runner = &fakeRunner{}
	}
	if repo == nil {
		repo = newFakeArtworkRepo()
	}
	if objects == nil {
		objects = &fakeObjects{}
	}
	return NewHandler(runner, repo, objects, fakeCoach{}, Capabilities{
		GeminiConfigured:   true,
		DatabaseConfigured: true,
		StorageConfigured:  true,
	})
}
