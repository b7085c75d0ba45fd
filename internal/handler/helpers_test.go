package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"noteful/internal/domain"
	"noteful/internal/domain/models"
	"noteful/internal/service"
)

// newTestRouter builds the full router over real services and in-memory
// repositories, so tests exercise the whole chain: routing, id resolution,
// validation, merge semantics, and sanitized serialization.
func newTestRouter() (*http.ServeMux, *fakeFolderRepo, *fakeNoteRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	folderRepo := newFakeFolderRepo()
	noteRepo := newFakeNoteRepo()

	folderService := service.NewFolderService(folderRepo, logger)
	noteService := service.NewNoteService(noteRepo, logger)

	return NewRouter(folderService, noteService, logger), folderRepo, noteRepo
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// fakeFolderRepo is an in-memory FolderRepository.
type fakeFolderRepo struct {
	mu      sync.Mutex
	folders map[string]models.Folder
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[string]models.Folder{}}
}

func (f *fakeFolderRepo) List(ctx context.Context) ([]models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.folders))
	for id := range f.folders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Folder, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.folders[id])
	}
	return out, nil
}

func (f *fakeFolderRepo) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	folder, ok := f.folders[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	return &folder, nil
}

func (f *fakeFolderRepo) Insert(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.folders[folder.ID]; ok {
		return nil, fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
	}
	f.folders[folder.ID] = *folder

	stored := f.folders[folder.ID]
	return &stored, nil
}

func (f *fakeFolderRepo) Update(ctx context.Context, id string, folder *models.Folder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(f.folders, id)
	f.folders[folder.ID] = *folder
	return nil
}

func (f *fakeFolderRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.folders[id]; !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(f.folders, id)
	return nil
}

// fakeNoteRepo is an in-memory NoteRepository.
type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[string]models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]models.Note{}}
}

func (f *fakeNoteRepo) List(ctx context.Context) ([]models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.notes))
	for id := range f.notes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Note, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.notes[id])
	}
	return out, nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	note, ok := f.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	return &note, nil
}

func (f *fakeNoteRepo) Insert(ctx context.Context, note *models.Note) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.notes[note.ID]; ok {
		return nil, fmt.Errorf("note %s: %w", note.ID, domain.ErrConflict)
	}
	f.notes[note.ID] = *note

	stored := f.notes[note.ID]
	return &stored, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, id string, note *models.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.notes[id]; !ok {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	f.notes[id] = *note
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.notes[id]; !ok {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	delete(f.notes, id)
	return nil
}
