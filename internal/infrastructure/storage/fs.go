package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"svw.info/sudokusolve/internal/domain"
)

// FS persists puzzles as one JSON file per puzzle in a directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var ErrNotFound = errors.New("puzzle not found")

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

// Save writes the puzzle, assigning a fresh ID when it has none. The
// givens grid must parse, so a malformed record never reaches disk.
func (s *FS) Save(ctx context.Context, sp *domain.SavedPuzzle) error {
	if sp == nil {
		return errors.New("invalid puzzle: nil")
	}
	if _, err := domain.Parse(sp.Givens); err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(sp.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sp)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SavedPuzzle, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var sp domain.SavedPuzzle
	if err := json.Unmarshal(data, &sp); err != nil {
		return nil, err
	}
	if sp.ID == "" {
		sp.ID = id
	}
	return &sp, nil
}

// List returns metadata for every stored puzzle, newest first.
// Unreadable files are skipped rather than failing the whole listing.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.PuzzleMeta{}, nil
		}
		return nil, err
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && strings.HasSuffix(e.Name(), ".json")
	})
	metas := lo.FilterMap(names, func(name string, _ int) (domain.PuzzleMeta, bool) {
		sp, err := s.Load(ctx, strings.TrimSuffix(name, ".json"))
		if err != nil {
			return domain.PuzzleMeta{}, false
		}
		return domain.PuzzleMeta{
			ID:        sp.ID,
			Name:      sp.Name,
			Givens:    sp.Givens,
			CreatedAt: sp.CreatedAt,
		}, true
	})
	sort.Slice(metas, func(i, j int) bool { return metas[i].CreatedAt > metas[j].CreatedAt })
	return metas, nil
}
