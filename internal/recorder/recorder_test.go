package recorder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/handle"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func newTestSession(t *testing.T) (*Session, *handle.Registry, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	reg := handle.NewRegistry(nil)
	return NewSession(db, reg, nil), reg, db
}

func TestSessionCreateApplyReopen(t *testing.T) {
	s, reg, db := newTestSession(t)

	id, err := s.Create(3, 5, "")
	if err != nil {
		t.Fatal(err)
	}
	if s.CubeID() != id {
		t.Errorf("CubeID = %q, want %q", s.CubeID(), id)
	}
	if reg.Len() != 1 {
		t.Errorf("registry holds %d cubes", reg.Len())
	}

	if _, err := s.Apply("R1 U1 R1' U1'"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply("F2*2"); err != nil {
		t.Fatal(err)
	}
	live, err := s.Cube()
	if err != nil {
		t.Fatal(err)
	}
	want := live.Pieces()

	// a second session over the same database replays to the same cube
	other := NewSession(db, handle.NewRegistry(nil), nil)
	if err := other.Open(id); err != nil {
		t.Fatal(err)
	}
	replayed, err := other.Cube()
	if err != nil {
		t.Fatal(err)
	}
	if replayed.String() != live.String() {
		t.Error("replayed cube differs from the live one")
	}
	if len(replayed.Pieces()) != len(want) {
		t.Error("replayed cube has a different piece count")
	}
	if replayed.Seed() != 5 {
		t.Errorf("seed = %d, want 5", replayed.Seed())
	}

	history, err := other.History()
	if err != nil {
		t.Fatal(err)
	}
	if got := nxcube.FormatMoves(history); got != "R1 U1 R1' U1' F2*2" {
		t.Errorf("history = %q", got)
	}
}

func TestSessionRejectedMovesAreNotStored(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, err := s.Create(2, 0, ""); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Apply("R1 Q"); !errors.Is(err, nxcube.ErrInvalidNotation) {
		t.Errorf("got %v, want ErrInvalidNotation", err)
	}
	if _, err := s.Apply("R1 U3"); !errors.Is(err, nxcube.ErrInvalidLayer) {
		t.Errorf("got %v, want ErrInvalidLayer", err)
	}

	history, err := s.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 0 {
		t.Errorf("rejected moves were stored: %v", history)
	}
	cube, _ := s.Cube()
	if !cube.IsSolved() {
		t.Error("rejected moves changed the cube")
	}
}

func TestSessionReset(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, err := s.Create(3, 0, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply("R1 U1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	cube, _ := s.Cube()
	if !cube.IsSolved() {
		t.Error("Reset should solve the cube")
	}
	history, _ := s.History()
	if len(history) != 0 {
		t.Errorf("Reset should clear history, got %v", history)
	}
}

func TestSessionDelete(t *testing.T) {
	s, reg, db := newTestSession(t)
	id, err := s.Create(3, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 0 {
		t.Error("Delete should release the handle")
	}
	if _, err := s.Cube(); !errors.Is(err, ErrNoCube) {
		t.Errorf("Cube after delete: got %v", err)
	}
	if _, err := storage.NewCubeRepository(db).Get(id); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("cube still stored: %v", err)
	}
}

func TestSessionWithoutCube(t *testing.T) {
	s, _, _ := newTestSession(t)
	if _, err := s.Apply("R"); !errors.Is(err, ErrNoCube) {
		t.Errorf("Apply: got %v", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrNoCube) {
		t.Errorf("Reset: got %v", err)
	}
	if err := s.Open("00000000-0000-0000-0000-000000000000"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Open unknown: got %v", err)
	}
	if _, err := s.Create(0, 0, ""); !errors.Is(err, nxcube.ErrInvalidDimension) {
		t.Errorf("Create(0): got %v", err)
	}
}

func TestSessionReopenSameCube(t *testing.T) {
	s, reg, _ := newTestSession(t)
	id, err := s.Create(3, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Open(id); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 1 {
		t.Errorf("registry holds %d cubes after reopening", reg.Len())
	}
	if _, err := s.Cube(); err != nil {
		t.Errorf("cube lost after reopening: %v", err)
	}
}

func TestSessionReopenWithBadStoredMoves(t *testing.T) {
	s, reg, db := newTestSession(t)
	id, err := s.Create(3, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply("U"); err != nil {
		t.Fatal(err)
	}
	live, err := s.Cube()
	if err != nil {
		t.Fatal(err)
	}
	want := live.String()

	// R over five layers can never be replayed on a 3x3x3
	if _, err := storage.NewMoveRepository(db).Append(id, []nxcube.Move{nxcube.Slice(nxcube.FaceR, 1, 5)}); err != nil {
		t.Fatal(err)
	}

	if err := s.Open(id); !errors.Is(err, nxcube.ErrInvalidLayer) {
		t.Fatalf("Open: got %v, want ErrInvalidLayer", err)
	}
	if s.CubeID() != id {
		t.Errorf("CubeID = %q after a failed reopen", s.CubeID())
	}
	cube, err := s.Cube()
	if err != nil {
		t.Fatalf("open cube lost after a failed reopen: %v", err)
	}
	if cube.String() != want {
		t.Error("failed reopen changed the open cube")
	}
	if reg.Len() != 1 {
		t.Errorf("registry holds %d cubes", reg.Len())
	}

	fresh := handle.NewRegistry(nil)
	other := NewSession(db, fresh, nil)
	if err := other.Open(id); err == nil {
		t.Fatal("Open of a cube with a bad stored move should fail")
	}
	if fresh.Len() != 0 || other.CubeID() != "" {
		t.Error("failed open should leave no cube behind")
	}
}

func TestStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")
	sf, err := NewStateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sf.HasActiveCube() {
		t.Error("fresh state should have no active cube")
	}

	if err := sf.SetDBPath("/tmp/x.db"); err != nil {
		t.Fatal(err)
	}
	if err := sf.SetActiveCube("abc"); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewStateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.DBPath() != "/tmp/x.db" || loaded.ActiveCubeID() != "abc" {
		t.Errorf("loaded state = %+v", loaded.State())
	}

	if err := loaded.ClearActiveCube(); err != nil {
		t.Fatal(err)
	}
	if loaded.HasActiveCube() {
		t.Error("ClearActiveCube did not clear")
	}
}

func TestStateFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStateFile(path); err == nil {
		t.Error("expected an error for a corrupt state file")
	}
}
