package handle

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxcube"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(nil)

	id, err := r.Create(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	if err := r.MakeMove(id, nxcube.R); err != nil {
		t.Fatal(err)
	}
	snap, err := r.Snapshot(id)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Dimensions != 3 || snap.Seed != 7 || len(snap.Pieces) != 26 {
		t.Errorf("unexpected snapshot: dim=%d seed=%d pieces=%d", snap.Dimensions, snap.Seed, len(snap.Pieces))
	}

	cube, err := r.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if cube.IsSolved() {
		t.Error("cube should be turned")
	}
	if err := r.Reset(id); err != nil {
		t.Fatal(err)
	}
	if !cube.IsSolved() {
		t.Error("Reset should solve the cube")
	}

	if err := r.Destroy(id); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d after destroy", r.Len())
	}
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := NewRegistry(nil)
	id := uuid.New()

	if err := r.MakeMove(id, nxcube.F); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("MakeMove: got %v", err)
	}
	if err := r.Reset(id); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Reset: got %v", err)
	}
	if _, err := r.Snapshot(id); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Snapshot: got %v", err)
	}
	if err := r.Destroy(id); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Destroy: got %v", err)
	}
}

func TestRegistryCreateInvalid(t *testing.T) {
	r := NewRegistry(nil)
	if _, err := r.Create(0, 0); !errors.Is(err, nxcube.ErrInvalidDimension) {
		t.Errorf("got %v, want ErrInvalidDimension", err)
	}
	if r.Len() != 0 {
		t.Error("failed create must not issue a handle")
	}
}

func TestRegistryMoveErrorsPassThrough(t *testing.T) {
	r := NewRegistry(nil, nxcube.WithParallelism(2))
	id, err := r.Create(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.MakeMove(id, nxcube.Slice(nxcube.FaceU, 1, 3)); !errors.Is(err, nxcube.ErrInvalidLayer) {
		t.Errorf("got %v, want ErrInvalidLayer", err)
	}
}

func TestRegistryAdopt(t *testing.T) {
	r := NewRegistry(nil)
	cube, err := nxcube.New(4)
	if err != nil {
		t.Fatal(err)
	}
	id := uuid.New()
	r.Adopt(id, cube)

	got, err := r.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got != cube {
		t.Error("Get should return the adopted cube")
	}
}

func TestRegistryBuildIssuesNoHandle(t *testing.T) {
	r := NewRegistry(nil, nxcube.WithSteps(2))
	cube, err := r.Build(2, 9)
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 0 {
		t.Errorf("Build registered a cube: Len = %d", r.Len())
	}
	if cube.Dimensions() != 2 || cube.Seed() != 9 {
		t.Errorf("built %dx%dx%d seed %d", cube.Dimensions(), cube.Dimensions(), cube.Dimensions(), cube.Seed())
	}
	if _, err := r.Build(0, 0); !errors.Is(err, nxcube.ErrInvalidDimension) {
		t.Errorf("Build(0): got %v", err)
	}
}
