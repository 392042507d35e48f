package dbaccess

import (
	"path/filepath"
	"testing"

	"github.com/4everaerial/chainweb-node/domain/consensus/utils/difficulty"
	"github.com/4everaerial/chainweb-node/domain/consensus/utils/hashnum"
)

func prepareContextForTest(t *testing.T) *DatabaseContext {
	t.Helper()
	ctx, err := New(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("unexpected error opening database: %+v", err)
	}
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Fatalf("unexpected error closing database: %+v", err)
		}
	})
	return ctx
}

func TestEpochTargetStoreFetch(t *testing.T) {
	ctx := prepareContextForTest(t)
	target := difficulty.Target(hashnum.MaxHashNum.Rsh(7).Div64(100))

	if err := ctx.StoreEpochTarget(3, 17, target); err != nil {
		t.Fatalf("TestEpochTargetStoreFetch: unexpected error: %+v", err)
	}

	fetched, err := ctx.FetchEpochTarget(3, 17)
	if err != nil {
		t.Fatalf("TestEpochTargetStoreFetch: unexpected error: %+v", err)
	}
	if fetched != target {
		t.Errorf("TestEpochTargetStoreFetch: got %s want %s", fetched, target)
	}

	exists, err := ctx.HasEpochTarget(3, 17)
	if err != nil {
		t.Fatalf("TestEpochTargetStoreFetch: unexpected error: %+v", err)
	}
	if !exists {
		t.Errorf("TestEpochTargetStoreFetch: stored record reported missing")
	}
}

func TestEpochTargetNotFound(t *testing.T) {
	ctx := prepareContextForTest(t)

	_, err := ctx.FetchEpochTarget(0, 0)
	if err == nil {
		t.Fatalf("TestEpochTargetNotFound: expected an error for a missing record")
	}
	if !IsNotFoundError(err) {
		t.Errorf("TestEpochTargetNotFound: expected a not-found error, got: %+v", err)
	}

	exists, err := ctx.HasEpochTarget(0, 0)
	if err != nil {
		t.Fatalf("TestEpochTargetNotFound: unexpected error: %+v", err)
	}
	if exists {
		t.Errorf("TestEpochTargetNotFound: missing record reported present")
	}
}

// TestEpochTargetKeysAreDistinct guards against chain and epoch interleaving
// in the key layout.
func TestEpochTargetKeysAreDistinct(t *testing.T) {
	ctx := prepareContextForTest(t)

	targetA := difficulty.Target(hashnum.FromUint64(1000))
	targetB := difficulty.Target(hashnum.FromUint64(2000))

	if err := ctx.StoreEpochTarget(1, 2, targetA); err != nil {
		t.Fatalf("TestEpochTargetKeysAreDistinct: unexpected error: %+v", err)
	}
	if err := ctx.StoreEpochTarget(2, 1, targetB); err != nil {
		t.Fatalf("TestEpochTargetKeysAreDistinct: unexpected error: %+v", err)
	}

	fetched, err := ctx.FetchEpochTarget(1, 2)
	if err != nil {
		t.Fatalf("TestEpochTargetKeysAreDistinct: unexpected error: %+v", err)
	}
	if fetched != targetA {
		t.Errorf("TestEpochTargetKeysAreDistinct: got %s want %s", fetched, targetA)
	}
}
