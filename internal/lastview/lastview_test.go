package lastview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/clientbook/internal/testutil"
)

func TestWriteAndReadRoundTrip(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "clients.db")

	if err := Write(dataPath, New([]string{"alice", "bob"})); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	readBack, err := Read(dataPath)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if diff := cmp.Diff([]string{"alice", "bob"}, readBack.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
	if readBack.Timestamp.IsZero() {
		t.Error("Timestamp was not saved")
	}
}

func TestReadMissingView(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "clients.db")

	if _, err := Read(dataPath); !errors.Is(err, ErrNoView) {
		t.Fatalf("Read error = %v, want ErrNoView", err)
	}
}

func TestReadEmptyKeywordsIsNoView(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "clients.db")
	if err := os.WriteFile(Path(dataPath), []byte(`{"keywords": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(dataPath); !errors.Is(err, ErrNoView) {
		t.Fatalf("Read error = %v, want ErrNoView", err)
	}
}

func TestReadCorruptView(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "clients.db")
	if err := os.WriteFile(Path(dataPath), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(dataPath)
	if err == nil || errors.Is(err, ErrNoView) {
		t.Fatalf("Read error = %v, want parse error", err)
	}
}

func TestClear(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "clients.db")

	if err := Clear(dataPath); err != nil {
		t.Fatalf("Clear without view: %v", err)
	}

	if err := Write(dataPath, New([]string{"alice"})); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := Clear(dataPath); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(Path(dataPath)); !os.IsNotExist(err) {
		t.Errorf("view file still exists: %v", err)
	}
}

func TestPredicate(t *testing.T) {
	v := New([]string{"alice"})
	pred := v.Predicate()

	alice := testutil.Client(t, testutil.AliceName, "94351253", "alice@example.com", "123, Jurong West Ave 6")
	amy := testutil.Amy(t)

	if !pred(alice) {
		t.Error("predicate rejects Alice Pauline")
	}
	if pred(amy) {
		t.Error("predicate accepts Amy Bee")
	}
}
