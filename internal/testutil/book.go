// Package testutil provides reusable fixtures for client book tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/store"
)

// Client builds a client from raw field values, failing the test if any
// value is invalid.
func Client(t *testing.T, name, phone, email, address string) model.Client {
	t.Helper()
	n, err := model.NewName(name)
	if err != nil {
		t.Fatalf("name %q: %v", name, err)
	}
	p, err := model.NewPhone(phone)
	if err != nil {
		t.Fatalf("phone %q: %v", phone, err)
	}
	e, err := model.NewEmail(email)
	if err != nil {
		t.Fatalf("email %q: %v", email, err)
	}
	a, err := model.NewAddress(address)
	if err != nil {
		t.Fatalf("address %q: %v", address, err)
	}
	return model.NewClient(n, p, e, a)
}

// Field values used by the fixtures below.
const (
	AliceName  = "Alice Pauline"
	BensonName = "Benson Meier"
	CarlName   = "Carl Kurz"
	DanielName = "Daniel Meier"
	ElleName   = "Elle Meyer"
	FionaName  = "Fiona Kunz"
	GeorgeName = "George Best"
	AmyName    = "Amy Bee"
	AmyPhone   = "11111111"
	AmyEmail   = "amy@example.com"
	AmyAddress = "Block 312, Amy Street 1"
	BobName    = "Bob Choo"
	BobPhone   = "22222222"
	BobEmail   = "bob@example.com"
	BobAddress = "Block 123, Bobby Street 3"
)

// TypicalClients returns a fixed set of clients with distinct names.
func TypicalClients(t *testing.T) []model.Client {
	t.Helper()
	return []model.Client{
		Client(t, AliceName, "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111"),
		Client(t, BensonName, "98765432", "johnd@example.com", "311, Clementi Ave 2, #02-25"),
		Client(t, CarlName, "95352563", "heinz@example.com", "wall street"),
		Client(t, DanielName, "87652533", "cornelia@example.com", "10th street"),
		Client(t, ElleName, "9482224", "werner@example.com", "michegan ave"),
		Client(t, FionaName, "9482427", "lydia@example.com", "little tokyo"),
		Client(t, GeorgeName, "9482442", "anna@example.com", "4th street"),
	}
}

// Amy returns a client that is not among TypicalClients.
func Amy(t *testing.T) model.Client {
	t.Helper()
	return Client(t, AmyName, AmyPhone, AmyEmail, AmyAddress)
}

// Bob returns a client that is not among TypicalClients.
func Bob(t *testing.T) model.Client {
	t.Helper()
	return Client(t, BobName, BobPhone, BobEmail, BobAddress)
}

// NewStore opens an in-memory store that is closed when the test ends.
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewBook returns an empty book backed by an in-memory store.
func NewBook(t *testing.T) *book.Book {
	t.Helper()
	return book.New(NewStore(t))
}

// NewTypicalBook returns a book holding TypicalClients.
func NewTypicalBook(t *testing.T) *book.Book {
	t.Helper()
	b := NewBook(t)
	for _, c := range TypicalClients(t) {
		if _, err := b.Add(context.Background(), c); err != nil {
			t.Fatalf("seed %s: %v", c.Name, err)
		}
	}
	return b
}

// NewDataFile returns the path of a store file in a fresh temp directory,
// pre-populated with clients. The store is closed before returning so a
// CLI process can lock it.
func NewDataFile(t *testing.T, clients ...model.Client) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clients.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, c := range clients {
		if _, err := s.Insert(context.Background(), c); err != nil {
			_ = s.Close()
			t.Fatalf("seed %s: %v", c.Name, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
	return path
}
