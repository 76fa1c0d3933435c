package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aidanlsb/clientbook/internal/model"
)

// CorruptRecordError reports a stored row whose fields no longer validate.
type CorruptRecordError struct {
	ID  int64
	Err error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("stored client %d is invalid: %v", e.ID, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// List returns every client in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Client, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, phone, email, address FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return scanRows(rows, scanClient)
}

func scanClient(rows *sql.Rows) (model.Client, error) {
	var id int64
	var name, phone, email, address string
	if err := rows.Scan(&id, &name, &phone, &email, &address); err != nil {
		return model.Client{}, err
	}
	return toClient(id, name, phone, email, address)
}

// Get returns the client with the given row ID.
func (s *Store) Get(ctx context.Context, id int64) (model.Client, error) {
	var name, phone, email, address string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, phone, email, address FROM clients WHERE id = ?`, id,
	).Scan(&name, &phone, &email, &address)
	if err != nil {
		if isNoRows(err) {
			return model.Client{}, ErrClientNotFound
		}
		return model.Client{}, err
	}
	return toClient(id, name, phone, email, address)
}

// Insert stores c and returns it with its new ID.
func (s *Store) Insert(ctx context.Context, c model.Client) (model.Client, error) {
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (name, phone, email, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name.String(), c.Phone.String(), c.Email.String(), c.Address.String(), now, now,
	)
	if err != nil {
		return model.Client{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Client{}, err
	}
	c.ID = id
	return c, nil
}

// Update overwrites the stored fields of c.ID.
func (s *Store) Update(ctx context.Context, c model.Client) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE clients SET name = ?, phone = ?, email = ?, address = ?, updated_at = ? WHERE id = ?`,
		c.Name.String(), c.Phone.String(), c.Email.String(), c.Address.String(), time.Now().Unix(), c.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes the client with the given ID.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Clear removes every client.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM clients`)
	return err
}

// Count returns the number of stored clients.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n)
	return n, err
}

// HasName reports whether a client other than exceptID is stored under name.
// Names compare case-sensitively. An exceptID of 0 excludes nothing.
func (s *Store) HasName(ctx context.Context, name model.Name, exceptID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE name = ? AND id != ?)`, name.String(), exceptID,
	).Scan(&exists)
	return exists, err
}

func toClient(id int64, name, phone, email, address string) (model.Client, error) {
	n, err := model.NewName(name)
	if err != nil {
		return model.Client{}, &CorruptRecordError{ID: id, Err: err}
	}
	p, err := model.NewPhone(phone)
	if err != nil {
		return model.Client{}, &CorruptRecordError{ID: id, Err: err}
	}
	e, err := model.NewEmail(email)
	if err != nil {
		return model.Client{}, &CorruptRecordError{ID: id, Err: err}
	}
	a, err := model.NewAddress(address)
	if err != nil {
		return model.Client{}, &CorruptRecordError{ID: id, Err: err}
	}
	c := model.NewClient(n, p, e, a)
	c.ID = id
	return c, nil
}
