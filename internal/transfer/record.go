// Package transfer moves clients between the store and portable files:
// a single YAML document, or a directory of markdown notes with YAML
// frontmatter.
package transfer

import (
	"fmt"

	"github.com/aidanlsb/clientbook/internal/model"
)

// Record is the portable form of a client. Fields hold raw text until
// ToClient validates them.
type Record struct {
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Address string `yaml:"address"`
}

// RecordError reports an imported record that failed validation.
type RecordError struct {
	// Source names the record, e.g. "clients[2]" or "amy-bee.md".
	Source string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// FromClient converts a client to its portable form.
func FromClient(c model.Client) Record {
	return Record{
		Name:    c.Name.String(),
		Phone:   c.Phone.String(),
		Email:   c.Email.String(),
		Address: c.Address.String(),
	}
}

// ToClient validates every field, in name, phone, email, address order,
// and returns the first constraint violation.
func (r Record) ToClient() (model.Client, error) {
	name, err := model.NewName(r.Name)
	if err != nil {
		return model.Client{}, err
	}
	phone, err := model.NewPhone(r.Phone)
	if err != nil {
		return model.Client{}, err
	}
	email, err := model.NewEmail(r.Email)
	if err != nil {
		return model.Client{}, err
	}
	address, err := model.NewAddress(r.Address)
	if err != nil {
		return model.Client{}, err
	}
	return model.NewClient(name, phone, email, address), nil
}
