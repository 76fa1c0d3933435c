package transfer

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/clientbook/internal/model"
)

type document struct {
	Clients []Record `yaml:"clients"`
}

// ExportYAML writes clients as a single YAML document with a top-level
// "clients" list.
func ExportYAML(w io.Writer, clients []model.Client) error {
	doc := document{Clients: make([]Record, len(clients))}
	for i, c := range clients {
		doc.Clients[i] = FromClient(c)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode clients: %w", err)
	}
	return enc.Close()
}

// ImportYAML reads a document written by ExportYAML. Unknown keys are
// rejected, and the first invalid record aborts the import.
func ImportYAML(r io.Reader) ([]model.Client, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	clients := make([]model.Client, 0, len(doc.Clients))
	for i, rec := range doc.Clients {
		c, err := rec.ToClient()
		if err != nil {
			return nil, &RecordError{Source: fmt.Sprintf("clients[%d]", i), Err: err}
		}
		clients = append(clients, c)
	}
	return clients, nil
}
