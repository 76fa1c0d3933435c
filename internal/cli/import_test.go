package cli

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/testutil"
)

func TestDetectImportFormat(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		source   string
		explicit string
		want     string
		wantErr  bool
	}{
		{name: "directory is markdown", source: dir, want: formatMarkdown},
		{name: "file is yaml", source: "clients.yaml", want: formatYAML},
		{name: "stdin is yaml", source: "-", want: formatYAML},
		{name: "explicit wins", source: dir, explicit: "YAML", want: formatYAML},
		{name: "unknown explicit", source: dir, explicit: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectImportFormat(tt.source, tt.explicit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImportClientsSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	b := testutil.NewBook(t)
	if _, err := b.Add(ctx, testutil.Amy(t)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	incoming := []model.Client{testutil.Amy(t), testutil.Bob(t), testutil.Bob(t)}
	data := importData{}
	warnings, err := importClients(ctx, b, incoming, false, &data)
	if err != nil {
		t.Fatalf("importClients: %v", err)
	}

	if len(data.Imported) != 1 || data.Imported[0].Name.String() != testutil.BobName {
		t.Errorf("Imported = %+v, want only Bob", data.Imported)
	}
	if diff := cmp.Diff([]string{testutil.AmyName, testutil.BobName}, data.Skipped); diff != "" {
		t.Errorf("Skipped mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 2 || warnings[0].Code != WarnDuplicateSkipped {
		t.Errorf("warnings = %+v", warnings)
	}

	all, err := b.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("stored %d clients, want 2", len(all))
	}
}

func TestImportClientsDryRunStoresNothing(t *testing.T) {
	ctx := context.Background()
	b := testutil.NewBook(t)

	data := importData{}
	if _, err := importClients(ctx, b, []model.Client{testutil.Amy(t), testutil.Bob(t)}, true, &data); err != nil {
		t.Fatalf("importClients: %v", err)
	}
	if len(data.Imported) != 2 {
		t.Errorf("Imported = %d, want 2", len(data.Imported))
	}

	all, err := b.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("dry run stored %d clients", len(all))
	}
}
