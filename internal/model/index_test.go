package model

import "testing"

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"007", 7, false},
		{"", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"+1", 0, true},
		{"1 2", 0, true},
		{"a", 0, true},
		{"1 some random string", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIndex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got index %d", got.OneBased())
				}
				if err.Error() != IndexConstraints {
					t.Errorf("message = %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.OneBased() != tt.want {
				t.Errorf("OneBased() = %d, want %d", got.OneBased(), tt.want)
			}
			if got.ZeroBased() != tt.want-1 {
				t.Errorf("ZeroBased() = %d, want %d", got.ZeroBased(), tt.want-1)
			}
		})
	}
}

func TestIndexConversions(t *testing.T) {
	if _, err := IndexFromOneBased(0); err == nil {
		t.Error("expected error for one-based 0")
	}
	if _, err := IndexFromZeroBased(-1); err == nil {
		t.Error("expected error for zero-based -1")
	}

	idx, err := IndexFromZeroBased(2)
	if err != nil {
		t.Fatal(err)
	}
	if idx.OneBased() != 3 || idx.String() != "3" {
		t.Errorf("got one-based %d (%s)", idx.OneBased(), idx)
	}
}
