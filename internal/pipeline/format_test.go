package pipeline

import (
	"errors"
	"testing"
)

func TestLookupFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", DefaultFormat, false},
		{"kramdown", "kramdown", false},
		{"GFM", "gfm", false},
		{" commonmark ", "commonmark", false},
		{"asciidoc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			f, err := LookupFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("error = %v, want %v", err, ErrUnknownFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Name != tt.want {
				t.Errorf("Name = %q, want %q", f.Name, tt.want)
			}
		})
	}
}

func TestFormatNames(t *testing.T) {
	t.Parallel()

	got := FormatNames()
	want := []string{"commonmark", "gfm", "kramdown"}
	if len(got) != len(want) {
		t.Fatalf("FormatNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FormatNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormat_ExtensionsFresh(t *testing.T) {
	t.Parallel()

	f, _ := LookupFormat("kramdown")
	a, b := f.Extensions(), f.Extensions()
	if len(a) == 0 {
		t.Fatal("kramdown has no extensions")
	}
	a[0] = nil
	if b[0] == nil {
		t.Error("Extensions() slices share backing storage")
	}

	cm, _ := LookupFormat("commonmark")
	if len(cm.Extensions()) != 0 {
		t.Errorf("commonmark extensions = %d, want 0", len(cm.Extensions()))
	}
}
