package pretty

import (
	"testing"

	perrors "github.com/g-plane/tiny-pretty/pkg/errors"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	if o.MaxWidth != 80 {
		t.Errorf("MaxWidth = %d, want 80", o.MaxWidth)
	}
	if o.IndentUnit != 2 {
		t.Errorf("IndentUnit = %d, want 2", o.IndentUnit)
	}
	if o.IndentKind != IndentSpaces {
		t.Errorf("IndentKind = %q, want %q", o.IndentKind, IndentSpaces)
	}
	if o.LineBreak != LineBreakLF {
		t.Errorf("LineBreak = %q, want %q", o.LineBreak, LineBreakLF)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got, err := Options{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != DefaultOptions() {
		t.Errorf("Normalize() = %+v, want defaults", got)
	}

	partial, err := Options{MaxWidth: 100, IndentKind: IndentTabs}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if partial.MaxWidth != 100 || partial.IndentKind != IndentTabs {
		t.Errorf("Normalize dropped explicit values: %+v", partial)
	}
	if partial.IndentUnit != 2 || partial.LineBreak != LineBreakLF {
		t.Errorf("Normalize missed defaults: %+v", partial)
	}

	if _, err := (Options{MaxWidth: -5}).Normalize(); !perrors.Is(err, perrors.ErrCodeInvalidOptions) {
		t.Errorf("Normalize error = %v, want INVALID_OPTIONS", err)
	}
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Options
		wantErr bool
	}{
		{
			name:  "full document",
			input: "max_width = 100\nindent_unit = 4\nindent_kind = \"tabs\"\nline_break = \"crlf\"\n",
			want:  Options{MaxWidth: 100, IndentUnit: 4, IndentKind: IndentTabs, LineBreak: LineBreakCRLF},
		},
		{
			name:  "omitted fields take defaults",
			input: "max_width = 120\n",
			want:  Options{MaxWidth: 120, IndentUnit: 2, IndentKind: IndentSpaces, LineBreak: LineBreakLF},
		},
		{
			name:  "empty document is all defaults",
			input: "",
			want:  DefaultOptions(),
		},
		{
			name:    "unknown indent kind",
			input:   "indent_kind = \"elastic\"\n",
			wantErr: true,
		},
		{
			name:    "negative width",
			input:   "max_width = -1\n",
			wantErr: true,
		},
		{
			name:    "malformed toml",
			input:   "max_width = = 80\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.input))
			if tt.wantErr {
				if !perrors.Is(err, perrors.ErrCodeInvalidOptions) {
					t.Fatalf("ParseOptions error = %v, want INVALID_OPTIONS", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOptions = %+v, want %+v", got, tt.want)
			}
		})
	}
}
