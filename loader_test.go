package quadrature

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSamples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"two columns", "0\t1.5\n1\t2.5\n", []float64{1.5, 2.5}},
		{"no trailing newline", "0\t1.5\n1\t2.5", []float64{1.5, 2.5}},
		{"crlf", "0\t1.5\r\n1\t-2e3\r\n", []float64{1.5, -2000}},
		{"extra columns ignored", "0\t7\tm/s\n", []float64{7}},
		{"time column not parsed", "t0\t3\n", []float64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSamples(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("LoadSamples failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("samples mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadSamples_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{"short line", "0\t1.0\n1\n", "line 2"},
		{"non-numeric", "0\t1.0\n1\tfast\n", "line 2"},
		{"space separated", "0 1.0\n", "line 1"},
		{"blank line", "0\t1.0\n\n2\t3.0\n", "line 2"},
		{"empty", "", "no samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSamples(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q does not mention %q", err, tt.wantLine)
			}
			t.Logf("✓ Rejected: %v", err)
		})
	}
}

func TestLoadSamplesFile_Fixtures(t *testing.T) {
	for _, path := range []string{"testdata/short_line.txt", "testdata/non_numeric.txt"} {
		_, err := LoadSamplesFile(path)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("%s: expected ErrMalformedInput, got %v", path, err)
		}
		if err != nil && !strings.Contains(err.Error(), path) {
			t.Errorf("%s: error %q does not name the file", path, err)
		}
	}
}

func TestLoadSamplesFile_Missing(t *testing.T) {
	_, err := LoadSamplesFile("testdata/does-not-exist.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrMalformedInput) {
		t.Errorf("missing file should not be reported as malformed input: %v", err)
	}
}
