package quadrature

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// valueField is the zero-based column holding the sample value; column 0 is
// the sample time and is not interpreted.
const valueField = 1

// LoadSamples reads tab-separated records, one per line, and returns the
// value column in file order. There is no header row. A line with fewer than
// two fields or a non-numeric value fails the whole load.
func LoadSamples(r io.Reader) ([]float64, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")

		fields := strings.Split(text, "\t")
		if len(fields) <= valueField {
			return nil, fmt.Errorf("line %d: expected at least %d tab-separated fields, got %d: %w",
				line, valueField+1, len(fields), ErrMalformedInput)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(fields[valueField]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrMalformedInput)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no samples: %w", ErrMalformedInput)
	}

	return values, nil
}

// LoadSamplesFile is LoadSamples over the named file.
func LoadSamplesFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	values, err := LoadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}
