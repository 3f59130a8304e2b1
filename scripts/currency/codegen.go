// Codegen builds currency_data.go, the table behind the ISO registry,
// from currency_data.csv. Run it from the repository root:
//
//	go run scripts/currency/codegen.go
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

const (
	dir      = "scripts/currency"
	dataFile = "currency_data.csv"
	tmplFile = "currency_data.tmpl"
	outFile  = "currency_data.go"
	maxScale = 8
)

// columns lists the header of the data file.
var columns = []string{"Name", "Code", "Num", "Scale", "Symbol"}

type record struct {
	Name   string
	Code   string
	Num    string
	Scale  int
	Symbol string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "codegen:", err)
		os.Exit(1)
	}
}

func run() error {
	in, err := os.Open(filepath.Join(dir, dataFile))
	if err != nil {
		return err
	}
	defer in.Close()

	recs, err := parseRecords(in)
	if err != nil {
		return fmt.Errorf("%v: %w", dataFile, err)
	}
	src, err := render(filepath.Join(dir, tmplFile), recs)
	if err != nil {
		return fmt.Errorf("%v: %w", tmplFile, err)
	}
	return os.WriteFile(outFile, src, 0o644) //nolint:gosec
}

// parseRecords reads and validates the data file.
// Records are returned ordered by code, the order of [Registry.All].
func parseRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, columns) {
		return nil, fmt.Errorf("header %v, want %v", header, columns)
	}

	var recs []record
	codes := make(map[string]int)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for _, k := range []string{rec.Code, rec.Num} {
			if k == "" {
				continue
			}
			if prev, ok := codes[k]; ok {
				return nil, fmt.Errorf("line %d: code %v already used on line %d", line, k, prev)
			}
			codes[k] = line
		}
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b record) int {
		return strings.Compare(a.Code, b.Code)
	})
	return recs, nil
}

func parseRecord(row []string) (record, error) {
	rec := record{
		Name:   strings.TrimSpace(row[0]),
		Code:   strings.ToUpper(strings.TrimSpace(row[1])),
		Num:    strings.TrimSpace(row[2]),
		Symbol: strings.TrimSpace(row[4]),
	}
	if !isCode(rec.Code, 'A', 'Z') {
		return record{}, fmt.Errorf("code %q is not 3 letters", row[1])
	}
	if rec.Num != "" && !isCode(rec.Num, '0', '9') {
		return record{}, fmt.Errorf("%v: numeric code %q is not 3 digits", rec.Code, rec.Num)
	}
	scale, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil || scale < 0 || scale > maxScale {
		return record{}, fmt.Errorf("%v: scale %q is not in [0, %d]", rec.Code, row[3], maxScale)
	}
	rec.Scale = scale
	return rec, nil
}

func isCode(s string, lo, hi byte) bool {
	if len(s) != 3 {
		return false
	}
	for i := range len(s) {
		if s[i] < lo || s[i] > hi {
			return false
		}
	}
	return true
}

// render executes the template over the records and formats the result.
func render(path string, recs []record) ([]byte, error) {
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, recs); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
