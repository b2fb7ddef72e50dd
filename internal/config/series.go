package config

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrNoValueColumn = errors.New("no numeric column")

// DemoSeries is drawn when no series file is given.
var DemoSeries = []float64{0.3, 0.04, 0.2, 0.5, 0.88, 0.9, 1.0, 0.1, 0.7, 0.3}

// seriesDoc is the document form of YAML and TOML series files.
type seriesDoc struct {
	Values []float64 `yaml:"values" toml:"values"`
}

// LoadSeries reads the samples in the file at path. The format follows the
// extension: .csv, .yaml or .yml, .toml, and anything else as plain text.
// The path "-" reads plain text from standard input.
func LoadSeries(path string) ([]float64, error) {
	if path == "-" {
		return ReadSeries(os.Stdin, "")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	values, err := ReadSeries(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// ReadSeries reads samples from r in the format named by a file extension.
func ReadSeries(r io.Reader, ext string) ([]float64, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return readCSV(r)
	case ".yaml", ".yml":
		return readYAML(r)
	case ".toml":
		var doc seriesDoc
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Values, nil
	default:
		return readText(r)
	}
}

// readYAML accepts a document with a values list or a bare list.
func readYAML(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc seriesDoc
	if err := yaml.Unmarshal(data, &doc); err == nil && doc.Values != nil {
		return doc.Values, nil
	}
	var values []float64
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// readCSV takes the column named "value", or else the first column whose
// first data cell is a number. A header row is detected by the absence of
// numbers in it.
func readCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	isNumber := func(s string) bool {
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	}
	col := -1
	header := true
	for i, h := range recs[0] {
		if strings.EqualFold(strings.TrimSpace(h), "value") {
			col = i
		}
		if isNumber(h) {
			header = false
		}
	}
	rows := recs
	if header {
		rows = recs[1:]
	} else {
		col = -1
	}
	if col < 0 && len(rows) > 0 {
		for i, cell := range rows[0] {
			if isNumber(cell) {
				col = i
				break
			}
		}
	}
	if col < 0 {
		if len(rows) == 0 {
			return nil, nil
		}
		return nil, ErrNoValueColumn
	}

	values := make([]float64, 0, len(rows))
	for i, row := range rows {
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// readText reads numbers separated by whitespace or commas. Text after a #
// is ignored.
func readText(r io.Reader) ([]float64, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, f := range strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		}) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			values = append(values, v)
		}
	}
	return values, sc.Err()
}
