package adapter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	m "loshu.dev/pkg/loshu/internal/model"
)

// Format is an encoding for squares on disk or stdout.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
	FormatText  Format = "text"
)

// ParseFormat validates a format name; the empty string means FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// FormatForPath picks a decoder from the file extension.
func FormatForPath(path m.Path) Format {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatText
	}
}

// EncodeSquare writes square to w. JSON keeps the web client's field names.
func EncodeSquare(w io.Writer, format Format, square m.Square) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(square)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(square); err != nil {
			return err
		}

		return encoder.Close()
	case FormatCSV:
		writer := csv.NewWriter(w)

		for _, row := range square.Matrix {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = strconv.Itoa(v)
			}

			if err := writer.Write(record); err != nil {
				return err
			}
		}

		writer.Flush()

		return writer.Error()
	case FormatText, FormatTable:
		_, err := io.WriteString(w, square.Matrix.String())
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// DecodeMatrix parses content in the given format. JSON and YAML accept
// either a bare list of rows or an object with a "matrix" field.
func DecodeMatrix(format Format, content []byte) (m.Matrix, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return decodeStructured(content)
	case FormatCSV:
		return decodeCSV(content)
	case FormatText, FormatTable:
		return decodeText(content)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// decodeStructured relies on YAML being a superset of the JSON we accept.
func decodeStructured(content []byte) (m.Matrix, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	root := doc.Content[0]

	var mx m.Matrix

	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&mx); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var wrapper struct {
			Matrix m.Matrix `yaml:"matrix"`
		}
		if err := root.Decode(&wrapper); err != nil {
			return nil, err
		}

		mx = wrapper.Matrix
	default:
		return nil, fmt.Errorf("expected a list of rows or an object with a matrix field")
	}

	if len(mx) == 0 {
		return nil, fmt.Errorf("no rows found")
	}

	return mx, nil
}

func decodeCSV(content []byte) (m.Matrix, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return parseRows(records)
}

func decodeText(content []byte) (m.Matrix, error) {
	var rows [][]string

	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		rows = append(rows, fields)
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) (m.Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows found")
	}

	mx := make(m.Matrix, 0, len(rows))

	for r, fields := range rows {
		row := make([]int, 0, len(fields))

		for c, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}

			row = append(row, v)
		}

		mx = append(mx, row)
	}

	return mx, nil
}
