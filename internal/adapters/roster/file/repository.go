package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
)

// Format は名簿ファイルの形式です。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat は対応していないファイル形式が指定された場合に返却されます。
var ErrUnsupportedFormat = errors.New("roster file: unsupported format")

// Repository はファイルから名簿を読み込む roster.Repository の実装です。
// List のたびにファイルを読み直します。
type Repository struct {
	path   string
	format Format
}

type yamlDocument struct {
	Employees []roster.Record `yaml:"employees"`
}

// NewRepository は Repository を生成します。format が空の場合は拡張子から判定します。
func NewRepository(path string, format Format) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("roster file: path must be set")
	}
	if format == "" {
		format = DetectFormat(path)
	}
	switch format {
	case FormatYAML, FormatCSV:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &Repository{path: path, format: format}, nil
}

// DetectFormat は拡張子からファイル形式を判定します。
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// List は名簿ファイルの全行をファイル内の順序で返します。
func (r *Repository) List(ctx context.Context) ([]roster.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("roster file: read %s: %w", r.path, err)
	}

	switch r.format {
	case FormatCSV:
		return DecodeCSV(b)
	default:
		return DecodeYAML(b)
	}
}

// DecodeYAML は employees キー配下の名簿を読み込みます。
func DecodeYAML(b []byte) ([]roster.Record, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("roster file: parse yaml: %w", err)
	}
	return doc.Employees, nil
}

// DecodeCSV はヘッダー行付きの CSV 名簿を読み込みます。
func DecodeCSV(b []byte) ([]roster.Record, error) {
	var records []roster.Record
	if err := gocsv.UnmarshalBytes(bytes.TrimSpace(b), &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []roster.Record{}, nil
		}
		return nil, fmt.Errorf("roster file: parse csv: %w", err)
	}
	return records, nil
}
