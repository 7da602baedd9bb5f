// Package batch computes charts for a file of birth records: decoding TOML
// or YAML batch files, validating the records, running the computation over
// a bounded worker pool and re-running when the file changes.
package batch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/tuvi/internal/chart"
)

// Sentinel errors for batch file handling.
var (
	// ErrUnsupportedFormat indicates a batch file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported batch file format")
	// ErrNoBirths indicates a batch file with no birth records.
	ErrNoBirths = errors.New("batch file has no births")
	// ErrMissingField indicates a required record field is empty.
	ErrMissingField = errors.New("required field missing")
)

// Batch file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Record is one birth as written in a batch file. Date and Time are strings
// ("YYYY-MM-DD", "HH:MM") so lunar dates such as 1995-02-30 can be written.
type Record struct {
	Name  string `toml:"name" yaml:"name"`
	Date  string `toml:"date" yaml:"date"`
	Time  string `toml:"time" yaml:"time"`
	Sex   string `toml:"sex" yaml:"sex"`
	Lunar bool   `toml:"lunar" yaml:"lunar"`
	Leap  bool   `toml:"leap" yaml:"leap"`
}

// File is a decoded batch file. In TOML each record is a [[birth]] table;
// in YAML the records are a list under "births".
type File struct {
	Path   string   `toml:"-" yaml:"-"`
	Births []Record `toml:"birth" yaml:"births"`
}

// Label names a record for messages: its 1-based position and its name.
func (r Record) Label(i int) string {
	if r.Name == "" {
		return fmt.Sprintf("#%d", i+1)
	}
	return fmt.Sprintf("#%d %s", i+1, r.Name)
}

// Input converts the record into a chart input. It parses the fields but
// leaves range checks to chart.Input.Validate.
func (r Record) Input() (chart.Input, error) {
	if strings.TrimSpace(r.Date) == "" {
		return chart.Input{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	if strings.TrimSpace(r.Sex) == "" {
		return chart.Input{}, fmt.Errorf("%w: sex", ErrMissingField)
	}
	year, month, day, err := chart.ParseDate(r.Date)
	if err != nil {
		return chart.Input{}, err
	}
	hour, minute, err := chart.ParseClock(r.Time)
	if err != nil {
		return chart.Input{}, err
	}
	sex, err := chart.ParseSex(r.Sex)
	if err != nil {
		return chart.Input{}, err
	}
	return chart.Input{
		Name:   r.Name,
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Sex:    sex,
		Lunar:  r.Lunar,
		Leap:   r.Leap,
	}, nil
}

// FormatOf picks the decoder for a path from its extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads and decodes a batch file.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	f.Path = path
	return f, nil
}

// Decode parses batch file contents in the given format.
func Decode(data []byte, format string) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if len(f.Births) == 0 {
		return nil, ErrNoBirths
	}
	return &f, nil
}
