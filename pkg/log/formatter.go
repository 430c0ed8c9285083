package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/gruntwork-io/artifact-search/internal/errors"
)

const (
	PrettyFormatterName = "pretty"
	JSONFormatterName   = "json"

	defaultTimestampFormat = "15:04:05.000"
)

var (
	_ logrus.Formatter = new(PrettyFormatter)
	_ logrus.Formatter = new(JSONFormatter)
)

// PrettyFormatter writes human-readable lines: `timestamp LEVEL [prefix] message key=value ...`.
type PrettyFormatter struct {
	// Timestamp format to use for display when a full timestamp is printed.
	TimestampFormat string

	// DisableTimestamp allows disabling automatic timestamps in output.
	DisableTimestamp bool

	// Force disabling colors. For a TTY colors are enabled by default.
	DisableColors bool

	colorScheme compiledColorScheme
}

// NewPrettyFormatter returns a new PrettyFormatter instance with default values.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		TimestampFormat: defaultTimestampFormat,
		colorScheme:     defaultColorScheme.Compile(),
	}
}

// Format implements logrus.Formatter
func (formatter *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	var (
		lvl       = FromLogrusLevel(entry.Level)
		level     = strings.ToUpper(lvl.ShortName()) + " "
		fields    = Fields(entry.Data)
		prefix    string
		timestamp string
	)

	if val, ok := fields[FieldKeyPrefix].(string); ok && val != "" {
		prefix = fmt.Sprintf("[%s] ", val)
	}

	if !formatter.DisableTimestamp && formatter.TimestampFormat != "" {
		timestamp = entry.Time.Format(formatter.TimestampFormat) + " "
	}

	if !formatter.DisableColors {
		level = formatter.colorScheme.LevelColorFunc(lvl)(level)
		prefix = formatter.colorScheme.ColorFunc(PrefixStyle)(prefix)
		timestamp = formatter.colorScheme.ColorFunc(TimestampStyle)(timestamp)
	}

	if _, err := fmt.Fprintf(buf, "%s%s%s%s", timestamp, level, prefix, entry.Message); err != nil {
		return nil, errors.New(err)
	}

	for _, key := range fields.Keys(FieldKeyPrefix) {
		if _, err := fmt.Fprintf(buf, " %s=%v", key, fields[key]); err != nil {
			return nil, errors.New(err)
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.New(err)
	}

	return buf.Bytes(), nil
}

// JSONFormatter writes one JSON object per entry. Level names are our own, not the logrus ones.
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter returns a new JSONFormatter instance with default values.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
}

// Format implements logrus.Formatter
func (formatter *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	data := make(Fields, len(entry.Data)+len(logKeys))

	for key, val := range entry.Data {
		if err, ok := val.(error); ok {
			val = err.Error()
		}

		data[key] = val
	}

	data.fixKeyClashes()

	data[FieldKeyTime] = entry.Time.Format(formatter.TimestampFormat)
	data[FieldKeyLevel] = FromLogrusLevel(entry.Level).String()
	data[FieldKeyMsg] = entry.Message

	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		return nil, errors.Errorf("failed to marshal fields to JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseFormatter returns the formatter registered under the given name.
func ParseFormatter(name string, disableColors bool) (logrus.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PrettyFormatterName, "text", "":
		formatter := NewPrettyFormatter()
		formatter.DisableColors = disableColors

		return formatter, nil
	case JSONFormatterName:
		return NewJSONFormatter(), nil
	}

	return nil, errors.Errorf("invalid log format %q, supported formats: %s, %s", name, PrettyFormatterName, JSONFormatterName)
}

// IsTerminal returns true if the given writer is a terminal, so that colored output makes sense.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
