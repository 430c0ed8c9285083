package log

import (
	"strings"

	"github.com/gruntwork-io/artifact-search/internal/errors"
	"github.com/sirupsen/logrus"
)

// Level is a logging level. The zero value is ErrorLevel, which maps to logrus.ErrorLevel.
type Level uint32

const (
	// ErrorLevel is used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel is for non-critical entries that deserve eyes, such as case conflicts between uploaded paths.
	WarnLevel
	// InfoLevel is the default.
	InfoLevel
	// DebugLevel reports how each pattern is expanded.
	DebugLevel
	// TraceLevel reports every matched file.
	TraceLevel
)

const (
	shiftLogrusLevel = Level(logrus.ErrorLevel)

	defaultLevel = InfoLevel
)

// AllLevels exposes all logging levels.
var AllLevels = Levels{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}

var levelNames = [...][2]string{
	ErrorLevel: {"error", "err"},
	WarnLevel:  {"warn", "wrn"},
	InfoLevel:  {"info", "inf"},
	DebugLevel: {"debug", "deb"},
	TraceLevel: {"trace", "trc"},
}

// ParseLevel takes a level name, case-insensitively, and returns the Level constant.
func ParseLevel(str string) (Level, error) {
	str = strings.TrimSpace(str)

	for _, level := range AllLevels {
		if strings.EqualFold(level.String(), str) {
			return level, nil
		}
	}

	return defaultLevel, errors.Errorf("invalid level %q, supported levels: %s", str, AllLevels)
}

// String implements fmt.Stringer.
func (level Level) String() string {
	if level > TraceLevel {
		return ""
	}

	return levelNames[level][0]
}

// ShortName returns the three-letter name of the level used by the pretty formatter.
func (level Level) ShortName() string {
	if level > TraceLevel {
		return ""
	}

	return levelNames[level][1]
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (level *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = lvl

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (level Level) MarshalText() ([]byte, error) {
	if name := level.String(); name != "" {
		return []byte(name), nil
	}

	return nil, errors.Errorf("invalid level %d", level)
}

// ToLogrusLevel converts the level to its logrus counterpart.
func (level Level) ToLogrusLevel() logrus.Level {
	return logrus.Level(min(level, TraceLevel) + shiftLogrusLevel)
}

// FromLogrusLevel converts a logrus level back to Level. Logrus levels above ErrorLevel (panic, fatal) map to
// ErrorLevel.
func FromLogrusLevel(lvl logrus.Level) Level {
	if Level(lvl) < shiftLogrusLevel {
		return ErrorLevel
	}

	return min(Level(lvl)-shiftLogrusLevel, TraceLevel)
}

// Levels is a list of levels.
type Levels []Level

// String returns the comma separated level names.
func (levels Levels) String() string {
	names := make([]string, len(levels))

	for i, level := range levels {
		names[i] = level.String()
	}

	return strings.Join(names, ", ")
}
