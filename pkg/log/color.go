package log

import (
	"github.com/mgutz/ansi"
)

var (
	defaultColorScheme = ColorScheme{
		ErrorLevelStyle: "red",
		WarnLevelStyle:  "yellow",
		InfoLevelStyle:  "green",
		DebugLevelStyle: "blue+h",
		TraceLevelStyle: "white",
		PrefixStyle:     "cyan",
		TimestampStyle:  "black+h",
	}
)

const (
	None ColorStyleName = iota
	ErrorLevelStyle
	WarnLevelStyle
	InfoLevelStyle
	DebugLevelStyle
	TraceLevelStyle
	PrefixStyle
	TimestampStyle
)

type ColorStyleName byte

type ColorFunc func(string) string

type ColorStyle string

func (style ColorStyle) ColorFunc() ColorFunc {
	return ansi.ColorFunc(string(style))
}

type ColorScheme map[ColorStyleName]ColorStyle

func (scheme ColorScheme) Compile() compiledColorScheme {
	compiled := make(compiledColorScheme, len(scheme))

	for name, style := range scheme {
		compiled[name] = style.ColorFunc()
	}

	return compiled
}

type compiledColorScheme map[ColorStyleName]ColorFunc

var levelStyles = map[Level]ColorStyleName{
	ErrorLevel: ErrorLevelStyle,
	WarnLevel:  WarnLevelStyle,
	InfoLevel:  InfoLevelStyle,
	DebugLevel: DebugLevelStyle,
	TraceLevel: TraceLevelStyle,
}

func (scheme compiledColorScheme) LevelColorFunc(level Level) ColorFunc {
	return scheme.ColorFunc(levelStyles[level])
}

func (scheme compiledColorScheme) ColorFunc(name ColorStyleName) ColorFunc {
	if colorFunc, ok := scheme[name]; ok {
		return colorFunc
	}

	return func(s string) string { return s }
}
