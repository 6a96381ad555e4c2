package argsio

import "github.com/fatih/color"

// Style is a set of SGR attributes applied through fatih/color.
type Style []color.Attribute

// Sprint renders text with the style when m supports color, and returns
// it unchanged otherwise.
func (s Style) Sprint(m *IOManager, text string) string {
	if len(s) == 0 {
		return text
	}
	c := color.New(s...)
	if m.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Colorize applies attrs to s when color is supported.
func (m *IOManager) Colorize(s string, attrs ...color.Attribute) string {
	return Style(attrs).Sprint(m, s)
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, color.Bold) }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, color.Faint) }

// Theme maps each log level to a style.
type Theme struct {
	Debug   Style
	Info    Style
	Success Style
	Warning Style
	Error   Style
}

// DefaultTheme uses the basic 16-color palette, which every color level renders.
func DefaultTheme() Theme {
	return Theme{
		Debug:   Style{color.FgMagenta},
		Info:    Style{color.FgBlue},
		Success: Style{color.FgGreen},
		Warning: Style{color.FgYellow},
		Error:   Style{color.FgRed, color.Bold},
	}
}

func (t Theme) forLevel(level LogLevel) Style {
	switch level {
	case LevelDebug:
		return t.Debug
	case LevelInfo:
		return t.Info
	case LevelSuccess:
		return t.Success
	case LevelWarning:
		return t.Warning
	case LevelError:
		return t.Error
	}
	return nil
}
