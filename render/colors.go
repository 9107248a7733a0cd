package render

import "github.com/fatih/color"

// Colors maps display roles to sprintf-style colorizers. The fatih/color
// functions honor color.NoColor, so the same Colors value works for both
// terminals and pipes.
type Colors struct {
	Container func(string, ...any) string
	Number    func(string, ...any) string
	String    func(string, ...any) string
	Array     func(string, ...any) string
	Inferred  func(string, ...any) string
	JSON      func(string, ...any) string
	Name      func(string, ...any) string
	Value     func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Container: color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
		Number:    color.YellowString,
		String:    color.RedString,
		Array:     color.HiYellowString,
		Inferred:  color.YellowString,
		JSON:      color.HiRedString,
		Name:      color.HiBlueString,
		Value:     color.GreenString,
	}
}
