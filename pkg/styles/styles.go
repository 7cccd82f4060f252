package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var defaultStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4"))

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F45E6E"))

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6ef4a1"))

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6EC4F4"))

var warnStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#F4C76E"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7D56F4")).
	BorderStyle(lipgloss.DoubleBorder()).
	Padding(0, 2)

func render(style string, text string) string {
	switch style {
	case "error":
		return errorStyle.Render(text)
	case "success":
		return successStyle.Render(text)
	case "info":
		return infoStyle.Render(text)
	case "warn":
		return warnStyle.Render(text)
	default:
		return defaultStyle.Render(text)
	}
}

// PrintFS imprime una línea con el estilo indicado.
func PrintFS(style string, text string, a ...interface{}) {
	fmt.Println(render(style, fmt.Sprintf(text, a...)))
}

// SprintfS devuelve el texto formateado con el estilo indicado.
func SprintfS(style string, format string, a ...interface{}) string {
	return render(style, fmt.Sprintf(format, a...))
}

// Titulo imprime un banner de sección para los comandos del motor.
func Titulo(text string) {
	fmt.Println(titleStyle.Render(text))
}
