package tui

import "strings"

// View renderiza la pantalla activa (requisito de Bubble Tea).
func (m Model) View() string {
	if m.quitting {
		return "Hasta pronto.\n"
	}

	var body string
	switch m.screen {
	case ScreenAuth:
		body = m.renderAuth()
	case ScreenOffices:
		body = m.renderOffices()
	case ScreenDashboard:
		body = m.renderDashboard()
	}

	var b strings.Builder

	// Banner transitorio por encima de cualquier pantalla: los errores de
	// credenciales y de entrada se muestran donde sea que ocurran.
	if m.banner != "" {
		b.WriteString(m.styles.Banner.Render("⚠ " + m.banner))
		b.WriteString("\n\n")
	}

	b.WriteString(body)

	// Aviso bloqueante por encima del contenido.
	if m.notice != nil {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Border.
			BorderForeground(m.styles.Error.GetForeground()).
			Render(m.styles.Error.Render("✗ ") + m.notice.Message))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter para continuar"))
	}

	// Overlay de carga con mensaje de estado.
	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Subtitle.Render(m.loadingText))
	}

	b.WriteString("\n")
	return b.String()
}
