package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// resetAuthForm rearma el formulario de login/registro según el modo actual.
func (m *Model) resetAuthForm() {
	*m.password = ""
	fields := []huh.Field{
		huh.NewInput().Key("email").Title("Email").Value(m.email),
		huh.NewInput().Key("password").Title("Contraseña").
			EchoMode(huh.EchoModePassword).Value(m.password),
	}
	if m.mode == modeSignup {
		fields = append(fields,
			huh.NewInput().Key("full_name").Title("Nombre completo").Value(m.fullName),
		)
	}
	m.authForm = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// handleAuthKey teclas de la pantalla de auth; todo lo no global va al formulario.
func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+r" {
		if m.mode == modeLogin {
			m.mode = modeSignup
		} else {
			m.mode = modeLogin
		}
		m.resetAuthForm()
		return m, m.authForm.Init()
	}
	return m.forwardToForm(msg)
}

// forwardToForm entrega el mensaje al formulario activo (modal de oficina o
// formulario de auth) y dispara el envío cuando el formulario se completa.
// El envío ocurre una sola vez: el modal se cierra al enviarse y el formulario
// de auth se rearma, de modo que un formulario completado nunca se reenvía.
func (m Model) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Con una carga en vuelo los formularios no reciben entradas.
	if m.loading {
		return m, nil
	}

	if m.officeForm != nil {
		f, cmd := m.officeForm.Update(msg)
		if ff, ok := f.(*huh.Form); ok {
			m.officeForm = ff
		}
		if m.officeForm.State == huh.StateCompleted {
			// Cerrar el modal antes de enviar: el alta no es idempotente.
			m.officeForm = nil
			return m.submitOfficeForm()
		}
		return m, cmd
	}

	if m.screen == ScreenAuth && m.authForm != nil {
		f, cmd := m.authForm.Update(msg)
		if ff, ok := f.(*huh.Form); ok {
			m.authForm = ff
		}
		if m.authForm.State == huh.StateCompleted {
			next, submitCmd := m.submitAuthForm()
			next.resetAuthForm()
			return next, tea.Batch(submitCmd, next.authForm.Init())
		}
		return m, cmd
	}

	return m, nil
}

// submitAuthForm envía las credenciales según el modo.
func (m Model) submitAuthForm() (Model, tea.Cmd) {
	email := strings.TrimSpace(*m.email)
	password := *m.password
	m.loading = true
	if m.mode == modeSignup {
		m.loadingText = "Creando cuenta..."
		return m, tea.Batch(m.spinner.Tick, m.signUpCmd(email, password, strings.TrimSpace(*m.fullName)))
	}
	m.loadingText = "Iniciando sesión..."
	return m, tea.Batch(m.spinner.Tick, m.signInCmd(email, password))
}

// renderAuth pantalla de login/registro con el banner transitorio arriba.
func (m Model) renderAuth() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("OfficeDesk"))
	b.WriteString("\n")
	if m.mode == modeSignup {
		b.WriteString(m.styles.Subtitle.Render("Crear una cuenta nueva"))
	} else {
		b.WriteString(m.styles.Subtitle.Render("Inicia sesión para continuar"))
	}
	b.WriteString("\n\n")

	if m.authForm != nil {
		b.WriteString(m.authForm.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter continuar · ctrl+r login/registro · ctrl+c salir"))
	return b.String()
}
