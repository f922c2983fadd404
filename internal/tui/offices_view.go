package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jhoicas/officedesk/internal/application/dto"
)

// newOfficeForm arma el modal de creación de oficina.
func (m *Model) newOfficeForm() {
	*m.offName = ""
	*m.offNIT = ""
	*m.offAddress = ""
	*m.offPhone = ""
	*m.offEmail = ""
	m.officeForm = huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("name").Title("Nombre de la oficina").Value(m.offName),
		huh.NewInput().Key("nit").Title("NIT").Value(m.offNIT),
		huh.NewInput().Key("address").Title("Dirección").Value(m.offAddress),
		huh.NewInput().Key("phone").Title("Teléfono").Value(m.offPhone),
		huh.NewInput().Key("email").Title("Email").Value(m.offEmail),
	)).WithShowHelp(false)
}

// submitOfficeForm dispara el alta de la oficina con el usuario actual como admin.
func (m Model) submitOfficeForm() (Model, tea.Cmd) {
	sess := m.deps.State.Session()
	if sess == nil {
		m.officeForm = nil
		return m.activateAuth()
	}
	in := dto.CreateOfficeInput{
		Name:    *m.offName,
		NIT:     *m.offNIT,
		Address: *m.offAddress,
		Phone:   *m.offPhone,
		Email:   *m.offEmail,
	}
	m.loading = true
	m.loadingText = "Creando oficina..."
	return m, tea.Batch(m.spinner.Tick, m.createOfficeCmd(sess.UserID, in))
}

// handleOfficesKey teclas de la pantalla de selección de oficina.
func (m Model) handleOfficesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.officeForm != nil {
		if msg.String() == "esc" {
			m.officeForm = nil
			return m, nil
		}
		return m.forwardToForm(msg)
	}

	memberships := m.deps.State.Memberships()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(memberships)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(memberships) {
			if err := m.deps.State.SelectOffice(memberships[m.cursor].OfficeID); err != nil {
				return m.presentError(err)
			}
			return m.activateDashboard()
		}
	case "n":
		m.newOfficeForm()
		return m, m.officeForm.Init()
	case "ctrl+l":
		return m.logout()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// renderOffices selector de oficina, o invitación cuando no hay membresías.
func (m Model) renderOffices() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Selecciona una oficina"))
	b.WriteString("\n")
	if sess := m.deps.State.Session(); sess != nil && sess.DisplayName != "" {
		b.WriteString(m.styles.Subtitle.Render("Hola, " + sess.DisplayName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.officeForm != nil {
		b.WriteString(m.styles.Border.Render("Nueva oficina\n\n" + m.officeForm.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter continuar · esc cancelar"))
		return b.String()
	}

	memberships := m.deps.State.Memberships()
	if len(memberships) == 0 {
		b.WriteString("Aún no perteneces a ninguna oficina.\n")
		b.WriteString(m.styles.Subtitle.Render("Pulsa 'n' para crear la primera."))
		b.WriteString("\n")
	} else {
		for i, ms := range memberships {
			line := fmt.Sprintf("%s  %s", ms.OfficeName(), m.styles.Muted.Render("("+ms.Role+")"))
			if i == m.cursor {
				line = m.styles.Selected.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Help.Render("↑/↓ mover · enter entrar · n nueva oficina · ctrl+l cerrar sesión · q salir"))
	return b.String()
}
