package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhoicas/officedesk/internal/application/dto"
)

// handleDashboardKey teclas del dashboard: pestañas, refresco, cambio de
// oficina y logout.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "right":
		return m.setTab((m.tab + 1) % 3)
	case "shift+tab", "left":
		return m.setTab((m.tab + 2) % 3)
	case "1":
		return m.setTab(TabDashboard)
	case "2":
		return m.setTab(TabLeads)
	case "3":
		return m.setTab(TabClients)
	case "r":
		return m.setTab(m.tab) // recarga explícita de la pestaña actual
	case "o":
		m.screen = ScreenOffices
		m.cursor = 0
		return m, nil
	case "ctrl+l":
		return m.logout()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// setTab activa la pestaña y re-dispara su carga (la navegación por pestañas
// siempre recarga; el contenido se reemplaza por completo al llegar).
func (m Model) setTab(t Tab) (Model, tea.Cmd) {
	off := m.deps.State.CurrentOffice()
	if off == nil {
		m.screen = ScreenOffices
		return m, nil
	}
	m.tab = t
	gen := m.deps.State.NextGeneration()
	m.loading = true
	switch t {
	case TabLeads:
		m.loadingText = "Cargando leads..."
		return m, tea.Batch(m.spinner.Tick, m.loadLeadsCmd(gen, off.ID))
	case TabClients:
		m.loadingText = "Cargando clientes..."
		return m, tea.Batch(m.spinner.Tick, m.loadClientsCmd(gen, off.ID))
	default:
		m.loadingText = "Actualizando dashboard..."
		return m, tea.Batch(m.spinner.Tick, m.loadDashboardCmd(gen, off.ID))
	}
}

// renderDashboard encabezado + pestañas + contenido de la pestaña activa.
func (m Model) renderDashboard() string {
	var b strings.Builder

	off := m.deps.State.CurrentOffice()
	name := ""
	if off != nil {
		name = off.Name
	}
	b.WriteString(m.styles.Title.Render(name))
	b.WriteString("\n")
	if sess := m.deps.State.Session(); sess != nil {
		who := sess.DisplayName
		if who == "" {
			who = sess.Email
		}
		b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%s · rol %s", who, m.deps.State.CurrentRole())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabLeads:
		b.WriteString(m.renderLeads())
	case TabClients:
		b.WriteString(m.renderClients())
	default:
		b.WriteString(m.renderSummary())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("1/2/3 pestañas · r refrescar · o cambiar oficina · ctrl+l cerrar sesión · q salir"))
	return b.String()
}

func (m Model) renderTabs() string {
	labels := []string{"Dashboard", "Leads", "Clientes"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if Tab(i) == m.tab {
			parts[i] = m.styles.TabActive.Render(label)
		} else {
			parts[i] = m.styles.Tab.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

// renderSummary los cuatro agregados más la lista de acciones.
func (m Model) renderSummary() string {
	if m.summary == nil {
		return m.styles.Muted.Render("Sin datos todavía.")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  clientes activos\n", m.styles.Metric.Render(fmt.Sprintf("%4d", m.summary.ActiveClients))))
	b.WriteString(fmt.Sprintf("%s  leads abiertos\n", m.styles.Metric.Render(fmt.Sprintf("%4d", m.summary.OpenLeads))))
	b.WriteString(fmt.Sprintf("%s  ingreso recurrente mensual\n", m.styles.Metric.Render("$"+m.summary.MonthlyRevenue.StringFixed(2))))
	b.WriteString(fmt.Sprintf("%s  cuotas vencidas\n", m.styles.Metric.Render(fmt.Sprintf("%4d", m.summary.OverdueFees))))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Acciones"))
	b.WriteString("\n")
	for _, action := range m.summary.Actions {
		if action.Kind == dto.ActionOverdueFees {
			b.WriteString(m.styles.Error.Render("● " + action.Message))
		} else {
			b.WriteString(m.styles.Muted.Render("○ " + action.Message))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLeads() string {
	if len(m.leads) == 0 {
		return m.styles.Muted.Render("No hay leads en esta oficina.")
	}
	var b strings.Builder
	for _, l := range m.leads {
		status := l.Status
		if l.Open() {
			status = m.styles.Success.Render(status)
		} else {
			status = m.styles.Muted.Render(status)
		}
		b.WriteString(fmt.Sprintf("%-30s %-12s $%s\n", l.Name, status, l.EstimatedValue.StringFixed(0)))
	}
	return b.String()
}

func (m Model) renderClients() string {
	if len(m.clients) == 0 {
		return m.styles.Muted.Render("No hay clientes en esta oficina.")
	}
	var b strings.Builder
	for _, c := range m.clients {
		b.WriteString(fmt.Sprintf("%-30s %-10s %s\n", c.Name, c.Status, m.styles.Muted.Render(c.Email)))
	}
	return b.String()
}
