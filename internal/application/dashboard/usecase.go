// Package dashboard genera los agregados del panel de una oficina a partir
// de las colecciones remotas de clientes, leads y cuotas.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/officedesk/internal/application/dto"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/internal/domain/provider"
)

// UseCase calcula el resumen del dashboard para la oficina activa.
//
// Fuente de datos: DataProvider (tres colecciones independientes, scoped por
// oficina). No renderiza nada; devuelve un DTO puro que la capa de
// presentación consume.
type UseCase struct {
	data provider.DataProvider
}

// NewUseCase construye el caso de uso.
func NewUseCase(data provider.DataProvider) *UseCase {
	return &UseCase{data: data}
}

// GetSummary obtiene clientes, leads y cuotas de la oficina y computa:
// clientes activos, leads abiertos, ingreso recurrente total y cuotas
// vencidas, más la lista de acciones derivada.
//
// Tres llamadas en paralelo; una colección ausente (nil) cuenta como vacía
// (conteo 0, suma 0), nunca como error.
func (uc *UseCase) GetSummary(ctx context.Context, officeID string) (*dto.DashboardSummaryDTO, error) {
	type clientsResult struct {
		clients []entity.Client
		err     error
	}
	type leadsResult struct {
		leads []entity.Lead
		err   error
	}
	type feesResult struct {
		fees []entity.Fee
		err  error
	}

	clientsCh := make(chan clientsResult, 1)
	leadsCh := make(chan leadsResult, 1)
	feesCh := make(chan feesResult, 1)

	go func() {
		cs, err := uc.data.ClientsByOffice(ctx, officeID)
		clientsCh <- clientsResult{cs, err}
	}()
	go func() {
		ls, err := uc.data.LeadsByOffice(ctx, officeID)
		leadsCh <- leadsResult{ls, err}
	}()
	go func() {
		fs, err := uc.data.FeesByOffice(ctx, officeID)
		feesCh <- feesResult{fs, err}
	}()

	clients := <-clientsCh
	leads := <-leadsCh
	fees := <-feesCh

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clients.err)
	}
	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: leads: %w", leads.err)
	}
	if fees.err != nil {
		return nil, fmt.Errorf("dashboard: cuotas: %w", fees.err)
	}

	return Summarize(clients.clients, leads.leads, fees.fees), nil
}

// Summarize computa los agregados sobre colecciones ya cargadas.
// Separado de GetSummary para poder probar la aritmética sin proveedor.
func Summarize(clients []entity.Client, leads []entity.Lead, fees []entity.Fee) *dto.DashboardSummaryDTO {
	summary := &dto.DashboardSummaryDTO{
		MonthlyRevenue: decimal.Zero,
		GeneratedAt:    time.Now(),
	}

	for _, c := range clients {
		if c.Status == entity.ClientActive {
			summary.ActiveClients++
		}
	}
	for _, l := range leads {
		if l.Open() {
			summary.OpenLeads++
		}
	}
	for _, f := range fees {
		summary.MonthlyRevenue = summary.MonthlyRevenue.Add(f.MonthlyValue)
		if f.PaymentStatus == entity.FeeOverdue {
			summary.OverdueFees++
		}
	}
	summary.MonthlyRevenue = summary.MonthlyRevenue.Round(2)

	if summary.OverdueFees > 0 {
		summary.Actions = []dto.ActionItemDTO{{
			Kind:    dto.ActionOverdueFees,
			Message: fmt.Sprintf("Tienes %d cuota(s) vencida(s) por gestionar", summary.OverdueFees),
		}}
	} else {
		summary.Actions = []dto.ActionItemDTO{{
			Kind:    dto.ActionNone,
			Message: "Sin acciones pendientes",
		}}
	}
	return summary
}

// ListClients devuelve los clientes de la oficina para la pestaña de clientes.
// Colección ausente → lista vacía.
func (uc *UseCase) ListClients(ctx context.Context, officeID string) ([]entity.Client, error) {
	clients, err := uc.data.ClientsByOffice(ctx, officeID)
	if err != nil {
		return nil, fmt.Errorf("clientes: %w", err)
	}
	if clients == nil {
		clients = []entity.Client{}
	}
	return clients, nil
}

// ListLeads devuelve los leads de la oficina para la pestaña de leads.
func (uc *UseCase) ListLeads(ctx context.Context, officeID string) ([]entity.Lead, error) {
	leads, err := uc.data.LeadsByOffice(ctx, officeID)
	if err != nil {
		return nil, fmt.Errorf("leads: %w", err)
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}
