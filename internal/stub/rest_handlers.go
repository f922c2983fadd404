package stub

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
)

// undefinedRelation descriptor de error para tablas inexistentes, con el
// mismo código SQLSTATE que devolvería el backend real sin esquema.
func undefinedRelation(c *fiber.Ctx, table string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"code":    domain.CodeUndefinedRelation,
		"message": fmt.Sprintf("relation %q does not exist", "public."+table),
		"details": "",
	})
}

// parseQuery separa los filtros de igualdad (col=eq.valor) del select.
// Devuelve además si el select pide embeber la oficina (join relacional).
func parseQuery(c *fiber.Ctx) (filters map[string]string, embedOffice bool) {
	filters = map[string]string{}
	for key, value := range c.Queries() {
		if key == "select" {
			embedOffice = strings.Contains(value, "offices(")
			continue
		}
		if v, ok := strings.CutPrefix(value, "eq."); ok {
			filters[key] = v
		}
	}
	return filters, embedOffice
}

// List consulta de registros con filtros de igualdad y join opcional.
// GET /rest/v1/:table
func (h *Handlers) List(c *fiber.Ctx) error {
	table := c.Params("table")
	filters, embedOffice := parseQuery(c)
	rows, ok := h.store.ListRows(table, filters, embedOffice)
	if !ok {
		return undefinedRelation(c, table)
	}
	return c.JSON(rows)
}

// Insert alta de un registro; devuelve la fila creada como representación.
// POST /rest/v1/:table
func (h *Handlers) Insert(c *fiber.Ctx) error {
	table := c.Params("table")
	switch table {
	case "offices":
		var o entity.Office
		if err := c.BodyParser(&o); err != nil {
			return badRequest(c, err)
		}
		created := h.store.InsertOffice(o)
		return c.Status(fiber.StatusCreated).JSON([]entity.Office{created})
	case "memberships":
		var m entity.Membership
		if err := c.BodyParser(&m); err != nil {
			return badRequest(c, err)
		}
		created := h.store.InsertMembership(m)
		return c.Status(fiber.StatusCreated).JSON([]entity.Membership{created})
	case "profiles", "clients", "leads", "fees":
		// Tablas solo de lectura en el stub: el cliente no las inserta.
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"code":    "42501",
			"message": "insert not allowed on " + table,
			"details": "",
		})
	default:
		return undefinedRelation(c, table)
	}
}

// Delete elimina registros por filtro id=eq.<id> (limpieza compensatoria).
// DELETE /rest/v1/:table
func (h *Handlers) Delete(c *fiber.Ctx) error {
	table := c.Params("table")
	filters, _ := parseQuery(c)
	if table != "offices" {
		if _, ok := h.store.ListRows(table, nil, false); !ok {
			return undefinedRelation(c, table)
		}
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"code":    "42501",
			"message": "delete not allowed on " + table,
			"details": "",
		})
	}
	id, ok := filters["id"]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "PGRST100",
			"message": "delete sin filtro id",
			"details": "",
		})
	}
	h.store.DeleteOffice(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "PGRST102",
		"message": "cuerpo inválido: " + err.Error(),
		"details": "",
	})
}
