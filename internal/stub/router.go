package stub

import "github.com/gofiber/fiber/v2"

// Router registra las rutas del stub: superficie de auth y de datos.
func Router(app *fiber.App, h *Handlers) {
	auth := app.Group("/auth/v1")
	auth.Post("/signup", h.SignUp)
	auth.Post("/token", h.Token)
	auth.Get("/user", h.User)
	auth.Post("/logout", h.Logout)

	rest := app.Group("/rest/v1")
	rest.Get("/:table", h.List)
	rest.Post("/:table", h.Insert)
	rest.Delete("/:table", h.Delete)
}
