package stub

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/officedesk/pkg/config"
	"github.com/jhoicas/officedesk/pkg/jwt"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// Handlers endpoints del stub (auth + datos).
type Handlers struct {
	store *Store
	cfg   config.StubConfig
	log   *logger.Logger
}

// NewHandlers construye los handlers.
func NewHandlers(store *Store, cfg config.StubConfig, log *logger.Logger) *Handlers {
	return &Handlers{store: store, cfg: cfg, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Data     struct {
		FullName string `json:"full_name"`
	} `json:"data"`
}

// sessionJSON arma el payload de sesión del protocolo de auth.
func (h *Handlers) sessionJSON(acc *account) (fiber.Map, error) {
	token, err := jwt.Generate(h.cfg.JWTSecret, acc.ID, acc.Email, acc.FullName, h.cfg.JWTIssuer, h.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   h.cfg.ExpMinutes * 60,
		"user": fiber.Map{
			"id":            acc.ID,
			"email":         acc.Email,
			"user_metadata": fiber.Map{"full_name": acc.FullName},
		},
	}, nil
}

// SignUp registra una cuenta nueva con su perfil.
// POST /auth/v1/signup
func (h *Handlers) SignUp(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_request", "error_description": "email y password son obligatorios",
		})
	}
	acc, ok := h.store.CreateAccount(req.Email, req.Password, req.Data.FullName)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "user_already_exists", "error_description": "User already registered",
		})
	}
	h.log.Info().Str("email", req.Email).Msg("stub: cuenta creada")
	body, err := h.sessionJSON(acc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server_error", "error_description": err.Error()})
	}
	return c.JSON(body)
}

// Token intercambia credenciales por un token de acceso.
// POST /auth/v1/token?grant_type=password
func (h *Handlers) Token(c *fiber.Ctx) error {
	if c.Query("grant_type") != "password" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported_grant_type", "error_description": "solo grant_type=password",
		})
	}
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_request", "error_description": "cuerpo inválido",
		})
	}
	acc, ok := h.store.Authenticate(req.Email, req.Password)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_grant", "error_description": "Invalid login credentials",
		})
	}
	body, err := h.sessionJSON(acc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server_error", "error_description": err.Error()})
	}
	return c.JSON(body)
}

// User devuelve la identidad del token vigente.
// GET /auth/v1/user
func (h *Handlers) User(c *fiber.Ctx) error {
	userID, ok := h.bearerUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid_token", "error_description": "token inválido o expirado",
		})
	}
	acc, ok := h.store.AccountByID(userID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid_token", "error_description": "usuario inexistente",
		})
	}
	return c.JSON(fiber.Map{
		"id":            acc.ID,
		"email":         acc.Email,
		"user_metadata": fiber.Map{"full_name": acc.FullName},
	})
}

// Logout revoca la sesión (el stub no mantiene lista de revocación).
// POST /auth/v1/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// bearerUser extrae y valida el token del header Authorization.
func (h *Handlers) bearerUser(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	userID, _, _, err := jwt.Parse(h.cfg.JWTSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return "", false
	}
	return userID, true
}
