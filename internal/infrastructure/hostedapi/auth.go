package hostedapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/officedesk/internal/domain"
	"github.com/jhoicas/officedesk/internal/domain/entity"
	pkgjwt "github.com/jhoicas/officedesk/pkg/jwt"
)

// ── Estructuras del protocolo de la API de auth ───────────────────────────────

type authUserPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type authSessionPayload struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        authUserPayload `json:"user"`
}

func (p authSessionPayload) toSession() *entity.Session {
	return &entity.Session{
		AccessToken: p.AccessToken,
		UserID:      p.User.ID,
		Email:       p.User.Email,
		DisplayName: p.User.UserMetadata.FullName,
		ExpiresAt:   time.Now().Add(time.Duration(p.ExpiresIn) * time.Second),
	}
}

// ── AuthProvider ──────────────────────────────────────────────────────────────

// CurrentSession reconstruye la sesión a partir del token persistido en disco
// y lo valida contra el proveedor. Sin token, token vencido o respuesta no
// exitosa: domain.ErrNoSession.
func (c *Client) CurrentSession(ctx context.Context) (*entity.Session, error) {
	if c.store == nil {
		return nil, domain.ErrNoSession
	}
	token, err := c.store.Load()
	if err != nil || token == "" {
		return nil, domain.ErrNoSession
	}

	if exp, err := pkgjwt.ExpiryUnverified(token); err != nil || time.Now().After(exp) {
		_ = c.store.Clear()
		return nil, domain.ErrNoSession
	}

	c.setToken(token)
	var user authUserPayload
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, &user); err != nil {
		c.setToken("")
		_ = c.store.Clear()
		return nil, fmt.Errorf("%w: %s", domain.ErrNoSession, err.Error())
	}

	exp, _ := pkgjwt.ExpiryUnverified(token)
	return &entity.Session{
		AccessToken: token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.UserMetadata.FullName,
		ExpiresAt:   exp,
	}, nil
}

// SignIn intercambia email/contraseña por una sesión.
func (c *Client) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	payload := map[string]string{"email": email, "password": password}
	var out authSessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", payload, &out); err != nil {
		return nil, err
	}
	c.persistToken(out.AccessToken)
	return out.toSession(), nil
}

// SignUp registra al usuario con el nombre completo como metadato de perfil.
// El proveedor puede devolver sesión directa (confirmación de email apagada).
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*entity.Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	var out authSessionPayload
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", payload, &out); err != nil {
		return nil, err
	}
	c.persistToken(out.AccessToken)
	return out.toSession(), nil
}

// SignOut revoca la sesión remota y descarta el token local pase lo que pase.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil)
	c.setToken("")
	if c.store != nil {
		_ = c.store.Clear()
	}
	return err
}

// persistToken guarda el token en memoria y, si aplica, en disco.
func (c *Client) persistToken(token string) {
	c.setToken(token)
	if c.store == nil || token == "" {
		return
	}
	if err := c.store.Save(token); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo persistir la sesión en disco")
	}
}
