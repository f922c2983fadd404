// Package session contiene las operaciones de identidad del cliente:
// resolución de sesión al arrancar, login, registro y logout.
package session

import (
	"context"

	"github.com/jhoicas/officedesk/internal/domain/entity"
	"github.com/jhoicas/officedesk/internal/domain/provider"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// Resolver resuelve la sesión contra el proveedor remoto de auth.
type Resolver struct {
	auth provider.AuthProvider
	log  *logger.Logger
}

// NewResolver construye el resolutor de sesión.
func NewResolver(auth provider.AuthProvider, log *logger.Logger) *Resolver {
	return &Resolver{auth: auth, log: log}
}

// Resolve consulta si existe una sesión válida al arrancar la aplicación.
// Cualquier respuesta no exitosa del proveedor se trata igual que "sin
// sesión": se abre la pantalla de login y la condición queda en el log.
func (r *Resolver) Resolve(ctx context.Context) *entity.Session {
	sess, err := r.auth.CurrentSession(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("resolución de sesión fallida; se abre login")
		return nil
	}
	return sess
}

// SignIn autentica con email y contraseña.
func (r *Resolver) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	sess, err := r.auth.SignIn(ctx, email, password)
	if err != nil {
		r.log.Warn().Err(err).Str("email", email).Msg("login fallido")
		return nil, err
	}
	r.log.Info().Str("user_id", sess.UserID).Msg("login exitoso")
	return sess, nil
}

// SignUp registra un usuario nuevo con su nombre completo como metadato de perfil.
func (r *Resolver) SignUp(ctx context.Context, email, password, fullName string) (*entity.Session, error) {
	sess, err := r.auth.SignUp(ctx, email, password, fullName)
	if err != nil {
		r.log.Warn().Err(err).Str("email", email).Msg("registro fallido")
		return nil, err
	}
	r.log.Info().Str("user_id", sess.UserID).Msg("registro exitoso")
	return sess, nil
}

// SignOut cierra la sesión en el proveedor. El estado local se limpia
// siempre, incluso si la llamada remota falla; el error solo se loguea.
func (r *Resolver) SignOut(ctx context.Context) {
	if err := r.auth.SignOut(ctx); err != nil {
		r.log.Warn().Err(err).Msg("logout remoto fallido; el estado local se limpia igual")
	}
}
