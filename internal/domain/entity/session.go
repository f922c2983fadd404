package entity

import "time"

// Session identidad emitida por el proveedor remoto de auth.
// Se crea en login/registro confirmado, se destruye en logout y se lee
// una sola vez al arrancar la aplicación.
type Session struct {
	AccessToken string    `json:"access_token"` // token opaco para el cliente; lo valida el proveedor
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"` // puede venir vacío; se rellena desde el perfil
	ExpiresAt   time.Time `json:"expires_at"`
}

// Profile datos de perfil del usuario (tabla profiles del proveedor).
type Profile struct {
	UserID   string `json:"id"`
	FullName string `json:"full_name"`
}
