package hostedapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TokenStore persiste el token de acceso entre ejecuciones cuando la bandera
// de persistencia de sesión está encendida. Archivo JSON con permisos 0600.
type TokenStore struct {
	path string
}

// NewTokenStore construye el store. Con path vacío usa
// ~/.officedesk/session.json.
func NewTokenStore(path string) (*TokenStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tokenstore: home del usuario: %w", err)
		}
		path = filepath.Join(home, ".officedesk", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	return &TokenStore{path: path}, nil
}

type storedSession struct {
	AccessToken string `json:"access_token"`
}

// Save escribe el token en disco.
func (s *TokenStore) Save(token string) error {
	raw, err := json.Marshal(storedSession{AccessToken: token})
	if err != nil {
		return fmt.Errorf("tokenstore: serializar: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("tokenstore: escribir: %w", err)
	}
	return nil
}

// Load lee el token persistido; devuelve "" sin error si no hay archivo.
func (s *TokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("tokenstore: leer: %w", err)
	}
	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", fmt.Errorf("tokenstore: deserializar: %w", err)
	}
	return stored.AccessToken, nil
}

// Clear elimina la sesión persistida; ignorar si no existía.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("tokenstore: eliminar: %w", err)
	}
	return nil
}
