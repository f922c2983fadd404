// Package hostedapi implementa los puertos AuthProvider y DataProvider contra
// la superficie REST del servicio hosteado: API de auth compatible GoTrue y
// API de datos compatible PostgREST. Usa net/http de la librería estándar;
// no requiere SDK oficial.
package hostedapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/jhoicas/officedesk/internal/domain/provider"
	"github.com/jhoicas/officedesk/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa ambos puertos.
var (
	_ provider.AuthProvider = (*Client)(nil)
	_ provider.DataProvider = (*Client)(nil)
)

const maxBodyBytes = 1 << 20 // respuestas del proveedor acotadas a 1 MiB

// Client adaptador HTTP del proveedor remoto. El token de acceso vigente se
// guarda tras el login y se adjunta a todas las llamadas de datos; sin token
// se usa la clave pública (anon).
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	store      *TokenStore // nil cuando la persistencia de sesión está apagada
	log        *logger.Logger

	mu          sync.Mutex
	accessToken string
}

// New construye el adaptador. store puede ser nil (sesión no persistida).
//
// Sin timeout de red: las llamadas remotas son de un solo intento y una
// petición colgada deja el indicador de carga activo; es el comportamiento
// heredado del sistema, cancelable solo vía context.
func New(baseURL, anonKey string, store *TokenStore, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{},
		store:      store,
		log:        log,
	}
}

// setToken fija (o limpia, con "") el token de acceso vigente.
func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

// do ejecuta una petición con los headers del proveedor y deserializa la
// respuesta exitosa en out (out puede ser nil si el cuerpo no interesa).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("hostedapi: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("hostedapi: crear request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost && out != nil {
		// PostgREST solo devuelve la fila creada si se le pide representación.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("hostedapi: cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("hostedapi: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("hostedapi: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeProviderError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("hostedapi: deserializar respuesta: %w", err)
		}
	}
	return nil
}
