package hostedapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/officedesk/internal/domain"
)

// providerErrorBody cubre los dos formatos de descriptor de error del
// servicio: el de la API de datos ({code, message, details, hint}) y el de la
// API de auth ({error, error_description} o {msg, message}).
type providerErrorBody struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	Details          string `json:"details"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// decodeProviderError convierte una respuesta no exitosa en un error de
// dominio: credenciales inválidas y email duplicado se mapean a sentinelas;
// el resto conserva el descriptor crudo (código + mensaje) del proveedor.
func decodeProviderError(status int, raw []byte) error {
	var body providerErrorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Msg
	}
	if message == "" {
		message = body.ErrorDescription
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", status, string(raw))
	}

	// Errores de credenciales: solo los cuerpos con forma de la API de auth
	// ({error, error_description}). Un 401 pelado de la API de datos (token
	// vencido a mitad de sesión) no es un fallo de login.
	authShaped := body.ErrorField != "" || body.ErrorDescription != ""
	switch {
	case body.ErrorField == "invalid_grant",
		status == http.StatusUnauthorized && authShaped && body.Code == "":
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, message)
	case status == http.StatusUnprocessableEntity && body.ErrorField == "user_already_exists":
		return fmt.Errorf("%w", domain.ErrEmailAlreadyExists)
	}

	return &domain.ProviderError{
		Code:    body.Code,
		Message: message,
		Details: body.Details,
	}
}
