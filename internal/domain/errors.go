package domain

import "errors"

// Errores de dominio del front-end (sin dependencias externas).
var (
	ErrValidation     = errors.New("datos del formulario inválidos")
	ErrTransport      = errors.New("no se pudo contactar al servidor")
	ErrBackend        = errors.New("el servidor rechazó la operación")
	ErrUnauthorized   = errors.New("sesión no válida o expirada")
	ErrForbidden      = errors.New("acceso denegado")
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrMalformedToken = errors.New("token de sesión mal formado")
)
