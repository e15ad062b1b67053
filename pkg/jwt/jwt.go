package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claves de claims que emite el backend (ASP.NET Identity) más alias cortos.
const (
	ClaimRoleURI    = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimNameURI    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimSubjectURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimEmailURI   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

// ErrMalformed se devuelve cuando el token no tiene estructura JWT decodificable.
var ErrMalformed = errors.New("jwt: token mal formado")

// ClaimKeys nombres de claim acordados con el emisor. Cada lista se recorre en orden
// y gana la primera clave presente en el token.
type ClaimKeys struct {
	Role    []string
	Name    []string
	Subject []string
	Email   []string
}

// DefaultClaimKeys claves usadas por el backend EMS.
func DefaultClaimKeys() ClaimKeys {
	return ClaimKeys{
		Role:    []string{ClaimRoleURI, "role", "roles"},
		Name:    []string{ClaimNameURI, "name", "unique_name"},
		Subject: []string{ClaimSubjectURI, "sub", "employeeId"},
		Email:   []string{ClaimEmailURI, "email"},
	}
}

// WithOverrides antepone claves configuradas (vacías se ignoran).
func (k ClaimKeys) WithOverrides(role, name, subject, email string) ClaimKeys {
	prepend := func(key string, list []string) []string {
		if key == "" {
			return list
		}
		out := make([]string, 0, len(list)+1)
		out = append(out, key)
		for _, v := range list {
			if v != key {
				out = append(out, v)
			}
		}
		return out
	}
	return ClaimKeys{
		Role:    prepend(role, k.Role),
		Name:    prepend(name, k.Name),
		Subject: prepend(subject, k.Subject),
		Email:   prepend(email, k.Email),
	}
}

// Identity datos extraídos del token sin verificar la firma.
type Identity struct {
	Subject   string
	Name      string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

// Decode decodifica estructuralmente el token. La firma NO se verifica: esa
// responsabilidad es del backend, aquí solo se usa para la UI.
func Decode(tokenString string, keys ClaimKeys) (Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Identity{}, ErrMalformed
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	id := Identity{
		Subject: firstString(claims, keys.Subject),
		Name:    firstString(claims, keys.Name),
		Email:   firstString(claims, keys.Email),
		Roles:   stringList(claims, keys.Role),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}

// firstString devuelve el primer valor no vacío entre las claves dadas.
// Si el claim es una lista se toma su primer elemento.
func firstString(claims jwt.MapClaims, keys []string) string {
	for _, k := range keys {
		v, ok := claims[k]
		if !ok {
			continue
		}
		if vals := toStrings(v); len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

// stringList devuelve los valores del primer claim presente, conservando el orden.
func stringList(claims jwt.MapClaims, keys []string) []string {
	for _, k := range keys {
		if v, ok := claims[k]; ok {
			if vals := toStrings(v); len(vals) > 0 {
				return vals
			}
		}
	}
	return nil
}

func toStrings(v interface{}) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case float64:
		return []string{fmt.Sprintf("%.0f", t)}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	default:
		return nil
	}
}

// Generate firma un token HS256 con el mismo formato de claims que emite el backend.
// Se usa en tests y en el entorno de desarrollo; en producción el token siempre viene del backend.
func Generate(secret, subject, name, email string, roles []string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		ClaimSubjectURI: subject,
		ClaimNameURI:    name,
		ClaimEmailURI:   email,
		"iat":           now.Unix(),
		"exp":           now.Add(time.Duration(expMinutes) * time.Minute).Unix(),
	}
	switch len(roles) {
	case 0:
	case 1:
		claims[ClaimRoleURI] = roles[0]
	default:
		claims[ClaimRoleURI] = roles
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
