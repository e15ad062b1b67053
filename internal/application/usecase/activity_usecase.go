package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

// StillLoggedIn duración mostrada cuando la sesión no tiene cierre.
const StillLoggedIn = "Still Logged In"

var (
	clockRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2})(\.\d+)?$`)
	isoRe   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.\d+)?S)?$`)
)

// ActivityUseCase auditoría de accesos (Admin).
type ActivityUseCase struct {
	gw ports.ActivityGateway
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(gw ports.ActivityGateway) *ActivityUseCase {
	return &ActivityUseCase{gw: gw}
}

func (uc *ActivityUseCase) Employees(ctx context.Context) ([]dto.ActivityEmployeeResponse, error) {
	return uc.gw.Employees(ctx)
}

// LoginHistory historial de inicios de sesión listo para mostrar.
func (uc *ActivityUseCase) LoginHistory(ctx context.Context, userID string) ([]dto.LoginHistoryRow, error) {
	logs, err := uc.gw.LoginHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.LoginHistoryRow, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, dto.LoginHistoryRow{
			Email:        l.Email,
			LoginTime:    FormatDateTime(l.LoginTime),
			LogoutTime:   FormatDateTime(deref(l.LogoutTime)),
			Duration:     FormatSessionDuration(deref(l.SessionDuration), deref(l.LogoutTime)),
			IPAddress:    l.IPAddress,
			IsSuccessful: l.IsSuccessful,
		})
	}
	return rows, nil
}

// Recent accesos recientes; userID vacío = todos.
func (uc *ActivityUseCase) Recent(ctx context.Context, userID string) ([]dto.UserActivityLog, error) {
	return uc.gw.Recent(ctx, userID)
}

// FormatSessionDuration normaliza la duración a HH:MM:SS. Acepta "HH:MM:SS" (con
// fracción opcional) e ISO-8601 "PTnHnMnS". Sin duración: "Still Logged In" si no hay
// cierre de sesión, "N/A" si lo hay. Cualquier otro formato se devuelve tal cual.
func FormatSessionDuration(duration, logoutTime string) string {
	duration = strings.TrimSpace(duration)
	if duration == "" {
		if strings.TrimSpace(logoutTime) != "" {
			return "N/A"
		}
		return StillLoggedIn
	}
	if m := clockRe.FindStringSubmatch(duration); m != nil {
		return m[1]
	}
	if m := isoRe.FindStringSubmatch(duration); m != nil && duration != "PT" {
		return fmt.Sprintf("%s:%s:%s", pad2(m[1]), pad2(m[2]), pad2(m[3]))
	}
	return duration
}

// FormatDateTime muestra fechas del backend como "02/01/2006 15:04:05"; vacío = "N/A".
func FormatDateTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.9999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006 15:04:05")
		}
	}
	return s
}

func pad2(s string) string {
	switch len(s) {
	case 0:
		return "00"
	case 1:
		return "0" + s
	default:
		return s
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
