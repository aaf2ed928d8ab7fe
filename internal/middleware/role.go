package middleware

import (
	"context"
	"net/http"
)

// Viewer roles. The role is a display preference deciding which monetary
// fields a response includes (cost price, profit margin); it is not an
// access-control boundary and never blocks an operation.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCatering = "catering"
)

type ctxKey string

const ctxRole ctxKey = "viewer_role"

// Role extracts the viewer role (cookie > query > header) and stores it in
// context. Query-provided roles persist in a cookie for ~30 days so the
// choice sticks across requests.
func Role(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := RoleStaff
		if c, err := r.Cookie("role"); err == nil && c.Value != "" {
			role = c.Value
		}
		if qr := r.URL.Query().Get("role"); qr != "" {
			role = qr
			http.SetCookie(w, &http.Cookie{Name: "role", Value: role, Path: "/", MaxAge: 86400 * 30})
		}
		if role != RoleAdmin && role != RoleStaff && role != RoleCatering {
			if hr := r.Header.Get("X-Viewer-Role"); hr == RoleAdmin || hr == RoleStaff || hr == RoleCatering {
				role = hr
			} else {
				role = RoleStaff
			}
		}
		ctx := context.WithValue(r.Context(), ctxRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleFrom returns the viewer role from context or the staff fallback.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxRole).(string); ok && v != "" {
		return v
	}
	return RoleStaff
}

// WithRole injects a role directly, used by tests that skip the middleware.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxRole, role)
}
