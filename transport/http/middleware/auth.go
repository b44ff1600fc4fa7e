package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"pureheart/config"
	"pureheart/infras/otel"
	"pureheart/permissions"
	"pureheart/shared/constant"
	"pureheart/shared/failure"
	"pureheart/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Auth identifies the caller of a request
type Auth interface {
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// APIKey marks callers presenting the staff key as staff, everyone else as guest.
// Staff may name themselves with X-User-ID for audit columns.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", constant.ContextGuest)
			scope.End()

			ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextGuest)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.ContextGuest)

			next.ServeHTTP(writer, request.WithContext(ctx))

			return
		}

		if m.cfg.App.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		user := request.Header.Get(constant.RequestHeaderUserID)
		if user == "" {
			user = constant.ContextStaff
		}

		scope.SetAttribute("http.source", constant.ContextStaff)
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, user)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.ContextStaff)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller role against permissions.json.
// Requires prior identification via APIKey.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := request.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			path = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
		}

		permission := m.permission.Find(request.Method, path)
		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(userRole) {
			var err error = failure.ForbiddenError
			if userRole == constant.ContextGuest {
				err = failure.Unauthorized("Missing API key")
			}

			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Roles,
				"http.path":     path,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
