package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern. No roles means open.
type Permission struct {
	Roles  []string `json:"permissions"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

// Open reports whether the route needs no role at all.
func (p Permission) Open() bool {
	return p.Skip || len(p.Roles) == 0
}

func (p Permission) Allows(role string) bool {
	return p.Open() || slices.Contains(p.Roles, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Find looks up the route pattern as chi reports it, e.g. "/v1/layout/items/{id}".
func (r *PermissionData) Find(method, path string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[routeKey(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		r.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	restricted := 0

	for _, endpoint := range permissions.Endpoints {
		if !endpoint.Open() {
			restricted++
		}
	}

	log.Info().
		Int("endpoints", len(permissions.Endpoints)).
		Int("restricted", restricted).
		Msg("Loaded embedded permissions")

	return &permissions
}
