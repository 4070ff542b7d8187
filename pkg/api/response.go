package api

import "sort"

// UserResponse is the read-only view of a Keycloak user returned to callers.
type UserResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Groups    []string `json:"groups"`
}

// NameSet returns the distinct non-empty names in ascending order. It never returns nil.
func NameSet(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	set := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		set = append(set, n)
	}
	sort.Strings(set)
	return set
}
