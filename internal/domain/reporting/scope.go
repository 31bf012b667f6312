package reporting

import "strings"

// Nationwide es la "sucursal" que agrega todas las ubicaciones.
const Nationwide = "Philippines"

// Roles privilegiados: ven cualquier sucursal sin restricción.
const (
	RoleSuperAdmin = "Super Admin"
	RoleDirectors  = "Directors"
)

// AccessScope par (rol, sucursal) que decide qué valores de Location recorre una consulta.
type AccessScope struct {
	Role     string
	Location string
}

// Privileged indica si el rol está exento de la restricción por sucursal.
func (s AccessScope) Privileged() bool {
	return s.Role == RoleSuperAdmin || s.Role == RoleDirectors
}

// LocationClause devuelve la sucursal a la que se restringe la consulta, si aplica.
//
// "All" no restringe para ningún rol: un rol no privilegiado que elige "All"
// ve todas las sucursales, igual que Super Admin o Directors. Se conserva así
// hasta confirmar la política de acceso.
func (s AccessScope) LocationClause() (string, bool) {
	loc := strings.TrimSpace(s.Location)
	if loc == "" || loc == Nationwide || loc == All {
		return "", false
	}
	return loc, true
}
