package authz

import "github.com/iansaccar7/casasbr-rental/internal/domain"

// OwnerOrAdmin is the single authorization rule of the API: a caller may
// mutate a resource when they own it or when they hold the admin role.
// Every ownership check in the services goes through here.
func OwnerOrAdmin(resourceOwnerID, callerID int64, callerRole string) bool {
	if callerID != 0 && callerID == resourceOwnerID {
		return true
	}
	return callerRole == string(domain.RoleAdmin)
}
