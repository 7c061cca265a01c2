package service

// AdminGate is the single authorization predicate for admin-only operations.
type AdminGate struct {
	adminID int64
}

func NewAdminGate(adminID int64) AdminGate {
	return AdminGate{adminID: adminID}
}

// IsAdmin reports whether the Telegram identity belongs to the administrator.
func (g AdminGate) IsAdmin(telegramID int64) bool {
	return telegramID == g.adminID
}

// AdminID returns the administrator's chat identity.
func (g AdminGate) AdminID() int64 {
	return g.adminID
}
