package constants

// Approval lifecycle shared by sessions and materials.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var ApprovalStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusRejected,
}

func IsApprovalStatus(s string) bool {
	for _, v := range ApprovalStatuses {
		if v == s {
			return true
		}
	}
	return false
}
