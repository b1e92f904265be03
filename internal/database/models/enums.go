package models

// MembershipStatus represents the state of the single edge between a user
// and a company. Exactly one membership row exists per (user, company) pair;
// transitions mutate the row in place and terminal statuses are final.
type MembershipStatus string

const (
	StatusInvited             MembershipStatus = "invited"
	StatusInvitationCancelled MembershipStatus = "invitation_cancelled"
	StatusInvitationDeclined  MembershipStatus = "invitation_declined"

	StatusRequestedToJoin  MembershipStatus = "requested_to_join"
	StatusRequestCancelled MembershipStatus = "request_cancelled"
	StatusRequestDeclined  MembershipStatus = "request_declined"

	StatusRemoved MembershipStatus = "removed"
	StatusLeft    MembershipStatus = "left"

	StatusMember MembershipStatus = "member"
	StatusAdmin  MembershipStatus = "admin"
	StatusOwner  MembershipStatus = "owner"
)

// AllMembershipStatuses lists every status the ledger can hold.
var AllMembershipStatuses = []MembershipStatus{
	StatusInvited,
	StatusInvitationCancelled,
	StatusInvitationDeclined,
	StatusRequestedToJoin,
	StatusRequestCancelled,
	StatusRequestDeclined,
	StatusRemoved,
	StatusLeft,
	StatusMember,
	StatusAdmin,
	StatusOwner,
}

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	for _, status := range AllMembershipStatuses {
		if s == status {
			return true
		}
	}
	return false
}
