package service

import (
	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
)

// Operation names one guarded transition of the membership ledger
type Operation string

const (
	// Company-to-user family: an owner or admin acts on a user's edge
	OpSendInvitation   Operation = "send_invitation"
	OpCancelInvitation Operation = "cancel_invitation"
	OpAcceptRequest    Operation = "accept_request"
	OpDeclineRequest   Operation = "decline_request"
	OpRemoveUser       Operation = "remove_user"
	OpCreateAdmin      Operation = "create_admin"
	OpRemoveAdmin      Operation = "remove_admin"

	// User-to-company family: a user acts on their own edge
	OpRequestToJoin     Operation = "request_to_join"
	OpCancelRequest     Operation = "cancel_request"
	OpAcceptInvitation  Operation = "accept_invitation"
	OpDeclineInvitation Operation = "decline_invitation"
	OpLeaveCompany      Operation = "leave_company"
)

// transitionRule is one row of the ledger's transition table. Every
// operation validates the edge's current status against its own rule before
// mutating: allowedFrom lists the accepted predecessors, blocked maps each
// explicitly rejected predecessor to its reason, and fallbackReason covers
// statuses an operation's table deliberately leaves unenumerated. The deny
// sets are asymmetric per operation on purpose; do not merge them.
type transitionRule struct {
	target         models.MembershipStatus
	allowedFrom    map[models.MembershipStatus]bool
	blocked        map[models.MembershipStatus]string
	fallbackReason string
}

var transitionTable = map[Operation]transitionRule{
	OpCancelInvitation: {
		target:      models.StatusInvitationCancelled,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusInvited: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusInvitationCancelled: "invitation is already cancelled",
			models.StatusInvitationDeclined:  "invitation was already declined by the user",
			models.StatusRequestedToJoin:     "this is a join request, not an invitation",
			models.StatusRequestCancelled:    "the user's join request was cancelled, there is no invitation",
			models.StatusRequestDeclined:     "the user's join request was declined, there is no invitation",
			models.StatusMember:              "user is already a member of this company",
			models.StatusAdmin:               "user is already an admin of this company",
			models.StatusOwner:               "user is the owner of this company",
			models.StatusRemoved:             "user was removed from this company",
			models.StatusLeft:                "user has left this company",
		},
	},
	OpAcceptInvitation: {
		target:      models.StatusMember,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusInvited: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusInvitationCancelled: "invitation was cancelled by the company",
			models.StatusInvitationDeclined:  "you already declined this invitation",
			models.StatusRequestedToJoin:     "this is your join request, not an invitation",
			models.StatusRequestCancelled:    "you cancelled your join request, there is no invitation",
			models.StatusRequestDeclined:     "your join request was declined, there is no invitation",
			models.StatusMember:              "you are already a member of this company",
			models.StatusAdmin:               "you are already an admin of this company",
			models.StatusOwner:               "you are the owner of this company",
			models.StatusRemoved:             "you were removed from this company",
			models.StatusLeft:                "you have left this company",
		},
	},
	OpDeclineInvitation: {
		target:      models.StatusInvitationDeclined,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusInvited: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusInvitationCancelled: "invitation was already cancelled by the company",
			models.StatusInvitationDeclined:  "you already declined this invitation",
			models.StatusRequestedToJoin:     "this is your join request, not an invitation",
			models.StatusRequestCancelled:    "you cancelled your join request, there is no invitation",
			models.StatusRequestDeclined:     "your join request was declined, there is no invitation",
			models.StatusMember:              "you are already a member of this company",
			models.StatusAdmin:               "you are already an admin of this company",
			models.StatusOwner:               "you are the owner of this company",
			models.StatusRemoved:             "you were removed from this company",
			models.StatusLeft:                "you have left this company",
		},
	},
	OpCancelRequest: {
		target:      models.StatusRequestCancelled,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusRequestedToJoin: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusRequestCancelled:    "join request is already cancelled",
			models.StatusRequestDeclined:     "join request was already declined",
			models.StatusInvited:             "this is an invitation, not a join request",
			models.StatusInvitationCancelled: "the invitation was cancelled, there is no join request",
			models.StatusInvitationDeclined:  "you declined the invitation, there is no join request",
			models.StatusMember:              "you are already a member of this company",
			models.StatusAdmin:               "you are already an admin of this company",
			models.StatusOwner:               "you are the owner of this company",
			models.StatusRemoved:             "you were removed from this company",
			models.StatusLeft:                "you have left this company",
		},
	},
	OpAcceptRequest: {
		target:      models.StatusMember,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusRequestedToJoin: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusRequestCancelled:    "user cancelled this join request",
			models.StatusRequestDeclined:     "join request was already declined",
			models.StatusInvited:             "this is an invitation, wait for the user to respond",
			models.StatusInvitationCancelled: "the invitation was cancelled, there is no join request",
			models.StatusInvitationDeclined:  "user declined the invitation, there is no join request",
			models.StatusMember:              "user is already a member of this company",
			models.StatusAdmin:               "user is already an admin of this company",
			models.StatusOwner:               "user is the owner of this company",
			models.StatusRemoved:             "user was removed from this company",
			models.StatusLeft:                "user has left this company",
		},
	},
	OpDeclineRequest: {
		target:      models.StatusRequestDeclined,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusRequestedToJoin: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusRequestCancelled:    "user already cancelled this join request",
			models.StatusRequestDeclined:     "join request is already declined",
			models.StatusInvited:             "this is an invitation, wait for the user to respond",
			models.StatusInvitationCancelled: "the invitation was cancelled, there is no join request",
			models.StatusInvitationDeclined:  "user declined the invitation, there is no join request",
			models.StatusMember:              "user is already a member of this company",
			models.StatusAdmin:               "user is already an admin of this company",
			models.StatusOwner:               "user is the owner of this company",
			models.StatusRemoved:             "user was removed from this company",
			models.StatusLeft:                "user has left this company",
		},
	},
	OpRemoveUser: {
		target: models.StatusRemoved,
		allowedFrom: map[models.MembershipStatus]bool{
			models.StatusMember:          true,
			models.StatusInvited:         true,
			models.StatusRequestedToJoin: true,
		},
		blocked: map[models.MembershipStatus]string{
			models.StatusOwner:               "user is the owner of this company",
			models.StatusAdmin:               "user is an admin, demote them first",
			models.StatusRemoved:             "user is already removed",
			models.StatusLeft:                "user has already left this company",
			models.StatusInvitationCancelled: "the invitation was cancelled, there is nothing to remove",
			models.StatusInvitationDeclined:  "user declined the invitation, there is nothing to remove",
			models.StatusRequestCancelled:    "user cancelled their join request, there is nothing to remove",
			models.StatusRequestDeclined:     "the join request was declined, there is nothing to remove",
		},
	},
	OpLeaveCompany: {
		target: models.StatusLeft,
		allowedFrom: map[models.MembershipStatus]bool{
			models.StatusMember:          true,
			models.StatusInvited:         true,
			models.StatusRequestedToJoin: true,
		},
		blocked: map[models.MembershipStatus]string{
			models.StatusOwner:               "you are the owner of this company",
			models.StatusAdmin:               "admins cannot leave, ask for demotion first",
			models.StatusRemoved:             "you were already removed from this company",
			models.StatusLeft:                "you have already left this company",
			models.StatusInvitationCancelled: "the invitation was cancelled, there is nothing to leave",
			models.StatusInvitationDeclined:  "you declined the invitation, there is nothing to leave",
			models.StatusRequestCancelled:    "you cancelled your join request, there is nothing to leave",
			models.StatusRequestDeclined:     "your join request was declined, there is nothing to leave",
		},
	},
	// create_admin and remove_admin only enumerate the states a promotion or
	// demotion can actually collide with; cancelled/declined predecessors are
	// unreachable preconditions here and fall through to the fallback reason.
	OpCreateAdmin: {
		target:      models.StatusAdmin,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusMember: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusOwner:   "user is the owner of this company",
			models.StatusAdmin:   "user is already an admin of this company",
			models.StatusRemoved: "user was removed from this company",
			models.StatusLeft:    "user has left this company",
		},
		fallbackReason: "user is not a member of this company",
	},
	OpRemoveAdmin: {
		target:      models.StatusMember,
		allowedFrom: map[models.MembershipStatus]bool{models.StatusAdmin: true},
		blocked: map[models.MembershipStatus]string{
			models.StatusOwner:   "user is the owner of this company",
			models.StatusRemoved: "user was removed from this company",
			models.StatusLeft:    "user has left this company",
		},
		fallbackReason: "user is not an admin of this company",
	},
}

// creationBlocked covers the two edge-creating operations. They require the
// (user, company) pair to have no row at all; any existing row blocks with a
// status-specific reason. There is no re-invite path from a terminal status.
var creationBlocked = map[Operation]map[models.MembershipStatus]string{
	OpSendInvitation: {
		models.StatusInvited:             "user is already invited to this company",
		models.StatusRequestedToJoin:     "user has already requested to join this company",
		models.StatusMember:              "user is already a member of this company",
		models.StatusAdmin:               "user is already an admin of this company",
		models.StatusOwner:               "user is the owner of this company",
		models.StatusInvitationCancelled: "a previous invitation to this user was cancelled",
		models.StatusInvitationDeclined:  "user declined a previous invitation",
		models.StatusRequestCancelled:    "user cancelled a previous join request",
		models.StatusRequestDeclined:     "a previous join request from this user was declined",
		models.StatusRemoved:             "user was removed from this company",
		models.StatusLeft:                "user has left this company",
	},
	OpRequestToJoin: {
		models.StatusRequestedToJoin:     "you have already requested to join this company",
		models.StatusInvited:             "you are already invited to this company",
		models.StatusMember:              "you are already a member of this company",
		models.StatusAdmin:               "you are already an admin of this company",
		models.StatusOwner:               "you are the owner of this company",
		models.StatusRequestCancelled:    "you cancelled a previous join request",
		models.StatusRequestDeclined:     "your previous join request was declined",
		models.StatusInvitationCancelled: "a previous invitation was cancelled",
		models.StatusInvitationDeclined:  "you declined a previous invitation",
		models.StatusRemoved:             "you were removed from this company",
		models.StatusLeft:                "you have left this company",
	},
}

// checkTransition validates an existing edge's current status against the
// operation's rule and returns the target status on success
func checkTransition(op Operation, current models.MembershipStatus) (models.MembershipStatus, error) {
	rule := transitionTable[op]
	if rule.allowedFrom[current] {
		return rule.target, nil
	}
	if reason, ok := rule.blocked[current]; ok {
		return "", apperrors.NewInvalidTransitionError(string(op), string(current), reason)
	}
	return "", apperrors.NewInvalidTransitionError(string(op), string(current), rule.fallbackReason)
}

// checkCreation builds the rejection for an edge-creating operation that
// found an existing row; callers only reach it when the pair already has one
func checkCreation(op Operation, current models.MembershipStatus) error {
	reason := creationBlocked[op][current]
	return apperrors.NewInvalidTransitionError(string(op), string(current), reason)
}
