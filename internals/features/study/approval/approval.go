// Package approval owns the pending/approved/rejected lifecycle shared by
// sessions and materials.
//
// Every state change is a single conditional update: match on (identity
// AND expected current status), set the new status. Two concurrent
// approvals of the same pending row therefore end as exactly one success
// and one NotFound, never a double transition. The engine never does a
// read-modify-write pair.
package approval

import (
	"context"
	"log"

	"github.com/google/uuid"

	"studyhub_backend/internals/constants"
	"studyhub_backend/internals/helpers/apperr"
)

// Actor is the authenticated identity performing a transition. Role comes
// from a fresh store read, never from the credential.
type Actor struct {
	Email string
	Role  string
}

func (a Actor) IsAdmin() bool { return a.Role == constants.RoleAdmin }

// Store is the conditional-transition surface the engine needs from the
// document store. Transition reports how many rows matched (identity AND
// expected status); zero means the id is absent or already transitioned.
type Store interface {
	Transition(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, fields map[string]interface{}) (int64, error)
	OwnerEmail(ctx context.Context, id uuid.UUID) (string, error)
}

// Notice describes an approval decision for the owning tutor.
type Notice struct {
	RecipientEmail string
	Kind           string
	Message        string
	Payload        map[string]interface{}
}

type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

type Engine struct {
	Sessions  Store
	Materials Store
	Notifier  Notifier // optional
}

func NewEngine(sessions, materials Store, notifier Notifier) *Engine {
	return &Engine{Sessions: sessions, Materials: materials, Notifier: notifier}
}

/* =========================================================
   Session transitions
========================================================= */

// ApproveSession moves a pending session to approved and overwrites its
// registration fee with the admin-supplied value (default 0).
func (e *Engine) ApproveSession(ctx context.Context, actor Actor, id uuid.UUID, registrationFee float64) error {
	if !actor.IsAdmin() {
		return apperr.New(apperr.PermissionDenied, "Forbidden: admin only")
	}
	if registrationFee < 0 {
		return apperr.New(apperr.InvalidArgument, "Registration fee must not be negative")
	}

	owner, err := e.Sessions.OwnerEmail(ctx, id)
	if err != nil {
		return err
	}

	matched, err := e.Sessions.Transition(ctx, id, constants.StatusPending, constants.StatusApproved,
		map[string]interface{}{"registration_fee": registrationFee})
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperr.New(apperr.NotFound, "Session not found")
	}

	e.notify(ctx, Notice{
		RecipientEmail: owner,
		Kind:           "session_approved",
		Message:        "Your session has been approved",
		Payload: map[string]interface{}{
			"session_id":       id.String(),
			"status":           constants.StatusApproved,
			"registration_fee": registrationFee,
		},
	})
	return nil
}

// RejectSession moves a pending session to rejected.
func (e *Engine) RejectSession(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return apperr.New(apperr.PermissionDenied, "Forbidden: admin only")
	}

	owner, err := e.Sessions.OwnerEmail(ctx, id)
	if err != nil {
		return err
	}

	matched, err := e.Sessions.Transition(ctx, id, constants.StatusPending, constants.StatusRejected, nil)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperr.New(apperr.NotFound, "Session not found")
	}

	e.notify(ctx, Notice{
		RecipientEmail: owner,
		Kind:           "session_rejected",
		Message:        "Your session has been rejected",
		Payload: map[string]interface{}{
			"session_id": id.String(),
			"status":     constants.StatusRejected,
		},
	})
	return nil
}

// ResubmitSession lets the owning tutor move a rejected session back to
// pending. Ownership is an email match against the stored row.
func (e *Engine) ResubmitSession(ctx context.Context, actor Actor, id uuid.UUID) error {
	owner, err := e.Sessions.OwnerEmail(ctx, id)
	if err != nil {
		return err
	}
	if actor.Email == "" || actor.Email != owner {
		return apperr.New(apperr.PermissionDenied, "Forbidden: only the owning tutor may resubmit")
	}

	matched, err := e.Sessions.Transition(ctx, id, constants.StatusRejected, constants.StatusPending, nil)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperr.New(apperr.NotFound, "Session not found")
	}
	return nil
}

/* =========================================================
   Material transitions
========================================================= */

func (e *Engine) ApproveMaterial(ctx context.Context, actor Actor, id uuid.UUID) error {
	return e.decideMaterial(ctx, actor, id, constants.StatusApproved, "material_approved", "Your material has been approved")
}

func (e *Engine) RejectMaterial(ctx context.Context, actor Actor, id uuid.UUID) error {
	return e.decideMaterial(ctx, actor, id, constants.StatusRejected, "material_rejected", "Your material has been rejected")
}

func (e *Engine) decideMaterial(ctx context.Context, actor Actor, id uuid.UUID, to, kind, message string) error {
	if !actor.IsAdmin() {
		return apperr.New(apperr.PermissionDenied, "Forbidden: admin only")
	}

	owner, err := e.Materials.OwnerEmail(ctx, id)
	if err != nil {
		return err
	}

	matched, err := e.Materials.Transition(ctx, id, constants.StatusPending, to, nil)
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperr.New(apperr.NotFound, "Material not found")
	}

	e.notify(ctx, Notice{
		RecipientEmail: owner,
		Kind:           kind,
		Message:        message,
		Payload: map[string]interface{}{
			"material_id": id.String(),
			"status":      to,
		},
	})
	return nil
}

// notify is best-effort: a failed notification never fails the
// transition that already committed.
func (e *Engine) notify(ctx context.Context, n Notice) {
	if e.Notifier == nil {
		return
	}
	if err := e.Notifier.Notify(ctx, n); err != nil {
		log.Printf("[WARN] notification failed (kind=%s recipient=%s): %v", n.Kind, n.RecipientEmail, err)
	}
}
