// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// PendingMessageUpdate is the builder for updating PendingMessage entities.
type PendingMessageUpdate struct {
	config
	hooks    []Hook
	mutation *PendingMessageMutation
}

// Where appends a list predicates to the PendingMessageUpdate builder.
func (_u *PendingMessageUpdate) Where(ps ...predicate.PendingMessage) *PendingMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTo sets the "to" field.
func (_u *PendingMessageUpdate) SetTo(v string) *PendingMessageUpdate {
	_u.mutation.SetTo(v)
	return _u
}

// SetNillableTo sets the "to" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableTo(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetTo(*v)
	}
	return _u
}

// ClearTo clears the value of the "to" field.
func (_u *PendingMessageUpdate) ClearTo() *PendingMessageUpdate {
	_u.mutation.ClearTo()
	return _u
}

// SetCc sets the "cc" field.
func (_u *PendingMessageUpdate) SetCc(v []string) *PendingMessageUpdate {
	_u.mutation.SetCc(v)
	return _u
}

// AppendCc appends value to the "cc" field.
func (_u *PendingMessageUpdate) AppendCc(v []string) *PendingMessageUpdate {
	_u.mutation.AppendCc(v)
	return _u
}

// ClearCc clears the value of the "cc" field.
func (_u *PendingMessageUpdate) ClearCc() *PendingMessageUpdate {
	_u.mutation.ClearCc()
	return _u
}

// SetBcc sets the "bcc" field.
func (_u *PendingMessageUpdate) SetBcc(v []string) *PendingMessageUpdate {
	_u.mutation.SetBcc(v)
	return _u
}

// AppendBcc appends value to the "bcc" field.
func (_u *PendingMessageUpdate) AppendBcc(v []string) *PendingMessageUpdate {
	_u.mutation.AppendBcc(v)
	return _u
}

// ClearBcc clears the value of the "bcc" field.
func (_u *PendingMessageUpdate) ClearBcc() *PendingMessageUpdate {
	_u.mutation.ClearBcc()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PendingMessageUpdate) SetSubject(v string) *PendingMessageUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableSubject(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *PendingMessageUpdate) ClearSubject() *PendingMessageUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *PendingMessageUpdate) SetBody(v string) *PendingMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableBody(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *PendingMessageUpdate) SetAttachments(v []models.Attachment) *PendingMessageUpdate {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *PendingMessageUpdate) AppendAttachments(v []models.Attachment) *PendingMessageUpdate {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *PendingMessageUpdate) ClearAttachments() *PendingMessageUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingMessageUpdate) SetConfidence(v float64) *PendingMessageUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableConfidence(v *float64) *PendingMessageUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingMessageUpdate) AddConfidence(v float64) *PendingMessageUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *PendingMessageUpdate) SetDecisionID(v string) *PendingMessageUpdate {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableDecisionID(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// ClearDecisionID clears the value of the "decision_id" field.
func (_u *PendingMessageUpdate) ClearDecisionID() *PendingMessageUpdate {
	_u.mutation.ClearDecisionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingMessageUpdate) SetStatus(v pendingmessage.Status) *PendingMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableStatus(v *pendingmessage.Status) *PendingMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PendingMessageUpdate) SetRetryCount(v int) *PendingMessageUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableRetryCount(v *int) *PendingMessageUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PendingMessageUpdate) AddRetryCount(v int) *PendingMessageUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PendingMessageUpdate) SetLastError(v string) *PendingMessageUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableLastError(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PendingMessageUpdate) ClearLastError() *PendingMessageUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *PendingMessageUpdate) SetNextAttemptAt(v time.Time) *PendingMessageUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableNextAttemptAt(v *time.Time) *PendingMessageUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *PendingMessageUpdate) ClearNextAttemptAt() *PendingMessageUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *PendingMessageUpdate) SetReviewedAt(v time.Time) *PendingMessageUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableReviewedAt(v *time.Time) *PendingMessageUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *PendingMessageUpdate) ClearReviewedAt() *PendingMessageUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *PendingMessageUpdate) SetReviewedBy(v string) *PendingMessageUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableReviewedBy(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *PendingMessageUpdate) ClearReviewedBy() *PendingMessageUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *PendingMessageUpdate) SetSentAt(v time.Time) *PendingMessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableSentAt(v *time.Time) *PendingMessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *PendingMessageUpdate) ClearSentAt() *PendingMessageUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_u *PendingMessageUpdate) SetUpstreamMessageID(v string) *PendingMessageUpdate {
	_u.mutation.SetUpstreamMessageID(v)
	return _u
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableUpstreamMessageID(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetUpstreamMessageID(*v)
	}
	return _u
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (_u *PendingMessageUpdate) ClearUpstreamMessageID() *PendingMessageUpdate {
	_u.mutation.ClearUpstreamMessageID()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *PendingMessageUpdate) SetRejectionReason(v string) *PendingMessageUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *PendingMessageUpdate) SetNillableRejectionReason(v *string) *PendingMessageUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *PendingMessageUpdate) ClearRejectionReason() *PendingMessageUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the PendingMessageMutation object of the builder.
func (_u *PendingMessageUpdate) Mutation() *PendingMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingMessageUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingMessage.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingMessage.ticket"`)
	}
	return nil
}

func (_u *PendingMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingmessage.Table, pendingmessage.Columns, sqlgraph.NewFieldSpec(pendingmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.To(); ok {
		_spec.SetField(pendingmessage.FieldTo, field.TypeString, value)
	}
	if _u.mutation.ToCleared() {
		_spec.ClearField(pendingmessage.FieldTo, field.TypeString)
	}
	if value, ok := _u.mutation.Cc(); ok {
		_spec.SetField(pendingmessage.FieldCc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldCc, value)
		})
	}
	if _u.mutation.CcCleared() {
		_spec.ClearField(pendingmessage.FieldCc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bcc(); ok {
		_spec.SetField(pendingmessage.FieldBcc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBcc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldBcc, value)
		})
	}
	if _u.mutation.BccCleared() {
		_spec.ClearField(pendingmessage.FieldBcc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pendingmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(pendingmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pendingmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(pendingmessage.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(pendingmessage.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendingmessage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendingmessage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(pendingmessage.FieldDecisionID, field.TypeString, value)
	}
	if _u.mutation.DecisionIDCleared() {
		_spec.ClearField(pendingmessage.FieldDecisionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(pendingmessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(pendingmessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(pendingmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(pendingmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(pendingmessage.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(pendingmessage.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingmessage.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(pendingmessage.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(pendingmessage.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(pendingmessage.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(pendingmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(pendingmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpstreamMessageID(); ok {
		_spec.SetField(pendingmessage.FieldUpstreamMessageID, field.TypeString, value)
	}
	if _u.mutation.UpstreamMessageIDCleared() {
		_spec.ClearField(pendingmessage.FieldUpstreamMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(pendingmessage.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(pendingmessage.FieldRejectionReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingMessageUpdateOne is the builder for updating a single PendingMessage entity.
type PendingMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingMessageMutation
}

// SetTo sets the "to" field.
func (_u *PendingMessageUpdateOne) SetTo(v string) *PendingMessageUpdateOne {
	_u.mutation.SetTo(v)
	return _u
}

// SetNillableTo sets the "to" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableTo(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetTo(*v)
	}
	return _u
}

// ClearTo clears the value of the "to" field.
func (_u *PendingMessageUpdateOne) ClearTo() *PendingMessageUpdateOne {
	_u.mutation.ClearTo()
	return _u
}

// SetCc sets the "cc" field.
func (_u *PendingMessageUpdateOne) SetCc(v []string) *PendingMessageUpdateOne {
	_u.mutation.SetCc(v)
	return _u
}

// AppendCc appends value to the "cc" field.
func (_u *PendingMessageUpdateOne) AppendCc(v []string) *PendingMessageUpdateOne {
	_u.mutation.AppendCc(v)
	return _u
}

// ClearCc clears the value of the "cc" field.
func (_u *PendingMessageUpdateOne) ClearCc() *PendingMessageUpdateOne {
	_u.mutation.ClearCc()
	return _u
}

// SetBcc sets the "bcc" field.
func (_u *PendingMessageUpdateOne) SetBcc(v []string) *PendingMessageUpdateOne {
	_u.mutation.SetBcc(v)
	return _u
}

// AppendBcc appends value to the "bcc" field.
func (_u *PendingMessageUpdateOne) AppendBcc(v []string) *PendingMessageUpdateOne {
	_u.mutation.AppendBcc(v)
	return _u
}

// ClearBcc clears the value of the "bcc" field.
func (_u *PendingMessageUpdateOne) ClearBcc() *PendingMessageUpdateOne {
	_u.mutation.ClearBcc()
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PendingMessageUpdateOne) SetSubject(v string) *PendingMessageUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableSubject(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *PendingMessageUpdateOne) ClearSubject() *PendingMessageUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *PendingMessageUpdateOne) SetBody(v string) *PendingMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableBody(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAttachments sets the "attachments" field.
func (_u *PendingMessageUpdateOne) SetAttachments(v []models.Attachment) *PendingMessageUpdateOne {
	_u.mutation.SetAttachments(v)
	return _u
}

// AppendAttachments appends value to the "attachments" field.
func (_u *PendingMessageUpdateOne) AppendAttachments(v []models.Attachment) *PendingMessageUpdateOne {
	_u.mutation.AppendAttachments(v)
	return _u
}

// ClearAttachments clears the value of the "attachments" field.
func (_u *PendingMessageUpdateOne) ClearAttachments() *PendingMessageUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PendingMessageUpdateOne) SetConfidence(v float64) *PendingMessageUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableConfidence(v *float64) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PendingMessageUpdateOne) AddConfidence(v float64) *PendingMessageUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *PendingMessageUpdateOne) SetDecisionID(v string) *PendingMessageUpdateOne {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableDecisionID(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// ClearDecisionID clears the value of the "decision_id" field.
func (_u *PendingMessageUpdateOne) ClearDecisionID() *PendingMessageUpdateOne {
	_u.mutation.ClearDecisionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingMessageUpdateOne) SetStatus(v pendingmessage.Status) *PendingMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableStatus(v *pendingmessage.Status) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PendingMessageUpdateOne) SetRetryCount(v int) *PendingMessageUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableRetryCount(v *int) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PendingMessageUpdateOne) AddRetryCount(v int) *PendingMessageUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PendingMessageUpdateOne) SetLastError(v string) *PendingMessageUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableLastError(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PendingMessageUpdateOne) ClearLastError() *PendingMessageUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *PendingMessageUpdateOne) SetNextAttemptAt(v time.Time) *PendingMessageUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableNextAttemptAt(v *time.Time) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *PendingMessageUpdateOne) ClearNextAttemptAt() *PendingMessageUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *PendingMessageUpdateOne) SetReviewedAt(v time.Time) *PendingMessageUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableReviewedAt(v *time.Time) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *PendingMessageUpdateOne) ClearReviewedAt() *PendingMessageUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *PendingMessageUpdateOne) SetReviewedBy(v string) *PendingMessageUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableReviewedBy(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *PendingMessageUpdateOne) ClearReviewedBy() *PendingMessageUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *PendingMessageUpdateOne) SetSentAt(v time.Time) *PendingMessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableSentAt(v *time.Time) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *PendingMessageUpdateOne) ClearSentAt() *PendingMessageUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_u *PendingMessageUpdateOne) SetUpstreamMessageID(v string) *PendingMessageUpdateOne {
	_u.mutation.SetUpstreamMessageID(v)
	return _u
}

// SetNillableUpstreamMessageID sets the "upstream_message_id" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableUpstreamMessageID(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetUpstreamMessageID(*v)
	}
	return _u
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (_u *PendingMessageUpdateOne) ClearUpstreamMessageID() *PendingMessageUpdateOne {
	_u.mutation.ClearUpstreamMessageID()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *PendingMessageUpdateOne) SetRejectionReason(v string) *PendingMessageUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *PendingMessageUpdateOne) SetNillableRejectionReason(v *string) *PendingMessageUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *PendingMessageUpdateOne) ClearRejectionReason() *PendingMessageUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// Mutation returns the PendingMessageMutation object of the builder.
func (_u *PendingMessageUpdateOne) Mutation() *PendingMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingMessageUpdate builder.
func (_u *PendingMessageUpdateOne) Where(ps ...predicate.PendingMessage) *PendingMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingMessageUpdateOne) Select(field string, fields ...string) *PendingMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingMessage entity.
func (_u *PendingMessageUpdateOne) Save(ctx context.Context) (*PendingMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingMessageUpdateOne) SaveX(ctx context.Context) *PendingMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingMessage.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PendingMessage.ticket"`)
	}
	return nil
}

func (_u *PendingMessageUpdateOne) sqlSave(ctx context.Context) (_node *PendingMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingmessage.Table, pendingmessage.Columns, sqlgraph.NewFieldSpec(pendingmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingmessage.FieldID)
		for _, f := range fields {
			if !pendingmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingmessage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.To(); ok {
		_spec.SetField(pendingmessage.FieldTo, field.TypeString, value)
	}
	if _u.mutation.ToCleared() {
		_spec.ClearField(pendingmessage.FieldTo, field.TypeString)
	}
	if value, ok := _u.mutation.Cc(); ok {
		_spec.SetField(pendingmessage.FieldCc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldCc, value)
		})
	}
	if _u.mutation.CcCleared() {
		_spec.ClearField(pendingmessage.FieldCc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bcc(); ok {
		_spec.SetField(pendingmessage.FieldBcc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBcc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldBcc, value)
		})
	}
	if _u.mutation.BccCleared() {
		_spec.ClearField(pendingmessage.FieldBcc, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pendingmessage.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(pendingmessage.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(pendingmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attachments(); ok {
		_spec.SetField(pendingmessage.FieldAttachments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pendingmessage.FieldAttachments, value)
		})
	}
	if _u.mutation.AttachmentsCleared() {
		_spec.ClearField(pendingmessage.FieldAttachments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(pendingmessage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(pendingmessage.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(pendingmessage.FieldDecisionID, field.TypeString, value)
	}
	if _u.mutation.DecisionIDCleared() {
		_spec.ClearField(pendingmessage.FieldDecisionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(pendingmessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(pendingmessage.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(pendingmessage.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(pendingmessage.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(pendingmessage.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(pendingmessage.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(pendingmessage.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(pendingmessage.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(pendingmessage.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(pendingmessage.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(pendingmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(pendingmessage.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpstreamMessageID(); ok {
		_spec.SetField(pendingmessage.FieldUpstreamMessageID, field.TypeString, value)
	}
	if _u.mutation.UpstreamMessageIDCleared() {
		_spec.ClearField(pendingmessage.FieldUpstreamMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(pendingmessage.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(pendingmessage.FieldRejectionReason, field.TypeString)
	}
	_node = &PendingMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
