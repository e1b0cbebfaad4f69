// Code generated by ent, DO NOT EDIT.

package pendingmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldID, id))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// To applies equality check predicate on the "to" field. It's identical to ToEQ.
func To(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldTo, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldBody, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldConfidence, v))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldDecisionID, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldRetryCount, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldLastError, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldNextAttemptAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldReviewedBy, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldSentAt, v))
}

// UpstreamMessageID applies equality check predicate on the "upstream_message_id" field. It's identical to UpstreamMessageIDEQ.
func UpstreamMessageID(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldRejectionReason, v))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldTicketNumber, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldKind, vs...))
}

// ToEQ applies the EQ predicate on the "to" field.
func ToEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldTo, v))
}

// ToNEQ applies the NEQ predicate on the "to" field.
func ToNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldTo, v))
}

// ToIn applies the In predicate on the "to" field.
func ToIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldTo, vs...))
}

// ToNotIn applies the NotIn predicate on the "to" field.
func ToNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldTo, vs...))
}

// ToGT applies the GT predicate on the "to" field.
func ToGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldTo, v))
}

// ToGTE applies the GTE predicate on the "to" field.
func ToGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldTo, v))
}

// ToLT applies the LT predicate on the "to" field.
func ToLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldTo, v))
}

// ToLTE applies the LTE predicate on the "to" field.
func ToLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldTo, v))
}

// ToContains applies the Contains predicate on the "to" field.
func ToContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldTo, v))
}

// ToHasPrefix applies the HasPrefix predicate on the "to" field.
func ToHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldTo, v))
}

// ToHasSuffix applies the HasSuffix predicate on the "to" field.
func ToHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldTo, v))
}

// ToIsNil applies the IsNil predicate on the "to" field.
func ToIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldTo))
}

// ToNotNil applies the NotNil predicate on the "to" field.
func ToNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldTo))
}

// ToEqualFold applies the EqualFold predicate on the "to" field.
func ToEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldTo, v))
}

// ToContainsFold applies the ContainsFold predicate on the "to" field.
func ToContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldTo, v))
}

// CcIsNil applies the IsNil predicate on the "cc" field.
func CcIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldCc))
}

// CcNotNil applies the NotNil predicate on the "cc" field.
func CcNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldCc))
}

// BccIsNil applies the IsNil predicate on the "bcc" field.
func BccIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldBcc))
}

// BccNotNil applies the NotNil predicate on the "bcc" field.
func BccNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldBcc))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldBody, v))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldAttachments))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldConfidence, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDIsNil applies the IsNil predicate on the "decision_id" field.
func DecisionIDIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldDecisionID))
}

// DecisionIDNotNil applies the NotNil predicate on the "decision_id" field.
func DecisionIDNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldDecisionID))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldDecisionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldRetryCount, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldLastError, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldNextAttemptAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldReviewedAt))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldReviewedBy, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldSentAt))
}

// UpstreamMessageIDEQ applies the EQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDNEQ applies the NEQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDIn applies the In predicate on the "upstream_message_id" field.
func UpstreamMessageIDIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDNotIn applies the NotIn predicate on the "upstream_message_id" field.
func UpstreamMessageIDNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDGT applies the GT predicate on the "upstream_message_id" field.
func UpstreamMessageIDGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDGTE applies the GTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLT applies the LT predicate on the "upstream_message_id" field.
func UpstreamMessageIDLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLTE applies the LTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContains applies the Contains predicate on the "upstream_message_id" field.
func UpstreamMessageIDContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasPrefix applies the HasPrefix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasSuffix applies the HasSuffix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDIsNil applies the IsNil predicate on the "upstream_message_id" field.
func UpstreamMessageIDIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldUpstreamMessageID))
}

// UpstreamMessageIDNotNil applies the NotNil predicate on the "upstream_message_id" field.
func UpstreamMessageIDNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldUpstreamMessageID))
}

// UpstreamMessageIDEqualFold applies the EqualFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContainsFold applies the ContainsFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldUpstreamMessageID, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.PendingMessage {
	return predicate.PendingMessage(sql.FieldContainsFold(FieldRejectionReason, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.PendingMessage {
	return predicate.PendingMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.TicketState) predicate.PendingMessage {
	return predicate.PendingMessage(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingMessage) predicate.PendingMessage {
	return predicate.PendingMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingMessage) predicate.PendingMessage {
	return predicate.PendingMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingMessage) predicate.PendingMessage {
	return predicate.PendingMessage(sql.NotPredicates(p))
}
