// Code generated by ent, DO NOT EDIT.

package ticketmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldID, id))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// Sender applies equality check predicate on the "sender" field. It's identical to SenderEQ.
func Sender(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSender, v))
}

// Recipient applies equality check predicate on the "recipient" field. It's identical to RecipientEQ.
func Recipient(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldRecipient, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldBody, v))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSourceMessageID, v))
}

// UpstreamMessageID applies equality check predicate on the "upstream_message_id" field. It's identical to UpstreamMessageIDEQ.
func UpstreamMessageID(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// At applies equality check predicate on the "at" field. It's identical to AtEQ.
func At(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldAt, v))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldTicketNumber, v))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldDirection, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldRole, vs...))
}

// SenderEQ applies the EQ predicate on the "sender" field.
func SenderEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSender, v))
}

// SenderNEQ applies the NEQ predicate on the "sender" field.
func SenderNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldSender, v))
}

// SenderIn applies the In predicate on the "sender" field.
func SenderIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldSender, vs...))
}

// SenderNotIn applies the NotIn predicate on the "sender" field.
func SenderNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldSender, vs...))
}

// SenderGT applies the GT predicate on the "sender" field.
func SenderGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldSender, v))
}

// SenderGTE applies the GTE predicate on the "sender" field.
func SenderGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldSender, v))
}

// SenderLT applies the LT predicate on the "sender" field.
func SenderLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldSender, v))
}

// SenderLTE applies the LTE predicate on the "sender" field.
func SenderLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldSender, v))
}

// SenderContains applies the Contains predicate on the "sender" field.
func SenderContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldSender, v))
}

// SenderHasPrefix applies the HasPrefix predicate on the "sender" field.
func SenderHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldSender, v))
}

// SenderHasSuffix applies the HasSuffix predicate on the "sender" field.
func SenderHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldSender, v))
}

// SenderIsNil applies the IsNil predicate on the "sender" field.
func SenderIsNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIsNull(FieldSender))
}

// SenderNotNil applies the NotNil predicate on the "sender" field.
func SenderNotNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotNull(FieldSender))
}

// SenderEqualFold applies the EqualFold predicate on the "sender" field.
func SenderEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldSender, v))
}

// SenderContainsFold applies the ContainsFold predicate on the "sender" field.
func SenderContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldSender, v))
}

// RecipientEQ applies the EQ predicate on the "recipient" field.
func RecipientEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldRecipient, v))
}

// RecipientNEQ applies the NEQ predicate on the "recipient" field.
func RecipientNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldRecipient, v))
}

// RecipientIn applies the In predicate on the "recipient" field.
func RecipientIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldRecipient, vs...))
}

// RecipientNotIn applies the NotIn predicate on the "recipient" field.
func RecipientNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldRecipient, vs...))
}

// RecipientGT applies the GT predicate on the "recipient" field.
func RecipientGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldRecipient, v))
}

// RecipientGTE applies the GTE predicate on the "recipient" field.
func RecipientGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldRecipient, v))
}

// RecipientLT applies the LT predicate on the "recipient" field.
func RecipientLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldRecipient, v))
}

// RecipientLTE applies the LTE predicate on the "recipient" field.
func RecipientLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldRecipient, v))
}

// RecipientContains applies the Contains predicate on the "recipient" field.
func RecipientContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldRecipient, v))
}

// RecipientHasPrefix applies the HasPrefix predicate on the "recipient" field.
func RecipientHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldRecipient, v))
}

// RecipientHasSuffix applies the HasSuffix predicate on the "recipient" field.
func RecipientHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldRecipient, v))
}

// RecipientIsNil applies the IsNil predicate on the "recipient" field.
func RecipientIsNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIsNull(FieldRecipient))
}

// RecipientNotNil applies the NotNil predicate on the "recipient" field.
func RecipientNotNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotNull(FieldRecipient))
}

// RecipientEqualFold applies the EqualFold predicate on the "recipient" field.
func RecipientEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldRecipient, v))
}

// RecipientContainsFold applies the ContainsFold predicate on the "recipient" field.
func RecipientContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldRecipient, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldBody, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDIsNil applies the IsNil predicate on the "source_message_id" field.
func SourceMessageIDIsNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIsNull(FieldSourceMessageID))
}

// SourceMessageIDNotNil applies the NotNil predicate on the "source_message_id" field.
func SourceMessageIDNotNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotNull(FieldSourceMessageID))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// UpstreamMessageIDEQ applies the EQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDNEQ applies the NEQ predicate on the "upstream_message_id" field.
func UpstreamMessageIDNEQ(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDIn applies the In predicate on the "upstream_message_id" field.
func UpstreamMessageIDIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDNotIn applies the NotIn predicate on the "upstream_message_id" field.
func UpstreamMessageIDNotIn(vs ...string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldUpstreamMessageID, vs...))
}

// UpstreamMessageIDGT applies the GT predicate on the "upstream_message_id" field.
func UpstreamMessageIDGT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDGTE applies the GTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDGTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLT applies the LT predicate on the "upstream_message_id" field.
func UpstreamMessageIDLT(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDLTE applies the LTE predicate on the "upstream_message_id" field.
func UpstreamMessageIDLTE(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContains applies the Contains predicate on the "upstream_message_id" field.
func UpstreamMessageIDContains(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContains(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasPrefix applies the HasPrefix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasPrefix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasPrefix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDHasSuffix applies the HasSuffix predicate on the "upstream_message_id" field.
func UpstreamMessageIDHasSuffix(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldHasSuffix(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDIsNil applies the IsNil predicate on the "upstream_message_id" field.
func UpstreamMessageIDIsNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIsNull(FieldUpstreamMessageID))
}

// UpstreamMessageIDNotNil applies the NotNil predicate on the "upstream_message_id" field.
func UpstreamMessageIDNotNil() predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotNull(FieldUpstreamMessageID))
}

// UpstreamMessageIDEqualFold applies the EqualFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDEqualFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEqualFold(FieldUpstreamMessageID, v))
}

// UpstreamMessageIDContainsFold applies the ContainsFold predicate on the "upstream_message_id" field.
func UpstreamMessageIDContainsFold(v string) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldContainsFold(FieldUpstreamMessageID, v))
}

// AtEQ applies the EQ predicate on the "at" field.
func AtEQ(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldEQ(FieldAt, v))
}

// AtNEQ applies the NEQ predicate on the "at" field.
func AtNEQ(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNEQ(FieldAt, v))
}

// AtIn applies the In predicate on the "at" field.
func AtIn(vs ...time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldIn(FieldAt, vs...))
}

// AtNotIn applies the NotIn predicate on the "at" field.
func AtNotIn(vs ...time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldNotIn(FieldAt, vs...))
}

// AtGT applies the GT predicate on the "at" field.
func AtGT(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGT(FieldAt, v))
}

// AtGTE applies the GTE predicate on the "at" field.
func AtGTE(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldGTE(FieldAt, v))
}

// AtLT applies the LT predicate on the "at" field.
func AtLT(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLT(FieldAt, v))
}

// AtLTE applies the LTE predicate on the "at" field.
func AtLTE(v time.Time) predicate.TicketMessage {
	return predicate.TicketMessage(sql.FieldLTE(FieldAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.TicketMessage {
	return predicate.TicketMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.TicketState) predicate.TicketMessage {
	return predicate.TicketMessage(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketMessage) predicate.TicketMessage {
	return predicate.TicketMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketMessage) predicate.TicketMessage {
	return predicate.TicketMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketMessage) predicate.TicketMessage {
	return predicate.TicketMessage(sql.NotPredicates(p))
}
