// Code generated by ent, DO NOT EDIT.

package processedemail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldID, id))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSourceMessageID, v))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldThreadID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSubject, v))
}

// FromAddress applies equality check predicate on the "from_address" field. It's identical to FromAddressEQ.
func FromAddress(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldFromAddress, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldReceivedAt, v))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldTicketNumber, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldProcessedAt, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDIsNil applies the IsNil predicate on the "thread_id" field.
func ThreadIDIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldThreadID))
}

// ThreadIDNotNil applies the NotNil predicate on the "thread_id" field.
func ThreadIDNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldThreadID))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldThreadID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldSubject, v))
}

// FromAddressEQ applies the EQ predicate on the "from_address" field.
func FromAddressEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldFromAddress, v))
}

// FromAddressNEQ applies the NEQ predicate on the "from_address" field.
func FromAddressNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldFromAddress, v))
}

// FromAddressIn applies the In predicate on the "from_address" field.
func FromAddressIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldFromAddress, vs...))
}

// FromAddressNotIn applies the NotIn predicate on the "from_address" field.
func FromAddressNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldFromAddress, vs...))
}

// FromAddressGT applies the GT predicate on the "from_address" field.
func FromAddressGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldFromAddress, v))
}

// FromAddressGTE applies the GTE predicate on the "from_address" field.
func FromAddressGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldFromAddress, v))
}

// FromAddressLT applies the LT predicate on the "from_address" field.
func FromAddressLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldFromAddress, v))
}

// FromAddressLTE applies the LTE predicate on the "from_address" field.
func FromAddressLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldFromAddress, v))
}

// FromAddressContains applies the Contains predicate on the "from_address" field.
func FromAddressContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldFromAddress, v))
}

// FromAddressHasPrefix applies the HasPrefix predicate on the "from_address" field.
func FromAddressHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldFromAddress, v))
}

// FromAddressHasSuffix applies the HasSuffix predicate on the "from_address" field.
func FromAddressHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldFromAddress, v))
}

// FromAddressIsNil applies the IsNil predicate on the "from_address" field.
func FromAddressIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldFromAddress))
}

// FromAddressNotNil applies the NotNil predicate on the "from_address" field.
func FromAddressNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldFromAddress))
}

// FromAddressEqualFold applies the EqualFold predicate on the "from_address" field.
func FromAddressEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldFromAddress, v))
}

// FromAddressContainsFold applies the ContainsFold predicate on the "from_address" field.
func FromAddressContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldFromAddress, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldReceivedAt, v))
}

// ReceivedAtIsNil applies the IsNil predicate on the "received_at" field.
func ReceivedAtIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldReceivedAt))
}

// ReceivedAtNotNil applies the NotNil predicate on the "received_at" field.
func ReceivedAtNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldReceivedAt))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberIsNil applies the IsNil predicate on the "ticket_number" field.
func TicketNumberIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldTicketNumber))
}

// TicketNumberNotNil applies the NotNil predicate on the "ticket_number" field.
func TicketNumberNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldTicketNumber))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldTicketNumber, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.FieldLTE(FieldProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedEmail) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedEmail) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedEmail) predicate.ProcessedEmail {
	return predicate.ProcessedEmail(sql.NotPredicates(p))
}
