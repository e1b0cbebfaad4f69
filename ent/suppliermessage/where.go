// Code generated by ent, DO NOT EDIT.

package suppliermessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldContainsFold(FieldID, id))
}

// SupplierEmail applies equality check predicate on the "supplier_email" field. It's identical to SupplierEmailEQ.
func SupplierEmail(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldSupplierEmail, v))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldSentAt, v))
}

// ReminderSentAt applies equality check predicate on the "reminder_sent_at" field. It's identical to ReminderSentAtEQ.
func ReminderSentAt(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldReminderSentAt, v))
}

// ResponseReceived applies equality check predicate on the "response_received" field. It's identical to ResponseReceivedEQ.
func ResponseReceived(v bool) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldResponseReceived, v))
}

// NextCheckAt applies equality check predicate on the "next_check_at" field. It's identical to NextCheckAtEQ.
func NextCheckAt(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldNextCheckAt, v))
}

// SupplierEmailEQ applies the EQ predicate on the "supplier_email" field.
func SupplierEmailEQ(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldSupplierEmail, v))
}

// SupplierEmailNEQ applies the NEQ predicate on the "supplier_email" field.
func SupplierEmailNEQ(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldSupplierEmail, v))
}

// SupplierEmailIn applies the In predicate on the "supplier_email" field.
func SupplierEmailIn(vs ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldSupplierEmail, vs...))
}

// SupplierEmailNotIn applies the NotIn predicate on the "supplier_email" field.
func SupplierEmailNotIn(vs ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldSupplierEmail, vs...))
}

// SupplierEmailGT applies the GT predicate on the "supplier_email" field.
func SupplierEmailGT(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldSupplierEmail, v))
}

// SupplierEmailGTE applies the GTE predicate on the "supplier_email" field.
func SupplierEmailGTE(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldSupplierEmail, v))
}

// SupplierEmailLT applies the LT predicate on the "supplier_email" field.
func SupplierEmailLT(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldSupplierEmail, v))
}

// SupplierEmailLTE applies the LTE predicate on the "supplier_email" field.
func SupplierEmailLTE(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldSupplierEmail, v))
}

// SupplierEmailContains applies the Contains predicate on the "supplier_email" field.
func SupplierEmailContains(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldContains(FieldSupplierEmail, v))
}

// SupplierEmailHasPrefix applies the HasPrefix predicate on the "supplier_email" field.
func SupplierEmailHasPrefix(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldHasPrefix(FieldSupplierEmail, v))
}

// SupplierEmailHasSuffix applies the HasSuffix predicate on the "supplier_email" field.
func SupplierEmailHasSuffix(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldHasSuffix(FieldSupplierEmail, v))
}

// SupplierEmailEqualFold applies the EqualFold predicate on the "supplier_email" field.
func SupplierEmailEqualFold(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEqualFold(FieldSupplierEmail, v))
}

// SupplierEmailContainsFold applies the ContainsFold predicate on the "supplier_email" field.
func SupplierEmailContainsFold(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldContainsFold(FieldSupplierEmail, v))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldContainsFold(FieldTicketNumber, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldSentAt, v))
}

// ReminderSentAtEQ applies the EQ predicate on the "reminder_sent_at" field.
func ReminderSentAtEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldReminderSentAt, v))
}

// ReminderSentAtNEQ applies the NEQ predicate on the "reminder_sent_at" field.
func ReminderSentAtNEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldReminderSentAt, v))
}

// ReminderSentAtIn applies the In predicate on the "reminder_sent_at" field.
func ReminderSentAtIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtNotIn applies the NotIn predicate on the "reminder_sent_at" field.
func ReminderSentAtNotIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldReminderSentAt, vs...))
}

// ReminderSentAtGT applies the GT predicate on the "reminder_sent_at" field.
func ReminderSentAtGT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldReminderSentAt, v))
}

// ReminderSentAtGTE applies the GTE predicate on the "reminder_sent_at" field.
func ReminderSentAtGTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldReminderSentAt, v))
}

// ReminderSentAtLT applies the LT predicate on the "reminder_sent_at" field.
func ReminderSentAtLT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldReminderSentAt, v))
}

// ReminderSentAtLTE applies the LTE predicate on the "reminder_sent_at" field.
func ReminderSentAtLTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldReminderSentAt, v))
}

// ReminderSentAtIsNil applies the IsNil predicate on the "reminder_sent_at" field.
func ReminderSentAtIsNil() predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIsNull(FieldReminderSentAt))
}

// ReminderSentAtNotNil applies the NotNil predicate on the "reminder_sent_at" field.
func ReminderSentAtNotNil() predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotNull(FieldReminderSentAt))
}

// ResponseReceivedEQ applies the EQ predicate on the "response_received" field.
func ResponseReceivedEQ(v bool) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldResponseReceived, v))
}

// ResponseReceivedNEQ applies the NEQ predicate on the "response_received" field.
func ResponseReceivedNEQ(v bool) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldResponseReceived, v))
}

// NextCheckAtEQ applies the EQ predicate on the "next_check_at" field.
func NextCheckAtEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldEQ(FieldNextCheckAt, v))
}

// NextCheckAtNEQ applies the NEQ predicate on the "next_check_at" field.
func NextCheckAtNEQ(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNEQ(FieldNextCheckAt, v))
}

// NextCheckAtIn applies the In predicate on the "next_check_at" field.
func NextCheckAtIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldIn(FieldNextCheckAt, vs...))
}

// NextCheckAtNotIn applies the NotIn predicate on the "next_check_at" field.
func NextCheckAtNotIn(vs ...time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldNotIn(FieldNextCheckAt, vs...))
}

// NextCheckAtGT applies the GT predicate on the "next_check_at" field.
func NextCheckAtGT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGT(FieldNextCheckAt, v))
}

// NextCheckAtGTE applies the GTE predicate on the "next_check_at" field.
func NextCheckAtGTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldGTE(FieldNextCheckAt, v))
}

// NextCheckAtLT applies the LT predicate on the "next_check_at" field.
func NextCheckAtLT(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLT(FieldNextCheckAt, v))
}

// NextCheckAtLTE applies the LTE predicate on the "next_check_at" field.
func NextCheckAtLTE(v time.Time) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.FieldLTE(FieldNextCheckAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.SupplierMessage {
	return predicate.SupplierMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.TicketState) predicate.SupplierMessage {
	return predicate.SupplierMessage(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplierMessage) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplierMessage) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplierMessage) predicate.SupplierMessage {
	return predicate.SupplierMessage(sql.NotPredicates(p))
}
