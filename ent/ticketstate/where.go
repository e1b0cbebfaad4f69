// Code generated by ent, DO NOT EDIT.

package ticketstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldTicketID, v))
}

// CustomStatusID applies equality check predicate on the "custom_status_id" field. It's identical to CustomStatusIDEQ.
func CustomStatusID(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCustomStatusID, v))
}

// CustomerEmail applies equality check predicate on the "customer_email" field. It's identical to CustomerEmailEQ.
func CustomerEmail(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCustomerEmail, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldLanguage, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldOrderNumber, v))
}

// PurchaseOrderNumber applies equality check predicate on the "purchase_order_number" field. It's identical to PurchaseOrderNumberEQ.
func PurchaseOrderNumber(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldPurchaseOrderNumber, v))
}

// SupplierEmail applies equality check predicate on the "supplier_email" field. It's identical to SupplierEmailEQ.
func SupplierEmail(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldSupplierEmail, v))
}

// Escalated applies equality check predicate on the "escalated" field. It's identical to EscalatedEQ.
func Escalated(v bool) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalated, v))
}

// EscalationReason applies equality check predicate on the "escalation_reason" field. It's identical to EscalationReasonEQ.
func EscalationReason(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalationReason, v))
}

// EscalationAt applies equality check predicate on the "escalation_at" field. It's identical to EscalationAtEQ.
func EscalationAt(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalationAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldLastSeenAt, v))
}

// GmailThreadID applies equality check predicate on the "gmail_thread_id" field. It's identical to GmailThreadIDEQ.
func GmailThreadID(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldGmailThreadID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDIsNil applies the IsNil predicate on the "ticket_id" field.
func TicketIDIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldTicketID))
}

// TicketIDNotNil applies the NotNil predicate on the "ticket_id" field.
func TicketIDNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldTicketID))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldTicketID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldStatus, vs...))
}

// CustomStatusIDEQ applies the EQ predicate on the "custom_status_id" field.
func CustomStatusIDEQ(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCustomStatusID, v))
}

// CustomStatusIDNEQ applies the NEQ predicate on the "custom_status_id" field.
func CustomStatusIDNEQ(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldCustomStatusID, v))
}

// CustomStatusIDIn applies the In predicate on the "custom_status_id" field.
func CustomStatusIDIn(vs ...int) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldCustomStatusID, vs...))
}

// CustomStatusIDNotIn applies the NotIn predicate on the "custom_status_id" field.
func CustomStatusIDNotIn(vs ...int) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldCustomStatusID, vs...))
}

// CustomStatusIDGT applies the GT predicate on the "custom_status_id" field.
func CustomStatusIDGT(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldCustomStatusID, v))
}

// CustomStatusIDGTE applies the GTE predicate on the "custom_status_id" field.
func CustomStatusIDGTE(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldCustomStatusID, v))
}

// CustomStatusIDLT applies the LT predicate on the "custom_status_id" field.
func CustomStatusIDLT(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldCustomStatusID, v))
}

// CustomStatusIDLTE applies the LTE predicate on the "custom_status_id" field.
func CustomStatusIDLTE(v int) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldCustomStatusID, v))
}

// CustomStatusIDIsNil applies the IsNil predicate on the "custom_status_id" field.
func CustomStatusIDIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldCustomStatusID))
}

// CustomStatusIDNotNil applies the NotNil predicate on the "custom_status_id" field.
func CustomStatusIDNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldCustomStatusID))
}

// CustomerEmailEQ applies the EQ predicate on the "customer_email" field.
func CustomerEmailEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCustomerEmail, v))
}

// CustomerEmailNEQ applies the NEQ predicate on the "customer_email" field.
func CustomerEmailNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldCustomerEmail, v))
}

// CustomerEmailIn applies the In predicate on the "customer_email" field.
func CustomerEmailIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldCustomerEmail, vs...))
}

// CustomerEmailNotIn applies the NotIn predicate on the "customer_email" field.
func CustomerEmailNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldCustomerEmail, vs...))
}

// CustomerEmailGT applies the GT predicate on the "customer_email" field.
func CustomerEmailGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldCustomerEmail, v))
}

// CustomerEmailGTE applies the GTE predicate on the "customer_email" field.
func CustomerEmailGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldCustomerEmail, v))
}

// CustomerEmailLT applies the LT predicate on the "customer_email" field.
func CustomerEmailLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldCustomerEmail, v))
}

// CustomerEmailLTE applies the LTE predicate on the "customer_email" field.
func CustomerEmailLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldCustomerEmail, v))
}

// CustomerEmailContains applies the Contains predicate on the "customer_email" field.
func CustomerEmailContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldCustomerEmail, v))
}

// CustomerEmailHasPrefix applies the HasPrefix predicate on the "customer_email" field.
func CustomerEmailHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldCustomerEmail, v))
}

// CustomerEmailHasSuffix applies the HasSuffix predicate on the "customer_email" field.
func CustomerEmailHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldCustomerEmail, v))
}

// CustomerEmailIsNil applies the IsNil predicate on the "customer_email" field.
func CustomerEmailIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldCustomerEmail))
}

// CustomerEmailNotNil applies the NotNil predicate on the "customer_email" field.
func CustomerEmailNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldCustomerEmail))
}

// CustomerEmailEqualFold applies the EqualFold predicate on the "customer_email" field.
func CustomerEmailEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldCustomerEmail, v))
}

// CustomerEmailContainsFold applies the ContainsFold predicate on the "customer_email" field.
func CustomerEmailContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldCustomerEmail, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldLanguage, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberIsNil applies the IsNil predicate on the "order_number" field.
func OrderNumberIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldOrderNumber))
}

// OrderNumberNotNil applies the NotNil predicate on the "order_number" field.
func OrderNumberNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldOrderNumber))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldOrderNumber, v))
}

// PurchaseOrderNumberEQ applies the EQ predicate on the "purchase_order_number" field.
func PurchaseOrderNumberEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberNEQ applies the NEQ predicate on the "purchase_order_number" field.
func PurchaseOrderNumberNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberIn applies the In predicate on the "purchase_order_number" field.
func PurchaseOrderNumberIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldPurchaseOrderNumber, vs...))
}

// PurchaseOrderNumberNotIn applies the NotIn predicate on the "purchase_order_number" field.
func PurchaseOrderNumberNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldPurchaseOrderNumber, vs...))
}

// PurchaseOrderNumberGT applies the GT predicate on the "purchase_order_number" field.
func PurchaseOrderNumberGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberGTE applies the GTE predicate on the "purchase_order_number" field.
func PurchaseOrderNumberGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberLT applies the LT predicate on the "purchase_order_number" field.
func PurchaseOrderNumberLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberLTE applies the LTE predicate on the "purchase_order_number" field.
func PurchaseOrderNumberLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberContains applies the Contains predicate on the "purchase_order_number" field.
func PurchaseOrderNumberContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberHasPrefix applies the HasPrefix predicate on the "purchase_order_number" field.
func PurchaseOrderNumberHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberHasSuffix applies the HasSuffix predicate on the "purchase_order_number" field.
func PurchaseOrderNumberHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberIsNil applies the IsNil predicate on the "purchase_order_number" field.
func PurchaseOrderNumberIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldPurchaseOrderNumber))
}

// PurchaseOrderNumberNotNil applies the NotNil predicate on the "purchase_order_number" field.
func PurchaseOrderNumberNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldPurchaseOrderNumber))
}

// PurchaseOrderNumberEqualFold applies the EqualFold predicate on the "purchase_order_number" field.
func PurchaseOrderNumberEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldPurchaseOrderNumber, v))
}

// PurchaseOrderNumberContainsFold applies the ContainsFold predicate on the "purchase_order_number" field.
func PurchaseOrderNumberContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldPurchaseOrderNumber, v))
}

// SupplierEmailEQ applies the EQ predicate on the "supplier_email" field.
func SupplierEmailEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldSupplierEmail, v))
}

// SupplierEmailNEQ applies the NEQ predicate on the "supplier_email" field.
func SupplierEmailNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldSupplierEmail, v))
}

// SupplierEmailIn applies the In predicate on the "supplier_email" field.
func SupplierEmailIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldSupplierEmail, vs...))
}

// SupplierEmailNotIn applies the NotIn predicate on the "supplier_email" field.
func SupplierEmailNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldSupplierEmail, vs...))
}

// SupplierEmailGT applies the GT predicate on the "supplier_email" field.
func SupplierEmailGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldSupplierEmail, v))
}

// SupplierEmailGTE applies the GTE predicate on the "supplier_email" field.
func SupplierEmailGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldSupplierEmail, v))
}

// SupplierEmailLT applies the LT predicate on the "supplier_email" field.
func SupplierEmailLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldSupplierEmail, v))
}

// SupplierEmailLTE applies the LTE predicate on the "supplier_email" field.
func SupplierEmailLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldSupplierEmail, v))
}

// SupplierEmailContains applies the Contains predicate on the "supplier_email" field.
func SupplierEmailContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldSupplierEmail, v))
}

// SupplierEmailHasPrefix applies the HasPrefix predicate on the "supplier_email" field.
func SupplierEmailHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldSupplierEmail, v))
}

// SupplierEmailHasSuffix applies the HasSuffix predicate on the "supplier_email" field.
func SupplierEmailHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldSupplierEmail, v))
}

// SupplierEmailIsNil applies the IsNil predicate on the "supplier_email" field.
func SupplierEmailIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldSupplierEmail))
}

// SupplierEmailNotNil applies the NotNil predicate on the "supplier_email" field.
func SupplierEmailNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldSupplierEmail))
}

// SupplierEmailEqualFold applies the EqualFold predicate on the "supplier_email" field.
func SupplierEmailEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldSupplierEmail, v))
}

// SupplierEmailContainsFold applies the ContainsFold predicate on the "supplier_email" field.
func SupplierEmailContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldSupplierEmail, v))
}

// SupplierTicketReferencesIsNil applies the IsNil predicate on the "supplier_ticket_references" field.
func SupplierTicketReferencesIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldSupplierTicketReferences))
}

// SupplierTicketReferencesNotNil applies the NotNil predicate on the "supplier_ticket_references" field.
func SupplierTicketReferencesNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldSupplierTicketReferences))
}

// EscalatedEQ applies the EQ predicate on the "escalated" field.
func EscalatedEQ(v bool) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalated, v))
}

// EscalatedNEQ applies the NEQ predicate on the "escalated" field.
func EscalatedNEQ(v bool) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldEscalated, v))
}

// EscalationReasonEQ applies the EQ predicate on the "escalation_reason" field.
func EscalationReasonEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalationReason, v))
}

// EscalationReasonNEQ applies the NEQ predicate on the "escalation_reason" field.
func EscalationReasonNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldEscalationReason, v))
}

// EscalationReasonIn applies the In predicate on the "escalation_reason" field.
func EscalationReasonIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldEscalationReason, vs...))
}

// EscalationReasonNotIn applies the NotIn predicate on the "escalation_reason" field.
func EscalationReasonNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldEscalationReason, vs...))
}

// EscalationReasonGT applies the GT predicate on the "escalation_reason" field.
func EscalationReasonGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldEscalationReason, v))
}

// EscalationReasonGTE applies the GTE predicate on the "escalation_reason" field.
func EscalationReasonGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldEscalationReason, v))
}

// EscalationReasonLT applies the LT predicate on the "escalation_reason" field.
func EscalationReasonLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldEscalationReason, v))
}

// EscalationReasonLTE applies the LTE predicate on the "escalation_reason" field.
func EscalationReasonLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldEscalationReason, v))
}

// EscalationReasonContains applies the Contains predicate on the "escalation_reason" field.
func EscalationReasonContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldEscalationReason, v))
}

// EscalationReasonHasPrefix applies the HasPrefix predicate on the "escalation_reason" field.
func EscalationReasonHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldEscalationReason, v))
}

// EscalationReasonHasSuffix applies the HasSuffix predicate on the "escalation_reason" field.
func EscalationReasonHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldEscalationReason, v))
}

// EscalationReasonIsNil applies the IsNil predicate on the "escalation_reason" field.
func EscalationReasonIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldEscalationReason))
}

// EscalationReasonNotNil applies the NotNil predicate on the "escalation_reason" field.
func EscalationReasonNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldEscalationReason))
}

// EscalationReasonEqualFold applies the EqualFold predicate on the "escalation_reason" field.
func EscalationReasonEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldEscalationReason, v))
}

// EscalationReasonContainsFold applies the ContainsFold predicate on the "escalation_reason" field.
func EscalationReasonContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldEscalationReason, v))
}

// EscalationAtEQ applies the EQ predicate on the "escalation_at" field.
func EscalationAtEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldEscalationAt, v))
}

// EscalationAtNEQ applies the NEQ predicate on the "escalation_at" field.
func EscalationAtNEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldEscalationAt, v))
}

// EscalationAtIn applies the In predicate on the "escalation_at" field.
func EscalationAtIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldEscalationAt, vs...))
}

// EscalationAtNotIn applies the NotIn predicate on the "escalation_at" field.
func EscalationAtNotIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldEscalationAt, vs...))
}

// EscalationAtGT applies the GT predicate on the "escalation_at" field.
func EscalationAtGT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldEscalationAt, v))
}

// EscalationAtGTE applies the GTE predicate on the "escalation_at" field.
func EscalationAtGTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldEscalationAt, v))
}

// EscalationAtLT applies the LT predicate on the "escalation_at" field.
func EscalationAtLT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldEscalationAt, v))
}

// EscalationAtLTE applies the LTE predicate on the "escalation_at" field.
func EscalationAtLTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldEscalationAt, v))
}

// EscalationAtIsNil applies the IsNil predicate on the "escalation_at" field.
func EscalationAtIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldEscalationAt))
}

// EscalationAtNotNil applies the NotNil predicate on the "escalation_at" field.
func EscalationAtNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldEscalationAt))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldLastSeenAt, v))
}

// GmailThreadIDEQ applies the EQ predicate on the "gmail_thread_id" field.
func GmailThreadIDEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldGmailThreadID, v))
}

// GmailThreadIDNEQ applies the NEQ predicate on the "gmail_thread_id" field.
func GmailThreadIDNEQ(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldGmailThreadID, v))
}

// GmailThreadIDIn applies the In predicate on the "gmail_thread_id" field.
func GmailThreadIDIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldGmailThreadID, vs...))
}

// GmailThreadIDNotIn applies the NotIn predicate on the "gmail_thread_id" field.
func GmailThreadIDNotIn(vs ...string) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldGmailThreadID, vs...))
}

// GmailThreadIDGT applies the GT predicate on the "gmail_thread_id" field.
func GmailThreadIDGT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldGmailThreadID, v))
}

// GmailThreadIDGTE applies the GTE predicate on the "gmail_thread_id" field.
func GmailThreadIDGTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldGmailThreadID, v))
}

// GmailThreadIDLT applies the LT predicate on the "gmail_thread_id" field.
func GmailThreadIDLT(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldGmailThreadID, v))
}

// GmailThreadIDLTE applies the LTE predicate on the "gmail_thread_id" field.
func GmailThreadIDLTE(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldGmailThreadID, v))
}

// GmailThreadIDContains applies the Contains predicate on the "gmail_thread_id" field.
func GmailThreadIDContains(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContains(FieldGmailThreadID, v))
}

// GmailThreadIDHasPrefix applies the HasPrefix predicate on the "gmail_thread_id" field.
func GmailThreadIDHasPrefix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasPrefix(FieldGmailThreadID, v))
}

// GmailThreadIDHasSuffix applies the HasSuffix predicate on the "gmail_thread_id" field.
func GmailThreadIDHasSuffix(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldHasSuffix(FieldGmailThreadID, v))
}

// GmailThreadIDIsNil applies the IsNil predicate on the "gmail_thread_id" field.
func GmailThreadIDIsNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldIsNull(FieldGmailThreadID))
}

// GmailThreadIDNotNil applies the NotNil predicate on the "gmail_thread_id" field.
func GmailThreadIDNotNil() predicate.TicketState {
	return predicate.TicketState(sql.FieldNotNull(FieldGmailThreadID))
}

// GmailThreadIDEqualFold applies the EqualFold predicate on the "gmail_thread_id" field.
func GmailThreadIDEqualFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldEqualFold(FieldGmailThreadID, v))
}

// GmailThreadIDContainsFold applies the ContainsFold predicate on the "gmail_thread_id" field.
func GmailThreadIDContainsFold(v string) predicate.TicketState {
	return predicate.TicketState(sql.FieldContainsFold(FieldGmailThreadID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TicketState {
	return predicate.TicketState(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.TicketMessage) predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDecisions applies the HasEdge predicate on the "decisions" edge.
func HasDecisions() predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDecisionsWith applies the HasEdge predicate on the "decisions" edge with a given conditions (other predicates).
func HasDecisionsWith(preds ...predicate.AIDecision) predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := newDecisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPendingMessages applies the HasEdge predicate on the "pending_messages" edge.
func HasPendingMessages() predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PendingMessagesTable, PendingMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPendingMessagesWith applies the HasEdge predicate on the "pending_messages" edge with a given conditions (other predicates).
func HasPendingMessagesWith(preds ...predicate.PendingMessage) predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := newPendingMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSupplierMessages applies the HasEdge predicate on the "supplier_messages" edge.
func HasSupplierMessages() predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SupplierMessagesTable, SupplierMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierMessagesWith applies the HasEdge predicate on the "supplier_messages" edge with a given conditions (other predicates).
func HasSupplierMessagesWith(preds ...predicate.SupplierMessage) predicate.TicketState {
	return predicate.TicketState(func(s *sql.Selector) {
		step := newSupplierMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TicketState) predicate.TicketState {
	return predicate.TicketState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TicketState) predicate.TicketState {
	return predicate.TicketState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TicketState) predicate.TicketState {
	return predicate.TicketState(sql.NotPredicates(p))
}
