// Code generated by ent, DO NOT EDIT.

package auditlogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldID, id))
}

// At applies equality check predicate on the "at" field. It's identical to AtEQ.
func At(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldAt, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldActor, v))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldTicketNumber, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldEntityID, v))
}

// Field applies equality check predicate on the "field" field. It's identical to FieldEQ.
func Field(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldField, v))
}

// OldValue applies equality check predicate on the "old_value" field. It's identical to OldValueEQ.
func OldValue(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldOldValue, v))
}

// NewValue applies equality check predicate on the "new_value" field. It's identical to NewValueEQ.
func NewValue(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldNewValue, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldDescription, v))
}

// AtEQ applies the EQ predicate on the "at" field.
func AtEQ(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldAt, v))
}

// AtNEQ applies the NEQ predicate on the "at" field.
func AtNEQ(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldAt, v))
}

// AtIn applies the In predicate on the "at" field.
func AtIn(vs ...time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldAt, vs...))
}

// AtNotIn applies the NotIn predicate on the "at" field.
func AtNotIn(vs ...time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldAt, vs...))
}

// AtGT applies the GT predicate on the "at" field.
func AtGT(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldAt, v))
}

// AtGTE applies the GTE predicate on the "at" field.
func AtGTE(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldAt, v))
}

// AtLT applies the LT predicate on the "at" field.
func AtLT(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldAt, v))
}

// AtLTE applies the LTE predicate on the "at" field.
func AtLTE(v time.Time) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldAt, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldActor, v))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberIsNil applies the IsNil predicate on the "ticket_number" field.
func TicketNumberIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldTicketNumber))
}

// TicketNumberNotNil applies the NotNil predicate on the "ticket_number" field.
func TicketNumberNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldTicketNumber))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldTicketNumber, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldEntityID, v))
}

// FieldEQ applies the EQ predicate on the "field" field.
func FieldEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldField, v))
}

// FieldNEQ applies the NEQ predicate on the "field" field.
func FieldNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldField, v))
}

// FieldIn applies the In predicate on the "field" field.
func FieldIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldField, vs...))
}

// FieldNotIn applies the NotIn predicate on the "field" field.
func FieldNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldField, vs...))
}

// FieldGT applies the GT predicate on the "field" field.
func FieldGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldField, v))
}

// FieldGTE applies the GTE predicate on the "field" field.
func FieldGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldField, v))
}

// FieldLT applies the LT predicate on the "field" field.
func FieldLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldField, v))
}

// FieldLTE applies the LTE predicate on the "field" field.
func FieldLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldField, v))
}

// FieldContains applies the Contains predicate on the "field" field.
func FieldContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldField, v))
}

// FieldHasPrefix applies the HasPrefix predicate on the "field" field.
func FieldHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldField, v))
}

// FieldHasSuffix applies the HasSuffix predicate on the "field" field.
func FieldHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldField, v))
}

// FieldIsNil applies the IsNil predicate on the "field" field.
func FieldIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldField))
}

// FieldNotNil applies the NotNil predicate on the "field" field.
func FieldNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldField))
}

// FieldEqualFold applies the EqualFold predicate on the "field" field.
func FieldEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldField, v))
}

// FieldContainsFold applies the ContainsFold predicate on the "field" field.
func FieldContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldField, v))
}

// OldValueEQ applies the EQ predicate on the "old_value" field.
func OldValueEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldOldValue, v))
}

// OldValueNEQ applies the NEQ predicate on the "old_value" field.
func OldValueNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldOldValue, v))
}

// OldValueIn applies the In predicate on the "old_value" field.
func OldValueIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldOldValue, vs...))
}

// OldValueNotIn applies the NotIn predicate on the "old_value" field.
func OldValueNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldOldValue, vs...))
}

// OldValueGT applies the GT predicate on the "old_value" field.
func OldValueGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldOldValue, v))
}

// OldValueGTE applies the GTE predicate on the "old_value" field.
func OldValueGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldOldValue, v))
}

// OldValueLT applies the LT predicate on the "old_value" field.
func OldValueLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldOldValue, v))
}

// OldValueLTE applies the LTE predicate on the "old_value" field.
func OldValueLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldOldValue, v))
}

// OldValueContains applies the Contains predicate on the "old_value" field.
func OldValueContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldOldValue, v))
}

// OldValueHasPrefix applies the HasPrefix predicate on the "old_value" field.
func OldValueHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldOldValue, v))
}

// OldValueHasSuffix applies the HasSuffix predicate on the "old_value" field.
func OldValueHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldOldValue, v))
}

// OldValueIsNil applies the IsNil predicate on the "old_value" field.
func OldValueIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldOldValue))
}

// OldValueNotNil applies the NotNil predicate on the "old_value" field.
func OldValueNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldOldValue))
}

// OldValueEqualFold applies the EqualFold predicate on the "old_value" field.
func OldValueEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldOldValue, v))
}

// OldValueContainsFold applies the ContainsFold predicate on the "old_value" field.
func OldValueContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldOldValue, v))
}

// NewValueEQ applies the EQ predicate on the "new_value" field.
func NewValueEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldNewValue, v))
}

// NewValueNEQ applies the NEQ predicate on the "new_value" field.
func NewValueNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldNewValue, v))
}

// NewValueIn applies the In predicate on the "new_value" field.
func NewValueIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldNewValue, vs...))
}

// NewValueNotIn applies the NotIn predicate on the "new_value" field.
func NewValueNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldNewValue, vs...))
}

// NewValueGT applies the GT predicate on the "new_value" field.
func NewValueGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldNewValue, v))
}

// NewValueGTE applies the GTE predicate on the "new_value" field.
func NewValueGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldNewValue, v))
}

// NewValueLT applies the LT predicate on the "new_value" field.
func NewValueLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldNewValue, v))
}

// NewValueLTE applies the LTE predicate on the "new_value" field.
func NewValueLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldNewValue, v))
}

// NewValueContains applies the Contains predicate on the "new_value" field.
func NewValueContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldNewValue, v))
}

// NewValueHasPrefix applies the HasPrefix predicate on the "new_value" field.
func NewValueHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldNewValue, v))
}

// NewValueHasSuffix applies the HasSuffix predicate on the "new_value" field.
func NewValueHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldNewValue, v))
}

// NewValueIsNil applies the IsNil predicate on the "new_value" field.
func NewValueIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldNewValue))
}

// NewValueNotNil applies the NotNil predicate on the "new_value" field.
func NewValueNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldNewValue))
}

// NewValueEqualFold applies the EqualFold predicate on the "new_value" field.
func NewValueEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldNewValue, v))
}

// NewValueContainsFold applies the ContainsFold predicate on the "new_value" field.
func NewValueContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldNewValue, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditLogEntry) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditLogEntry) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditLogEntry) predicate.AuditLogEntry {
	return predicate.AuditLogEntry(sql.NotPredicates(p))
}
