// Code generated by ent, DO NOT EDIT.

package ingestjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldID, id))
}

// SourceMessageID applies equality check predicate on the "source_message_id" field. It's identical to SourceMessageIDEQ.
func SourceMessageID(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldSourceMessageID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldAttempts, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldNextAttemptAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldLastError, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldClaimedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceMessageIDEQ applies the EQ predicate on the "source_message_id" field.
func SourceMessageIDEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldSourceMessageID, v))
}

// SourceMessageIDNEQ applies the NEQ predicate on the "source_message_id" field.
func SourceMessageIDNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldSourceMessageID, v))
}

// SourceMessageIDIn applies the In predicate on the "source_message_id" field.
func SourceMessageIDIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDNotIn applies the NotIn predicate on the "source_message_id" field.
func SourceMessageIDNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldSourceMessageID, vs...))
}

// SourceMessageIDGT applies the GT predicate on the "source_message_id" field.
func SourceMessageIDGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldSourceMessageID, v))
}

// SourceMessageIDGTE applies the GTE predicate on the "source_message_id" field.
func SourceMessageIDGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldSourceMessageID, v))
}

// SourceMessageIDLT applies the LT predicate on the "source_message_id" field.
func SourceMessageIDLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldSourceMessageID, v))
}

// SourceMessageIDLTE applies the LTE predicate on the "source_message_id" field.
func SourceMessageIDLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldSourceMessageID, v))
}

// SourceMessageIDContains applies the Contains predicate on the "source_message_id" field.
func SourceMessageIDContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldSourceMessageID, v))
}

// SourceMessageIDHasPrefix applies the HasPrefix predicate on the "source_message_id" field.
func SourceMessageIDHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldSourceMessageID, v))
}

// SourceMessageIDHasSuffix applies the HasSuffix predicate on the "source_message_id" field.
func SourceMessageIDHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldSourceMessageID, v))
}

// SourceMessageIDEqualFold applies the EqualFold predicate on the "source_message_id" field.
func SourceMessageIDEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldSourceMessageID, v))
}

// SourceMessageIDContainsFold applies the ContainsFold predicate on the "source_message_id" field.
func SourceMessageIDContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldSourceMessageID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldAttempts, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldNextAttemptAt, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldLastError, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IngestJob {
	return predicate.IngestJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestJob) predicate.IngestJob {
	return predicate.IngestJob(sql.NotPredicates(p))
}
