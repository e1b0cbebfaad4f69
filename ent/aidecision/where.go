// Code generated by ent, DO NOT EDIT.

package aidecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldID, id))
}

// TicketNumber applies equality check predicate on the "ticket_number" field. It's identical to TicketNumberEQ.
func TicketNumber(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldTicketNumber, v))
}

// At applies equality check predicate on the "at" field. It's identical to AtEQ.
func At(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldAt, v))
}

// DetectedLanguage applies equality check predicate on the "detected_language" field. It's identical to DetectedLanguageEQ.
func DetectedLanguage(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldDetectedLanguage, v))
}

// DetectedIntent applies equality check predicate on the "detected_intent" field. It's identical to DetectedIntentEQ.
func DetectedIntent(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldDetectedIntent, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldConfidence, v))
}

// RecommendedAction applies equality check predicate on the "recommended_action" field. It's identical to RecommendedActionEQ.
func RecommendedAction(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldRecommendedAction, v))
}

// CustomerDraft applies equality check predicate on the "customer_draft" field. It's identical to CustomerDraftEQ.
func CustomerDraft(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldCustomerDraft, v))
}

// SupplierDraft applies equality check predicate on the "supplier_draft" field. It's identical to SupplierDraftEQ.
func SupplierDraft(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldSupplierDraft, v))
}

// RequiresEscalation applies equality check predicate on the "requires_escalation" field. It's identical to RequiresEscalationEQ.
func RequiresEscalation(v bool) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldRequiresEscalation, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldSummary, v))
}

// FeedbackNotes applies equality check predicate on the "feedback_notes" field. It's identical to FeedbackNotesEQ.
func FeedbackNotes(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldFeedbackNotes, v))
}

// TicketNumberEQ applies the EQ predicate on the "ticket_number" field.
func TicketNumberEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldTicketNumber, v))
}

// TicketNumberNEQ applies the NEQ predicate on the "ticket_number" field.
func TicketNumberNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldTicketNumber, v))
}

// TicketNumberIn applies the In predicate on the "ticket_number" field.
func TicketNumberIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldTicketNumber, vs...))
}

// TicketNumberNotIn applies the NotIn predicate on the "ticket_number" field.
func TicketNumberNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldTicketNumber, vs...))
}

// TicketNumberGT applies the GT predicate on the "ticket_number" field.
func TicketNumberGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldTicketNumber, v))
}

// TicketNumberGTE applies the GTE predicate on the "ticket_number" field.
func TicketNumberGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldTicketNumber, v))
}

// TicketNumberLT applies the LT predicate on the "ticket_number" field.
func TicketNumberLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldTicketNumber, v))
}

// TicketNumberLTE applies the LTE predicate on the "ticket_number" field.
func TicketNumberLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldTicketNumber, v))
}

// TicketNumberContains applies the Contains predicate on the "ticket_number" field.
func TicketNumberContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldTicketNumber, v))
}

// TicketNumberHasPrefix applies the HasPrefix predicate on the "ticket_number" field.
func TicketNumberHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldTicketNumber, v))
}

// TicketNumberHasSuffix applies the HasSuffix predicate on the "ticket_number" field.
func TicketNumberHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldTicketNumber, v))
}

// TicketNumberEqualFold applies the EqualFold predicate on the "ticket_number" field.
func TicketNumberEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldTicketNumber, v))
}

// TicketNumberContainsFold applies the ContainsFold predicate on the "ticket_number" field.
func TicketNumberContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldTicketNumber, v))
}

// AtEQ applies the EQ predicate on the "at" field.
func AtEQ(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldAt, v))
}

// AtNEQ applies the NEQ predicate on the "at" field.
func AtNEQ(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldAt, v))
}

// AtIn applies the In predicate on the "at" field.
func AtIn(vs ...time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldAt, vs...))
}

// AtNotIn applies the NotIn predicate on the "at" field.
func AtNotIn(vs ...time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldAt, vs...))
}

// AtGT applies the GT predicate on the "at" field.
func AtGT(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldAt, v))
}

// AtGTE applies the GTE predicate on the "at" field.
func AtGTE(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldAt, v))
}

// AtLT applies the LT predicate on the "at" field.
func AtLT(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldAt, v))
}

// AtLTE applies the LTE predicate on the "at" field.
func AtLTE(v time.Time) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldAt, v))
}

// DetectedLanguageEQ applies the EQ predicate on the "detected_language" field.
func DetectedLanguageEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldDetectedLanguage, v))
}

// DetectedLanguageNEQ applies the NEQ predicate on the "detected_language" field.
func DetectedLanguageNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldDetectedLanguage, v))
}

// DetectedLanguageIn applies the In predicate on the "detected_language" field.
func DetectedLanguageIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldDetectedLanguage, vs...))
}

// DetectedLanguageNotIn applies the NotIn predicate on the "detected_language" field.
func DetectedLanguageNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldDetectedLanguage, vs...))
}

// DetectedLanguageGT applies the GT predicate on the "detected_language" field.
func DetectedLanguageGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldDetectedLanguage, v))
}

// DetectedLanguageGTE applies the GTE predicate on the "detected_language" field.
func DetectedLanguageGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldDetectedLanguage, v))
}

// DetectedLanguageLT applies the LT predicate on the "detected_language" field.
func DetectedLanguageLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldDetectedLanguage, v))
}

// DetectedLanguageLTE applies the LTE predicate on the "detected_language" field.
func DetectedLanguageLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldDetectedLanguage, v))
}

// DetectedLanguageContains applies the Contains predicate on the "detected_language" field.
func DetectedLanguageContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldDetectedLanguage, v))
}

// DetectedLanguageHasPrefix applies the HasPrefix predicate on the "detected_language" field.
func DetectedLanguageHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldDetectedLanguage, v))
}

// DetectedLanguageHasSuffix applies the HasSuffix predicate on the "detected_language" field.
func DetectedLanguageHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldDetectedLanguage, v))
}

// DetectedLanguageIsNil applies the IsNil predicate on the "detected_language" field.
func DetectedLanguageIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldDetectedLanguage))
}

// DetectedLanguageNotNil applies the NotNil predicate on the "detected_language" field.
func DetectedLanguageNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldDetectedLanguage))
}

// DetectedLanguageEqualFold applies the EqualFold predicate on the "detected_language" field.
func DetectedLanguageEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldDetectedLanguage, v))
}

// DetectedLanguageContainsFold applies the ContainsFold predicate on the "detected_language" field.
func DetectedLanguageContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldDetectedLanguage, v))
}

// DetectedIntentEQ applies the EQ predicate on the "detected_intent" field.
func DetectedIntentEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldDetectedIntent, v))
}

// DetectedIntentNEQ applies the NEQ predicate on the "detected_intent" field.
func DetectedIntentNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldDetectedIntent, v))
}

// DetectedIntentIn applies the In predicate on the "detected_intent" field.
func DetectedIntentIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldDetectedIntent, vs...))
}

// DetectedIntentNotIn applies the NotIn predicate on the "detected_intent" field.
func DetectedIntentNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldDetectedIntent, vs...))
}

// DetectedIntentGT applies the GT predicate on the "detected_intent" field.
func DetectedIntentGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldDetectedIntent, v))
}

// DetectedIntentGTE applies the GTE predicate on the "detected_intent" field.
func DetectedIntentGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldDetectedIntent, v))
}

// DetectedIntentLT applies the LT predicate on the "detected_intent" field.
func DetectedIntentLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldDetectedIntent, v))
}

// DetectedIntentLTE applies the LTE predicate on the "detected_intent" field.
func DetectedIntentLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldDetectedIntent, v))
}

// DetectedIntentContains applies the Contains predicate on the "detected_intent" field.
func DetectedIntentContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldDetectedIntent, v))
}

// DetectedIntentHasPrefix applies the HasPrefix predicate on the "detected_intent" field.
func DetectedIntentHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldDetectedIntent, v))
}

// DetectedIntentHasSuffix applies the HasSuffix predicate on the "detected_intent" field.
func DetectedIntentHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldDetectedIntent, v))
}

// DetectedIntentIsNil applies the IsNil predicate on the "detected_intent" field.
func DetectedIntentIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldDetectedIntent))
}

// DetectedIntentNotNil applies the NotNil predicate on the "detected_intent" field.
func DetectedIntentNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldDetectedIntent))
}

// DetectedIntentEqualFold applies the EqualFold predicate on the "detected_intent" field.
func DetectedIntentEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldDetectedIntent, v))
}

// DetectedIntentContainsFold applies the ContainsFold predicate on the "detected_intent" field.
func DetectedIntentContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldDetectedIntent, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldConfidence, v))
}

// RecommendedActionEQ applies the EQ predicate on the "recommended_action" field.
func RecommendedActionEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldRecommendedAction, v))
}

// RecommendedActionNEQ applies the NEQ predicate on the "recommended_action" field.
func RecommendedActionNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldRecommendedAction, v))
}

// RecommendedActionIn applies the In predicate on the "recommended_action" field.
func RecommendedActionIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldRecommendedAction, vs...))
}

// RecommendedActionNotIn applies the NotIn predicate on the "recommended_action" field.
func RecommendedActionNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldRecommendedAction, vs...))
}

// RecommendedActionGT applies the GT predicate on the "recommended_action" field.
func RecommendedActionGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldRecommendedAction, v))
}

// RecommendedActionGTE applies the GTE predicate on the "recommended_action" field.
func RecommendedActionGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldRecommendedAction, v))
}

// RecommendedActionLT applies the LT predicate on the "recommended_action" field.
func RecommendedActionLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldRecommendedAction, v))
}

// RecommendedActionLTE applies the LTE predicate on the "recommended_action" field.
func RecommendedActionLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldRecommendedAction, v))
}

// RecommendedActionContains applies the Contains predicate on the "recommended_action" field.
func RecommendedActionContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldRecommendedAction, v))
}

// RecommendedActionHasPrefix applies the HasPrefix predicate on the "recommended_action" field.
func RecommendedActionHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldRecommendedAction, v))
}

// RecommendedActionHasSuffix applies the HasSuffix predicate on the "recommended_action" field.
func RecommendedActionHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldRecommendedAction, v))
}

// RecommendedActionIsNil applies the IsNil predicate on the "recommended_action" field.
func RecommendedActionIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldRecommendedAction))
}

// RecommendedActionNotNil applies the NotNil predicate on the "recommended_action" field.
func RecommendedActionNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldRecommendedAction))
}

// RecommendedActionEqualFold applies the EqualFold predicate on the "recommended_action" field.
func RecommendedActionEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldRecommendedAction, v))
}

// RecommendedActionContainsFold applies the ContainsFold predicate on the "recommended_action" field.
func RecommendedActionContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldRecommendedAction, v))
}

// CustomerDraftEQ applies the EQ predicate on the "customer_draft" field.
func CustomerDraftEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldCustomerDraft, v))
}

// CustomerDraftNEQ applies the NEQ predicate on the "customer_draft" field.
func CustomerDraftNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldCustomerDraft, v))
}

// CustomerDraftIn applies the In predicate on the "customer_draft" field.
func CustomerDraftIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldCustomerDraft, vs...))
}

// CustomerDraftNotIn applies the NotIn predicate on the "customer_draft" field.
func CustomerDraftNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldCustomerDraft, vs...))
}

// CustomerDraftGT applies the GT predicate on the "customer_draft" field.
func CustomerDraftGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldCustomerDraft, v))
}

// CustomerDraftGTE applies the GTE predicate on the "customer_draft" field.
func CustomerDraftGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldCustomerDraft, v))
}

// CustomerDraftLT applies the LT predicate on the "customer_draft" field.
func CustomerDraftLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldCustomerDraft, v))
}

// CustomerDraftLTE applies the LTE predicate on the "customer_draft" field.
func CustomerDraftLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldCustomerDraft, v))
}

// CustomerDraftContains applies the Contains predicate on the "customer_draft" field.
func CustomerDraftContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldCustomerDraft, v))
}

// CustomerDraftHasPrefix applies the HasPrefix predicate on the "customer_draft" field.
func CustomerDraftHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldCustomerDraft, v))
}

// CustomerDraftHasSuffix applies the HasSuffix predicate on the "customer_draft" field.
func CustomerDraftHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldCustomerDraft, v))
}

// CustomerDraftIsNil applies the IsNil predicate on the "customer_draft" field.
func CustomerDraftIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldCustomerDraft))
}

// CustomerDraftNotNil applies the NotNil predicate on the "customer_draft" field.
func CustomerDraftNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldCustomerDraft))
}

// CustomerDraftEqualFold applies the EqualFold predicate on the "customer_draft" field.
func CustomerDraftEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldCustomerDraft, v))
}

// CustomerDraftContainsFold applies the ContainsFold predicate on the "customer_draft" field.
func CustomerDraftContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldCustomerDraft, v))
}

// SupplierDraftEQ applies the EQ predicate on the "supplier_draft" field.
func SupplierDraftEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldSupplierDraft, v))
}

// SupplierDraftNEQ applies the NEQ predicate on the "supplier_draft" field.
func SupplierDraftNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldSupplierDraft, v))
}

// SupplierDraftIn applies the In predicate on the "supplier_draft" field.
func SupplierDraftIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldSupplierDraft, vs...))
}

// SupplierDraftNotIn applies the NotIn predicate on the "supplier_draft" field.
func SupplierDraftNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldSupplierDraft, vs...))
}

// SupplierDraftGT applies the GT predicate on the "supplier_draft" field.
func SupplierDraftGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldSupplierDraft, v))
}

// SupplierDraftGTE applies the GTE predicate on the "supplier_draft" field.
func SupplierDraftGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldSupplierDraft, v))
}

// SupplierDraftLT applies the LT predicate on the "supplier_draft" field.
func SupplierDraftLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldSupplierDraft, v))
}

// SupplierDraftLTE applies the LTE predicate on the "supplier_draft" field.
func SupplierDraftLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldSupplierDraft, v))
}

// SupplierDraftContains applies the Contains predicate on the "supplier_draft" field.
func SupplierDraftContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldSupplierDraft, v))
}

// SupplierDraftHasPrefix applies the HasPrefix predicate on the "supplier_draft" field.
func SupplierDraftHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldSupplierDraft, v))
}

// SupplierDraftHasSuffix applies the HasSuffix predicate on the "supplier_draft" field.
func SupplierDraftHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldSupplierDraft, v))
}

// SupplierDraftIsNil applies the IsNil predicate on the "supplier_draft" field.
func SupplierDraftIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldSupplierDraft))
}

// SupplierDraftNotNil applies the NotNil predicate on the "supplier_draft" field.
func SupplierDraftNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldSupplierDraft))
}

// SupplierDraftEqualFold applies the EqualFold predicate on the "supplier_draft" field.
func SupplierDraftEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldSupplierDraft, v))
}

// SupplierDraftContainsFold applies the ContainsFold predicate on the "supplier_draft" field.
func SupplierDraftContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldSupplierDraft, v))
}

// RequiresEscalationEQ applies the EQ predicate on the "requires_escalation" field.
func RequiresEscalationEQ(v bool) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldRequiresEscalation, v))
}

// RequiresEscalationNEQ applies the NEQ predicate on the "requires_escalation" field.
func RequiresEscalationNEQ(v bool) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldRequiresEscalation, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldPhase, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldSummary, v))
}

// OperatorFeedbackEQ applies the EQ predicate on the "operator_feedback" field.
func OperatorFeedbackEQ(v OperatorFeedback) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldOperatorFeedback, v))
}

// OperatorFeedbackNEQ applies the NEQ predicate on the "operator_feedback" field.
func OperatorFeedbackNEQ(v OperatorFeedback) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldOperatorFeedback, v))
}

// OperatorFeedbackIn applies the In predicate on the "operator_feedback" field.
func OperatorFeedbackIn(vs ...OperatorFeedback) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldOperatorFeedback, vs...))
}

// OperatorFeedbackNotIn applies the NotIn predicate on the "operator_feedback" field.
func OperatorFeedbackNotIn(vs ...OperatorFeedback) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldOperatorFeedback, vs...))
}

// OperatorFeedbackIsNil applies the IsNil predicate on the "operator_feedback" field.
func OperatorFeedbackIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldOperatorFeedback))
}

// OperatorFeedbackNotNil applies the NotNil predicate on the "operator_feedback" field.
func OperatorFeedbackNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldOperatorFeedback))
}

// FeedbackNotesEQ applies the EQ predicate on the "feedback_notes" field.
func FeedbackNotesEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEQ(FieldFeedbackNotes, v))
}

// FeedbackNotesNEQ applies the NEQ predicate on the "feedback_notes" field.
func FeedbackNotesNEQ(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNEQ(FieldFeedbackNotes, v))
}

// FeedbackNotesIn applies the In predicate on the "feedback_notes" field.
func FeedbackNotesIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIn(FieldFeedbackNotes, vs...))
}

// FeedbackNotesNotIn applies the NotIn predicate on the "feedback_notes" field.
func FeedbackNotesNotIn(vs ...string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotIn(FieldFeedbackNotes, vs...))
}

// FeedbackNotesGT applies the GT predicate on the "feedback_notes" field.
func FeedbackNotesGT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGT(FieldFeedbackNotes, v))
}

// FeedbackNotesGTE applies the GTE predicate on the "feedback_notes" field.
func FeedbackNotesGTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldGTE(FieldFeedbackNotes, v))
}

// FeedbackNotesLT applies the LT predicate on the "feedback_notes" field.
func FeedbackNotesLT(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLT(FieldFeedbackNotes, v))
}

// FeedbackNotesLTE applies the LTE predicate on the "feedback_notes" field.
func FeedbackNotesLTE(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldLTE(FieldFeedbackNotes, v))
}

// FeedbackNotesContains applies the Contains predicate on the "feedback_notes" field.
func FeedbackNotesContains(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContains(FieldFeedbackNotes, v))
}

// FeedbackNotesHasPrefix applies the HasPrefix predicate on the "feedback_notes" field.
func FeedbackNotesHasPrefix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasPrefix(FieldFeedbackNotes, v))
}

// FeedbackNotesHasSuffix applies the HasSuffix predicate on the "feedback_notes" field.
func FeedbackNotesHasSuffix(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldHasSuffix(FieldFeedbackNotes, v))
}

// FeedbackNotesIsNil applies the IsNil predicate on the "feedback_notes" field.
func FeedbackNotesIsNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldIsNull(FieldFeedbackNotes))
}

// FeedbackNotesNotNil applies the NotNil predicate on the "feedback_notes" field.
func FeedbackNotesNotNil() predicate.AIDecision {
	return predicate.AIDecision(sql.FieldNotNull(FieldFeedbackNotes))
}

// FeedbackNotesEqualFold applies the EqualFold predicate on the "feedback_notes" field.
func FeedbackNotesEqualFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldEqualFold(FieldFeedbackNotes, v))
}

// FeedbackNotesContainsFold applies the ContainsFold predicate on the "feedback_notes" field.
func FeedbackNotesContainsFold(v string) predicate.AIDecision {
	return predicate.AIDecision(sql.FieldContainsFold(FieldFeedbackNotes, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.AIDecision {
	return predicate.AIDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.TicketState) predicate.AIDecision {
	return predicate.AIDecision(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AIDecision) predicate.AIDecision {
	return predicate.AIDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AIDecision) predicate.AIDecision {
	return predicate.AIDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AIDecision) predicate.AIDecision {
	return predicate.AIDecision(sql.NotPredicates(p))
}
