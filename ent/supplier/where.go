// Code generated by ent, DO NOT EDIT.

package supplier

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldName, v))
}

// DefaultEmail applies equality check predicate on the "default_email" field. It's identical to DefaultEmailEQ.
func DefaultEmail(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldDefaultEmail, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldName, v))
}

// DefaultEmailEQ applies the EQ predicate on the "default_email" field.
func DefaultEmailEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldDefaultEmail, v))
}

// DefaultEmailNEQ applies the NEQ predicate on the "default_email" field.
func DefaultEmailNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldDefaultEmail, v))
}

// DefaultEmailIn applies the In predicate on the "default_email" field.
func DefaultEmailIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldDefaultEmail, vs...))
}

// DefaultEmailNotIn applies the NotIn predicate on the "default_email" field.
func DefaultEmailNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldDefaultEmail, vs...))
}

// DefaultEmailGT applies the GT predicate on the "default_email" field.
func DefaultEmailGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldDefaultEmail, v))
}

// DefaultEmailGTE applies the GTE predicate on the "default_email" field.
func DefaultEmailGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldDefaultEmail, v))
}

// DefaultEmailLT applies the LT predicate on the "default_email" field.
func DefaultEmailLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldDefaultEmail, v))
}

// DefaultEmailLTE applies the LTE predicate on the "default_email" field.
func DefaultEmailLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldDefaultEmail, v))
}

// DefaultEmailContains applies the Contains predicate on the "default_email" field.
func DefaultEmailContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldDefaultEmail, v))
}

// DefaultEmailHasPrefix applies the HasPrefix predicate on the "default_email" field.
func DefaultEmailHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldDefaultEmail, v))
}

// DefaultEmailHasSuffix applies the HasSuffix predicate on the "default_email" field.
func DefaultEmailHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldDefaultEmail, v))
}

// DefaultEmailEqualFold applies the EqualFold predicate on the "default_email" field.
func DefaultEmailEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldDefaultEmail, v))
}

// DefaultEmailContainsFold applies the ContainsFold predicate on the "default_email" field.
func DefaultEmailContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldDefaultEmail, v))
}

// ContactsIsNil applies the IsNil predicate on the "contacts" field.
func ContactsIsNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldIsNull(FieldContacts))
}

// ContactsNotNil applies the NotNil predicate on the "contacts" field.
func ContactsNotNil() predicate.Supplier {
	return predicate.Supplier(sql.FieldNotNull(FieldContacts))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Supplier {
	return predicate.Supplier(sql.FieldContainsFold(FieldLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Supplier {
	return predicate.Supplier(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Supplier) predicate.Supplier {
	return predicate.Supplier(sql.NotPredicates(p))
}
