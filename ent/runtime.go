// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/ent/schema"
	"github.com/shipdesk/shipdesk/ent/supplier"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aidecisionFields := schema.AIDecision{}.Fields()
	_ = aidecisionFields
	// aidecisionDescAt is the schema descriptor for at field.
	aidecisionDescAt := aidecisionFields[2].Descriptor()
	// aidecision.DefaultAt holds the default value on creation for the at field.
	aidecision.DefaultAt = aidecisionDescAt.Default.(func() time.Time)
	// aidecisionDescRequiresEscalation is the schema descriptor for requires_escalation field.
	aidecisionDescRequiresEscalation := aidecisionFields[9].Descriptor()
	// aidecision.DefaultRequiresEscalation holds the default value on creation for the requires_escalation field.
	aidecision.DefaultRequiresEscalation = aidecisionDescRequiresEscalation.Default.(bool)
	auditlogentryFields := schema.AuditLogEntry{}.Fields()
	_ = auditlogentryFields
	// auditlogentryDescAt is the schema descriptor for at field.
	auditlogentryDescAt := auditlogentryFields[1].Descriptor()
	// auditlogentry.DefaultAt holds the default value on creation for the at field.
	auditlogentry.DefaultAt = auditlogentryDescAt.Default.(func() time.Time)
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescAttempts is the schema descriptor for attempts field.
	ingestjobDescAttempts := ingestjobFields[4].Descriptor()
	// ingestjob.DefaultAttempts holds the default value on creation for the attempts field.
	ingestjob.DefaultAttempts = ingestjobDescAttempts.Default.(int)
	// ingestjobDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	ingestjobDescNextAttemptAt := ingestjobFields[5].Descriptor()
	// ingestjob.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	ingestjob.DefaultNextAttemptAt = ingestjobDescNextAttemptAt.Default.(func() time.Time)
	// ingestjobDescCreatedAt is the schema descriptor for created_at field.
	ingestjobDescCreatedAt := ingestjobFields[8].Descriptor()
	// ingestjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestjob.DefaultCreatedAt = ingestjobDescCreatedAt.Default.(func() time.Time)
	// ingestjobDescUpdatedAt is the schema descriptor for updated_at field.
	ingestjobDescUpdatedAt := ingestjobFields[9].Descriptor()
	// ingestjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingestjob.DefaultUpdatedAt = ingestjobDescUpdatedAt.Default.(func() time.Time)
	// ingestjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingestjob.UpdateDefaultUpdatedAt = ingestjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	pendingmessageFields := schema.PendingMessage{}.Fields()
	_ = pendingmessageFields
	// pendingmessageDescConfidence is the schema descriptor for confidence field.
	pendingmessageDescConfidence := pendingmessageFields[9].Descriptor()
	// pendingmessage.DefaultConfidence holds the default value on creation for the confidence field.
	pendingmessage.DefaultConfidence = pendingmessageDescConfidence.Default.(float64)
	// pendingmessageDescRetryCount is the schema descriptor for retry_count field.
	pendingmessageDescRetryCount := pendingmessageFields[12].Descriptor()
	// pendingmessage.DefaultRetryCount holds the default value on creation for the retry_count field.
	pendingmessage.DefaultRetryCount = pendingmessageDescRetryCount.Default.(int)
	// pendingmessageDescCreatedAt is the schema descriptor for created_at field.
	pendingmessageDescCreatedAt := pendingmessageFields[15].Descriptor()
	// pendingmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingmessage.DefaultCreatedAt = pendingmessageDescCreatedAt.Default.(func() time.Time)
	processedemailFields := schema.ProcessedEmail{}.Fields()
	_ = processedemailFields
	// processedemailDescSuccess is the schema descriptor for success field.
	processedemailDescSuccess := processedemailFields[7].Descriptor()
	// processedemail.DefaultSuccess holds the default value on creation for the success field.
	processedemail.DefaultSuccess = processedemailDescSuccess.Default.(bool)
	// processedemailDescProcessedAt is the schema descriptor for processed_at field.
	processedemailDescProcessedAt := processedemailFields[9].Descriptor()
	// processedemail.DefaultProcessedAt holds the default value on creation for the processed_at field.
	processedemail.DefaultProcessedAt = processedemailDescProcessedAt.Default.(func() time.Time)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescLanguage is the schema descriptor for language field.
	supplierDescLanguage := supplierFields[4].Descriptor()
	// supplier.DefaultLanguage holds the default value on creation for the language field.
	supplier.DefaultLanguage = supplierDescLanguage.Default.(string)
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[5].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	suppliermessageFields := schema.SupplierMessage{}.Fields()
	_ = suppliermessageFields
	// suppliermessageDescSentAt is the schema descriptor for sent_at field.
	suppliermessageDescSentAt := suppliermessageFields[3].Descriptor()
	// suppliermessage.DefaultSentAt holds the default value on creation for the sent_at field.
	suppliermessage.DefaultSentAt = suppliermessageDescSentAt.Default.(func() time.Time)
	// suppliermessageDescResponseReceived is the schema descriptor for response_received field.
	suppliermessageDescResponseReceived := suppliermessageFields[5].Descriptor()
	// suppliermessage.DefaultResponseReceived holds the default value on creation for the response_received field.
	suppliermessage.DefaultResponseReceived = suppliermessageDescResponseReceived.Default.(bool)
	ticketmessageFields := schema.TicketMessage{}.Fields()
	_ = ticketmessageFields
	// ticketmessageDescAt is the schema descriptor for at field.
	ticketmessageDescAt := ticketmessageFields[10].Descriptor()
	// ticketmessage.DefaultAt holds the default value on creation for the at field.
	ticketmessage.DefaultAt = ticketmessageDescAt.Default.(func() time.Time)
	ticketstateFields := schema.TicketState{}.Fields()
	_ = ticketstateFields
	// ticketstateDescEscalated is the schema descriptor for escalated field.
	ticketstateDescEscalated := ticketstateFields[10].Descriptor()
	// ticketstate.DefaultEscalated holds the default value on creation for the escalated field.
	ticketstate.DefaultEscalated = ticketstateDescEscalated.Default.(bool)
	// ticketstateDescLastSeenAt is the schema descriptor for last_seen_at field.
	ticketstateDescLastSeenAt := ticketstateFields[13].Descriptor()
	// ticketstate.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	ticketstate.DefaultLastSeenAt = ticketstateDescLastSeenAt.Default.(func() time.Time)
	// ticketstateDescCreatedAt is the schema descriptor for created_at field.
	ticketstateDescCreatedAt := ticketstateFields[15].Descriptor()
	// ticketstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	ticketstate.DefaultCreatedAt = ticketstateDescCreatedAt.Default.(func() time.Time)
}
