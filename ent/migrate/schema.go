// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiDecisionsColumns holds the columns for the "ai_decisions" table.
	AiDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "at", Type: field.TypeTime},
		{Name: "detected_language", Type: field.TypeString, Nullable: true},
		{Name: "detected_intent", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "recommended_action", Type: field.TypeString, Nullable: true},
		{Name: "customer_draft", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "supplier_draft", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "requires_escalation", Type: field.TypeBool, Default: false},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"shadow", "assisted", "autonomous"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "operator_feedback", Type: field.TypeEnum, Nullable: true, Enums: []string{"correct", "incorrect", "partial"}},
		{Name: "feedback_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ticket_number", Type: field.TypeString},
	}
	// AiDecisionsTable holds the schema information for the "ai_decisions" table.
	AiDecisionsTable = &schema.Table{
		Name:       "ai_decisions",
		Columns:    AiDecisionsColumns,
		PrimaryKey: []*schema.Column{AiDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ai_decisions_ticket_states_decisions",
				Columns:    []*schema.Column{AiDecisionsColumns[13]},
				RefColumns: []*schema.Column{TicketStatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "aidecision_ticket_number_at",
				Unique:  false,
				Columns: []*schema.Column{AiDecisionsColumns[13], AiDecisionsColumns[1]},
			},
		},
	}
	// AuditLogEntriesColumns holds the columns for the "audit_log_entries" table.
	AuditLogEntriesColumns = []*schema.Column{
		{Name: "audit_entry_id", Type: field.TypeString, Unique: true},
		{Name: "at", Type: field.TypeTime},
		{Name: "actor", Type: field.TypeString},
		{Name: "ticket_number", Type: field.TypeString, Nullable: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "field", Type: field.TypeString, Nullable: true},
		{Name: "old_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "new_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AuditLogEntriesTable holds the schema information for the "audit_log_entries" table.
	AuditLogEntriesTable = &schema.Table{
		Name:       "audit_log_entries",
		Columns:    AuditLogEntriesColumns,
		PrimaryKey: []*schema.Column{AuditLogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlogentry_ticket_number_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogEntriesColumns[3], AuditLogEntriesColumns[1]},
			},
			{
				Name:    "auditlogentry_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogEntriesColumns[4]},
			},
		},
	}
	// IngestJobsColumns holds the columns for the "ingest_jobs" table.
	IngestJobsColumns = []*schema.Column{
		{Name: "ingest_job_id", Type: field.TypeString, Unique: true},
		{Name: "source_message_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "failed", "exhausted", "done"}, Default: "pending"},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IngestJobsTable holds the schema information for the "ingest_jobs" table.
	IngestJobsTable = &schema.Table{
		Name:       "ingest_jobs",
		Columns:    IngestJobsColumns,
		PrimaryKey: []*schema.Column{IngestJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[2], IngestJobsColumns[5]},
			},
			{
				Name:    "ingestjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[2], IngestJobsColumns[8]},
			},
		},
	}
	// PendingMessagesColumns holds the columns for the "pending_messages" table.
	PendingMessagesColumns = []*schema.Column{
		{Name: "pending_message_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"customer", "supplier", "internal"}},
		{Name: "to", Type: field.TypeString, Nullable: true},
		{Name: "cc", Type: field.TypeJSON, Nullable: true},
		{Name: "bcc", Type: field.TypeJSON, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "decision_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "sent", "failed"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "upstream_message_id", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "ticket_number", Type: field.TypeString},
	}
	// PendingMessagesTable holds the schema information for the "pending_messages" table.
	PendingMessagesTable = &schema.Table{
		Name:       "pending_messages",
		Columns:    PendingMessagesColumns,
		PrimaryKey: []*schema.Column{PendingMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pending_messages_ticket_states_pending_messages",
				Columns:    []*schema.Column{PendingMessagesColumns[20]},
				RefColumns: []*schema.Column{TicketStatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pendingmessage_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PendingMessagesColumns[10], PendingMessagesColumns[14]},
			},
			{
				Name:    "pendingmessage_ticket_number_status",
				Unique:  false,
				Columns: []*schema.Column{PendingMessagesColumns[20], PendingMessagesColumns[10]},
			},
			{
				Name:    "pendingmessage_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{PendingMessagesColumns[10], PendingMessagesColumns[13]},
			},
		},
	}
	// ProcessedEmailsColumns holds the columns for the "processed_emails" table.
	ProcessedEmailsColumns = []*schema.Column{
		{Name: "processed_email_id", Type: field.TypeString, Unique: true},
		{Name: "source_message_id", Type: field.TypeString, Unique: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "from_address", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime, Nullable: true},
		{Name: "ticket_number", Type: field.TypeString, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ProcessedEmailsTable holds the schema information for the "processed_emails" table.
	ProcessedEmailsTable = &schema.Table{
		Name:       "processed_emails",
		Columns:    ProcessedEmailsColumns,
		PrimaryKey: []*schema.Column{ProcessedEmailsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedemail_ticket_number",
				Unique:  false,
				Columns: []*schema.Column{ProcessedEmailsColumns[6]},
			},
			{
				Name:    "processedemail_success_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedEmailsColumns[7], ProcessedEmailsColumns[9]},
			},
		},
	}
	// SuppliersColumns holds the columns for the "suppliers" table.
	SuppliersColumns = []*schema.Column{
		{Name: "supplier_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "default_email", Type: field.TypeString},
		{Name: "contacts", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SuppliersTable holds the schema information for the "suppliers" table.
	SuppliersTable = &schema.Table{
		Name:       "suppliers",
		Columns:    SuppliersColumns,
		PrimaryKey: []*schema.Column{SuppliersColumns[0]},
	}
	// SupplierMessagesColumns holds the columns for the "supplier_messages" table.
	SupplierMessagesColumns = []*schema.Column{
		{Name: "supplier_message_id", Type: field.TypeString, Unique: true},
		{Name: "supplier_email", Type: field.TypeString},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "reminder_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_received", Type: field.TypeBool, Default: false},
		{Name: "next_check_at", Type: field.TypeTime},
		{Name: "ticket_number", Type: field.TypeString},
	}
	// SupplierMessagesTable holds the schema information for the "supplier_messages" table.
	SupplierMessagesTable = &schema.Table{
		Name:       "supplier_messages",
		Columns:    SupplierMessagesColumns,
		PrimaryKey: []*schema.Column{SupplierMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "supplier_messages_ticket_states_supplier_messages",
				Columns:    []*schema.Column{SupplierMessagesColumns[6]},
				RefColumns: []*schema.Column{TicketStatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suppliermessage_response_received_next_check_at",
				Unique:  false,
				Columns: []*schema.Column{SupplierMessagesColumns[4], SupplierMessagesColumns[5]},
			},
			{
				Name:    "suppliermessage_supplier_email_ticket_number",
				Unique:  false,
				Columns: []*schema.Column{SupplierMessagesColumns[1], SupplierMessagesColumns[6]},
			},
		},
	}
	// TicketMessagesColumns holds the columns for the "ticket_messages" table.
	TicketMessagesColumns = []*schema.Column{
		{Name: "ticket_message_id", Type: field.TypeString, Unique: true},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound", "internal"}},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"customer", "supplier", "agent", "system"}, Default: "customer"},
		{Name: "sender", Type: field.TypeString, Nullable: true},
		{Name: "recipient", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "source_message_id", Type: field.TypeString, Nullable: true},
		{Name: "upstream_message_id", Type: field.TypeString, Nullable: true},
		{Name: "at", Type: field.TypeTime},
		{Name: "ticket_number", Type: field.TypeString},
	}
	// TicketMessagesTable holds the schema information for the "ticket_messages" table.
	TicketMessagesTable = &schema.Table{
		Name:       "ticket_messages",
		Columns:    TicketMessagesColumns,
		PrimaryKey: []*schema.Column{TicketMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ticket_messages_ticket_states_messages",
				Columns:    []*schema.Column{TicketMessagesColumns[10]},
				RefColumns: []*schema.Column{TicketStatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ticketmessage_ticket_number_at",
				Unique:  false,
				Columns: []*schema.Column{TicketMessagesColumns[10], TicketMessagesColumns[9]},
			},
			{
				Name:    "ticketmessage_source_message_id",
				Unique:  false,
				Columns: []*schema.Column{TicketMessagesColumns[7]},
			},
		},
	}
	// TicketStatesColumns holds the columns for the "ticket_states" table.
	TicketStatesColumns = []*schema.Column{
		{Name: "ticket_number", Type: field.TypeString, Unique: true},
		{Name: "ticket_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "awaiting_customer", "awaiting_supplier", "escalated", "imported", "closed"}, Default: "new"},
		{Name: "custom_status_id", Type: field.TypeInt, Nullable: true},
		{Name: "customer_email", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "order_number", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "purchase_order_number", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "supplier_email", Type: field.TypeString, Nullable: true},
		{Name: "supplier_ticket_references", Type: field.TypeJSON, Nullable: true},
		{Name: "escalated", Type: field.TypeBool, Default: false},
		{Name: "escalation_reason", Type: field.TypeString, Nullable: true},
		{Name: "escalation_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "gmail_thread_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TicketStatesTable holds the schema information for the "ticket_states" table.
	TicketStatesTable = &schema.Table{
		Name:       "ticket_states",
		Columns:    TicketStatesColumns,
		PrimaryKey: []*schema.Column{TicketStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ticketstate_status",
				Unique:  false,
				Columns: []*schema.Column{TicketStatesColumns[2]},
			},
			{
				Name:    "ticketstate_customer_email",
				Unique:  false,
				Columns: []*schema.Column{TicketStatesColumns[4]},
			},
			{
				Name:    "ticketstate_escalated",
				Unique:  false,
				Columns: []*schema.Column{TicketStatesColumns[10]},
			},
			{
				Name:    "ticketstate_status_last_seen_at",
				Unique:  false,
				Columns: []*schema.Column{TicketStatesColumns[2], TicketStatesColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiDecisionsTable,
		AuditLogEntriesTable,
		IngestJobsTable,
		PendingMessagesTable,
		ProcessedEmailsTable,
		SuppliersTable,
		SupplierMessagesTable,
		TicketMessagesTable,
		TicketStatesTable,
	}
)

func init() {
	AiDecisionsTable.ForeignKeys[0].RefTable = TicketStatesTable
	PendingMessagesTable.ForeignKeys[0].RefTable = TicketStatesTable
	SupplierMessagesTable.ForeignKeys[0].RefTable = TicketStatesTable
	TicketMessagesTable.ForeignKeys[0].RefTable = TicketStatesTable
}
