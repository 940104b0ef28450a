// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "document_url", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString, Nullable: true},
		{Name: "local_path", Type: field.TypeString, Nullable: true},
		{Name: "download_status", Type: field.TypeString, Default: "pending"},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "extraction_status", Type: field.TypeString, Default: "pending"},
		{Name: "extraction_method", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "char_count", Type: field.TypeInt, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "filing_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_filings_documents",
				Columns:    []*schema.Column{DocumentsColumns[15]},
				RefColumns: []*schema.Column{FilingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_filing_id_seq",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[15], DocumentsColumns[1]},
			},
			{
				Name:    "document_filing_id_download_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[15], DocumentsColumns[5]},
			},
		},
	}
	// FilingsColumns holds the columns for the "filings" table.
	FilingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "applicant", Type: field.TypeString, Nullable: true},
		{Name: "filing_type", Type: field.TypeString, Nullable: true},
		{Name: "proceeding_number", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "status_scraped", Type: field.TypeString, Default: "pending"},
		{Name: "status_downloaded", Type: field.TypeString, Default: "pending"},
		{Name: "status_extracted", Type: field.TypeString, Default: "pending"},
		{Name: "status_analyzed", Type: field.TypeString, Default: "pending"},
		{Name: "status_notified", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "analysis_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FilingsTable holds the schema information for the "filings" table.
	FilingsTable = &schema.Table{
		Name:       "filings",
		Columns:    FilingsColumns,
		PrimaryKey: []*schema.Column{FilingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filing_external_id",
				Unique:  true,
				Columns: []*schema.Column{FilingsColumns[1]},
			},
			{
				Name:    "filing_proceeding_number",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[5]},
			},
			{
				Name:    "filing_status_downloaded_retry_count",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[9], FilingsColumns[14]},
			},
			{
				Name:    "filing_status_extracted_retry_count",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[10], FilingsColumns[14]},
			},
			{
				Name:    "filing_status_analyzed_retry_count",
				Unique:  false,
				Columns: []*schema.Column{FilingsColumns[11], FilingsColumns[14]},
			},
		},
	}
	// RunHistoryColumns holds the columns for the "run_history" table.
	RunHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_filings_found", Type: field.TypeInt, Default: 0},
		{Name: "new_filings", Type: field.TypeInt, Default: 0},
		{Name: "processed_ok", Type: field.TypeInt, Default: 0},
		{Name: "processed_failed", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
	}
	// RunHistoryTable holds the schema information for the "run_history" table.
	RunHistoryTable = &schema.Table{
		Name:       "run_history",
		Columns:    RunHistoryColumns,
		PrimaryKey: []*schema.Column{RunHistoryColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		FilingsTable,
		RunHistoryTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = FilingsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	FilingsTable.Annotation = &entsql.Annotation{
		Table: "filings",
	}
	RunHistoryTable.Annotation = &entsql.Annotation{
		Table: "run_history",
	}
}
