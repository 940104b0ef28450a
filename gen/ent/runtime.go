// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/filingwatch/regdocs-monitor/db/ent/schema"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSeq is the schema descriptor for seq field.
	documentDescSeq := documentFields[2].Descriptor()
	// document.SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	document.SeqValidator = documentDescSeq.Validators[0].(func(int) error)
	// documentDescDocumentURL is the schema descriptor for document_url field.
	documentDescDocumentURL := documentFields[3].Descriptor()
	// document.DocumentURLValidator is a validator for the "document_url" field. It is called by the builders before save.
	document.DocumentURLValidator = documentDescDocumentURL.Validators[0].(func(string) error)
	// documentDescDownloadStatus is the schema descriptor for download_status field.
	documentDescDownloadStatus := documentFields[6].Descriptor()
	// document.DefaultDownloadStatus holds the default value on creation for the download_status field.
	document.DefaultDownloadStatus = documentDescDownloadStatus.Default.(string)
	// document.DownloadStatusValidator is a validator for the "download_status" field. It is called by the builders before save.
	document.DownloadStatusValidator = documentDescDownloadStatus.Validators[0].(func(string) error)
	// documentDescExtractionStatus is the schema descriptor for extraction_status field.
	documentDescExtractionStatus := documentFields[9].Descriptor()
	// document.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	document.DefaultExtractionStatus = documentDescExtractionStatus.Default.(string)
	// document.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	document.ExtractionStatusValidator = documentDescExtractionStatus.Validators[0].(func(string) error)
	// documentDescExtractionMethod is the schema descriptor for extraction_method field.
	documentDescExtractionMethod := documentFields[10].Descriptor()
	// document.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	document.ExtractionMethodValidator = documentDescExtractionMethod.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[15].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	filingFields := schema.Filing{}.Fields()
	_ = filingFields
	// filingDescExternalID is the schema descriptor for external_id field.
	filingDescExternalID := filingFields[1].Descriptor()
	// filing.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	filing.ExternalIDValidator = filingDescExternalID.Validators[0].(func(string) error)
	// filingDescStatusScraped is the schema descriptor for status_scraped field.
	filingDescStatusScraped := filingFields[8].Descriptor()
	// filing.DefaultStatusScraped holds the default value on creation for the status_scraped field.
	filing.DefaultStatusScraped = filingDescStatusScraped.Default.(string)
	// filing.StatusScrapedValidator is a validator for the "status_scraped" field. It is called by the builders before save.
	filing.StatusScrapedValidator = filingDescStatusScraped.Validators[0].(func(string) error)
	// filingDescStatusDownloaded is the schema descriptor for status_downloaded field.
	filingDescStatusDownloaded := filingFields[9].Descriptor()
	// filing.DefaultStatusDownloaded holds the default value on creation for the status_downloaded field.
	filing.DefaultStatusDownloaded = filingDescStatusDownloaded.Default.(string)
	// filing.StatusDownloadedValidator is a validator for the "status_downloaded" field. It is called by the builders before save.
	filing.StatusDownloadedValidator = filingDescStatusDownloaded.Validators[0].(func(string) error)
	// filingDescStatusExtracted is the schema descriptor for status_extracted field.
	filingDescStatusExtracted := filingFields[10].Descriptor()
	// filing.DefaultStatusExtracted holds the default value on creation for the status_extracted field.
	filing.DefaultStatusExtracted = filingDescStatusExtracted.Default.(string)
	// filing.StatusExtractedValidator is a validator for the "status_extracted" field. It is called by the builders before save.
	filing.StatusExtractedValidator = filingDescStatusExtracted.Validators[0].(func(string) error)
	// filingDescStatusAnalyzed is the schema descriptor for status_analyzed field.
	filingDescStatusAnalyzed := filingFields[11].Descriptor()
	// filing.DefaultStatusAnalyzed holds the default value on creation for the status_analyzed field.
	filing.DefaultStatusAnalyzed = filingDescStatusAnalyzed.Default.(string)
	// filing.StatusAnalyzedValidator is a validator for the "status_analyzed" field. It is called by the builders before save.
	filing.StatusAnalyzedValidator = filingDescStatusAnalyzed.Validators[0].(func(string) error)
	// filingDescStatusNotified is the schema descriptor for status_notified field.
	filingDescStatusNotified := filingFields[12].Descriptor()
	// filing.DefaultStatusNotified holds the default value on creation for the status_notified field.
	filing.DefaultStatusNotified = filingDescStatusNotified.Default.(string)
	// filing.StatusNotifiedValidator is a validator for the "status_notified" field. It is called by the builders before save.
	filing.StatusNotifiedValidator = filingDescStatusNotified.Validators[0].(func(string) error)
	// filingDescRetryCount is the schema descriptor for retry_count field.
	filingDescRetryCount := filingFields[14].Descriptor()
	// filing.DefaultRetryCount holds the default value on creation for the retry_count field.
	filing.DefaultRetryCount = filingDescRetryCount.Default.(int)
	// filing.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	filing.RetryCountValidator = filingDescRetryCount.Validators[0].(func(int) error)
	// filingDescCreatedAt is the schema descriptor for created_at field.
	filingDescCreatedAt := filingFields[16].Descriptor()
	// filing.DefaultCreatedAt holds the default value on creation for the created_at field.
	filing.DefaultCreatedAt = filingDescCreatedAt.Default.(func() time.Time)
	// filingDescUpdatedAt is the schema descriptor for updated_at field.
	filingDescUpdatedAt := filingFields[17].Descriptor()
	// filing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	filing.DefaultUpdatedAt = filingDescUpdatedAt.Default.(func() time.Time)
	// filing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	filing.UpdateDefaultUpdatedAt = filingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// filingDescID is the schema descriptor for id field.
	filingDescID := filingFields[0].Descriptor()
	// filing.DefaultID holds the default value on creation for the id field.
	filing.DefaultID = filingDescID.Default.(func() uuid.UUID)
	runhistoryFields := schema.RunHistory{}.Fields()
	_ = runhistoryFields
	// runhistoryDescStartedAt is the schema descriptor for started_at field.
	runhistoryDescStartedAt := runhistoryFields[1].Descriptor()
	// runhistory.DefaultStartedAt holds the default value on creation for the started_at field.
	runhistory.DefaultStartedAt = runhistoryDescStartedAt.Default.(func() time.Time)
	// runhistoryDescTotalFilingsFound is the schema descriptor for total_filings_found field.
	runhistoryDescTotalFilingsFound := runhistoryFields[3].Descriptor()
	// runhistory.DefaultTotalFilingsFound holds the default value on creation for the total_filings_found field.
	runhistory.DefaultTotalFilingsFound = runhistoryDescTotalFilingsFound.Default.(int)
	// runhistoryDescNewFilings is the schema descriptor for new_filings field.
	runhistoryDescNewFilings := runhistoryFields[4].Descriptor()
	// runhistory.DefaultNewFilings holds the default value on creation for the new_filings field.
	runhistory.DefaultNewFilings = runhistoryDescNewFilings.Default.(int)
	// runhistoryDescProcessedOk is the schema descriptor for processed_ok field.
	runhistoryDescProcessedOk := runhistoryFields[5].Descriptor()
	// runhistory.DefaultProcessedOk holds the default value on creation for the processed_ok field.
	runhistory.DefaultProcessedOk = runhistoryDescProcessedOk.Default.(int)
	// runhistoryDescProcessedFailed is the schema descriptor for processed_failed field.
	runhistoryDescProcessedFailed := runhistoryFields[6].Descriptor()
	// runhistory.DefaultProcessedFailed holds the default value on creation for the processed_failed field.
	runhistory.DefaultProcessedFailed = runhistoryDescProcessedFailed.Default.(int)
	// runhistoryDescID is the schema descriptor for id field.
	runhistoryDescID := runhistoryFields[0].Descriptor()
	// runhistory.DefaultID holds the default value on creation for the id field.
	runhistory.DefaultID = runhistoryDescID.Default.(func() uuid.UUID)
}
