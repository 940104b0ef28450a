// Code generated by ent, DO NOT EDIT.

package filing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldExternalID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldDate, v))
}

// Applicant applies equality check predicate on the "applicant" field. It's identical to ApplicantEQ.
func Applicant(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldApplicant, v))
}

// FilingType applies equality check predicate on the "filing_type" field. It's identical to FilingTypeEQ.
func FilingType(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingType, v))
}

// ProceedingNumber applies equality check predicate on the "proceeding_number" field. It's identical to ProceedingNumberEQ.
func ProceedingNumber(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldProceedingNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldURL, v))
}

// StatusScraped applies equality check predicate on the "status_scraped" field. It's identical to StatusScrapedEQ.
func StatusScraped(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusScraped, v))
}

// StatusDownloaded applies equality check predicate on the "status_downloaded" field. It's identical to StatusDownloadedEQ.
func StatusDownloaded(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusDownloaded, v))
}

// StatusExtracted applies equality check predicate on the "status_extracted" field. It's identical to StatusExtractedEQ.
func StatusExtracted(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusExtracted, v))
}

// StatusAnalyzed applies equality check predicate on the "status_analyzed" field. It's identical to StatusAnalyzedEQ.
func StatusAnalyzed(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusAnalyzed, v))
}

// StatusNotified applies equality check predicate on the "status_notified" field. It's identical to StatusNotifiedEQ.
func StatusNotified(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusNotified, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldRetryCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldExternalID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldDate, v))
}

// DateIsNil applies the IsNil predicate on the "date" field.
func DateIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldDate))
}

// DateNotNil applies the NotNil predicate on the "date" field.
func DateNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldDate))
}

// ApplicantEQ applies the EQ predicate on the "applicant" field.
func ApplicantEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldApplicant, v))
}

// ApplicantNEQ applies the NEQ predicate on the "applicant" field.
func ApplicantNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldApplicant, v))
}

// ApplicantIn applies the In predicate on the "applicant" field.
func ApplicantIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldApplicant, vs...))
}

// ApplicantNotIn applies the NotIn predicate on the "applicant" field.
func ApplicantNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldApplicant, vs...))
}

// ApplicantGT applies the GT predicate on the "applicant" field.
func ApplicantGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldApplicant, v))
}

// ApplicantGTE applies the GTE predicate on the "applicant" field.
func ApplicantGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldApplicant, v))
}

// ApplicantLT applies the LT predicate on the "applicant" field.
func ApplicantLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldApplicant, v))
}

// ApplicantLTE applies the LTE predicate on the "applicant" field.
func ApplicantLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldApplicant, v))
}

// ApplicantContains applies the Contains predicate on the "applicant" field.
func ApplicantContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldApplicant, v))
}

// ApplicantHasPrefix applies the HasPrefix predicate on the "applicant" field.
func ApplicantHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldApplicant, v))
}

// ApplicantHasSuffix applies the HasSuffix predicate on the "applicant" field.
func ApplicantHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldApplicant, v))
}

// ApplicantIsNil applies the IsNil predicate on the "applicant" field.
func ApplicantIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldApplicant))
}

// ApplicantNotNil applies the NotNil predicate on the "applicant" field.
func ApplicantNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldApplicant))
}

// ApplicantEqualFold applies the EqualFold predicate on the "applicant" field.
func ApplicantEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldApplicant, v))
}

// ApplicantContainsFold applies the ContainsFold predicate on the "applicant" field.
func ApplicantContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldApplicant, v))
}

// FilingTypeEQ applies the EQ predicate on the "filing_type" field.
func FilingTypeEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldFilingType, v))
}

// FilingTypeNEQ applies the NEQ predicate on the "filing_type" field.
func FilingTypeNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldFilingType, v))
}

// FilingTypeIn applies the In predicate on the "filing_type" field.
func FilingTypeIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldFilingType, vs...))
}

// FilingTypeNotIn applies the NotIn predicate on the "filing_type" field.
func FilingTypeNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldFilingType, vs...))
}

// FilingTypeGT applies the GT predicate on the "filing_type" field.
func FilingTypeGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldFilingType, v))
}

// FilingTypeGTE applies the GTE predicate on the "filing_type" field.
func FilingTypeGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldFilingType, v))
}

// FilingTypeLT applies the LT predicate on the "filing_type" field.
func FilingTypeLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldFilingType, v))
}

// FilingTypeLTE applies the LTE predicate on the "filing_type" field.
func FilingTypeLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldFilingType, v))
}

// FilingTypeContains applies the Contains predicate on the "filing_type" field.
func FilingTypeContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldFilingType, v))
}

// FilingTypeHasPrefix applies the HasPrefix predicate on the "filing_type" field.
func FilingTypeHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldFilingType, v))
}

// FilingTypeHasSuffix applies the HasSuffix predicate on the "filing_type" field.
func FilingTypeHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldFilingType, v))
}

// FilingTypeIsNil applies the IsNil predicate on the "filing_type" field.
func FilingTypeIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldFilingType))
}

// FilingTypeNotNil applies the NotNil predicate on the "filing_type" field.
func FilingTypeNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldFilingType))
}

// FilingTypeEqualFold applies the EqualFold predicate on the "filing_type" field.
func FilingTypeEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldFilingType, v))
}

// FilingTypeContainsFold applies the ContainsFold predicate on the "filing_type" field.
func FilingTypeContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldFilingType, v))
}

// ProceedingNumberEQ applies the EQ predicate on the "proceeding_number" field.
func ProceedingNumberEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldProceedingNumber, v))
}

// ProceedingNumberNEQ applies the NEQ predicate on the "proceeding_number" field.
func ProceedingNumberNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldProceedingNumber, v))
}

// ProceedingNumberIn applies the In predicate on the "proceeding_number" field.
func ProceedingNumberIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldProceedingNumber, vs...))
}

// ProceedingNumberNotIn applies the NotIn predicate on the "proceeding_number" field.
func ProceedingNumberNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldProceedingNumber, vs...))
}

// ProceedingNumberGT applies the GT predicate on the "proceeding_number" field.
func ProceedingNumberGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldProceedingNumber, v))
}

// ProceedingNumberGTE applies the GTE predicate on the "proceeding_number" field.
func ProceedingNumberGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldProceedingNumber, v))
}

// ProceedingNumberLT applies the LT predicate on the "proceeding_number" field.
func ProceedingNumberLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldProceedingNumber, v))
}

// ProceedingNumberLTE applies the LTE predicate on the "proceeding_number" field.
func ProceedingNumberLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldProceedingNumber, v))
}

// ProceedingNumberContains applies the Contains predicate on the "proceeding_number" field.
func ProceedingNumberContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldProceedingNumber, v))
}

// ProceedingNumberHasPrefix applies the HasPrefix predicate on the "proceeding_number" field.
func ProceedingNumberHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldProceedingNumber, v))
}

// ProceedingNumberHasSuffix applies the HasSuffix predicate on the "proceeding_number" field.
func ProceedingNumberHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldProceedingNumber, v))
}

// ProceedingNumberIsNil applies the IsNil predicate on the "proceeding_number" field.
func ProceedingNumberIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldProceedingNumber))
}

// ProceedingNumberNotNil applies the NotNil predicate on the "proceeding_number" field.
func ProceedingNumberNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldProceedingNumber))
}

// ProceedingNumberEqualFold applies the EqualFold predicate on the "proceeding_number" field.
func ProceedingNumberEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldProceedingNumber, v))
}

// ProceedingNumberContainsFold applies the ContainsFold predicate on the "proceeding_number" field.
func ProceedingNumberContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldProceedingNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldURL, v))
}

// StatusScrapedEQ applies the EQ predicate on the "status_scraped" field.
func StatusScrapedEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusScraped, v))
}

// StatusScrapedNEQ applies the NEQ predicate on the "status_scraped" field.
func StatusScrapedNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStatusScraped, v))
}

// StatusScrapedIn applies the In predicate on the "status_scraped" field.
func StatusScrapedIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStatusScraped, vs...))
}

// StatusScrapedNotIn applies the NotIn predicate on the "status_scraped" field.
func StatusScrapedNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStatusScraped, vs...))
}

// StatusScrapedGT applies the GT predicate on the "status_scraped" field.
func StatusScrapedGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStatusScraped, v))
}

// StatusScrapedGTE applies the GTE predicate on the "status_scraped" field.
func StatusScrapedGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStatusScraped, v))
}

// StatusScrapedLT applies the LT predicate on the "status_scraped" field.
func StatusScrapedLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStatusScraped, v))
}

// StatusScrapedLTE applies the LTE predicate on the "status_scraped" field.
func StatusScrapedLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStatusScraped, v))
}

// StatusScrapedContains applies the Contains predicate on the "status_scraped" field.
func StatusScrapedContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStatusScraped, v))
}

// StatusScrapedHasPrefix applies the HasPrefix predicate on the "status_scraped" field.
func StatusScrapedHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStatusScraped, v))
}

// StatusScrapedHasSuffix applies the HasSuffix predicate on the "status_scraped" field.
func StatusScrapedHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStatusScraped, v))
}

// StatusScrapedEqualFold applies the EqualFold predicate on the "status_scraped" field.
func StatusScrapedEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStatusScraped, v))
}

// StatusScrapedContainsFold applies the ContainsFold predicate on the "status_scraped" field.
func StatusScrapedContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStatusScraped, v))
}

// StatusDownloadedEQ applies the EQ predicate on the "status_downloaded" field.
func StatusDownloadedEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusDownloaded, v))
}

// StatusDownloadedNEQ applies the NEQ predicate on the "status_downloaded" field.
func StatusDownloadedNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStatusDownloaded, v))
}

// StatusDownloadedIn applies the In predicate on the "status_downloaded" field.
func StatusDownloadedIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStatusDownloaded, vs...))
}

// StatusDownloadedNotIn applies the NotIn predicate on the "status_downloaded" field.
func StatusDownloadedNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStatusDownloaded, vs...))
}

// StatusDownloadedGT applies the GT predicate on the "status_downloaded" field.
func StatusDownloadedGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStatusDownloaded, v))
}

// StatusDownloadedGTE applies the GTE predicate on the "status_downloaded" field.
func StatusDownloadedGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStatusDownloaded, v))
}

// StatusDownloadedLT applies the LT predicate on the "status_downloaded" field.
func StatusDownloadedLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStatusDownloaded, v))
}

// StatusDownloadedLTE applies the LTE predicate on the "status_downloaded" field.
func StatusDownloadedLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStatusDownloaded, v))
}

// StatusDownloadedContains applies the Contains predicate on the "status_downloaded" field.
func StatusDownloadedContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStatusDownloaded, v))
}

// StatusDownloadedHasPrefix applies the HasPrefix predicate on the "status_downloaded" field.
func StatusDownloadedHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStatusDownloaded, v))
}

// StatusDownloadedHasSuffix applies the HasSuffix predicate on the "status_downloaded" field.
func StatusDownloadedHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStatusDownloaded, v))
}

// StatusDownloadedEqualFold applies the EqualFold predicate on the "status_downloaded" field.
func StatusDownloadedEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStatusDownloaded, v))
}

// StatusDownloadedContainsFold applies the ContainsFold predicate on the "status_downloaded" field.
func StatusDownloadedContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStatusDownloaded, v))
}

// StatusExtractedEQ applies the EQ predicate on the "status_extracted" field.
func StatusExtractedEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusExtracted, v))
}

// StatusExtractedNEQ applies the NEQ predicate on the "status_extracted" field.
func StatusExtractedNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStatusExtracted, v))
}

// StatusExtractedIn applies the In predicate on the "status_extracted" field.
func StatusExtractedIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStatusExtracted, vs...))
}

// StatusExtractedNotIn applies the NotIn predicate on the "status_extracted" field.
func StatusExtractedNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStatusExtracted, vs...))
}

// StatusExtractedGT applies the GT predicate on the "status_extracted" field.
func StatusExtractedGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStatusExtracted, v))
}

// StatusExtractedGTE applies the GTE predicate on the "status_extracted" field.
func StatusExtractedGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStatusExtracted, v))
}

// StatusExtractedLT applies the LT predicate on the "status_extracted" field.
func StatusExtractedLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStatusExtracted, v))
}

// StatusExtractedLTE applies the LTE predicate on the "status_extracted" field.
func StatusExtractedLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStatusExtracted, v))
}

// StatusExtractedContains applies the Contains predicate on the "status_extracted" field.
func StatusExtractedContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStatusExtracted, v))
}

// StatusExtractedHasPrefix applies the HasPrefix predicate on the "status_extracted" field.
func StatusExtractedHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStatusExtracted, v))
}

// StatusExtractedHasSuffix applies the HasSuffix predicate on the "status_extracted" field.
func StatusExtractedHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStatusExtracted, v))
}

// StatusExtractedEqualFold applies the EqualFold predicate on the "status_extracted" field.
func StatusExtractedEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStatusExtracted, v))
}

// StatusExtractedContainsFold applies the ContainsFold predicate on the "status_extracted" field.
func StatusExtractedContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStatusExtracted, v))
}

// StatusAnalyzedEQ applies the EQ predicate on the "status_analyzed" field.
func StatusAnalyzedEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusAnalyzed, v))
}

// StatusAnalyzedNEQ applies the NEQ predicate on the "status_analyzed" field.
func StatusAnalyzedNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStatusAnalyzed, v))
}

// StatusAnalyzedIn applies the In predicate on the "status_analyzed" field.
func StatusAnalyzedIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStatusAnalyzed, vs...))
}

// StatusAnalyzedNotIn applies the NotIn predicate on the "status_analyzed" field.
func StatusAnalyzedNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStatusAnalyzed, vs...))
}

// StatusAnalyzedGT applies the GT predicate on the "status_analyzed" field.
func StatusAnalyzedGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStatusAnalyzed, v))
}

// StatusAnalyzedGTE applies the GTE predicate on the "status_analyzed" field.
func StatusAnalyzedGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStatusAnalyzed, v))
}

// StatusAnalyzedLT applies the LT predicate on the "status_analyzed" field.
func StatusAnalyzedLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStatusAnalyzed, v))
}

// StatusAnalyzedLTE applies the LTE predicate on the "status_analyzed" field.
func StatusAnalyzedLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStatusAnalyzed, v))
}

// StatusAnalyzedContains applies the Contains predicate on the "status_analyzed" field.
func StatusAnalyzedContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStatusAnalyzed, v))
}

// StatusAnalyzedHasPrefix applies the HasPrefix predicate on the "status_analyzed" field.
func StatusAnalyzedHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStatusAnalyzed, v))
}

// StatusAnalyzedHasSuffix applies the HasSuffix predicate on the "status_analyzed" field.
func StatusAnalyzedHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStatusAnalyzed, v))
}

// StatusAnalyzedEqualFold applies the EqualFold predicate on the "status_analyzed" field.
func StatusAnalyzedEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStatusAnalyzed, v))
}

// StatusAnalyzedContainsFold applies the ContainsFold predicate on the "status_analyzed" field.
func StatusAnalyzedContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStatusAnalyzed, v))
}

// StatusNotifiedEQ applies the EQ predicate on the "status_notified" field.
func StatusNotifiedEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldStatusNotified, v))
}

// StatusNotifiedNEQ applies the NEQ predicate on the "status_notified" field.
func StatusNotifiedNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldStatusNotified, v))
}

// StatusNotifiedIn applies the In predicate on the "status_notified" field.
func StatusNotifiedIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldStatusNotified, vs...))
}

// StatusNotifiedNotIn applies the NotIn predicate on the "status_notified" field.
func StatusNotifiedNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldStatusNotified, vs...))
}

// StatusNotifiedGT applies the GT predicate on the "status_notified" field.
func StatusNotifiedGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldStatusNotified, v))
}

// StatusNotifiedGTE applies the GTE predicate on the "status_notified" field.
func StatusNotifiedGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldStatusNotified, v))
}

// StatusNotifiedLT applies the LT predicate on the "status_notified" field.
func StatusNotifiedLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldStatusNotified, v))
}

// StatusNotifiedLTE applies the LTE predicate on the "status_notified" field.
func StatusNotifiedLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldStatusNotified, v))
}

// StatusNotifiedContains applies the Contains predicate on the "status_notified" field.
func StatusNotifiedContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldStatusNotified, v))
}

// StatusNotifiedHasPrefix applies the HasPrefix predicate on the "status_notified" field.
func StatusNotifiedHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldStatusNotified, v))
}

// StatusNotifiedHasSuffix applies the HasSuffix predicate on the "status_notified" field.
func StatusNotifiedHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldStatusNotified, v))
}

// StatusNotifiedEqualFold applies the EqualFold predicate on the "status_notified" field.
func StatusNotifiedEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldStatusNotified, v))
}

// StatusNotifiedContainsFold applies the ContainsFold predicate on the "status_notified" field.
func StatusNotifiedContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldStatusNotified, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Filing {
	return predicate.Filing(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Filing {
	return predicate.Filing(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldRetryCount, v))
}

// AnalysisJSONIsNil applies the IsNil predicate on the "analysis_json" field.
func AnalysisJSONIsNil() predicate.Filing {
	return predicate.Filing(sql.FieldIsNull(FieldAnalysisJSON))
}

// AnalysisJSONNotNil applies the NotNil predicate on the "analysis_json" field.
func AnalysisJSONNotNil() predicate.Filing {
	return predicate.Filing(sql.FieldNotNull(FieldAnalysisJSON))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Filing {
	return predicate.Filing(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Filing {
	return predicate.Filing(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Filing) predicate.Filing {
	return predicate.Filing(sql.NotPredicates(p))
}
