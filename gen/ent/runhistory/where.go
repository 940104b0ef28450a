// Code generated by ent, DO NOT EDIT.

package runhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldID, id))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalFilingsFound applies equality check predicate on the "total_filings_found" field. It's identical to TotalFilingsFoundEQ.
func TotalFilingsFound(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldTotalFilingsFound, v))
}

// NewFilings applies equality check predicate on the "new_filings" field. It's identical to NewFilingsEQ.
func NewFilings(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldNewFilings, v))
}

// ProcessedOk applies equality check predicate on the "processed_ok" field. It's identical to ProcessedOkEQ.
func ProcessedOk(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldProcessedOk, v))
}

// ProcessedFailed applies equality check predicate on the "processed_failed" field. It's identical to ProcessedFailedEQ.
func ProcessedFailed(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldProcessedFailed, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldDurationSeconds, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotNull(FieldCompletedAt))
}

// TotalFilingsFoundEQ applies the EQ predicate on the "total_filings_found" field.
func TotalFilingsFoundEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldTotalFilingsFound, v))
}

// TotalFilingsFoundNEQ applies the NEQ predicate on the "total_filings_found" field.
func TotalFilingsFoundNEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldTotalFilingsFound, v))
}

// TotalFilingsFoundIn applies the In predicate on the "total_filings_found" field.
func TotalFilingsFoundIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldTotalFilingsFound, vs...))
}

// TotalFilingsFoundNotIn applies the NotIn predicate on the "total_filings_found" field.
func TotalFilingsFoundNotIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldTotalFilingsFound, vs...))
}

// TotalFilingsFoundGT applies the GT predicate on the "total_filings_found" field.
func TotalFilingsFoundGT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldTotalFilingsFound, v))
}

// TotalFilingsFoundGTE applies the GTE predicate on the "total_filings_found" field.
func TotalFilingsFoundGTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldTotalFilingsFound, v))
}

// TotalFilingsFoundLT applies the LT predicate on the "total_filings_found" field.
func TotalFilingsFoundLT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldTotalFilingsFound, v))
}

// TotalFilingsFoundLTE applies the LTE predicate on the "total_filings_found" field.
func TotalFilingsFoundLTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldTotalFilingsFound, v))
}

// NewFilingsEQ applies the EQ predicate on the "new_filings" field.
func NewFilingsEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldNewFilings, v))
}

// NewFilingsNEQ applies the NEQ predicate on the "new_filings" field.
func NewFilingsNEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldNewFilings, v))
}

// NewFilingsIn applies the In predicate on the "new_filings" field.
func NewFilingsIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldNewFilings, vs...))
}

// NewFilingsNotIn applies the NotIn predicate on the "new_filings" field.
func NewFilingsNotIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldNewFilings, vs...))
}

// NewFilingsGT applies the GT predicate on the "new_filings" field.
func NewFilingsGT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldNewFilings, v))
}

// NewFilingsGTE applies the GTE predicate on the "new_filings" field.
func NewFilingsGTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldNewFilings, v))
}

// NewFilingsLT applies the LT predicate on the "new_filings" field.
func NewFilingsLT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldNewFilings, v))
}

// NewFilingsLTE applies the LTE predicate on the "new_filings" field.
func NewFilingsLTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldNewFilings, v))
}

// ProcessedOkEQ applies the EQ predicate on the "processed_ok" field.
func ProcessedOkEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldProcessedOk, v))
}

// ProcessedOkNEQ applies the NEQ predicate on the "processed_ok" field.
func ProcessedOkNEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldProcessedOk, v))
}

// ProcessedOkIn applies the In predicate on the "processed_ok" field.
func ProcessedOkIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldProcessedOk, vs...))
}

// ProcessedOkNotIn applies the NotIn predicate on the "processed_ok" field.
func ProcessedOkNotIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldProcessedOk, vs...))
}

// ProcessedOkGT applies the GT predicate on the "processed_ok" field.
func ProcessedOkGT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldProcessedOk, v))
}

// ProcessedOkGTE applies the GTE predicate on the "processed_ok" field.
func ProcessedOkGTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldProcessedOk, v))
}

// ProcessedOkLT applies the LT predicate on the "processed_ok" field.
func ProcessedOkLT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldProcessedOk, v))
}

// ProcessedOkLTE applies the LTE predicate on the "processed_ok" field.
func ProcessedOkLTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldProcessedOk, v))
}

// ProcessedFailedEQ applies the EQ predicate on the "processed_failed" field.
func ProcessedFailedEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldProcessedFailed, v))
}

// ProcessedFailedNEQ applies the NEQ predicate on the "processed_failed" field.
func ProcessedFailedNEQ(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldProcessedFailed, v))
}

// ProcessedFailedIn applies the In predicate on the "processed_failed" field.
func ProcessedFailedIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldProcessedFailed, vs...))
}

// ProcessedFailedNotIn applies the NotIn predicate on the "processed_failed" field.
func ProcessedFailedNotIn(vs ...int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldProcessedFailed, vs...))
}

// ProcessedFailedGT applies the GT predicate on the "processed_failed" field.
func ProcessedFailedGT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldProcessedFailed, v))
}

// ProcessedFailedGTE applies the GTE predicate on the "processed_failed" field.
func ProcessedFailedGTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldProcessedFailed, v))
}

// ProcessedFailedLT applies the LT predicate on the "processed_failed" field.
func ProcessedFailedLT(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldProcessedFailed, v))
}

// ProcessedFailedLTE applies the LTE predicate on the "processed_failed" field.
func ProcessedFailedLTE(v int) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldProcessedFailed, v))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.RunHistory {
	return predicate.RunHistory(sql.FieldLTE(FieldDurationSeconds, v))
}

// DurationSecondsIsNil applies the IsNil predicate on the "duration_seconds" field.
func DurationSecondsIsNil() predicate.RunHistory {
	return predicate.RunHistory(sql.FieldIsNull(FieldDurationSeconds))
}

// DurationSecondsNotNil applies the NotNil predicate on the "duration_seconds" field.
func DurationSecondsNotNil() predicate.RunHistory {
	return predicate.RunHistory(sql.FieldNotNull(FieldDurationSeconds))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunHistory) predicate.RunHistory {
	return predicate.RunHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunHistory) predicate.RunHistory {
	return predicate.RunHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunHistory) predicate.RunHistory {
	return predicate.RunHistory(sql.NotPredicates(p))
}
