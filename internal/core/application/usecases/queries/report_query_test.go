package queries_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportRange() (time.Time, time.Time) {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func TestNewReportQuery_ValidInput(t *testing.T) {
	from, to := reportRange()

	query, err := queries.NewReportQuery(queries.ReportSales, "json", "branch-1", from, to)
	require.NoError(t, err)
	assert.Equal(t, queries.ReportSales, query.Type())
	assert.Equal(t, "branch-1", query.BranchID())
}

func TestNewReportQuery_EmptyFormatDefaultsToJSON(t *testing.T) {
	from, to := reportRange()

	_, err := queries.NewReportQuery(queries.ReportWorkerPerformance, "", "", from, to)
	require.NoError(t, err)
}

func TestNewReportQuery_UnsupportedType(t *testing.T) {
	from, to := reportRange()

	_, err := queries.NewReportQuery("profit-loss", "json", "", from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrReportTypeIsInvalid)
}

func TestNewReportQuery_UnsupportedFormat(t *testing.T) {
	from, to := reportRange()

	_, err := queries.NewReportQuery(queries.ReportSales, "pdf", "", from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrReportFormatIsInvalid)
}

func TestNewReportQuery_InvertedRange(t *testing.T) {
	from, to := reportRange()

	_, err := queries.NewReportQuery(queries.ReportSales, "json", "", to, from)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrReportRangeIsInvalid)
}
