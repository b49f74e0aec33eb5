package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/wikiai/pkg/errors"
)

func TestExportImportRoundTrip(t *testing.T) {
	source, _ := emptyRepo(t)

	// Whole-second timestamps so equality is not sensitive to the
	// serialization precision of the time format.
	alpha := draft("Alpha Tool")
	alpha.CreatedAt = date(2024, 1, 2)
	alpha.UpdatedAt = date(2024, 1, 3)
	beta := draft("Beta Tool")
	beta.CreatedAt = date(2024, 2, 2)
	beta.UpdatedAt = date(2024, 2, 3)

	_, err := source.Create(alpha)
	require.NoError(t, err)
	_, err = source.Create(beta)
	require.NoError(t, err)

	data, err := source.Export()
	require.NoError(t, err)

	target, _ := emptyRepo(t)
	report, err := target.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Empty(t, report.Failures)

	// Field-for-field identical, ids included since they were present in
	// the exported payload.
	assert.Equal(t, source.List(), target.List())
}

func TestImportPartialSuccess(t *testing.T) {
	repo, _ := emptyRepo(t)

	payload := `[
		{"name": "Good Tool", "url": "https://good.tool", "categories": ["LLM"], "pricing": "free"},
		{"name": "Bad Pricing", "url": "https://bad.tool", "pricing": "cheap"},
		{"name": "", "url": "", "pricing": "free"}
	]`

	report, err := repo.Import([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Failures, 2)

	assert.Equal(t, 1, report.Failures[0].Index)
	assert.Equal(t, "Bad Pricing", report.Failures[0].Name)
	assert.True(t, errors.IsValidation(report.Failures[0].Err))

	assert.Equal(t, 2, report.Failures[1].Index)
	assert.True(t, errors.IsValidation(report.Failures[1].Err))

	assert.Len(t, repo.List(), 1, "valid records committed despite failures")
}

func TestImportDuplicateSlugReported(t *testing.T) {
	repo, _ := emptyRepo(t)
	_, err := repo.Create(draft("Existing"))
	require.NoError(t, err)

	payload := `[{"name": "Existing", "url": "https://dup.tool", "categories": ["LLM"], "pricing": "free"}]`
	report, err := repo.Import([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	require.Len(t, report.Failures, 1)
	assert.True(t, errors.IsConflict(report.Failures[0].Err))
}

func TestImportMalformedPayload(t *testing.T) {
	repo, _ := emptyRepo(t)

	_, err := repo.Import([]byte("not json at all"))
	require.Error(t, err)

	var perr *errors.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Empty(t, repo.List())
}

func TestImportFailureString(t *testing.T) {
	f := ImportFailure{Index: 3, Name: "X", Err: errors.New("boom")}
	assert.Equal(t, "record 3 (X): boom", f.String())

	anon := ImportFailure{Index: 0, Err: errors.New("boom")}
	assert.Equal(t, "record 0: boom", anon.String())
}
