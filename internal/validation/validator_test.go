package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/curatorapp/curator-server/internal/errors"
	"github.com/curatorapp/curator-server/internal/validation"
)

type saveRequest struct {
	ID    string `json:"id" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=movie book album"`
	Title string `json:"title" validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(saveRequest{ID: "550", Type: "movie", Title: "Fight Club"})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	v := validation.New()

	err := v.Validate(saveRequest{Type: "movie"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok, "details should be a field error map")
	// JSON tag names, not Go field names.
	assert.Contains(t, details, "id")
	assert.Contains(t, details, "title")
	assert.NotContains(t, details, "type")
}

func TestValidate_UnknownType(t *testing.T) {
	v := validation.New()

	err := v.Validate(saveRequest{ID: "1", Type: "podcast", Title: "x"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Contains(t, details["type"], "must be one of")
}
