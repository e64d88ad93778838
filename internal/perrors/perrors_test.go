package perrors

import (
	"errors"
	"net/http"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrSerializesOnlyPublicFields(t *testing.T) {
	cause := errors.New("exec: \"python3\": executable file not found in $PATH")
	err := NewErrInternalServerError("Unable to start script", "failed to process the image", cause,
		map[string]interface{}{"image_url": "http://x/1.jpg"})

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"error":"failed to process the image"}`, string(body))
	assert.Equal(t, http.StatusInternalServerError, err.HttpStatus())
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, err.Stacktrace)
}

func TestErrWithDetails(t *testing.T) {
	err := NewErrInternalServerError("Script exited with non-zero code", "failed to process the image", nil).
		WithDetails("bad url")

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"error":"failed to process the image","details":"bad url"}`, string(body))
}

func TestErrWithEmptyDetailsIsStillSerialized(t *testing.T) {
	err := NewErrInternalServerError("Script produced no output", "failed to process the image", nil).WithDetails("")

	body, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"error":"failed to process the image","details":""}`, string(body))
}

func TestInvalidRequestStatus(t *testing.T) {
	err := NewErrInvalidRequest("Missing image url", "No image URL provided", nil)
	assert.Equal(t, http.StatusBadRequest, err.HttpStatus())
	assert.Equal(t, "No image URL provided", err.Error())
}
