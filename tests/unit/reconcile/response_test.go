package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invotab/internal/reconcile"
)

func TestParseModelResponse_DirectJSON(t *testing.T) {
	data, err := reconcile.ParseModelResponse(`{"products":[]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(data))
}

func TestParseModelResponse_CodeFenced(t *testing.T) {
	raw := "```json\n{\"products\":[{\"productName\":\"Widget\"}]}\n```"
	data, err := reconcile.ParseModelResponse(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[{"productName":"Widget"}]}`, string(data))
}

func TestParseModelResponse_SurroundingProse(t *testing.T) {
	raw := "Here is the extracted data:\n{\"customers\":[]}\nLet me know if you need anything else."
	data, err := reconcile.ParseModelResponse(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customers":[]}`, string(data))
}

func TestParseModelResponse_FencedWithProse(t *testing.T) {
	raw := "Sure!\n```json\n{\"invoices\":[{\"serialNumber\":\"INV-1\"}]}\n```\nDone."
	data, err := reconcile.ParseModelResponse(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoices":[{"serialNumber":"INV-1"}]}`, string(data))
}

func TestParseModelResponse_NoJSON(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not read the document.",
		"{ this is not valid json }",
	} {
		data, err := reconcile.ParseModelResponse(raw)
		assert.ErrorIs(t, err, reconcile.ErrNoJSON, "input: %q", raw)
		assert.Nil(t, data)
	}
}

func TestParseModelResponse_WhitespacePadding(t *testing.T) {
	data, err := reconcile.ParseModelResponse("  \n {\"products\":[]} \n ")
	require.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(data))
}
