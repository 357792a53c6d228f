package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.False(t, d.HasWarnings())
	require.NoError(t, d.Error())

	var other Diagnostics
	other.AddWarning("duplicate_key", "key is produced twice", "Order", "Id")
	other.AddError("class_empty", "class maps nothing", "Order", "", "Line")

	d.AddError("simple_no_codec", "no string conversion", "Order", "Coupon")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.True(t, d.HasWarnings())
	assert.Equal(t, []string{"simple_no_codec", "class_empty"}, d.Codes())
	assert.Equal(t, DiagnosticWarning, d.Warnings[0].Severity)
	assert.Equal(t, "warning", d.Warnings[0].Severity.String())

	require.EqualError(t, d.Error(),
		"[Order] Coupon: [simple_no_codec] no string conversion; [Order]: [class_empty] class maps nothing (did you mean Line?)")
}
