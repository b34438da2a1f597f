package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datacube-go/agdcmeta/internal/config"
)

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("NO_COLOR", "")
	assert.True(t, colorEnabled(&buf, config.ColorAlways))
	assert.False(t, colorEnabled(&buf, config.ColorNever))
	assert.False(t, colorEnabled(&buf, config.ColorAuto), "a buffer is not a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(&buf, config.ColorAuto))
}

func TestStyles_DisabledIsPlain(t *testing.T) {
	var buf bytes.Buffer
	st := newStyles(&buf, config.ColorNever)

	assert.Equal(t, "equal", st.OK("equal"))
	assert.Equal(t, "differ", st.Fail("differ"))
	assert.Equal(t, "Metadata:", st.Heading("Metadata:"))
	assert.Equal(t, "(absent)", st.Muted("(absent)"))
}

func TestStyles_AlwaysDecorates(t *testing.T) {
	var buf bytes.Buffer
	st := newStyles(&buf, config.ColorAlways)

	out := st.Fail("differ")
	assert.Contains(t, out, "differ")
	assert.NotEqual(t, "differ", out)
}
