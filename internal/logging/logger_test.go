/*
 * Copyright (C) 2023 by Jason Figge
 */

package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WARN, l)

	l, err = ParseLevel("TRACE")
	require.NoError(t, err)
	assert.Equal(t, TRACE, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, INFO)

	l.Logf(DEBUG, "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Logf(WARN, "shown %d", 2)
	assert.Contains(t, buf.String(), "[WARN] shown 2")

	buf.Reset()
	l.SetLevel(TRACE)
	l.Logf(TRACE, "now visible")
	assert.Contains(t, buf.String(), "[TRACE] now visible")
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(ERROR)
	t.Cleanup(func() {
		SetLevel(INFO)
		SetOutput(os.Stderr)
	})

	Infof("quiet")
	Errorf("loud %s", "error")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "[ERROR] loud error")
	assert.Equal(t, ERROR, Default().Level())
}
