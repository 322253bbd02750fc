package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var w bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  shield \n")), "Kind", &w)
	require.NoError(t, err)
	assert.Equal(t, "shield", got)
	assert.Equal(t, "Kind\n> ", w.String())

	got, err = GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "Kind", &w)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Kind", &w)
	assert.Error(t, err)
}

func TestGetSecret(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("abc"), nil }
	var w bytes.Buffer
	got, err := GetSecret(&w, "Token: ")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "Token: \n", w.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetSecret(&w, "Token: ")
	assert.ErrorContains(t, err, "not a terminal")
}
