package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

func TestTokenize(t *testing.T) {
	m := Tokenize(" John Doe /id A0123456X /c T01 /p 9123", PrefixID, PrefixClass, PrefixPhone)

	assert.Equal(t, "John Doe", m.Preamble())
	id, ok := m.Value(PrefixID)
	require.True(t, ok)
	assert.Equal(t, "A0123456X", id)
	phone, _ := m.Value(PrefixPhone)
	assert.Equal(t, "9123", phone)

	_, ok = m.Value(PrefixEmail)
	assert.False(t, ok)
	assert.True(t, m.Has(PrefixID, PrefixClass))
	assert.False(t, m.Has(PrefixID, PrefixEmail))
}

func TestTokenize_NoPrefixes(t *testing.T) {
	m := Tokenize("  some text  ")
	assert.Equal(t, "some text", m.Preamble())
	assert.Empty(t, m.AllValues(PrefixClass))
}

func TestTokenize_PrefixNeedsSurroundingWhitespace(t *testing.T) {
	tests := []struct {
		desc     string
		args     string
		preamble string
		wantName string
		wantMemo string
	}{
		{"memo is not a name", " /note hello", "", "", "hello"},
		{"glued to previous word", " John/n Doe", "John/n Doe", "", ""},
		{"glued to value", " /nJohn", "/nJohn", "", ""},
		{"slash inside a value", " /note see a/n b", "", "", "see a/n b"},
		{"glued to a letter ending in 0xA0", " /note voilà/n Bob", "", "", "voilà/n Bob"},
		{"glued to a letter ending in 0x85", " /note Å/n Bob", "", "", "Å/n Bob"},
		{"followed by a multi-byte letter", " /nà Bob", "/nà Bob", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			m := Tokenize(tt.args, PrefixName, PrefixMemo)
			assert.Equal(t, tt.preamble, m.Preamble())
			name, _ := m.Value(PrefixName)
			memo, _ := m.Value(PrefixMemo)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantMemo, memo)
		})
	}
}

func TestTokenize_NonASCIIValueKeepsGluedPrefix(t *testing.T) {
	m := Tokenize(" /n Jeanà/id A0000000X", PrefixName, PrefixID)

	name, ok := m.Value(PrefixName)
	require.True(t, ok)
	assert.Equal(t, "Jeanà/id A0000000X", name)
	assert.False(t, m.Has(PrefixID))
}

func TestTokenize_RepeatedPrefixKeepsEveryValue(t *testing.T) {
	m := Tokenize(" 1 /n Bob /note likes /n tests", PrefixName, PrefixMemo)
	assert.Equal(t, "1", m.Preamble())
	assert.Equal(t, []string{"Bob", "tests"}, m.AllValues(PrefixName))
	last, _ := m.Value(PrefixName)
	assert.Equal(t, "tests", last)
	memo, _ := m.Value(PrefixMemo)
	assert.Equal(t, "likes", memo)
}

func TestTokenize_EmptyValueIsPresent(t *testing.T) {
	m := Tokenize(" x /n", PrefixName)
	v, ok := m.Value(PrefixName)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestVerifyNoDuplicatePrefixesFor(t *testing.T) {
	m := Tokenize(" /c A /s 1 /c B /s 2", PrefixClass, PrefixStudent)

	assert.NoError(t, m.VerifyNoDuplicatePrefixesFor(PrefixName))

	err := m.VerifyNoDuplicatePrefixesFor(PrefixClass)
	require.Error(t, err)
	assert.True(t, shared.IsCommandFormat(err))
	assert.Equal(t, MessageDuplicatePrefixes+"/c", shared.Message(err))

	err = m.VerifyNoDuplicatePrefixesFor(PrefixClass, PrefixStudent)
	assert.Equal(t, MessageDuplicatePrefixes+"/c /s", shared.Message(err))
}
