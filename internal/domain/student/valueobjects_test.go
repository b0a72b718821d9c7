package student

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonovanJJ/tp/internal/domain/shared"
)

func TestNewName(t *testing.T) {
	valid := []string{"peter jack", "12345", "peter the 2nd", "Capital Tan", "David Roger Jackson Ray Jr 2nd", "Zoë"}
	for _, raw := range valid {
		n, err := NewName(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, n.String())
	}

	invalid := []string{"", " ", "^", "peter*"}
	for _, raw := range invalid {
		_, err := NewName(raw)
		require.Error(t, err, raw)
		assert.True(t, shared.IsValidation(err))
		assert.Equal(t, MessageNameConstraints, shared.Message(err))
	}
}

func TestNewName_TrimsSurroundingWhitespace(t *testing.T) {
	n, err := NewName("  Alex Yeoh \t")
	require.NoError(t, err)
	assert.Equal(t, Name("Alex Yeoh"), n)
	assert.Equal(t, []string{"Alex", "Yeoh"}, n.Words())
}

func TestNewID(t *testing.T) {
	id, err := NewID("a0123456x")
	require.NoError(t, err)
	assert.Equal(t, ID("A0123456X"), id)

	for _, raw := range []string{"", "A012345X", "B0123456X", "A01234567", "A0123456XY"} {
		_, err := NewID(raw)
		assert.Error(t, err, raw)
		assert.Equal(t, MessageIDConstraints, shared.Message(err))
	}
}

func TestNewPhone(t *testing.T) {
	_, err := NewPhone("911")
	assert.NoError(t, err)
	_, err = NewPhone("93121534")
	assert.NoError(t, err)

	for _, raw := range []string{"", "91", "phone", "9011p041", "9312 1534"} {
		_, err := NewPhone(raw)
		assert.Error(t, err, raw)
		assert.Equal(t, MessagePhoneConstraints, shared.Message(err))
	}
}

func TestNewEmail(t *testing.T) {
	for _, raw := range []string{"PeterJack_1190@example.com", "a@bc.com", "test@localhost.sg"} {
		_, err := NewEmail(raw)
		assert.NoError(t, err, raw)
	}

	for _, raw := range []string{"", "@example.com", "peterjackexample.com", "peterjack@"} {
		_, err := NewEmail(raw)
		require.Error(t, err, raw)
		assert.True(t, shared.IsValidation(err))
		assert.Equal(t, MessageEmailConstraints, shared.Message(err))
	}
}

func TestNewAddress(t *testing.T) {
	a, err := NewAddress(" Blk 456, Den Road, #01-355 ")
	require.NoError(t, err)
	assert.Equal(t, "Blk 456, Den Road, #01-355", a.String())

	_, err = NewAddress("   ")
	assert.Error(t, err)
}

func TestNewMemo(t *testing.T) {
	m, err := NewMemo("")
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())

	_, err = NewMemo(strings.Repeat("x", MaxMemoLength))
	assert.NoError(t, err)

	_, err = NewMemo(strings.Repeat("x", MaxMemoLength+1))
	require.Error(t, err)
	assert.Equal(t, MessageMemoConstraints, shared.Message(err))
}
