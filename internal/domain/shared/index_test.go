package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr error
		message string
	}{
		{name: "one", raw: "1", want: 1},
		{name: "padded", raw: "  10  ", want: 10},
		{name: "leading zeros", raw: "007", want: 7},
		{name: "max", raw: "2147483647", want: 2147483647},
		{name: "zero", raw: "0", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "negative", raw: "-1", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "plus sign", raw: "+3", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "letters", raw: "a", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "empty", raw: "", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "two tokens", raw: "1 2", wantErr: ErrInvalidFormat, message: MessageInvalidIndex},
		{name: "above max", raw: "2147483648", wantErr: ErrValueOutOfRange, message: MessageIndexOutOfRange},
		{name: "overflows int64", raw: "99999999999999999999", wantErr: ErrValueOutOfRange, message: MessageIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ParseIndex(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, tt.message, Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx.OneBased())
			assert.Equal(t, tt.want-1, idx.ZeroBased())
		})
	}
}

func TestIndex_InBounds(t *testing.T) {
	idx := MustIndex(3)
	assert.True(t, idx.InBounds(3))
	assert.False(t, idx.InBounds(2))
	assert.Equal(t, "3", idx.String())
}

func TestIndexConstructors(t *testing.T) {
	_, err := IndexFromOneBased(0)
	assert.Error(t, err)

	_, err = IndexFromZeroBased(-1)
	assert.Error(t, err)

	idx, err := IndexFromZeroBased(0)
	require.NoError(t, err)
	assert.Equal(t, MustIndex(1), idx)

	assert.Panics(t, func() { MustIndex(0) })
}
