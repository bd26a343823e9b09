package adapter

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	err := fmt.Errorf("refresh: %w", &FetchError{Kind: KindDecode, Exchange: "mexc", Err: io.ErrUnexpectedEOF})

	var fe *FetchError
	if assert.True(t, errors.As(err, &fe)) {
		assert.Equal(t, KindDecode, fe.Kind)
	}
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "refresh: mexc: decode error: unexpected EOF", err.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "api", KindAPI.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
