package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EINVALID, "column %d is broken", 3)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "column 3 is broken", UserMessage(err))
	//
	wrapped := fmt.Errorf("reading table: %w", err)
	assert.Equal(t, EINVALID, Code(wrapped), "expected code to survive wrapping")
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	base := errors.New("file not there")
	err := WrapError(base, EMISSING, "cannot open %s", "doc.adoc")
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, EMISSING, Code(err))
	assert.Contains(t, err.Error(), "cannot open doc.adoc")
	//
	err = ErrorWithCode(nil, ESYNTAX)
	assert.Equal(t, "syntax error", UserMessage(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(WrapError(errors.New("gone"), EMISSING, "cannot read input")))
	assert.Equal(t, 4, ExitCode(fmt.Errorf("parse: %w", ErrorWithCode(nil, ESYNTAX))))
	assert.Equal(t, 6, ExitCode(errors.New("plain")))
}
