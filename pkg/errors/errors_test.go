package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/AstroAir/lucide-gallery/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "icon",
			ID:       "heart",
		}
		assert.Equal(t, `icon "heart" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("category", "navigation")
		assert.Equal(t, `category "navigation" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("icon", "star")
		wrapped := errors.Join(errors.New("lookup failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "icons.json",
			Message: "unexpected end of input",
		}
		assert.Equal(t, "parse error in json file icons.json: unexpected end of input", err.Error())
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Message: "invalid character",
		}
		assert.Equal(t, "json parse error: invalid character", err.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("bad syntax")
		err := pkgerrors.WrapParse("json", "favorites.json", cause)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, pkgerrors.IsParseError(err))
	})
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/data/usage.json", cause)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/data/usage.json")
	assert.True(t, errors.Is(err, cause))
}

func TestLoadError(t *testing.T) {
	t.Run("with document", func(t *testing.T) {
		cause := errors.New("missing icons key")
		err := pkgerrors.NewLoadError("icons", cause)
		assert.Equal(t, "failed to load icons document: missing icons key", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, pkgerrors.IsLoadError(err))
	})

	t.Run("wrap helper returns nil for nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapLoad("tags", nil))
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	})
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("gateway", "data directory is not writable", nil)
	assert.Equal(t, "configuration error in gateway: data directory is not writable", err.Error())
}
