package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var (
	errCategory = NewError("optscan.error.parse")
	errSpecific = NewError(unrecognized)
)

func TestTrError_Error(t *testing.T) {
	err := errSpecific.WithArgs("--x")
	assert.Equal(t, "Unrecognized option: '--x'.", err.Error())
	assert.Equal(t, "Unbekannte Option: '--x'.", err.In(language.German).Error())
	assert.Equal(t, unrecognized, err.Key())
	assert.Equal(t, []interface{}{"--x"}, err.Args())
	assert.Equal(t, language.German, err.In(language.German).Language())
}

func TestTrError_CopiesOnWrite(t *testing.T) {
	withArgs := errSpecific.WithArgs("-a")
	_ = withArgs.Under(errCategory)

	assert.Nil(t, errSpecific.Args(), "the sentinel is never modified")
	assert.False(t, errors.Is(withArgs, errCategory), "Under returns a copy")
	assert.Equal(t, language.Und, errSpecific.Language())
}

func TestTrError_Is(t *testing.T) {
	err := errSpecific.WithArgs("-a").Under(errCategory).In(language.German)

	assert.True(t, errors.Is(err, errSpecific))
	assert.True(t, errors.Is(err, errCategory))
	assert.False(t, errors.Is(errSpecific, errCategory))
	assert.False(t, errors.Is(err, NewError(unrecognized)), "sentinels with the same key are distinct")

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, errors.Is(wrapped, errCategory))

	var tr *TrError
	assert.True(t, errors.As(wrapped, &tr))
	assert.Equal(t, unrecognized, tr.Key())
}

func TestTrError_Wrap(t *testing.T) {
	cause := errors.New("boom")
	err := errSpecific.WithArgs("-a").Wrap(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Unrecognized option: '-a'.: boom", err.Error())

	nested := NewError("optscan.error.configuration").Wrap(errSpecific.WithArgs("-b")).In(language.German)
	assert.Equal(t, "ungültige Optionsdeklaration: Unbekannte Option: '-b'.", nested.Error())
}

func TestTrError_WithBundle(t *testing.T) {
	b := NewEmptyBundle()
	_ = b.AddLanguage(language.English, map[string]string{unrecognized: "what is %s?"})

	assert.Equal(t, "what is -q?", errSpecific.WithArgs("-q").WithBundle(b).Error())
}
