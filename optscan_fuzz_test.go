package optscan

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/optscan/errs"
	"github.com/napalu/optscan/parse"
)

func FuzzParse(f *testing.F) {
	f.Add("-a2こんにちは")
	f.Add("--long")
	f.Add("-xvffile")
	f.Add("-- value")
	f.Add("   --spaces ok   ")
	f.Add("-漢字=こんにちは こんにち")
	f.Add("--漢字=こんにちは")
	f.Add("0")
	f.Add("-")
	f.Add("-a \\'-xtra\\'")
	f.Add("-a -xtra 000000")
	f.Add("-f -- -123.45")
	f.Add("-\xff --\x00")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}

		options := []*Option{
			NewOption(Optional, "a"),
			NewOption(NotAllowed, "x", "xtra"),
			NewOption(NotAllowed, "v", "verbose"),
			NewOption(Required, "f", "file"),
			NewOption(Required, "long"),
			NewOption(Optional, "spaces"),
			NewOption(Optional, "漢字"),
		}

		result, err := Parse(args, options, WithRedefinition(len(args)%2 == 0))
		if err != nil {
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, errs.ErrParse), "unexpected error kind: %v", err)
			assert.NotContains(t, err.Error(), "%!")
			return
		}

		// every token is either consumed or positional, in order
		positional := result.Positional()
		assert.LessOrEqual(t, len(positional), len(args))
		assert.LessOrEqual(t, result.Len(), len(options))

		for i, arg := range args {
			if arg == Terminator {
				assert.Equal(t, args[i+1:], positional[len(positional)-len(args[i+1:]):])
				break
			}
		}

		for _, entry := range result.Options() {
			assert.Contains(t, options, entry.Option)
			if entry.Option.Expectation == NotAllowed {
				assert.False(t, entry.Value.HasValue)
			}
			if entry.Value.HasValue {
				assert.True(t, containedIn(args, entry.Value.Text), "value %q is not part of any token", entry.Value.Text)
			}
		}
	})
}

func containedIn(args []string, text string) bool {
	for _, arg := range args {
		if strings.Contains(arg, text) {
			return true
		}
	}

	return false
}
