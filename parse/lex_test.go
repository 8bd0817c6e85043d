package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "short and long options",
			input: "-r 15 --optional PAH",
			want:  []string{"-r", "15", "--optional", "PAH"},
		},
		{
			name:  "quoted value",
			input: `--name="hello world" -o 'x y'`,
			want:  []string{"--name=hello world", "-o", "x y"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:  "terminator and lone dash",
			input: "-- - --required",
			want:  []string{"--", "-", "--required"},
		},
		{
			name:  "multiple spaces",
			input: "cmd   arg1    arg2",
			want:  []string{"cmd", "arg1", "arg2"},
		},
		{
			name:  "unicode",
			input: "-漢 こんにちは",
			want:  []string{"-漢", "こんにちは"},
		},
		{
			name:    "unterminated quote",
			input:   `--name "open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Blank(t *testing.T) {
	for _, input := range []string{"", "   "} {
		got, err := Split(input)
		assert.NoError(t, err)
		assert.Empty(t, got)
	}
}
