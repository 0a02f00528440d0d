package delimiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Delimiter
		wantErr bool
		errMsg  string
	}{
		{name: "Comma literal", input: ",", want: Comma},
		{name: "Pipe literal", input: "|", want: Pipe},
		{name: "Tab literal", input: "\t", want: Tab},
		{name: "Tab escape", input: `\t`, want: Tab},
		{name: "Semicolon literal", input: ";", want: Semicolon},
		{name: "Name", input: "semicolon", want: Semicolon},
		{name: "Name is case insensitive", input: "TAB", want: Tab},
		{name: "Empty", input: "", wantErr: true, errMsg: "empty delimiter"},
		{name: "Outside universe", input: ":", wantErr: true, errMsg: "unsupported delimiter"},
		{name: "Unknown name", input: "colon", wantErr: true, errMsg: "unsupported delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Contains(t, err.Error(), `\t (tab)`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelimiter_Names(t *testing.T) {
	tests := []struct {
		delim   Delimiter
		str     string
		name    string
		escaped string
		valid   bool
	}{
		{Comma, ",", "comma", ",", true},
		{Pipe, "|", "pipe", "|", true},
		{Tab, "\t", "tab", `\t`, true},
		{Semicolon, ";", "semicolon", ";", true},
		{Delimiter(':'), ":", "':'", ":", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.delim.String())
			assert.Equal(t, tt.name, tt.delim.Name())
			assert.Equal(t, tt.escaped, tt.delim.Escaped())
			assert.Equal(t, tt.valid, tt.delim.Valid())
		})
	}
}

func TestUniverse(t *testing.T) {
	assert.Equal(t, []Delimiter{Comma, Pipe, Tab, Semicolon}, Universe)
	assert.Contains(t, Universe, Default)
}
