package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePositions(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil becomes empty array", in: nil, want: `[]`},
		{name: "empty string becomes empty array", in: "", want: `[]`},
		{name: "whitespace string becomes empty array", in: "   ", want: `[]`},
		{name: "valid JSON array stored verbatim", in: `["fen1","fen2"]`, want: `["fen1","fen2"]`},
		{name: "valid JSON object stored verbatim", in: `{"start":"fen1"}`, want: `{"start":"fen1"}`},
		{name: "non-JSON string wrapped", in: "not-json", want: `["not-json"]`},
		{name: "bare FEN wrapped", in: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", want: `["rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"]`},
		{name: "JSON scalar string stays unwrapped", in: "42", want: `42`},
		{name: "JSON boolean string stays unwrapped", in: "true", want: `true`},
		{name: "structured slice encoded directly", in: []any{"fen1", "fen2"}, want: `["fen1","fen2"]`},
		{name: "structured map encoded directly", in: map[string]any{"a": "b"}, want: `{"a":"b"}`},
		{name: "number encoded directly", in: float64(7), want: `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePositions(tt.in)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestNormalizePositionsUnencodable(t *testing.T) {
	_, err := NormalizePositions(make(chan int))
	require.Error(t, err)
}

func TestNormalizePositionsWrappedStringKeepsOriginal(t *testing.T) {
	// Wrapping must preserve the untrimmed input, only validity is checked
	// on the trimmed form.
	got, err := NormalizePositions("  spaced fen  ")
	require.NoError(t, err)
	require.Equal(t, `["  spaced fen  "]`, string(got))
}
