package tokenizer

import (
	"bytes"
	"testing"
)

func TestAppendRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []string
		quote  byte
		want   string
	}{
		{name: "basic", fields: []string{"a", "b", "c"}, want: "a,b,c"},
		{name: "emptyFields", fields: []string{"", "", ""}, want: ",,"},
		{name: "singleEmpty", fields: []string{""}, want: ""},
		{name: "noFields", fields: nil, want: ""},
		{name: "verbatimWithoutQuote", fields: []string{"a\"b"}, want: "a\"b"},
		{name: "commaForcesQuote", fields: []string{"alpha,beta", "x"}, quote: '"', want: "\"alpha,beta\",x"},
		{name: "quoteEscaping", fields: []string{"he said \"hi\""}, quote: '"', want: "\"he said \"\"hi\"\"\""},
		{name: "newlineForcesQuote", fields: []string{"multi\nline"}, quote: '"', want: "\"multi\nline\""},
		{name: "plainStaysBare", fields: []string{"plain", ""}, quote: '"', want: "plain,"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fields := make([][]byte, len(tc.fields))
			for i, f := range tc.fields {
				fields[i] = []byte(f)
			}
			got := AppendRow([]byte("prefix:"), fields, ',', tc.quote)
			if want := "prefix:" + tc.want; string(got) != want {
				t.Fatalf("AppendRow() = %q, want %q", got, want)
			}
		})
	}
}

func TestAppendRowInvertsSplitQuoted(t *testing.T) {
	t.Parallel()

	fields := [][]byte{[]byte("a,b"), []byte("\"q\""), []byte(""), []byte("x\r\ny")}
	line := AppendRow(nil, fields, ',', '"')

	got, err := SplitQuoted(line, ',', '"')
	if err != nil {
		t.Fatalf("SplitQuoted(%q) error = %v", line, err)
	}
	if len(got) != len(fields) {
		t.Fatalf("SplitQuoted(%q) returned %d fields, want %d", line, len(got), len(fields))
	}
	for i := range fields {
		if !bytes.Equal(got[i], fields[i]) {
			t.Errorf("field %d = %q, want %q", i, got[i], fields[i])
		}
	}
}
