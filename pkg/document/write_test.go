package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csvdoc/pkg/storage"

	"github.com/xyproto/randomstring"
	"golang.org/x/text/encoding/charmap"
)

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":             "",
		"terminated":        "a,b\nc,d\n",
		"unterminated":      "a,b\nc,d",
		"crlf":              "a,b\r\nc,d\r\n",
		"crlfUnterminated":  "a\r\nb",
		"ragged":            "a\nb,c,d\n,,\n\n",
		"onlyTerminator":    "\n",
		"embeddedNUL":       "x\x00y,z\n",
		"quotesAreVerbatim": "\"a\",b\"\n",
	}

	for name, content := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := openTemp(t, content)
			drain(doc)

			out := filepath.Join(t.TempDir(), "out.csv")
			if err := doc.Write(out); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("os.ReadFile() error = %v", err)
			}
			if string(got) != content {
				t.Fatalf("round trip = %q, want %q", got, content)
			}
		})
	}
}

func TestWriteRoundTripRandom(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for row := range 50 {
		for field := range row%5 + 1 {
			if field > 0 {
				sb.WriteByte(',')
			}
			if (row+field)%7 != 0 {
				sb.WriteString(randomstring.HumanFriendlyEnglishString(field + 3))
			}
		}
		sb.WriteByte('\n')
	}
	content := sb.String()

	doc := openTemp(t, content)
	if doc.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", doc.Len())
	}
	for i, row := range doc.Rows() {
		if row.Len() != i%5+1 {
			t.Fatalf("row %d has %d fields, want %d", i, row.Len(), i%5+1)
		}
	}
	if got := string(doc.Bytes()); got != content {
		t.Fatalf("random round trip mismatch:\n got: %q\nwant: %q", got, content)
	}
}

func TestWriteAfterMutation(t *testing.T) {
	t.Parallel()

	doc := openTemp(t, "a,b\r\nc,d\r\n")
	if err := doc.AppendString("e,f,g"); err != nil {
		t.Fatalf("AppendString() error = %v", err)
	}
	if err := doc.SetString(0, ",,"); err != nil {
		t.Fatalf("SetString() error = %v", err)
	}

	want := ",,\r\nc,d\r\ne,f,g\r\n"
	if got := string(doc.Bytes()); got != want {
		t.Fatalf("Bytes() = %q, want %q", got, want)
	}
}

func TestWriteNewlineOptions(t *testing.T) {
	t.Parallel()

	doc := openTemp(t, "a\r\nb", WithNewline("\n"), WithTrailingNewline(true))
	if got := string(doc.Bytes()); got != "a\nb\n" {
		t.Fatalf("Bytes() = %q, want %q", got, "a\nb\n")
	}

	doc = openTemp(t, "", WithTrailingNewline(true))
	if err := doc.AppendString("x"); err != nil {
		t.Fatalf("AppendString() error = %v", err)
	}
	if got := string(doc.Bytes()); got != "x\n" {
		t.Fatalf("Bytes() = %q, want %q", got, "x\n")
	}
}

func TestWriteCustomComma(t *testing.T) {
	t.Parallel()

	doc := openTemp(t, "a;b\n", WithComma(';'))
	row, _ := doc.Next()
	if row.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", row.Len())
	}
	if err := doc.AppendString("c,d;e"); err != nil {
		t.Fatalf("AppendString() error = %v", err)
	}
	if got := string(doc.Bytes()); got != "a;b\nc,d;e\n" {
		t.Fatalf("Bytes() = %q", got)
	}
}

func TestWriteQuoted(t *testing.T) {
	t.Parallel()

	content := "name,note\n\"Smith, J\",\"said \"\"hi\"\"\"\nplain,\"multi\nline\"\n"
	doc := openTemp(t, content, WithQuotes('"'))

	if doc.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", doc.Len())
	}
	row, _ := doc.At(1)
	if f, _ := row.Field(0); string(f) != "Smith, J" {
		t.Fatalf("quoted field = %q", f)
	}
	row, _ = doc.At(2)
	if f, _ := row.Field(1); string(f) != "multi\nline" {
		t.Fatalf("multi-line field = %q", f)
	}
	if got := string(doc.Bytes()); got != content {
		t.Fatalf("quoted round trip = %q, want %q", got, content)
	}

	if err := doc.AppendString("\"a,b\",c"); err != nil {
		t.Fatalf("AppendString() error = %v", err)
	}
	row, _ = doc.At(3)
	if row.Len() != 2 {
		t.Fatalf("appended quoted row has %d fields, want 2", row.Len())
	}
}

func TestOpenQuotedParseError(t *testing.T) {
	t.Parallel()

	_, err := Open(writeTemp(t, "a\n\"open,b\n"), WithQuotes('"'))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Open() error = %v, want ErrInvalidInput", err)
	}
}

func TestWriteEncoded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	raw := []byte{'c', 'a', 'f', 0xE9, ',', '1', '\n'}
	if err := os.WriteFile(in, raw, 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	doc, err := Open(in, WithEncoding(charmap.Windows1252))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	row, _ := doc.Next()
	if f, _ := row.Field(0); string(f) != "café" {
		t.Fatalf("decoded field = %q, want café", f)
	}

	out := filepath.Join(dir, "out.csv")
	if err := doc.Write(out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("encoded output = %v, want %v", got, raw)
	}
}

func TestWriteUTF8KeepsInvalidBytes(t *testing.T) {
	t.Parallel()

	content := "a\xff,b\n"
	enc, err := storage.LookupEncoding("UTF-8")
	if err != nil {
		t.Fatalf("LookupEncoding() error = %v", err)
	}
	opts := []Option{}
	if enc != nil {
		opts = append(opts, WithEncoding(enc))
	}
	doc := openTemp(t, content, opts...)

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := doc.Write(out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if string(got) != content {
		t.Fatalf("round trip = %q, want %q", got, content)
	}
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()

	mem := newMemFileSystem(map[string]string{"in.csv": "a\n"})
	doc, err := Open("in.csv", WithFileSystem(mem))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer doc.Close()

	mem.writeErr = errDiskFull
	err = doc.Write("out.csv")
	if !errors.Is(err, ErrIO) || !errors.Is(err, errDiskFull) {
		t.Fatalf("Write() error = %v, want ErrIO wrapping the cause", err)
	}
	var perr *PathError
	if !errors.As(err, &perr) || perr.Op != "write" || perr.Path != "out.csv" {
		t.Fatalf("Write() error = %#v, want *PathError for out.csv", err)
	}

	mem.writeErr = nil
	if err := doc.Write("out.csv"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := string(mem.files["out.csv"]); got != "a\n" {
		t.Fatalf("written content = %q", got)
	}

	disk, err := Open(writeTemp(t, "a\n"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer disk.Close()
	if err := disk.Write(filepath.Join(t.TempDir(), "missing", "out.csv")); !errors.Is(err, ErrIO) {
		t.Fatalf("Write() into missing directory error = %v, want ErrIO", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteTo(t *testing.T) {
	t.Parallel()

	doc := openTemp(t, "a,b\nc\n")
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) || buf.String() != "a,b\nc\n" {
		t.Fatalf("WriteTo() = %d, %q", n, buf.String())
	}

	if _, err := doc.WriteTo(failingWriter{}); !errors.Is(err, ErrIO) {
		t.Fatalf("WriteTo() error = %v, want ErrIO", err)
	}
}

func TestWritePathErrorFormatting(t *testing.T) {
	t.Parallel()

	err := &PathError{Op: "write", Path: "x.csv", Kind: ErrIO, Err: errDiskFull}
	if got := err.Error(); !strings.Contains(got, "write x.csv") || !strings.Contains(got, errDiskFull.Error()) {
		t.Fatalf("Error() = %q", got)
	}

	var nilErr *PathError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Fatalf("nil PathError should be empty")
	}
}
