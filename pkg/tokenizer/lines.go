package tokenizer

import "bytes"

const (
	// LF is the default line terminator.
	LF = "\n"
	// CRLF is the Windows line terminator.
	CRLF = "\r\n"
)

// Lines splits data into lines at '\n'. A '\r' directly before the '\n'
// belongs to the terminator and is dropped. When quote is non-zero a '\n'
// inside a quoted section does not end the line.
//
// A final terminator does not open an empty trailing line; terminated
// reports whether data ended with one. Empty data yields no lines.
func Lines(data []byte, quote byte) (lines [][]byte, terminated bool) {
	for len(data) > 0 {
		end := lineEnd(data, quote)
		if end < 0 {
			return append(lines, data[:len(data):len(data)]), false
		}
		line := data[:end]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line[:len(line):len(line)])
		data = data[end+1:]
		terminated = true
	}
	return lines, terminated
}

// DetectNewline reports the terminator used by the first line of data.
// Data without any terminator is reported as LF.
func DetectNewline(data []byte, quote byte) string {
	end := lineEnd(data, quote)
	if end > 0 && data[end-1] == '\r' {
		return CRLF
	}
	return LF
}

// lineEnd returns the offset of the first '\n' outside quotes, or -1.
func lineEnd(data []byte, quote byte) int {
	if quote == 0 {
		return bytes.IndexByte(data, '\n')
	}
	inQuotes := false
	for i, b := range data {
		switch {
		case b == quote:
			// a doubled quote toggles twice and leaves the state unchanged
			inQuotes = !inQuotes
		case b == '\n' && !inQuotes:
			return i
		}
	}
	return -1
}
