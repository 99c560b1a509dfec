package console

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader reads player input one line at a time.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine - blocks until a full line is available and returns it without the line terminator.
// A last line without a terminator is returned before io.EOF.
func (that *LineReader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
