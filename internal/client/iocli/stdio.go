package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Stdio реализует IO поверх os.Stdin и os.Stdout.
// Один буферизованный reader на весь процесс: REPL читает построчно.
type Stdio struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
	once   sync.Once
}

func NewStdio() IO {
	return &Stdio{out: os.Stdout}
}

func (s *Stdio) input() *bufio.Reader {
	s.once.Do(func() {
		s.in = os.Stdin
		s.reader = bufio.NewReader(s.in)
	})
	return s.reader
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.input().ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := s.input()
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		// не терминал (pipe): читаем строку как есть
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
