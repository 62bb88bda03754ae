package routes

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readLine prompts and returns the next trimmed input line, or io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) readRequired(prompt string) (string, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil || line != "" {
			return line, err
		}
		fmt.Fprintln(s.out, "This field cannot be empty.")
	}
}

func (s *Shell) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, "Please enter a valid number.")
	}
}

func (s *Shell) readFloat(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		fmt.Fprintln(s.out, "Please enter a valid number.")
	}
}

// readChoice reads a number in [lo, hi].
func (s *Shell) readChoice(prompt string, lo, hi int) (int, error) {
	for {
		n, err := s.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintf(s.out, "Please choose between %d and %d.\n", lo, hi)
	}
}
