// input.go - Reading FEN positions from files and stdin
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/movegen-go/internal/engine"
)

// readFENs returns the non-blank lines of r. Lines starting with '#' are
// comments. An EPD-style trailing ';' section is dropped.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// readFENFile reads the FENs in one file.
func readFENFile(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readFENs(file)
}

// loadFileList reads a list of filenames from a file, one per line.
func loadFileList(filename string) ([]string, error) {
	content, err := os.ReadFile(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			files = append(files, line)
		}
	}
	return files, nil
}

// collectInputs gathers the positions to enumerate. An explicit -fen or
// -startpos wins; otherwise the listed files are read, or stdin if none.
func collectInputs(fen string, start bool, listFile string, args []string, stdin io.Reader) ([]string, error) {
	switch {
	case fen != "":
		return []string{fen}, nil
	case start:
		return []string{engine.InitialFEN}, nil
	}

	files := args
	if listFile != "" {
		listed, err := loadFileList(listFile)
		if err != nil {
			return nil, fmt.Errorf("reading file list %s: %w", listFile, err)
		}
		files = append(listed, files...)
	}

	if len(files) == 0 {
		return readFENs(stdin)
	}

	var fens []string
	for _, filename := range files {
		got, err := readFENFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		fens = append(fens, got...)
	}
	return fens, nil
}
