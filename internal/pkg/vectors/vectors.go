// Package vectors loads NIST known-answer test vectors from .rsp response
// files, the format published with the AES and modes validation suites.
package vectors

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Vector is one known-answer tuple from a response file. IV is nil for ECB
// files, which carry no IV lines.
type Vector struct {
	Count      int
	Key        []byte
	IV         []byte
	Plaintext  []byte
	Ciphertext []byte
}

// Load parses vectors from r, keeping only those under the named section
// header, e.g. "ENCRYPT" or "DECRYPT".
func Load(r io.Reader, section string) ([]Vector, error) {
	var (
		out     []Vector
		current *Vector
		active  bool
	)

	flush := func() {
		if current != nil && active {
			out = append(out, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			active = strings.EqualFold(strings.Trim(line, "[]"), section)
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected NAME = VALUE, got %q", lineNo, line)
		}
		name = strings.TrimSpace(strings.ToUpper(name))
		value = strings.TrimSpace(value)

		if name == "COUNT" {
			flush()
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad COUNT %q", lineNo, value)
			}
			current = &Vector{Count: count}
			continue
		}
		if current == nil {
			// Header parameter outside a COUNT group, e.g. key length.
			continue
		}

		decoded, err := hex.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad hex value for %s: %w", lineNo, name, err)
		}
		switch name {
		case "KEY":
			current.Key = decoded
		case "IV":
			current.IV = decoded
		case "PLAINTEXT":
			current.Plaintext = decoded
		case "CIPHERTEXT":
			current.Ciphertext = decoded
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}
	flush()
	return out, nil
}

// LoadFromFile parses the named .rsp file.
func LoadFromFile(path, section string) ([]Vector, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening vector file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f, section)
}
