// Package sysfs reads the small textual values exposed under /sys and /proc.
//
// Every reader here is total: a missing, unreadable or malformed source
// yields the zero value rather than an error.
package sysfs

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// BufSize bounds every read
const BufSize = 64

// ReadString returns the first line of path, at most size bytes long.
// Reading also stops at a NUL byte. Returns "" if the file cannot be opened.
func ReadString(path string, size int) string {
	s, _ := readString(path, size)
	return s
}

// ReadStringOK is ReadString that also reports whether the source was readable
func ReadStringOK(path string, size int) (string, bool) {
	return readString(path, size)
}

func readString(path string, size int) (string, bool) {
	if size <= 0 {
		return "", false
	}

	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	r := bufio.NewReader(io.LimitReader(f, int64(size)))
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil || b == '\n' || b == 0 {
			break
		}
		sb.WriteByte(b)
	}

	return sb.String(), true
}

// ReadInt parses the leading decimal integer of path. Like atoi it ignores
// leading whitespace and trailing garbage, and returns 0 when nothing parses.
func ReadInt(path string) int {
	return Atoi(ReadString(path, BufSize))
}

// Atoi parses the leading optionally signed integer in s
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return n
}

// ReadByte returns the first byte of path and whether one was read
func ReadByte(path string) (byte, bool) {
	s, ok := readString(path, 1)
	if !ok || s == "" {
		return 0, false
	}

	return s[0], true
}
