package level

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
)

// ParseMatrix reads comma-separated integer rows, one per line. Every row is
// padded with zeros to the widest row seen, so an interior blank line becomes
// a row of zeros; trailing blank lines are dropped. Malformed cells are logged
// and read as 0.
func ParseMatrix(r io.Reader, name string, log *slog.Logger) ([][]int, error) {
	log = orDefault(log)
	var rows [][]int
	width := 0
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			rows = append(rows, nil)
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]int, len(fields))
		for i, field := range fields {
			field = strings.TrimSpace(field)
			v, err := strconv.Atoi(field)
			if err != nil || v < 0 {
				log.Warn("malformed cell, using 0", "file", name, "line", line, "column", i+1, "value", field)
				v = 0
			}
			row[i] = v
		}
		width = max(width, len(row))
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == nil {
		rows = rows[:len(rows)-1]
	}
	for y, row := range rows {
		if len(row) < width {
			padded := make([]int, width)
			copy(padded, row)
			rows[y] = padded
		}
	}
	return rows, nil
}

// loadMatrix reads a matrix file from fsys. A missing file is logged and
// yields an empty matrix.
func loadMatrix(fsys fs.FS, name string, log *slog.Logger) ([][]int, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		orDefault(log).Warn("level layer missing", "file", name)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMatrix(f, name, log)
}

func orDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
