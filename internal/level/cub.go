/*
 * Copyright (C) 2023 by Jason Figge
 */

package level

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"ray-casting/internal/geometry"
)

var (
	ErrTruncated      = errors.New("eof while reading headers")
	ErrMissingHeader  = errors.New("missing header")
	ErrBadHeader      = errors.New("incorrect header")
	ErrInvalidCell    = errors.New("invalid char in map")
	ErrNoSpawn        = errors.New("map without spawn point")
	ErrMultipleSpawns = errors.New("more than one spawn point found")
)

// TextureLoader resolves a texture reference from a map header.
type TextureLoader func(ref string) (Texture, error)

// faceHeaders lists the texture header for each wall face, in
// geometry.Direction order.
var faceHeaders = [4]string{
	geometry.N: "NO",
	geometry.S: "SO",
	geometry.E: "EA",
	geometry.W: "WE",
}

// LoadFile opens and parses a .cub map file.
func LoadFile(path string, textures TextureLoader) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f, textures)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", path, err)
	}
	return m, nil
}

// Load parses a .cub map: a block of "KEY value" headers followed by the
// grid rows. Textures are resolved through the loader; a nil loader leaves
// them unset. The result is validated before it is returned.
func Load(r io.Reader, textures TextureLoader) (*Map, error) {
	scanner := bufio.NewScanner(r)
	headers, first, err := readHeaders(scanner)
	if err != nil {
		return nil, err
	}

	m := &Map{}
	if m.Resolution, err = parseResolution(headers); err != nil {
		return nil, err
	}
	if m.Floor, err = colorHeader(headers, "F"); err != nil {
		return nil, err
	}
	if m.Ceiling, err = colorHeader(headers, "C"); err != nil {
		return nil, err
	}

	for d, key := range faceHeaders {
		ref, ok := headers[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s texture", ErrMissingHeader, key)
		}
		if textures == nil {
			continue
		}
		if m.Textures[d], err = textures(ref); err != nil {
			return nil, fmt.Errorf("failed to load %s texture %q: %w", key, ref, err)
		}
	}
	ref, ok := headers["S"]
	if !ok {
		return nil, fmt.Errorf("%w: S texture", ErrMissingHeader)
	}
	if textures != nil {
		if m.Sprite, err = textures(ref); err != nil {
			return nil, fmt.Errorf("failed to load sprite texture %q: %w", ref, err)
		}
	}

	rows := []string{first}
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("io error while reading map data: %w", err)
	}
	if m.Cells, m.Spawn, err = parseGrid(rows); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// readHeaders consumes header lines and returns them with the first grid row.
func readHeaders(scanner *bufio.Scanner) (map[string]string, string, error) {
	headers := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if !unicode.IsLetter([]rune(line)[0]) {
			return headers, line, nil
		}
		i := strings.IndexByte(line, ' ')
		if i < 0 {
			return nil, "", fmt.Errorf("%w: %q", ErrBadHeader, line)
		}
		headers[line[:i]] = strings.TrimLeft(line[i:], " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("io error: %w", err)
	}
	return nil, "", ErrTruncated
}

func parseResolution(headers map[string]string) (Resolution, error) {
	rs, ok := headers["R"]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: no resolution", ErrMissingHeader)
	}
	xy := strings.Split(rs, " ")
	if len(xy) != 2 {
		return Resolution{}, fmt.Errorf("%w: R line: two fields expected", ErrBadHeader)
	}
	w, err := strconv.Atoi(xy[0])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: R width: %w", ErrBadHeader, err)
	}
	h, err := strconv.Atoi(xy[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: R height: %w", ErrBadHeader, err)
	}
	return Resolution{Width: w, Height: h}, nil
}

func colorHeader(headers map[string]string, key string) (color.RGBA, error) {
	v, ok := headers[key]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %s color", ErrMissingHeader, key)
	}
	c, err := ParseRGB(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}

// ParseRGB reads an opaque colour written as "r,g,b".
func ParseRGB(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: incorrect format for RGB value %q", ErrBadHeader, s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: rgb value %q not a u8", ErrBadHeader, p)
		}
		ch[i] = uint8(n)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, nil
}

func parseGrid(rows []string) ([][]Cell, Spawn, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, Spawn{}, ErrEmptyMap
	}

	width := 0
	runes := make([][]rune, len(rows))
	for y, row := range rows {
		runes[y] = []rune(row)
		width = max(width, len(runes[y]))
	}

	var spawn *Spawn
	cells := make([][]Cell, len(rows))
	for y, row := range runes {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
		for x, r := range row {
			switch r {
			case '0':
				cells[y][x] = Space
			case '1', ' ':
				cells[y][x] = Wall
			case '2':
				cells[y][x] = Item
			default:
				d, ok := geometry.ParseDirection(r)
				if !ok {
					return nil, Spawn{}, fmt.Errorf("%w: %q at (%d, %d)", ErrInvalidCell, r, x, y)
				}
				if spawn != nil {
					return nil, Spawn{}, fmt.Errorf("%w: (%d, %d) and (%d, %d)", ErrMultipleSpawns, spawn.X, spawn.Y, x, y)
				}
				spawn = &Spawn{X: x, Y: y, Direction: d}
				cells[y][x] = Space
			}
		}
	}
	if spawn == nil {
		return nil, Spawn{}, ErrNoSpawn
	}
	return cells, *spawn, nil
}
