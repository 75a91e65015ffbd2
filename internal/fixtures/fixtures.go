// Package fixtures loads targeting scenarios from markdown files. The
// format mirrors the hand-written battle notes the site's content team
// keeps: an arena heading, an "Enemy Team Positions" section and a list
// of test cases with the expected resolution per caster tile.
package fixtures

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

// Case is one scripted resolution: a caster standing on Caster, the
// expected symmetric tile (a cross-check of the symmetry map) and the
// tile the scan must resolve to. NoTarget marks cases expected to hit
// nothing.
type Case struct {
	Name     string
	Caster   game.TileID
	Mirror   game.TileID
	Target   game.TileID
	NoTarget bool
}

// Document is one parsed fixture file.
type Document struct {
	Title   string
	Enemies []game.TileID
	Cases   []Case
}

// ParseError reports a malformed fixture file with its position. It is
// raised at load time only; resolution never sees fixture input.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

var (
	enemyLine = regexp.MustCompile(`(?i)^character\s+\d+\s*:\s*tile\s+(\d+)$`)
	fieldLine = regexp.MustCompile(`^([a-z ]+?)\s*:\s*(.+)$`)
)

// ParseFile reads and parses the fixture file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse parses fixture markdown from r; name is used in error positions.
func Parse(r io.Reader, name string) (*Document, error) {
	const (
		sectionNone = iota
		sectionEnemies
		sectionCases
	)

	doc := &Document{}
	section := sectionNone
	var cur *Case
	var curSeen map[string]bool

	finishCase := func(line int) error {
		if cur == nil {
			return nil
		}
		for _, field := range []string{"character tile", "symmetrical tile", "expected target"} {
			if !curSeen[field] {
				return &ParseError{File: name, Line: line, Msg: fmt.Sprintf("case %q missing field %q", cur.Name, field)}
			}
		}
		doc.Cases = append(doc.Cases, *cur)
		cur = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "###"):
			if section != sectionCases {
				return nil, &ParseError{File: name, Line: lineNo, Msg: "case block outside the Test Cases section"}
			}
			if err := finishCase(lineNo); err != nil {
				return nil, err
			}
			cur = &Case{Name: strings.TrimSpace(strings.TrimPrefix(line, "###"))}
			curSeen = make(map[string]bool, 3)
		case strings.HasPrefix(line, "##"):
			if err := finishCase(lineNo); err != nil {
				return nil, err
			}
			switch h := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "##"))); {
			case strings.Contains(h, "enemy team positions"):
				section = sectionEnemies
			case strings.Contains(h, "test cases"):
				section = sectionCases
			default:
				section = sectionNone
			}
		case strings.HasPrefix(line, "#"):
			doc.Title = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		case section == sectionEnemies:
			m := enemyLine.FindStringSubmatch(line)
			if m == nil {
				return nil, &ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("malformed enemy position %q (want \"Character N: Tile <id>\")", line)}
			}
			id, err := parseTile(m[1])
			if err != nil {
				return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
			}
			doc.Enemies = append(doc.Enemies, id)
		case section == sectionCases && cur != nil:
			m := fieldLine.FindStringSubmatch(strings.ToLower(line))
			if m == nil {
				return nil, &ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("malformed case line %q", line)}
			}
			key, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if curSeen[key] {
				return nil, &ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("duplicate field %q", key)}
			}
			switch key {
			case "character tile":
				id, err := parseTile(value)
				if err != nil {
					return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
				}
				cur.Caster = id
			case "symmetrical tile":
				id, err := parseTile(value)
				if err != nil {
					return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
				}
				cur.Mirror = id
			case "expected target":
				if value == "none" {
					cur.NoTarget = true
				} else {
					id, err := parseTile(value)
					if err != nil {
						return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
					}
					cur.Target = id
				}
			default:
				return nil, &ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("unknown field %q", key)}
			}
			curSeen[key] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", name, err)
	}
	if err := finishCase(lineNo); err != nil {
		return nil, err
	}
	if len(doc.Enemies) == 0 {
		return nil, &ParseError{File: name, Line: lineNo, Msg: "no enemy positions found"}
	}
	if len(doc.Cases) == 0 {
		return nil, &ParseError{File: name, Line: lineNo, Msg: "no test cases found"}
	}
	return doc, nil
}

// Snapshot builds the occupancy the document describes: main-kind enemy
// tokens on every listed position.
func (d *Document) Snapshot() game.Occupancy {
	occ := make(game.Occupancy, len(d.Enemies))
	for _, t := range d.Enemies {
		occ[t] = game.Token{Team: game.TeamEnemy, Kind: game.KindMain}
	}
	return occ
}

func parseTile(s string) (game.TileID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed tile reference %q", s)
	}
	id := game.TileID(n)
	if !hexgrid.Valid(id) {
		return 0, fmt.Errorf("tile id %d outside 1..%d", n, hexgrid.TileCount)
	}
	return id, nil
}
