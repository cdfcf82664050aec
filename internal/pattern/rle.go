package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

const rleLineWidth = 70

// Caps on a single run count and on the cells a body may expand to.
const (
	maxRun   = 1 << 20
	maxCells = 1 << 22
)

// ParseRLE reads the run-length encoded format:
//
//	#N Glider
//	x = 3, y = 3, rule = B3/S23
//	bo$2bo$3o!
func ParseRLE(data string) (*Pattern, error) {
	p := &Pattern{}
	var body strings.Builder
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "#"):
			if name, ok := strings.CutPrefix(line, "#N"); ok {
				p.Name = strings.TrimSpace(name)
			}
		case strings.HasPrefix(line, "x") && strings.Contains(line, "="):
			if err := parseHeader(p, line); err != nil {
				return nil, err
			}
		default:
			body.WriteString(line)
		}
	}

	x, y, run := 0, 0, 0
loop:
	for _, ch := range body.String() {
		switch {
		case ch >= '0' && ch <= '9':
			run = run*10 + int(ch-'0')
			if run > maxRun {
				return nil, fmt.Errorf("%w: run count over %d", ErrMalformed, maxRun)
			}
			continue
		case ch == 'b' || ch == '.':
			x += max(run, 1)
			if x > maxRun {
				return nil, fmt.Errorf("%w: row wider than %d", ErrMalformed, maxRun)
			}
		case ch == '$':
			y += max(run, 1)
			x = 0
			if y > maxRun {
				return nil, fmt.Errorf("%w: more than %d rows", ErrMalformed, maxRun)
			}
		case ch == '!':
			break loop
		case ch == 'o' || (ch >= 'A' && ch <= 'X'):
			if x+max(run, 1) > maxRun {
				return nil, fmt.Errorf("%w: row wider than %d", ErrMalformed, maxRun)
			}
			if len(p.Cells)+max(run, 1) > maxCells {
				return nil, fmt.Errorf("%w: more than %d live cells", ErrMalformed, maxCells)
			}
			for i := 0; i < max(run, 1); i++ {
				p.Cells = append(p.Cells, Point{X: x, Y: y})
				x++
			}
		case ch == ' ' || ch == '\t' || ch == '\r':
		default:
			return nil, fmt.Errorf("%w: unexpected %q in rle body", ErrMalformed, ch)
		}
		run = 0
	}
	p.normalize()
	return p, nil
}

func parseHeader(p *Pattern, line string) error {
	for _, field := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("%w: header field %q", ErrMalformed, field)
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 || n > maxRun {
				return fmt.Errorf("%w: %s = %q", ErrMalformed, key, val)
			}
			if key == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			p.Rule = val
		}
	}
	return nil
}

// EncodeRLE writes p in RLE with a header line. Trailing dead cells on a row
// are omitted and consecutive row ends are merged. The box grows to hold
// cells that lie outside Width by Height.
func EncodeRLE(p *Pattern) string {
	p = p.bounded()
	grid := make([][]bool, p.Height)
	for y := range grid {
		grid[y] = make([]bool, p.Width)
	}
	for _, c := range p.Cells {
		grid[c.Y][c.X] = true
	}

	var tokens []string
	emit := func(n int, tag byte) {
		if n == 0 {
			return
		}
		if n == 1 {
			tokens = append(tokens, string(tag))
			return
		}
		tokens = append(tokens, strconv.Itoa(n)+string(tag))
	}

	pendingRows := 0
	for y, row := range grid {
		last := -1
		for x, alive := range row {
			if alive {
				last = x
			}
		}
		if last < 0 {
			if y > 0 {
				pendingRows++
			}
			continue
		}
		if y > 0 {
			emit(pendingRows+1, '$')
		}
		pendingRows = 0
		run, cur := 0, row[0]
		for x := 0; x <= last; x++ {
			if row[x] == cur {
				run++
				continue
			}
			emit(run, tag(cur))
			run, cur = 1, row[x]
		}
		emit(run, tag(cur))
	}
	tokens = append(tokens, "!")

	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString("#N " + p.Name + "\n")
	}
	rule := p.Rule
	if rule == "" {
		rule = "B3/S23"
	}
	fmt.Fprintf(&sb, "x = %d, y = %d, rule = %s\n", p.Width, p.Height, rule)
	width := 0
	for _, t := range tokens {
		if width+len(t) > rleLineWidth {
			sb.WriteByte('\n')
			width = 0
		}
		sb.WriteString(t)
		width += len(t)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func tag(alive bool) byte {
	if alive {
		return 'o'
	}
	return 'b'
}
