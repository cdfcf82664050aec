package pattern

import (
	"fmt"
	"strings"
)

// ParsePlaintext reads the .cells format: '!' comment lines, 'O' or '*' for
// live cells and '.' for dead ones.
func ParsePlaintext(data string) (*Pattern, error) {
	p := &Pattern{}
	y, height := 0, 0
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for x, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, Point{X: x, Y: y})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at line %d", ErrMalformed, ch, y+1)
			}
		}
		if len(line) > p.Width {
			p.Width = len(line)
		}
		y++
		if line != "" {
			height = y
		}
	}
	p.Height = height
	p.normalize()
	return p, nil
}

// EncodePlaintext writes p in the .cells format. The box grows to hold
// cells that lie outside Width by Height.
func EncodePlaintext(p *Pattern) string {
	p = p.bounded()
	rows := make([][]byte, p.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", p.Width))
	}
	for _, c := range p.Cells {
		rows[c.Y][c.X] = 'O'
	}
	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString("!Name: " + p.Name + "\n")
	}
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}
