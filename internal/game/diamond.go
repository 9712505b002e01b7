package game

import (
	"fmt"
	"strings"

	"mlb-gamecast/internal/domain"
)

const (
	occupiedMarker = "◆"
	emptyMarker    = "◇"
)

func marker(b Bases, base domain.Base) string {
	if _, ok := b.Runner(base); ok {
		return occupiedMarker
	}
	return emptyMarker
}

// RenderDiamond draws the infield with a marker per base. When anyone is on
// base a "Runners:" line follows, naming them in base order via name.
func RenderDiamond(b Bases, name func(id int) string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "            %s 2B\n", marker(b, domain.SecondBase))
	sb.WriteString("          /      \\\n")
	fmt.Fprintf(&sb, "   3B %s          %s 1B\n", marker(b, domain.ThirdBase), marker(b, domain.FirstBase))
	sb.WriteString("          \\      /\n")
	sb.WriteString("            ⌂ HP")

	var runners []string
	for _, base := range domain.Bases {
		if id, ok := b.Runner(base); ok {
			runners = append(runners, fmt.Sprintf("%s: %s", base.Ordinal(), name(id)))
		}
	}
	if len(runners) > 0 {
		sb.WriteString("\nRunners: ")
		sb.WriteString(strings.Join(runners, ", "))
	}

	return sb.String()
}
