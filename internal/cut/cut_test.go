package cut

import (
	"testing"

	"github.com/tirithen/cnccoder/internal/geom"
	"github.com/tirithen/cnccoder/internal/tool"
)

func metricContext() Context {
	return Context{
		Units: geom.Metric,
		Tool:  tool.Cylindrical(geom.Metric, 50.0, 4.0, geom.Clockwise, 5000.0, 400.0),
		ZSafe: 10.0,
	}
}

func render(t *testing.T, c Cut, ctx Context) []string {
	t.Helper()

	instructions, err := c.ToInstructions(ctx)
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}

	lines := make([]string, 0, len(instructions))
	for _, instruction := range instructions {
		lines = append(lines, instruction.Gcode())
	}
	return lines
}

func renderError(t *testing.T, c Cut, ctx Context) error {
	t.Helper()

	_, err := c.ToInstructions(ctx)
	if err == nil {
		t.Fatal("expected cut to fail")
	}
	return err
}
