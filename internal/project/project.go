package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tirithen/cnccoder/internal/camotics"
	"github.com/tirithen/cnccoder/internal/program"
)

// DefaultName is used when the program metadata does not name the
// project.
const DefaultName = "untitled"

// Name returns the project name the program will be written under.
func Name(p *program.Program) string {
	if name := p.Meta().Name; name != "" {
		return name
	}
	return DefaultName
}

// Files returns the paths Write will produce for the program, the
// G-code file first and the Camotics project second.
func Files(p *program.Program, dir string) (string, string) {
	name := Name(p)
	return filepath.Join(dir, name+".gcode"), filepath.Join(dir, name+".camotics")
}

// Write renders the program and stores the G-code and Camotics
// project files in dir. Each file is flushed to stable storage before
// Write returns.
func Write(p *program.Program, resolution float64, dir string) error {
	gcodePath, camoticsPath := Files(p, dir)

	gcodeText, err := p.ToGcode()
	if err != nil {
		return fmt.Errorf("render gcode: %w", err)
	}

	simulation, err := camotics.FromProgram(Name(p), p, resolution).ToJSON()
	if err != nil {
		return err
	}

	if err := writeDurable(camoticsPath, simulation); err != nil {
		return err
	}
	return writeDurable(gcodePath, []byte(gcodeText))
}

// writeDurable stores the whole buffer and flushes it before closing,
// so a crash right after Write cannot leave a torn project on disk.
func writeDurable(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
