// meshtool inspects OBJ files with transformation scripts without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Faultbox/meshstep/internal/engine/model"
	"github.com/Faultbox/meshstep/internal/playback"
	"github.com/Faultbox/meshstep/pkg/formats"
	"github.com/Faultbox/meshstep/pkg/math"
	"github.com/Faultbox/meshstep/pkg/transform"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "script":
		cmdScript(args)
	case "normals":
		cmdNormals(args)
	case "snapshot", "snap":
		cmdSnapshot(args)
	case "play":
		cmdPlay(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - OBJ transformation script utility

Usage:
  meshtool <command> [options] <file.obj> [args]

Commands:
  info <file.obj>                Show counts, degenerate faces and bounds
  script <file.obj>              List transformation lines as parsed
  normals <file.obj>             Print face and vertex normals
  snapshot <file.obj> <cursor>   Print vertices after commands 0..cursor
  play [-n steps] <file.obj>     Step through the script like the viewer

Options:
  -scale f   Scale applied to the mesh before the script (default 1)

Examples:
  meshtool info cube.obj
  meshtool snapshot -scale 7 cube.obj 2
  meshtool play -n 10 cube.obj`)
}

// loaded is a parsed file ready for interpretation.
type loaded struct {
	mesh   *model.Mesh
	script *transform.Script
}

func load(path string, scale float64) (*loaded, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	mesh := model.NewMesh(obj)
	if scale != 1 {
		mesh = mesh.Scaled(float32(scale))
	}
	return &loaded{mesh: mesh, script: transform.NewScript(obj.Transforms)}, nil
}

// parseArgs parses the common flags and loads the file named by the first
// positional argument. Extra positional arguments are returned.
func parseArgs(fs *flag.FlagSet, args []string, minArgs int, usage string) (*loaded, []string) {
	scale := fs.Float64("scale", 1, "Scale applied to the mesh before the script")
	fs.Parse(args)

	if fs.NArg() < minArgs {
		fmt.Fprintln(os.Stderr, "Usage: meshtool "+usage)
		os.Exit(1)
	}

	l, err := load(fs.Arg(0), *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return l, fs.Args()[1:]
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	l, _ := parseArgs(fs, args, 1, "info <file.obj>")
	printInfo(os.Stdout, l)
}

func cmdScript(args []string) {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	l, _ := parseArgs(fs, args, 1, "script <file.obj>")
	printScript(os.Stdout, l.script)
}

func cmdNormals(args []string) {
	fs := flag.NewFlagSet("normals", flag.ExitOnError)
	l, _ := parseArgs(fs, args, 1, "normals <file.obj>")
	printNormals(os.Stdout, l.mesh)
}

func cmdSnapshot(args []string) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	l, rest := parseArgs(fs, args, 2, "snapshot <file.obj> <cursor>")

	cursor, err := strconv.Atoi(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cursor %q\n", rest[0])
		os.Exit(1)
	}
	if clamped := l.script.ClampCursor(cursor); clamped != cursor {
		fmt.Fprintf(os.Stderr, "cursor %d clamped to %d\n", cursor, clamped)
		cursor = clamped
	}

	p := playback.New(l.mesh.Vertices, l.script)
	printVertices(os.Stdout, p.Snapshot(cursor))
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	steps := fs.Int("n", 0, "Number of steps (0 = one full cycle)")
	l, _ := parseArgs(fs, args, 1, "play [-n steps] <file.obj>")

	n := *steps
	if n <= 0 {
		n = l.script.Len() + 1
	}
	play(os.Stdout, playback.New(l.mesh.Vertices, l.script), n)
}

func printInfo(w io.Writer, l *loaded) {
	b := l.mesh.Bounds()
	skipped := 0
	for _, e := range l.script.Entries() {
		if e.Skipped() {
			skipped++
		}
	}

	fmt.Fprintf(w, "Vertices:   %d\n", len(l.mesh.Vertices))
	fmt.Fprintf(w, "Faces:      %d\n", len(l.mesh.Faces))
	fmt.Fprintf(w, "Transforms: %d (%d skipped)\n", l.script.Len(), skipped)
	fmt.Fprintf(w, "Degenerate: %v\n", l.mesh.Degenerate)
	fmt.Fprintf(w, "Bounds:     %v .. %v\n", b.Min, b.Max)
}

func printScript(w io.Writer, s *transform.Script) {
	for i, e := range s.Entries() {
		switch {
		case e.Err != nil:
			fmt.Fprintf(w, "%3d  %-24s error: %v\n", i, e.Line, e.Err)
		case e.Skipped():
			fmt.Fprintf(w, "%3d  %-24s %s (skipped)\n", i, e.Line, e.Command)
		default:
			fmt.Fprintf(w, "%3d  %-24s %s\n", i, e.Line, e.Command)
		}
	}
}

func printNormals(w io.Writer, m *model.Mesh) {
	fmt.Fprintln(w, "Face normals:")
	for i, f := range m.Faces {
		fmt.Fprintf(w, "  %d %v: (%g, %g, %g)\n", i, f.Indices(), f.Normal.X, f.Normal.Y, f.Normal.Z)
	}
	fmt.Fprintln(w, "Vertex normals:")
	for i, n := range m.VertexNormals {
		fmt.Fprintf(w, "  %d: (%g, %g, %g)\n", i, n.X, n.Y, n.Z)
	}
}

func printVertices(w io.Writer, vertices []math.Vec3) {
	for i, v := range vertices {
		fmt.Fprintf(w, "%d: (%g, %g, %g)\n", i, v.X, v.Y, v.Z)
	}
}

func play(w io.Writer, p *playback.Player, steps int) {
	for i := 0; i < steps; i++ {
		cursor, wrapped := p.Step()
		line := "base"
		if e, ok := p.Entry(); ok {
			line = e.Line
		}

		first := "-"
		if cur := p.Current(); len(cur) > 0 {
			first = fmt.Sprintf("(%g, %g, %g)", cur[0].X, cur[0].Y, cur[0].Z)
		}

		suffix := ""
		if wrapped {
			suffix = " (wrapped)"
		}
		fmt.Fprintf(w, "step %d: cursor %d %s -> %s%s\n", i+1, cursor, line, first, suffix)
	}
}
