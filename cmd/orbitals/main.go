// Command orbitals draws orbital glyphs for words.
//
//	orbitals HELLO WORLD            # HELLO.svg, WORLD.svg
//	orbitals -format png -size 512 LOVE
//	echo "hallo welt" | orbitals -alphabet de -sheet words.svg
//	orbitals -out - ANNA > anna.svg
//
// Words come from the arguments, or from standard input when there are
// none.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gogpu/orbitals"
	"github.com/gogpu/orbitals/internal/config"
	"github.com/gogpu/orbitals/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("orbitals", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		alphabet   = fs.String("alphabet", "", "alphabet wheel (default from config, en)")
		format     = fs.String("format", "svg", "output format: "+strings.Join(render.Formats(), ", "))
		size       = fs.Int("size", 0, "canvas width in pixels")
		radius     = fs.Float64("radius", 0, "wheel radius (default scales with size)")
		wheel      = fs.Bool("wheel", true, "draw the alphabet wheel")
		caption    = fs.Bool("caption", true, "draw the word below the wheel")
		out        = fs.String("out", ".", "output directory, or - for standard output")
		sheet      = fs.String("sheet", "", "write all words to one SVG contact sheet (- for standard output)")
		columns    = fs.Int("columns", render.DefaultColumns, "contact sheet columns")
		list       = fs.Bool("list", false, "list alphabets and exit")
		verbose    = fs.Bool("v", false, "log glyph construction")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		orbitals.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer orbitals.SetLogger(nil)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	if *list {
		for _, name := range reg.Names() {
			a, _ := reg.Lookup(name)
			fmt.Fprintf(stdout, "%-4s %-10s %2d  %s\n", a.Name(), a.Label(), a.Len(), a.Sample())
		}
		return nil
	}

	if *alphabet == "" {
		*alphabet = cfg.Alphabet
	}
	alpha, err := reg.Lookup(*alphabet)
	if err != nil {
		return err
	}

	words := fs.Args()
	if len(words) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read words: %w", err)
		}
		words = orbitals.Words(string(data))
	}
	if len(words) == 0 {
		return errors.New("no words given")
	}

	style := cfg.Style
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["size"] {
		if *size <= 0 {
			return fmt.Errorf("size must be positive, got %d", *size)
		}
		style.WheelRadius = style.WheelRadius * float64(*size) / float64(style.Size)
		style.Size = *size
	}
	if set["radius"] {
		if *radius <= 0 {
			return fmt.Errorf("radius must be positive, got %v", *radius)
		}
		style.WheelRadius = *radius
	}
	if err := cfg.CheckRadius(style.WheelRadius); err != nil {
		return err
	}
	if set["wheel"] {
		style.ShowWheel = *wheel
	}
	if set["caption"] {
		style.ShowCaption = *caption
	}

	frames, err := render.NewFrames(context.Background(), cfg.Builder(), alpha, words, style)
	if err != nil {
		return err
	}

	if *sheet != "" {
		if *format != "svg" {
			return fmt.Errorf("-sheet writes SVG only, got -format %s", *format)
		}
		return writeSheet(*sheet, frames, *columns, stdout)
	}

	r, err := render.ForFormat(*format)
	if err != nil {
		return err
	}
	if *out == "-" {
		if len(frames) != 1 {
			return fmt.Errorf("-out - takes one word, got %d", len(frames))
		}
		return r.Render(stdout, frames[0])
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	for i, f := range frames {
		var buf bytes.Buffer
		if err := r.Render(&buf, f); err != nil {
			return err
		}
		name := filepath.Join(*out, fileName(f.Word, i)+r.Ext())
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func writeSheet(name string, frames []render.Frame, columns int, stdout io.Writer) error {
	if name == "-" {
		return render.Sheet(stdout, frames, columns)
	}
	var buf bytes.Buffer
	if err := render.Sheet(&buf, frames, columns); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintln(stdout, name)
	return nil
}

// fileName turns a word into a file name, keeping letters and digits.
func fileName(word string, i int) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, word)
	if strings.Trim(name, "_") == "" {
		return fmt.Sprintf("glyph-%d", i+1)
	}
	return name
}
