// Package main implements boxplan, a small inspection tool for box
// compositions. It loads a theme, composes a decorated box from the command
// line, and prints the resulting render plan as JSON.
//
// Usage:
//
//	boxplan -preset warning -title "Watch out" "first item" "second item"
//	boxplan -theme custom.yaml -list
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/boxtest"
	"github.com/go-drift/showbox/pkg/graphics"
	"github.com/go-drift/showbox/pkg/theme"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "boxplan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("boxplan", flag.ContinueOnError)
	themePath := fs.String("theme", "", "theme file (default: showbox.yaml in the current directory, if present)")
	preset := fs.String("preset", "plain", "preset name to compose with")
	title := fs.String("title", "", "title text (empty suppresses the title)")
	footer := fs.String("footer", "", "footer text (empty suppresses the footer)")
	width := fs.String("width", "", "container width, absolute (\"320\") or ratio (\"80%\")")
	breakable := fs.Bool("breakable", false, "mark the box breakable across pages")
	list := fs.Bool("list", false, "list available presets and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	th, err := loadTheme(*themePath)
	if err != nil {
		return err
	}

	if *list {
		for _, name := range th.Names() {
			fmt.Println(name)
		}
		return nil
	}

	style, err := th.Style(*preset)
	if err != nil {
		return err
	}

	opts := box.Options{
		Style:     style,
		Title:     *title,
		Footer:    *footer,
		Breakable: *breakable,
	}
	for _, item := range fs.Args() {
		opts.Items = append(opts.Items, item)
	}
	if *width != "" {
		w, err := parseWidth(*width)
		if err != nil {
			return err
		}
		opts.Width = w
	}

	plan, err := box.Compose(opts, &boxtest.FontMeasurer{})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return theme.LoadOptional(cwd)
	}
	return theme.Load(path)
}

func parseWidth(s string) (graphics.Length, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return graphics.Length{}, fmt.Errorf("invalid width %q", s)
		}
		return graphics.Ratio(v / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return graphics.Length{}, fmt.Errorf("invalid width %q", s)
	}
	return graphics.Abs(v), nil
}
