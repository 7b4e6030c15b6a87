// Command ansiup converts ANSI colored terminal output, such as build logs,
// into an HTML fragment or a standalone HTML page.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bengarrett/ansiup"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"
)

var version string

func init() {
	log.SetFlags(0)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.SetPrefix("\x1b[34;1mansiup\x1b[0m ")
	} else {
		log.SetPrefix("ansiup ")
	}
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatalln("Error:", err)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "ansiup",
		Usage:     "convert ANSI colored terminal output to HTML",
		ArgsUsage: "[FILE...]",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "charset",
				Aliases: []string{"c"},
				Value:   "utf8",
				Usage:   "input `CHARSET`, one of utf8, cp437, cp850 or iso-8859-1",
				EnvVars: []string{"ANSIUP_CHARSET"},
			},
			&cli.BoolFlag{Name: "raw", Usage: "do not escape the HTML special characters of the text"},
			&cli.BoolFlag{Name: "linkify", Aliases: []string{"l"}, Usage: "turn http and https URLs into links"},
			&cli.BoolFlag{Name: "sanitize", Usage: "remove any HTML other than the styled spans and links"},
			&cli.BoolFlag{Name: "document", Aliases: []string{"d"}, Usage: "write a standalone HTML page with a stylesheet"},
			&cli.BoolFlag{Name: "plain", Usage: "remove the escape sequences and write plain text"},
			prefixFlag(),
			paletteFlag(),
		},
		Action: convert,
		Commands: []*cli.Command{
			{
				Name:   "css",
				Usage:  "print the stylesheet for the HTML classes",
				Flags:  []cli.Flag{prefixFlag(), paletteFlag()},
				Action: stylesheet,
			},
		},
	}
}

func prefixFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "prefix",
		Usage: "`PREFIX` of the decoration class names, for example " + ansiup.StylePrefix,
	}
}

func paletteFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "palette",
		Aliases: []string{"p"},
		Value:   "cga",
		Usage:   "stylesheet `PALETTE`, either cga or xterm",
		EnvVars: []string{"ANSIUP_PALETTE"},
	}
}

// convert is the main commandline command.
func convert(c *cli.Context) error {
	cm, err := ansiup.Charset(c.String("charset"))
	if err != nil {
		return err
	}
	texts, err := inputs(c, cm)
	if err != nil {
		return err
	}
	w := c.App.Writer
	if c.Bool("plain") {
		for _, s := range texts {
			if _, err := io.WriteString(w, ansiup.Plain(s)); err != nil {
				return fmt.Errorf("write plain: %w", err)
			}
		}
		return nil
	}
	// one engine for every input so styles carry across files
	e := ansiup.New(options(c)...)
	var b strings.Builder
	for _, s := range texts {
		b.WriteString(e.HTML(s))
	}
	fragment := b.String()
	if c.Bool("sanitize") {
		fragment = ansiup.Sanitize(fragment)
	}
	if c.Bool("document") {
		pal, err := ansiup.ParsePalette(c.String("palette"))
		if err != nil {
			return err
		}
		return ansiup.Document(w, fragment, pal, c.String("prefix"))
	}
	if _, err := io.WriteString(w, fragment); err != nil {
		return fmt.Errorf("write fragment: %w", err)
	}
	return nil
}

func options(c *cli.Context) []ansiup.Option {
	opts := []ansiup.Option{ansiup.WithPrefix(c.String("prefix"))}
	if !c.Bool("raw") {
		opts = append(opts, ansiup.WithText(ansiup.EscapeForHTML))
	}
	if c.Bool("linkify") {
		opts = append(opts, ansiup.WithText(ansiup.Linkify))
	}
	return opts
}

// inputs reads the named files, or the standard input when there are none.
// The name "-" also reads the standard input.
func inputs(c *cli.Context, cm *charmap.Charmap) ([]string, error) {
	names := c.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	texts := make([]string, 0, len(names))
	for _, name := range names {
		s, err := read(c.App.Reader, name, cm)
		if err != nil {
			return nil, err
		}
		texts = append(texts, s)
	}
	return texts, nil
}

func read(stdin io.Reader, name string, cm *charmap.Charmap) (string, error) {
	if name == "-" {
		return ansiup.Decode(stdin, cm)
	}
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	defer f.Close()
	s, err := ansiup.Decode(f, cm)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return s, nil
}

func stylesheet(c *cli.Context) error {
	pal, err := ansiup.ParsePalette(c.String("palette"))
	if err != nil {
		return err
	}
	css, err := ansiup.CSS(pal, c.String("prefix"))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(c.App.Writer, css); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
