// Command scramble randomly changes the case of letters read from files and, when asked to,
// shouts after words.
//
//	scramble [-r|--ratio=R] [-s|--shouty[=S]|--loud[=S]] [-o|--output=FILE] [-S|--slow] [-v|--verbose] FILES
//
// A FILES entry of "-" reads standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"
	"unicode"

	"github.com/napalu/optscan"
	"github.com/napalu/optscan/internal/util"
)

const maxShout = 64

const usage = "Usage:\n\n[-r|--ratio=] [-s|--shouty=|--loud=] [-o|--output=] [-S|--slow] [-v|--verbose] FILES"

type Config struct {
	Ratio   float64 `optscan:"names:r,ratio;desc:Probability that a character has its case changed"`
	Shouty  float64 `optscan:"names:s,shouty,loud;value:optional;desc:Probability of each additional '!' after a word"`
	Output  string  `optscan:"names:o,output;desc:File to write to instead of standard output"`
	Slow    bool    `optscan:"names:S,slow;desc:Pause after every character"`
	Verbose bool    `optscan:"names:v,verbose;desc:Log progress to standard error"`
}

func main() {
	cfg := &Config{Ratio: 0.5}
	binding, err := optscan.OptionsFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := binding.Parse(os.Args[1:], optscan.WithRedefinition(false))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shouty, _ := binding.Option("Shouty")
	if v, found := result.Lookup(shouty); found && !v.HasValue {
		cfg.Shouty = 0.5
	}

	level := new(slog.LevelVar)
	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	for _, entry := range result.Options() {
		logger.Debug("option", "name", entry.Option.String(), "value", entry.Value.Text, "hasValue", entry.Value.HasValue)
	}

	files := result.Positional()
	if len(files) == 0 {
		if util.IsTerminal(os.Stdin) {
			fmt.Println(usage)
			return
		}
		files = []string{"-"}
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.OpenFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	s := &scrambler{
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		ratio:      cfg.Ratio,
		shoutiness: cfg.Shouty,
		slow:       cfg.Slow,
	}
	for _, file := range files {
		logger.Debug("processing", "file", file)
		if err := processFile(file, w, s); err != nil {
			w.Flush()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func processFile(name string, w *bufio.Writer, s *scrambler) error {
	if name == "-" {
		return s.scramble(bufio.NewReader(os.Stdin), w)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.scramble(bufio.NewReader(f), w)
}

type scrambler struct {
	rnd        *rand.Rand
	ratio      float64
	shoutiness float64
	slow       bool
}

func (s *scrambler) scramble(r io.RuneReader, w *bufio.Writer) error {
	var last rune
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if s.rnd.Float64() < s.ratio {
			if s.rnd.Float64() <= 0.5 {
				ch = unicode.ToUpper(ch)
			} else {
				ch = unicode.ToLower(ch)
			}
		}

		// only shout between a word and the whitespace after it
		if s.shoutiness > 0 && unicode.IsLetter(last) && unicode.IsSpace(ch) {
			for n := 0; n < maxShout && s.rnd.Float64() < s.shoutiness; n++ {
				w.WriteByte('!')
			}
		}

		w.WriteRune(ch)
		last = ch

		if s.slow {
			w.Flush()
			time.Sleep(100 * time.Millisecond)
		}
	}
}
