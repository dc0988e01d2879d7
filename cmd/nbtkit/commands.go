package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/nbtkit"
	"github.com/arloliu/nbtkit/internal/config"
	"github.com/arloliu/nbtkit/nbt"
	"github.com/arloliu/nbtkit/tag"
	"github.com/arloliu/nbtkit/text"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

func (a *app) decode(path string) (*nbt.Document, error) {
	doc, err := nbtkit.DecodeFile(path, a.decodeOptions()...)
	if err != nil {
		return nil, err
	}

	a.logger.Info("decoded",
		"path", path,
		"endianness", doc.Endianness,
		"compression", doc.Compression,
	)

	return doc, nil
}

// output writes through render to path, or to stdout for "-".
func (a *app) output(path string, render func(w *bufio.Writer) error) error {
	if path == stdoutPath {
		w := bufio.NewWriter(a.stdout)
		if err := render(w); err != nil {
			return err
		}

		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	a.logger.Info("wrote", "path", path)

	return f.Close()
}

func (a *app) snbt(args []string) error {
	fs := a.newCommandFlags("snbt", "[-o out] [--compact] <file>")
	out := fs.StringP("output", "o", stdoutPath, "output path, - for stdout")
	compact := fs.Bool("compact", false, "single-line output")

	pos, err := parseCommand(fs, args, 1)
	if err != nil {
		return err
	}

	doc, err := a.decode(pos[0])
	if err != nil {
		return err
	}

	return a.output(*out, func(w *bufio.Writer) error {
		if err := text.WriteSNBT(w, doc.Root, !*compact); err != nil {
			return err
		}

		return w.WriteByte('\n')
	})
}

func (a *app) json(args []string) error {
	fs := a.newCommandFlags("json", "[-o out] [--compact] <file>")
	out := fs.StringP("output", "o", "", "output path, - for stdout (default <file>.json)")
	compact := fs.Bool("compact", false, "single-line output")

	pos, err := parseCommand(fs, args, 1)
	if err != nil {
		return err
	}

	doc, err := a.decode(pos[0])
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = pos[0] + ".json"
	}

	return a.output(path, func(w *bufio.Writer) error {
		if err := text.WriteTypedJSON(w, doc.Root, !*compact); err != nil {
			return err
		}

		return w.WriteByte('\n')
	})
}

func (a *app) pack(args []string) error {
	fs := a.newCommandFlags("pack", "[-o out] [--name root] [--gzip=bool] [--endianness big|little] <file.json>")
	out := fs.StringP("output", "o", "", "output path (default input without .json)")
	name := fs.String("name", "", "root tag name")
	gzip := fs.Bool("gzip", true, "gzip the output (default from extension rules)")
	endianness := fs.String("endianness", "", "big or little (default from extension rules)")

	pos, err := parseCommand(fs, args, 1)
	if err != nil {
		return err
	}

	src := pos[0]
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	root, err := nbtkit.FromJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	dst := *out
	if dst == "" {
		dst = packTarget(src)
	}

	order, compressed := a.cfg.Framing(dst)
	if fs.Changed("gzip") {
		compressed = *gzip
	}
	if fs.Changed("endianness") {
		order, err = config.ParseEndianness(*endianness)
		if err != nil {
			return err
		}
	}

	var opts []nbt.Option
	if a.cfg.ModifiedUTF8 {
		opts = append(opts, nbt.WithModifiedUTF8())
	}

	if err := nbtkit.WriteFile(dst, *name, root, compressed, order, opts...); err != nil {
		return err
	}

	a.logger.Info("packed", "path", dst, "endianness", order, "gzip", compressed)

	return nil
}

func (a *app) info(args []string) error {
	fs := a.newCommandFlags("info", "<file>")

	pos, err := parseCommand(fs, args, 1)
	if err != nil {
		return err
	}

	doc, err := a.decode(pos[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "name:        %q\n", doc.Name)
	fmt.Fprintf(a.stdout, "root:        %s\n", doc.Root.Type())
	fmt.Fprintf(a.stdout, "endianness:  %s\n", doc.Endianness)
	fmt.Fprintf(a.stdout, "compression: %s\n", doc.Compression)
	fmt.Fprintf(a.stdout, "fingerprint: %016x\n", nbtkit.Fingerprint(doc.Root))
	if c, ok := doc.Compound(); ok {
		fmt.Fprintf(a.stdout, "keys:        %s\n", strings.Join(c.Keys(), ", "))
	}

	return nil
}

func (a *app) verify(args []string) error {
	fs := a.newCommandFlags("verify", "<a> <b>")

	pos, err := parseCommand(fs, args, 2)
	if err != nil {
		return err
	}

	left, err := a.decode(pos[0])
	if err != nil {
		return err
	}
	right, err := a.decode(pos[1])
	if err != nil {
		return err
	}

	if !tag.Equal(left.Root, right.Root) {
		fmt.Fprintln(a.stdout, "differ")
		return errDiffer
	}
	fmt.Fprintln(a.stdout, "equal")

	return nil
}

// packTarget strips a trailing .json, or appends .nbt when there is none.
func packTarget(src string) string {
	if trimmed, ok := strings.CutSuffix(src, ".json"); ok && trimmed != "" {
		return trimmed
	}

	return src + ".nbt"
}
