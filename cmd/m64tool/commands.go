package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/m64kit/m64"
	"github.com/m64kit/m64/compress"
	"github.com/m64kit/m64/format"
	"github.com/m64kit/m64/movie"
)

var errInputsDiffer = errors.New("inputs differ")

func cmdInfo(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: info <movie>", errUsage)
	}

	m, err := m64.ReadFile(args[0])
	if err != nil {
		return err
	}

	writeInfo(stdout, m)

	return nil
}

func writeInfo(w io.Writer, m movie.Movie) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Version:\t%d (extended %d)\n", m.Metadata.Version(), m.Metadata.ExtendedVersion())
	if v1, ok := m.Metadata.Extension.V1(); ok {
		fmt.Fprintf(tw, "WiiVC:\t%t\n", v1.WiiVCEmulationMode())
		fmt.Fprintf(tw, "Authorship:\t0x%08X\n", v1.Data.AuthorshipInfo)
	}

	fmt.Fprintf(tw, "ROM:\t%s\n", m.Game.ROMName)
	fmt.Fprintf(tw, "ROM CRC32:\t%08X\n", m.Game.ROMCRC32)
	fmt.Fprintf(tw, "ROM country:\t0x%04X\n", m.Game.ROMCountry)

	fmt.Fprintf(tw, "Video plugin:\t%s\n", m.Plugins.VideoPlugin)
	fmt.Fprintf(tw, "Sound plugin:\t%s\n", m.Plugins.SoundPlugin)
	fmt.Fprintf(tw, "Input plugin:\t%s\n", m.Plugins.InputPlugin)
	fmt.Fprintf(tw, "RSP plugin:\t%s\n", m.Plugins.RSPPlugin)

	r := m.Recording
	fmt.Fprintf(tw, "Author:\t%s\n", r.AuthorName)
	fmt.Fprintf(tw, "Description:\t%s\n", r.Description)
	fmt.Fprintf(tw, "UID:\t%d\n", r.UID)
	fmt.Fprintf(tw, "Start:\t%s\n", r.StartType)
	fmt.Fprintf(tw, "VIs:\t%d at %d/s\n", r.VerticalInterrupts, r.VIsPerSecond)
	fmt.Fprintf(tw, "Rerecords:\t%d\n", m.TotalRerecordCount())
	fmt.Fprintf(tw, "Controllers:\t%d\n", r.ControllerCount)
	for i := range r.ControllerCount {
		c := int(i)
		fmt.Fprintf(tw, "  Controller %d:\tpresent=%t mempak=%t rumblepak=%t\n", c+1,
			r.ControllerFlags.Present(c), r.ControllerFlags.HasMempak(c), r.ControllerFlags.HasRumblepak(c))
	}
	fmt.Fprintf(tw, "Input samples:\t%d\n", r.ControllerInputSamples)
	fmt.Fprintf(tw, "Input records:\t%d\n", len(m.Inputs))
	fmt.Fprintf(tw, "Frames:\t%d\n", m.FrameCount())
	fmt.Fprintf(tw, "Input digest:\t%016x\n", m.InputDigest())
}

func cmdFrames(args []string, cfg config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("frames", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limit := fs.Int("n", cfg.FrameLimit, "number of frames to print, 0 for all")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 || *limit < 0 {
		return fmt.Errorf("%w: frames [-n N] <movie>", errUsage)
	}

	m, err := m64.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	for i, frame := range m.Frames() {
		if *limit > 0 && i >= *limit {
			break
		}
		fmt.Fprintf(stdout, "%6d", i)
		for _, in := range frame {
			fmt.Fprintf(stdout, "  %s", in)
		}
		fmt.Fprintln(stdout)
	}

	return nil
}

func cmdPack(args []string, cfg config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	codec := fs.String("c", "", "compression: none, zstd, s2 or lz4 (default from config)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: pack [-c codec] <in> <out>", errUsage)
	}

	ct := cfg.Compression
	if *codec != "" {
		var ok bool
		if ct, ok = format.ParseCompressionType(*codec); !ok {
			return fmt.Errorf("%w: unsupported compression %q", errUsage, *codec)
		}
	}

	raw, err := m64.ReadRawFile(fs.Arg(0))
	if err != nil {
		return err
	}

	if err := m64.WriteRawFile(fs.Arg(1), raw, m64.WithCompression(ct)); err != nil {
		return err
	}

	info, err := os.Stat(fs.Arg(1))
	if err != nil {
		return err
	}

	stats := compress.CompressionStats{
		Algorithm:      ct,
		OriginalSize:   int64(raw.Size()),
		CompressedSize: info.Size(),
	}
	fmt.Fprintf(stdout, "packed %s -> %s (%s): %d -> %d bytes, %.1f%% saved\n",
		fs.Arg(0), fs.Arg(1), stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())

	return nil
}

func cmdUnpack(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: unpack <in> <out>", errUsage)
	}

	raw, err := m64.ReadRawFile(args[0])
	if err != nil {
		return err
	}

	if err := m64.WriteRawFile(args[1], raw); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "unpacked %s -> %s\n", args[0], args[1])

	return nil
}

func cmdVerify(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: verify <a> <b>", errUsage)
	}

	a, err := m64.ReadRawFile(args[0])
	if err != nil {
		return err
	}
	b, err := m64.ReadRawFile(args[1])
	if err != nil {
		return err
	}

	da, db := m64.InputDigest(a.Inputs), m64.InputDigest(b.Inputs)
	if da != db {
		return fmt.Errorf("%w: %016x (%d records) vs %016x (%d records)",
			errInputsDiffer, da, len(a.Inputs), db, len(b.Inputs))
	}
	fmt.Fprintf(stdout, "inputs match: %016x (%d records)\n", da, len(a.Inputs))

	return nil
}
