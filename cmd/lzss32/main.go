// lzss32 is a thin command-line shell over the lzss32 codec: it reads whole
// files into memory, runs one compress or decompress call, and writes the
// result back out. All policy (exit codes, reporting) lives here, not in the
// library.
package main

import (
	"errors"
	"fmt"
	"os"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/woozymasta/lzss32"
)

var errArgs = errors.New("expected exactly two arguments: input_file output_file")

func main() {
	app := &cli.App{
		Name:  "lzss32",
		Usage: "compress and decompress files with the LZSS:32 format",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Aliases:   []string{"c"},
				Usage:     "compress input_file to output_file",
				ArgsUsage: "input_file output_file",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "dictionary",
						Aliases: []string{"n"},
						Usage:   "sliding-window size in bytes (power of two, 4..16384)",
						Value:   lzss32.DefaultDictionaryLen,
					},
				},
				Action: runCompress,
			},
			{
				Name:      "decompress",
				Aliases:   []string{"d"},
				Usage:     "decompress input_file to output_file",
				ArgsUsage: "input_file output_file",
				Action:    runDecompress,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCompress(c *cli.Context) error {
	if c.NArg() != 2 {
		return errArgs
	}

	inPath, outPath := c.Args().Get(0), c.Args().Get(1)
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	packed, err := lzss32.Compress(data, &lzss32.CompressOptions{DictionaryLen: c.Int("dictionary")})
	if err != nil {
		return err
	}

	if err := writeFile(outPath, packed); err != nil {
		return err
	}

	ratio := 100.0
	if len(data) > 0 {
		ratio = float64(len(packed)) / float64(len(data)) * 100
	}
	color.Green("%s: %d -> %d bytes (%.1f%%)", outPath, len(data), len(packed), ratio)

	return nil
}

func runDecompress(c *cli.Context) error {
	if c.NArg() != 2 {
		return errArgs
	}

	inPath, outPath := c.Args().Get(0), c.Args().Get(1)
	packed, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	data, err := lzss32.Decompress(packed)
	if err != nil {
		return err
	}

	if err := writeFile(outPath, data); err != nil {
		return err
	}

	color.Green("%s: %d -> %d bytes", outPath, len(packed), len(data))

	return nil
}

// writeFile writes data to path through a byte-unit progress bar.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	bar := pb.New(len(data)).Set(pb.Bytes, true)
	bar.Start()
	_, werr := bar.NewProxyWriter(f).Write(data)
	bar.Finish()

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}

	return nil
}
