// Package cli implements hpackdump, a one-shot command-line tool that
// decodes a single captured HPACK header block and prints the header
// fields it contains.
package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drip/internal/client/cli/ui"
	"drip/internal/shared/compression/hpack"
)

// Options holds hpackdump's resolved flags.
type Options struct {
	File       string
	ConfigPath string
	Encoding   string // "hex" or "base64"
	JSON       bool
	InitialMax int
}

// NewRootCommand builds the hpackdump cobra command.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	opts := &Options{Encoding: "hex", InitialMax: hpack.DefaultMaxDynamicTableSize}

	cmd := &cobra.Command{
		Use:   "hpackdump",
		Short: "Decode an HPACK header block and print its header fields",
		Long: "hpackdump decodes one HPACK-encoded header block, read from --file or\n" +
			"stdin, and prints the header fields it yields, as a table or as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.File, "file", "f", "", "read the block from this file instead of stdin")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML file overriding the decoder's table/string size limits")
	flags.StringVarP(&opts.Encoding, "encoding", "e", "hex", "input encoding: hex or base64")
	flags.BoolVar(&opts.JSON, "json", false, "print decoded entries as JSON instead of a table")
	flags.IntVar(&opts.InitialMax, "initial-max-size", hpack.DefaultMaxDynamicTableSize, "initial dynamic table size in octets")

	return cmd
}

func run(cmd *cobra.Command, opts *Options, logger *zap.Logger) error {
	raw, err := readInput(cmd, opts)
	if err != nil {
		return err
	}

	block, err := decodeWireFormat(raw, opts.Encoding)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.ConfigPath == "" {
		cfg.InitialMaxDynamicTableSize = opts.InitialMax
	}

	d, err := hpack.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("hpackdump: %w", err)
	}

	entries, err := d.DecodeAll(block)
	if err != nil {
		logger.Warn("block decode failed", zap.Error(err))
		return fmt.Errorf("hpackdump: decode: %w", err)
	}

	if opts.JSON {
		return printJSON(cmd.OutOrStdout(), entries)
	}
	printTable(cmd.OutOrStdout(), entries)
	return nil
}

func readInput(cmd *cobra.Command, opts *Options) ([]byte, error) {
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("hpackdump: reading %s: %w", opts.File, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("hpackdump: reading stdin: %w", err)
	}
	return data, nil
}

func decodeWireFormat(raw []byte, encoding string) ([]byte, error) {
	text := strings.TrimSpace(string(raw))
	switch encoding {
	case "hex":
		b, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("hpackdump: invalid hex input: %w", err)
		}
		return b, nil
	case "base64":
		b, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("hpackdump: invalid base64 input: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("hpackdump: unknown encoding %q (want hex or base64)", encoding)
	}
}

type jsonEntry struct {
	Kind  string `json:"kind"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
}

func printJSON(w io.Writer, entries []hpack.Entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{Kind: e.Kind.String(), Name: e.NameString(), Value: e.Value}
		if e.Kind != hpack.KindHeader {
			out[i].Name = ""
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printTable(w io.Writer, entries []hpack.Entry) {
	t := ui.NewTable([]string{"NAME", "VALUE"}).WithTitle("Decoded header fields").WithMaxCellWidth(72)
	for _, e := range entries {
		t.AddRow([]string{e.NameString(), e.Value})
	}
	fmt.Fprint(w, t.Render())
}
