package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gstoney/airmash"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every packet of a capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return dump(cmd.OutOrStdout(), airmash.NewCaptureReader(f, int32(a.cfg.MaxPacketLen)), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per line")
	return cmd
}

// dump prints frames until the end of the capture. Frames that fail to
// decode are printed with their error and do not stop the dump.
func dump(w io.Writer, cr *airmash.CaptureReader, asJSON bool) error {
	enc := json.NewEncoder(w)

	for n := 0; ; n++ {
		f, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		p, err := f.Decode()
		if err != nil {
			if asJSON {
				err = enc.Encode(map[string]any{"n": n, "dir": f.Dir.String(), "error": err.Error(), "bytes": f.Data})
			} else {
				_, err = fmt.Fprintf(w, "%4d %-11s error: %v (% x)\n", n, f.Dir, err, f.Data)
			}
			if err != nil {
				return err
			}
			continue
		}

		view := newPacketView(p)
		view.Dir = f.Dir.String()
		if asJSON {
			err = enc.Encode(view)
		} else {
			var fields []byte
			if fields, err = json.Marshal(p); err == nil {
				_, err = fmt.Fprintf(w, "%4d %-11s %s %s\n", n, f.Dir, view.Packet, fields)
			}
		}
		if err != nil {
			return err
		}
	}
}
