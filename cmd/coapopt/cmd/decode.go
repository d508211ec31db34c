package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/units"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/plgd-dev/coap-message/message"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode an option block into a readable option listing",
	Long: `Decode the option block of a CoAP message, everything following the
message header. Input is a hex string argument or a binary file.`,
	Example: `  # Content-Format: application/link-format followed by a payload
  coapopt decode c128ffc0ffee

  # read the block from a file
  coapopt decode --file body.bin --max-size 16KiB`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		maxSize, _ := cmd.Flags().GetString("max-size")

		limit, err := units.ParseBase2Bytes(maxSize)
		if err != nil {
			return fmt.Errorf("invalid max-size: %w", err)
		}

		var data []byte
		switch {
		case file != "":
			data, err = os.ReadFile(file)
			if err != nil {
				return err
			}
		case len(args) == 1:
			data, err = hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
		default:
			return errors.New("either a hex argument or --file is required")
		}

		if len(data) > int(limit) {
			return fmt.Errorf("input of %d bytes exceeds limit %v", len(data), limit)
		}

		opts, payload, err := message.Parse(data)
		if err != nil {
			log.Error().Err(err).Int("size", len(data)).Msg("cannot decode option block")
			return err
		}
		log.Debug().
			Int("options", opts.Len()).
			Int("payload_len", len(payload)).
			Msg("option block decoded")

		for _, opt := range opts.All() {
			cmd.Printf("%5d  %-16v %s\n", opt.ID, opt.ID, formatValue(opt))
		}
		if len(payload) > 0 {
			cmd.Printf("payload (%d bytes): %s\n", len(payload), hex.EncodeToString(payload))
		}
		return nil
	},
}

// formatValue renders an option value according to its decoded variant.
func formatValue(opt message.Option) string {
	switch v := opt.Value.(type) {
	case message.Text:
		return fmt.Sprintf("%q", string(v))
	case message.Uint:
		if opt.ID == message.ContentFormat || opt.ID == message.Accept {
			return fmt.Sprintf("%d (%v)", uint32(v), message.MediaType(v))
		}
		return fmt.Sprintf("%d", uint32(v))
	case message.Block:
		return fmt.Sprintf("num=%d more=%t szx=%d (%d bytes)", v.Num, v.More, v.SZX, v.SZX.Size())
	case message.Opaque:
		return "0x" + hex.EncodeToString(v)
	}
	return fmt.Sprintf("%v", opt.Value)
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().String("file", "", "read the option block from a binary file")
	decodeCmd.Flags().String("max-size", "64KiB", "largest accepted input (base-2 size)")
}
