package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/plgd-dev/coap-message/message"
	"github.com/plgd-dev/coap-message/message/pool"
)

var messagePool = pool.New(16, 2048)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build an option block from named options",
	Long: `Build the wire form of an option block from named options, followed
by the payload marker and payload when one is given. The result is
printed as a hex string.`,
	Example: `  coapopt encode --path /a/b --query k=v --content-format application/json

  coapopt encode --block2 3,1,6 --etag 0011aabb --payload hello`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		msg := messagePool.AcquireMessage(cmd.Context())
		defer messagePool.ReleaseMessage(msg)

		opts := msg.Options()

		if path, _ := cmd.Flags().GetString("path"); path != "" {
			msg.SetPath(path)
		}
		if queries, _ := cmd.Flags().GetStringArray("query"); len(queries) > 0 {
			if err := opts.SetQueries(queries); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("content-format") {
			cf, _ := cmd.Flags().GetString("content-format")
			mt, err := parseMediaType(cf)
			if err != nil {
				return err
			}
			msg.SetContentFormat(mt)
		}
		if cmd.Flags().Changed("accept") {
			accept, _ := cmd.Flags().GetString("accept")
			mt, err := parseMediaType(accept)
			if err != nil {
				return err
			}
			opts.SetAccept(mt)
		}
		for flag, set := range map[string]func(uint32){
			"observe":  opts.SetObserve,
			"max-age":  opts.SetMaxAge,
			"uri-port": opts.SetURIPort,
			"size1":    opts.SetSize1,
			"size2":    opts.SetSize2,
		} {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetUint32(flag)
				set(v)
			}
		}
		if tags, _ := cmd.Flags().GetStringArray("etag"); len(tags) > 0 {
			var errs *multierror.Error
			etags := make([][]byte, 0, len(tags))
			for _, tag := range tags {
				etag, err := hex.DecodeString(tag)
				if err != nil {
					errs = multierror.Append(errs, fmt.Errorf("invalid etag %q: %w", tag, err))
					continue
				}
				etags = append(etags, etag)
			}
			if err := errs.ErrorOrNil(); err != nil {
				return err
			}
			opts.SetETags(etags)
		}
		for flag, set := range map[string]func(message.Block){
			"block1": opts.SetBlock1,
			"block2": opts.SetBlock2,
		} {
			if cmd.Flags().Changed(flag) {
				s, _ := cmd.Flags().GetString(flag)
				block, err := parseBlock(s)
				if err != nil {
					return fmt.Errorf("invalid %v: %w", flag, err)
				}
				set(block)
			}
		}
		if payload, _ := cmd.Flags().GetString("payload"); payload != "" {
			msg.SetPayload([]byte(payload))
		}

		data, err := msg.Marshal()
		if err != nil {
			log.Error().Err(err).Msg("cannot encode option block")
			return err
		}
		log.Debug().
			Int("options", opts.Len()).
			Int("size", len(data)).
			Msg("option block encoded")

		cmd.Printf("%s\n", hex.EncodeToString(data))
		return nil
	},
}

// parseMediaType accepts a content format as number or name.
func parseMediaType(v string) (message.MediaType, error) {
	if n, err := strconv.ParseUint(v, 10, 16); err == nil {
		return message.MediaType(n), nil
	}
	return message.ToMediaType(v)
}

// parseBlock parses a "num,more,szx" triple.
func parseBlock(v string) (message.Block, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return message.Block{}, fmt.Errorf("expected num,more,szx got %q", v)
	}
	num, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return message.Block{}, err
	}
	more, err := strconv.ParseBool(parts[1])
	if err != nil {
		return message.Block{}, err
	}
	szx, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return message.Block{}, err
	}
	return message.NewBlock(message.SZX(szx), uint32(num), more)
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().String("path", "", "Uri-Path as a / separated string")
	encodeCmd.Flags().StringArray("query", nil, "Uri-Query parameter (repeatable)")
	encodeCmd.Flags().String("content-format", "", "Content-Format as name or number")
	encodeCmd.Flags().String("accept", "", "Accept as name or number")
	encodeCmd.Flags().Uint32("observe", 0, "Observe value")
	encodeCmd.Flags().Uint32("max-age", 0, "Max-Age in seconds")
	encodeCmd.Flags().Uint32("uri-port", 0, "Uri-Port value")
	encodeCmd.Flags().Uint32("size1", 0, "Size1 value")
	encodeCmd.Flags().Uint32("size2", 0, "Size2 value")
	encodeCmd.Flags().StringArray("etag", nil, "ETag as hex (repeatable)")
	encodeCmd.Flags().String("block1", "", "Block1 as num,more,szx")
	encodeCmd.Flags().String("block2", "", "Block2 as num,more,szx")
	encodeCmd.Flags().String("payload", "", "payload appended after the marker")
}
