// Command dcbor is a small CLI front-end over the dcbor library: encode a
// list of unsigned integers as a CBOR array, decode hex into an annotated
// dump, and mint
// tag-37 UUIDs. Built with urfave/cli and sirupsen/logrus the way the
// example pack's kryptco-kr "kr" CLI is built.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/brinecore/dcbor"
	"github.com/brinecore/dcbor/dcbortext"
	"github.com/brinecore/dcbor/dtypes"
)

var log = logrus.New()

func printFatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// decodeCommand reads a hex-encoded CBOR item from argv, decodes it
// strictly, and prints its annotated hex dump and diagnostic notation.
// Decode failures are logged structurally (offset, kind) rather than just
// printed, mirroring the daemon-facing commands in kr.go that log instead
// of merely erroring.
func decodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		printFatal("usage: dcbor decode <hex>")
	}
	raw, err := hex.DecodeString(c.Args().First())
	if err != nil {
		printFatal("invalid hex input: %s", err)
	}
	v, err := dcbor.Decode(raw)
	if err != nil {
		if de, ok := err.(*dcbor.DecodeError); ok {
			log.WithFields(logrus.Fields{
				"kind":   de.Kind.String(),
				"offset": de.Offset,
			}).Error("decode failed")
		} else {
			log.WithError(err).Error("decode failed")
		}
		os.Exit(1)
	}
	fmt.Println(dcbortext.HexAnnotated(v))
	fmt.Println()
	fmt.Println(dcbortext.Diagnostic(v))
	return nil
}

// encodeCommand parses argv as a flat list of unsigned integers and
// encodes them as a CBOR array, printing the canonical hex.
func encodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		printFatal("usage: dcbor encode <uint> [uint...]")
	}
	items := make([]dcbor.Value, 0, c.NArg())
	for _, arg := range c.Args() {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			printFatal("invalid unsigned integer %q: %s", arg, err)
		}
		items = append(items, dcbor.NewUnsigned(n))
	}
	v := dcbor.NewArray(items)
	fmt.Println(dcbortext.Hex(v))
	return nil
}

// uuidCommand mints a random tag-37 UUID and prints both its string form
// and its canonical CBOR hex encoding.
func uuidCommand(c *cli.Context) error {
	u := dtypes.NewUUID()
	fmt.Println(u.String())
	fmt.Println(dcbortext.Hex(u.Encode()))
	return nil
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{})

	app := cli.NewApp()
	app.Name = "dcbor"
	app.Usage = "deterministic CBOR encode/decode/inspect"
	app.Version = dcbor.Version
	app.Commands = []cli.Command{
		{
			Name:   "decode",
			Usage:  "dcbor decode <hex> -- decode a hex-encoded CBOR item and print an annotated dump.",
			Action: decodeCommand,
		},
		{
			Name:   "encode",
			Usage:  "dcbor encode <uint> [uint...] -- encode a list of unsigned integers as a CBOR array.",
			Action: encodeCommand,
		},
		{
			Name:   "uuid",
			Usage:  "dcbor uuid -- generate a random UUID tagged for CBOR.",
			Action: uuidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		printFatal("%s", err)
	}
}
