package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Siddarth2230/hashlink/internal/config"
	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "hashid",
		Usage: "Encode integers into short salted ids and back",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
			},
			&cli.StringFlag{
				Name:    "salt",
				Aliases: []string{"s"},
				Usage:   "Salt (overrides config)",
				EnvVars: []string{config.SaltEnv},
			},
			&cli.StringFlag{
				Name:    "alphabet",
				Aliases: []string{"a"},
				Usage:   "Alphabet of at least 16 unique ASCII characters",
			},
			&cli.IntFlag{
				Name:    "min-length",
				Aliases: []string{"m"},
				Usage:   "Minimum hash length",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode one or more non-negative integers",
				ArgsUsage: "NUMBER...",
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode a hash into its integers",
				ArgsUsage: "HASH",
				Action:    decodeCommand,
			},
			{
				Name:      "encode-hex",
				Usage:     "Encode a hex string",
				ArgsUsage: "HEX",
				Action:    encodeHexCommand,
			},
			{
				Name:      "decode-hex",
				Usage:     "Decode a hash produced by encode-hex",
				ArgsUsage: "HASH",
				Action:    decodeHexCommand,
			},
			{
				Name:      "shuffle",
				Usage:     "Shuffle a string with the salt",
				ArgsUsage: "TEXT",
				Action:    shuffleCommand,
			},
			{
				Name:   "inspect",
				Usage:  "Print the derived alphabet, separators and guards",
				Action: inspectCommand,
			},
		},
	}
}

// loadCodec applies flags over the config file and environment.
func loadCodec(c *cli.Context) (*hashids.Codec, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if salt := c.String("salt"); salt != "" {
		cfg.Hashids.Salt = salt
	}
	if c.IsSet("alphabet") {
		cfg.Hashids.Alphabet = c.String("alphabet")
	}
	if c.IsSet("min-length") {
		cfg.Hashids.MinLength = c.Int("min-length")
	}
	return hashids.New(cfg.CodecOptions())
}

func singleArg(c *cli.Context, name string) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s argument", name)
	}
	return c.Args().First(), nil
}

func encodeCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no numbers given")
	}
	numbers := make([]uint64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		numbers = append(numbers, n)
	}

	codec, err := loadCodec(c)
	if err != nil {
		return err
	}
	hash, err := codec.EncodeUint64(numbers...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

func decodeCommand(c *cli.Context) error {
	hash, err := singleArg(c, "hash")
	if err != nil {
		return err
	}
	codec, err := loadCodec(c)
	if err != nil {
		return err
	}
	numbers, err := codec.Decode(hash)
	if err != nil {
		return err
	}

	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatInt(n, 10)
	}
	fmt.Fprintln(c.App.Writer, strings.Join(parts, " "))
	return nil
}

func encodeHexCommand(c *cli.Context) error {
	hex, err := singleArg(c, "hex")
	if err != nil {
		return err
	}
	codec, err := loadCodec(c)
	if err != nil {
		return err
	}
	hash, err := codec.EncodeHex(hex)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

func decodeHexCommand(c *cli.Context) error {
	hash, err := singleArg(c, "hash")
	if err != nil {
		return err
	}
	codec, err := loadCodec(c)
	if err != nil {
		return err
	}
	hex, err := codec.DecodeHex(hash)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex)
	return nil
}

func shuffleCommand(c *cli.Context) error {
	text, err := singleArg(c, "text")
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	salt := cfg.Hashids.Salt
	if s := c.String("salt"); s != "" {
		salt = s
	}
	out, err := hashids.Shuffle(text, salt)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, out)
	return nil
}

func inspectCommand(c *cli.Context) error {
	codec, err := loadCodec(c)
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "alphabet:   %s\n", codec.Alphabet())
	fmt.Fprintf(w, "separators: %s\n", codec.Separators())
	fmt.Fprintf(w, "guards:     %s\n", codec.Guards())
	fmt.Fprintf(w, "min length: %d\n", codec.MinLength())
	return nil
}
