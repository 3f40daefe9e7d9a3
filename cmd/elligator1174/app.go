package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/smallyu/go-elligator1174/internal/config"
	"github.com/smallyu/go-elligator1174/internal/crypto/bigint"
	"github.com/smallyu/go-elligator1174/internal/crypto/curves"
	"github.com/smallyu/go-elligator1174/internal/elligator"
	"github.com/smallyu/go-elligator1174/internal/log"
	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

var errArgs = errors.New("wrong number of arguments")

// runtime is built by the Before hook and shared by all commands.
type runtime struct {
	cfg     config.Config
	curve   *curves.Curve1174
	encoder api.Encoder
	random  io.Reader
}

func newApp() *cli.App {
	rt := &runtime{random: rand.Reader}

	return &cli.App{
		Name:  "elligator1174",
		Usage: "Elligator 1 encoding for Curve1174",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"ELLIGATOR_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "encoder backend: reference or fast",
				EnvVars: []string{"ELLIGATOR_BACKEND"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "number output format: hex or dec",
				EnvVars: []string{"ELLIGATOR_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"ELLIGATOR_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-output",
				EnvVars: []string{"ELLIGATOR_LOG_OUTPUT"},
			},
		},
		Before: rt.setup,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "map a representative t to a curve point",
				ArgsUsage: "<t>",
				Action:    rt.encode,
			},
			{
				Name:      "decode",
				Usage:     "map a curve point to its canonical representative",
				ArgsUsage: "<x> <y>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "check", Usage: "reject points off the curve or without a representative"},
				},
				Action: rt.decode,
			},
			{
				Name:      "hide",
				Usage:     "encode a curve point as 32 random looking bytes",
				ArgsUsage: "<x> <y>",
				Action:    rt.hide,
			},
			{
				Name:      "reveal",
				Usage:     "recover the curve point from 32 hidden bytes",
				ArgsUsage: "<hex>",
				Action:    rt.reveal,
			},
			{
				Name:      "hash",
				Usage:     "hash a message to a curve point",
				ArgsUsage: "<message>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "domain", Value: "elligator1174", Usage: "domain separation tag"},
				},
				Action: rt.hash,
			},
		},
	}
}

func (rt *runtime) setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-output") {
		cfg.LogOutput = c.String("log-output")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := log.Init(cfg.LogLevel, cfg.LogOutput); err != nil {
		return err
	}

	curve, err := curves.NewCurve1174()
	if err != nil {
		return errors.Wrap(err, "build curve context")
	}
	rt.cfg = cfg
	rt.curve = curve
	switch cfg.Backend {
	case api.BackendFast:
		rt.encoder = elligator.NewFastEncoder(curve)
	default:
		rt.encoder = elligator.NewReferenceEncoder(curve)
	}
	log.Debugw("initialized", "backend", rt.encoder.Name(), "format", cfg.Format)
	return nil
}

func (rt *runtime) format(v *big.Int) string {
	if rt.cfg.Format == config.FormatDecimal {
		return v.Text(10)
	}
	return "0x" + v.Text(16)
}

func parseArgs(c *cli.Context, n int) ([]*big.Int, error) {
	if c.NArg() != n {
		return nil, errors.Wrapf(errArgs, "%s: want %d, got %d", c.Command.Name, n, c.NArg())
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v, err := bigint.FromString(c.Args().Get(i), 0)
		if err != nil {
			return nil, err
		}
		out[i] = v.Big()
	}
	return out, nil
}

func (rt *runtime) printPoint(c *cli.Context, x, y *big.Int) {
	fmt.Fprintf(c.App.Writer, "x=%s\ny=%s\n", rt.format(x), rt.format(y))
}

func (rt *runtime) encode(c *cli.Context) error {
	args, err := parseArgs(c, 1)
	if err != nil {
		return err
	}
	x, y, err := rt.encoder.StringToPoint(args[0])
	if err != nil {
		return err
	}
	log.Debugw("encoded", "t", rt.format(args[0]), "backend", rt.encoder.Name())
	rt.printPoint(c, x, y)
	return nil
}

func (rt *runtime) decode(c *cli.Context) error {
	args, err := parseArgs(c, 2)
	if err != nil {
		return err
	}
	var t *big.Int
	if c.Bool("check") {
		v, err := elligator.PointToStringChecked(rt.curve, curves.NewPoint(bigint.FromBig(args[0]), bigint.FromBig(args[1])))
		if err != nil {
			return err
		}
		t = v.Big()
	} else if t, err = rt.encoder.PointToString(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "t=%s\n", rt.format(t))
	return nil
}

func (rt *runtime) hide(c *cli.Context) error {
	args, err := parseArgs(c, 2)
	if err != nil {
		return err
	}
	rep, err := elligator.Hide(rt.curve, curves.NewPoint(bigint.FromBig(args[0]), bigint.FromBig(args[1])), rt.random)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(rep[:]))
	return nil
}

func (rt *runtime) reveal(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.Wrapf(errArgs, "reveal: want 1, got %d", c.NArg())
	}
	raw, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "reveal: decode hex")
	}
	if len(raw) != elligator.RepresentativeSize {
		return errors.Wrapf(api.ErrInvalidRepresentative, "want %d bytes, got %d", elligator.RepresentativeSize, len(raw))
	}
	var rep [elligator.RepresentativeSize]byte
	copy(rep[:], raw)

	pt, err := elligator.Reveal(rt.curve, rep)
	if err != nil {
		return err
	}
	rt.printPoint(c, pt.X.Big(), pt.Y.Big())
	return nil
}

func (rt *runtime) hash(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.Wrapf(errArgs, "hash: want 1, got %d", c.NArg())
	}
	domain := []byte(c.String("domain"))
	t, err := elligator.HashToString(rt.curve, domain, []byte(c.Args().First()))
	if err != nil {
		return err
	}
	x, y, err := rt.encoder.StringToPoint(t.Big())
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "t=%s\n", rt.format(t.Big()))
	rt.printPoint(c, x, y)
	return nil
}
