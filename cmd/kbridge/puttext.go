package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"strconv"

	"github.com/gogpu/kbridge"
	"github.com/gogpu/kbridge/text"
)

func runPutText(args []string) error {
	fs := flag.NewFlagSet("puttext", flag.ExitOnError)
	var (
		in      = fs.String("in", "", "input image")
		out     = fs.String("out", "", "output image (format from extension)")
		msg     = fs.String("text", "", "text to draw")
		x       = fs.Int("x", 10, "baseline origin x")
		y       = fs.Int("y", 50, "baseline origin y")
		hex     = fs.String("color", "ffffff", "text color as RRGGBB or RRGGBBAA")
		size    = fs.Float64("size", kbridge.BuiltinFontSize, "font size in pixels per em")
		font    = fs.String("font", "", "TTF, OTF or TTC font file (default Go Regular)")
		index   = fs.Int("index", 0, "font index inside a collection")
		shaper  = fs.String("shaper", "builtin", "text shaper: builtin or gotext")
		quality = fs.Int("quality", 95, "JPEG quality")
		common  = addCommonFlags(fs)
	)
	_ = fs.Parse(args)

	if *in == "" || *out == "" {
		return errors.New("puttext: -in and -out are required")
	}
	codec, err := common.setup()
	if err != nil {
		return err
	}
	c, err := parseHexColor(*hex)
	if err != nil {
		return err
	}

	var opts []kbridge.TextOption
	if *font != "" {
		src, err := text.NewFontSourceFromFile(string(codec.Encode(arg(codec, *font))), text.WithCollectionIndex(*index))
		if err != nil {
			return err
		}
		defer src.Close()
		opts = append(opts, kbridge.WithFont(src))
	}
	switch *shaper {
	case "builtin":
	case "gotext":
		opts = append(opts, kbridge.WithShaper(text.NewCachedShaper(text.NewGoTextShaper(), 0)))
	default:
		return fmt.Errorf("puttext: unknown shaper %q", *shaper)
	}

	ioOpts := []kbridge.IOOption{kbridge.WithPathCodec(codec), kbridge.WithJPEGQuality(*quality)}
	m, err := kbridge.Read(arg(codec, *in), ioOpts...)
	if err != nil {
		return err
	}
	s := arg(codec, *msg)
	if err := kbridge.PutText(m, s, image.Pt(*x, *y), c, *size, opts...); err != nil {
		return err
	}
	if err := kbridge.Write(arg(codec, *out), m, ioOpts...); err != nil {
		return err
	}

	log.Printf("drew %d runes at (%d, %d) into %s", len([]rune(s)), *x, *y, arg(codec, *out))
	return nil
}

// parseHexColor parses RRGGBB or RRGGBBAA, with an optional leading '#'.
func parseHexColor(s string) (color.Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("color %q: want RRGGBB or RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24), //nolint:gosec // masked by width
		G: uint8(v >> 16), //nolint:gosec // masked by width
		B: uint8(v >> 8),  //nolint:gosec // masked by width
		A: uint8(v),       //nolint:gosec // masked by width
	}, nil
}
