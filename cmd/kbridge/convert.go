package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/kbridge"
)

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var (
		in      = fs.String("in", "", "input image")
		out     = fs.String("out", "", "output image (format from extension)")
		mode    = fs.String("mode", "color", "read mode: color, gray or unchanged")
		quality = fs.Int("quality", 95, "JPEG quality")
		orient  = fs.Bool("orient", true, "apply the EXIF orientation tag")
		common  = addCommonFlags(fs)
	)
	_ = fs.Parse(args)

	if *in == "" || *out == "" {
		return errors.New("convert: -in and -out are required")
	}
	codec, err := common.setup()
	if err != nil {
		return err
	}
	rm, err := parseReadMode(*mode)
	if err != nil {
		return err
	}

	m, err := kbridge.Read(arg(codec, *in),
		kbridge.WithPathCodec(codec),
		kbridge.WithReadMode(rm),
		kbridge.WithAutoOrientation(*orient))
	if err != nil {
		return err
	}
	err = kbridge.Write(arg(codec, *out), m,
		kbridge.WithPathCodec(codec),
		kbridge.WithJPEGQuality(*quality))
	if err != nil {
		return err
	}

	log.Printf("wrote %dx%d %s to %s", m.Cols(), m.Rows(), m.Type(), arg(codec, *out))
	return nil
}

func parseReadMode(s string) (kbridge.ReadMode, error) {
	switch s {
	case "color":
		return kbridge.ReadColor, nil
	case "gray", "grayscale":
		return kbridge.ReadGrayscale, nil
	case "unchanged":
		return kbridge.ReadUnchanged, nil
	}
	return 0, fmt.Errorf("convert: unknown mode %q", s)
}
