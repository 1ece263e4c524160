// Command kbridge draws text onto images and converts between image formats.
//
// Usage:
//
//	kbridge puttext -in a.png -out b.png -text "你好" -x 10 -y 50 -color ff0000 -size 20 -font NotoSansSC.otf
//	kbridge convert -in a.jpg -out b.png -mode gray
//
// Command-line arguments are read in the code page named by -encoding, which
// defaults to the one of the process locale. File names are passed back to the
// file system in the same code page.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/kbridge"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kbridge: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "puttext":
		err = runPutText(args)
	case "convert":
		err = runConvert(args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kbridge <puttext|convert> [flags]")
	fmt.Fprintln(os.Stderr, "run 'kbridge <command> -h' for the flags of a command")
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	encoding *string
	verbose  *bool
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		encoding: fs.String("encoding", "", "code page of arguments and file names (default from LC_ALL, LC_CTYPE, LANG)"),
		verbose:  fs.Bool("v", false, "log conversions and file access to stderr"),
	}
}

// setup applies -v and resolves -encoding.
func (c commonFlags) setup() (kbridge.Codec, error) {
	if *c.verbose {
		kbridge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *c.encoding == "" {
		return kbridge.EnvCodec(), nil
	}
	return kbridge.CodecByName(*c.encoding)
}

// arg converts a raw command-line argument to a Go string.
func arg(codec kbridge.Codec, s string) string {
	return codec.Decode([]byte(s))
}
