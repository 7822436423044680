package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/motion"
	"github.com/esimov/motion/utils"
	"github.com/kataras/golog"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┌─┐┌┬┐┬┌─┐┌┐┌
││││ │ │ ││ ││││
┴ ┴└─┘ ┴ ┴└─┘┘└┘

Touch event normalization tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// traceExt is the extension of the trace files picked up from a directory.
const traceExt = ".jsonl"

// result holds the relevant information about a normalized trace.
type result struct {
	path   string
	events int
	err    error
}

var (
	// spinner used to instantiate and call the progress indicator.
	spinner *utils.Spinner
	// logger is the tool logger, silent unless debugging is enabled.
	logger = golog.Child("[motion]")
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source trace, directory or URL")
	destination = flag.String("out", pipeName, "Destination")
	profilePath = flag.String("profile", "", "Device profile (TOML)")
	preview     = flag.Bool("preview", false, "Open the touch preview window")
	taps        = flag.Bool("taps", false, "Print the relayed tap gestures in preview mode")
	debug       = flag.Bool("debug", false, "Log the contact point conversion failures")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of traces to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	utils.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

	if *debug {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}

	profile := motion.DefaultProfile()
	if *profilePath != "" {
		p, err := motion.LoadProfile(*profilePath)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the device profile: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		profile = p
	}

	if *preview {
		runPreview(profile)
		return
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ MOTION", utils.StatusMessage),
		utils.DecorateText("is normalizing the touch events...", utils.DefaultMessage))
	spinner = utils.NewSpinner(os.Stderr, spinnerText, time.Millisecond*200, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	now := time.Now()

	// Check if source path is a remote trace.
	if utils.IsValidUrl(*source) {
		src, err := utils.DownloadFile(*source)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to download the source trace: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer os.Remove(src.Name())
		defer src.Close()

		n, err := process(src, *destination, profile)
		printStatus(*destination, n, err)
		printElapsed(now)
		return
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if *source == pipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(*source)
	}
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the source trace: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		if err := os.MkdirAll(*destination, 0755); err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to create the destination directory: %v\n", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}

		// Limit the concurrently running workers to maxWorkers.
		if *workers <= 0 || *workers > maxWorkers {
			*workers = runtime.NumCPU()
		}

		ch := make(chan result)
		done := make(chan struct{})
		defer close(done)

		paths, errc := walkDir(done, *source, traceExt)

		spinner.Start()
		wg.Add(*workers)
		for i := 0; i < *workers; i++ {
			go func() {
				defer wg.Done()
				consumer(done, paths, *destination, profile, ch)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		var results []result
		for res := range ch {
			results = append(results, res)
		}
		spinner.Stop()

		for _, res := range results {
			printStatus(res.path, res.events, res.err)
		}
		if err := <-errc; err != nil {
			fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || *source == pipeName:
		src, err := openSource(*source)
		if err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		defer src.Close()

		n, err := process(src, *destination, profile)
		printStatus(*destination, n, err)
	}
	printElapsed(now)
}

// runPreview opens the touch preview window. Gio requires app.Main
// to run on the main goroutine.
func runPreview(profile motion.Profile) {
	cfg := profile.Config()
	cfg.Logger = logger
	norm := motion.NewNormalizer(profile.Viewport(), cfg)

	handler := motion.NewTapForwarder(norm, func(tap motion.TapEvent) bool {
		if *taps {
			fmt.Fprintf(os.Stderr, "%s %v %s\n",
				utils.DecorateText(tap.Kind.Topic(), utils.StatusMessage),
				tap.Point,
				utils.DecorateText(tap.Kind.String(), utils.DefaultMessage),
			)
		}
		return true
	})

	gui := motion.NewGUI(profile.DisplayWidth, profile.DisplayHeight, norm, handler, profile.TouchSize)
	gui.OnEvent = func(te *motion.TouchEvent) {
		logger.Debugf("%v pointer=%d points=%d", te.Action, te.PointerIndex, len(te.Points))
	}

	go func() {
		if err := gui.Run(); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		os.Exit(0)
	}()
	app.Main()
}

// walkDir starts a goroutine to walk the specified directory tree in recursive manner
// and send the path of each trace file on the string channel.
// It sends the result of the walk on the error channel.
// It terminates in case done channel is closed.
func walkDir(
	done <-chan struct{},
	src string,
	ext string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() || filepath.Ext(info.Name()) != ext {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer reads the path names from the paths channel, normalizes
// each trace and sends the results on a new channel.
func consumer(
	done <-chan struct{},
	paths <-chan string,
	dest string,
	profile motion.Profile,
	res chan<- result,
) {
	for src := range paths {
		out := filepath.Join(dest, filepath.Base(src))
		n, err := normalizeFile(src, out, profile)

		select {
		case <-done:
			return
		case res <- result{
			path:   src,
			events: n,
			err:    err,
		}:
		}
	}
}

// normalizeFile normalizes the trace stored at in and writes the result to out.
func normalizeFile(in, out string, profile motion.Profile) (int, error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("unable to open the source file: %w", err)
	}
	defer src.Close()

	return process(src, out, profile)
}

// process normalizes the trace read from src and writes it to the
// destination file, or to stdout in case of the pipe name.
func process(src io.Reader, out string, profile motion.Profile) (int, error) {
	events, err := motion.ReadTrace(src)
	if err != nil {
		return 0, err
	}

	cfg := profile.Config()
	cfg.Logger = logger
	norm := motion.NewNormalizer(profile.Viewport(), cfg)

	touches := make([]*motion.TouchEvent, 0, len(events))
	for i := range events {
		touches = append(touches, norm.Normalize(&events[i]))
	}

	dst, err := openDestination(out)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	if err := motion.WriteEvents(dst, touches); err != nil {
		return 0, fmt.Errorf("unable to write the normalized events: %w", err)
	}
	return len(touches), nil
}

// openSource opens the source trace file or the standard input.
func openSource(in string) (io.ReadCloser, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	src, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return src, nil
}

// openDestination creates the destination file or returns the standard output.
func openDestination(out string) (io.WriteCloser, error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return nopWriteCloser{os.Stdout}, nil
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// printStatus displays the relevant information about the normalized trace.
func printStatus(fname string, events int, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError normalizing the trace %s: ", utils.ErrorMessage)+
				utils.DecorateText("\n\tReason: %v\n", utils.DefaultMessage),
			fname, err,
		)
		return
	}
	if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\n%d events have been normalized: %s %s\n",
			events,
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

// printElapsed prints out the total execution time.
func printElapsed(since time.Time) {
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(since)), utils.SuccessMessage))
}
