// This file is part of sdl2raii.
//
// sdl2raii is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl2raii is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl2raii.  If not, see <https://www.gnu.org/licenses/>.

// Command showimage displays an image file in a window. The image can be drawn
// with the SDL renderer or with OpenGL.
//
// Usage:
//
//	showimage [flags] [RENDER|GL] [mode flags] <image file>
//
// The RENDER mode is the default. Pressing the R key in RENDER mode toggles
// rotation of the image. The window is closed with the Escape key.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/sdl2raii/curated"
	"github.com/jetsetilly/sdl2raii/logger"
	"github.com/jetsetilly/sdl2raii/mainloop"
	"github.com/jetsetilly/sdl2raii/modalflag"
	"github.com/jetsetilly/sdl2raii/sdlimg"
	"github.com/jetsetilly/sdl2raii/sdlraii"
	"github.com/jetsetilly/sdl2raii/version"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/term"
)

const windowTitle = "showimage"

// options common to both modes
type options struct {
	width  int32
	height int32
	fps    int
}

func main() {
	// SDL requires that all calls are made from the main thread
	runtime.LockOSThread()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RENDER", "GL")

	width := md.AddInt("width", 640, "window width")
	height := md.AddInt("height", 480, "window height")
	fps := md.AddInt("fps", 60, "frame rate limit")
	echo := md.AddBool("log", false, "echo log to stderr")
	profile := md.AddString("profile", "", "write cpu profile to file")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *echo {
		echoLog(os.Stderr)
	}

	opts := options{
		width:  int32(*width),
		height: int32(*height),
		fps:    *fps,
	}

	err = mainloop.CPUProfile(*profile, func() error {
		switch md.Mode() {
		case "GL":
			return launch(md, opts, showGL)
		default:
			return launch(md, opts, showRender)
		}
	})

	if err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(20)
	}
}

// echo the log to the file, colorized if the file is a terminal
func echoLog(f *os.File) {
	if term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(f))
	} else {
		logger.SetEcho(f)
	}
}

// the function that displays the image in a particular mode
type shower func(srf *sdlraii.UniqueSurface, opts options, loop *mainloop.Loop) error

func launch(md *modalflag.Modes, opts options, show shower) error {
	md.NewMode()
	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	filename := md.GetArg(0)
	if filename == "" {
		return curated.Errorf("showimage: no image file specified")
	}
	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("showimage: too many arguments for %s mode", md.Mode())
	}

	sdlGuard := sdlraii.ScopedInit(sdlraii.InitVideo | sdlraii.InitEvents)
	if !sdlGuard.Ok() {
		return curated.Errorf("showimage: %v", sdlGuard.Err())
	}
	defer sdlGuard.Success().Close()

	imgGuard := sdlimg.ScopedInit(sdlimg.InitPNG | sdlimg.InitJPG)
	if !imgGuard.Ok() {
		return curated.Errorf("showimage: %v", imgGuard.Err())
	}
	defer imgGuard.Success().Close()

	srf := sdlimg.Load(filename)
	if !srf.Ok() {
		return curated.Errorf("showimage: %s: %v", filename, srf.Err())
	}
	image := srf.Success()
	defer image.Close()

	logger.Logf(logger.Allow, "showimage", "%s: %dx%d", filename, image.Get().W, image.Get().H)

	lim, err := mainloop.NewFPSLimiter(opts.fps)
	if err != nil {
		return curated.Errorf("showimage: %v", err)
	}
	defer lim.Stop()

	loop := mainloop.NewLoop(lim)

	// interrupting the program ends the loop normally so that every resource
	// is released
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, os.Interrupt)
	defer signal.Stop(intr)
	go func() {
		<-intr
		logger.Log(logger.Allow, "showimage", "interrupted")
		loop.PushFunction(loop.Cancel)
	}()

	err = show(image, opts, loop)
	if err != nil {
		return err
	}

	fps, accuracy := loop.FPS()
	logger.Logf(logger.Allow, "showimage", "%d frames at %.2f fps (%.1f%%)", loop.Frames(), fps, accuracy)

	return nil
}

// returns true if the event means the program should end
func isQuit(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.KeyboardEvent:
		return ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE
	}
	return false
}
