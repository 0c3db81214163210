// This file is part of sdlwrap.
//
// sdlwrap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlwrap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlwrap.  If not, see <https://www.gnu.org/licenses/>.

// sdlwrap is a smoke test for the sdlwrap packages. Each mode exercises one
// group of resource types against the real SDL, OpenGL and Dear ImGui
// libraries:
//
//	SHOW     window, renderer, surface and texture handles
//	PLAY     audio device and recording handles with a WAV or MP3 file
//	GL       OpenGL context and object handles, plus a Dear ImGui context
//	INPUT    joystick, game controller and haptic handles
//
// The -ledger flag installs the ownership ledger. A report of live handles and
// ownership problems is printed when the program ends.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/sdlwrap/ledger"
	"github.com/jetsetilly/sdlwrap/logger"
	"github.com/jetsetilly/sdlwrap/modalflag"
	"github.com/jetsetilly/sdlwrap/prefs"
	"github.com/jetsetilly/sdlwrap/statsview"
)

func init() {
	// SDL requires that window and event handling happen on the main thread.
	// locking the OS thread in init() guarantees that main() runs on it
	runtime.LockOSThread()
}

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. SDL
// resources are created, used and destroyed in functions sent over the
// service channel. they are run on the main thread.
type mainSync struct {
	state       chan stateRequest
	service     chan func()
	serviceDone chan bool
}

// do runs the function on the main thread and waits for it to complete.
func (sync *mainSync) do(f func()) {
	sync.service <- f
	<-sync.serviceDone
}

// #mainthread
func main() {
	sync := &mainSync{
		state:       make(chan stateRequest),
		service:     make(chan func()),
		serviceDone: make(chan bool),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case f := <-sync.service:
			f()
			sync.serviceDone <- true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to run
// SDL functions and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("SHOW", "PLAY", "GL", "INPUT")
	useLedger := md.AddBool("ledger", false, "install the ownership ledger")
	dot := md.AddString("dot", "", "write a graph of live handles to file on exit [requires ledger]")
	echo := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsGroup := md.AddString("prefs", "", "preferences group. eg. \"ledger.enabled::true; ledger.echo::true\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	prefs.PushCommandLineStack(*prefsGroup)
	lp, err := ledger.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("* unused preferences: %s\n", unused)
	}
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	var l *ledger.Ledger
	if *useLedger || lp.Enabled.Get().(bool) {
		l = ledger.NewLedger(logger.Allow)
		if lp.Echo.Get().(bool) {
			l.SetEcho(os.Stderr)
		}
		l.Install()
	}

	switch md.Mode() {
	case "SHOW":
		err = showMode(md, sync)
	case "PLAY":
		err = playMode(md, sync)
	case "GL":
		err = glMode(md, sync)
	case "INPUT":
		err = inputMode(md, sync)
	}

	if l != nil {
		l.Uninstall()
		l.Report(os.Stdout)
		if *dot != "" {
			if derr := writeDot(l, *dot); derr != nil {
				fmt.Printf("* error: %v\n", derr)
			}
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func writeDot(l *ledger.Ledger, filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = fmt.Errorf("dot: %w", err)
		}
	}()
	l.Visualise(f)
	return nil
}
