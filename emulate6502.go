// This file is part of Emulate6502.
//
// Emulate6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emulate6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emulate6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/emulate6502/curated"
	"github.com/jetsetilly/emulate6502/govern"
	"github.com/jetsetilly/emulate6502/gui/sdlscreen"
	"github.com/jetsetilly/emulate6502/hardware"
	"github.com/jetsetilly/emulate6502/hardware/cpu/klaus"
	"github.com/jetsetilly/emulate6502/hardware/instance"
	"github.com/jetsetilly/emulate6502/hardware/memory/bus"
	"github.com/jetsetilly/emulate6502/hardware/video"
	"github.com/jetsetilly/emulate6502/logger"
	"github.com/jetsetilly/emulate6502/modalflag"
	"github.com/jetsetilly/emulate6502/monitor"
	"github.com/jetsetilly/emulate6502/monitor/terminal"
	"github.com/jetsetilly/emulate6502/monitor/terminal/keyterm"
	"github.com/jetsetilly/emulate6502/monitor/terminal/plainterm"
	"github.com/jetsetilly/emulate6502/performance"
	"github.com/jetsetilly/emulate6502/prefs"
	"github.com/jetsetilly/emulate6502/romloader"
	"github.com/jetsetilly/emulate6502/statsview"
	"github.com/jetsetilly/emulate6502/version"
	"golang.org/x/term"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles the
	// interrupt signal itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread. Returns false
	// if the gui has been closed by the user.
	Service() bool
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error

	// a value is sent when the gui has been closed by the user
	closed chan bool
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
		closed:        make(chan bool, 1),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	service := time.NewTicker(sdlscreen.ServiceInterval)
	defer service.Stop()

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy()
				gui = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

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

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service.C:
			if gui != nil && !gui.Service() {
				gui.Destroy()
				gui = nil
				select {
				case sync.closed <- true:
				default:
				}
			}
		}
	}

	if gui != nil {
		gui.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "MONITOR", "KLAUS", "PERFORMANCE", "VERSION")

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

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "MONITOR":
		err = monitorMode(md, sync)

	case "KLAUS":
		err = klausMode(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// machineFlags are the flags common to the modes that create a Machine.
type machineFlags struct {
	layout    *string
	origin    *uint16
	pc        *uint16
	prefs     *string
	log       *bool
	uncapped  *bool
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	f := machineFlags{
		layout:   md.AddString("layout", "flat", "bus layout: FLAT, MICRO"),
		origin:   md.AddAddress("origin", 0x0400, "default load address for files"),
		pc:       md.AddAddress("pc", 0x0000, "start address. the reset vector is used if not specified"),
		prefs:    md.AddString("prefs", "", "preferences: for example \"cpu.speed::2; cpu.jmpbug::true\""),
		log:      md.AddBool("log", false, "echo log to stdout"),
		uncapped: md.AddBool("uncapped", false, "run as fast as possible"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}
	return f
}

// newMachine creates a machine according to the flags and loads the files
// named in the remaining arguments. Files are loaded to the origin address
// unless the filename is suffixed with @address.
func newMachine(md *modalflag.Modes, f machineFlags, fb video.Framebuffer) (*hardware.Machine, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout, statsview.DefaultAddress)
	}

	layout, err := hardware.ParseLayout(*f.layout)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*f.prefs)
	ins, err := instance.NewInstance(nil, logger.Central())
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "emulate6502", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(ins, layout, fb)
	if err != nil {
		return nil, err
	}

	for _, arg := range md.RemainingArgs() {
		filename := arg
		origin := *f.origin
		if i := strings.LastIndex(arg, "@"); i > 0 {
			filename = arg[:i]
			origin, err = bus.ParseAddress(arg[i+1:])
			if err != nil {
				return nil, err
			}
		}
		if err := m.Attach(romloader.NewLoader(filename, origin)); err != nil {
			return nil, err
		}
	}

	m.SetUncapped(*f.uncapped)
	m.Reset()

	pcSet := false
	md.Visit(func(flag string) {
		if flag == "pc" {
			pcSet = true
		}
	})
	if pcSet {
		m.CPU.LoadPC(*f.pc)
	}

	return m, nil
}

// openDisplay creates an SDL window on the main thread. The window shows the
// contents of the pixels framebuffer.
func openDisplay(sync *mainSync, px *video.Pixels, scale float64) error {
	sync.creator <- func() (GuiCreator, error) {
		return sdlscreen.NewScreen(version.ApplicationName, px, float32(scale))
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	return nil
}

// interruptContext returns a context that is cancelled when the interrupt
// signal is received or when the display window is closed.
func interruptContext(sync *mainSync) (context.Context, context.CancelFunc) {
	sync.state <- stateRequest{req: reqNoIntSig}

	ctx, cancel := context.WithCancel(context.Background())

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go func() {
		defer signal.Stop(intChan)
		select {
		case <-intChan:
			fmt.Println("\r")
		case <-sync.closed:
		case <-ctx.Done():
		}
		cancel()
	}()

	return ctx, cancel
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("Files are loaded to the origin address unless suffixed with @address.\n" +
		"In the MICRO layout, files loaded to $8000 are added as ROM banks.")

	f := addMachineFlags(md)
	breakAddress := md.AddAddress("break", 0x0000, "stop when the PC reaches this address")
	maxInstructions := md.AddInt("max", 0, "maximum number of instructions. zero means no limit")
	display := md.AddBool("display", false, "open a window showing the video output (MICRO layout only)")
	scale := md.AddFloat64("scale", 1.0, "window scaling")
	profile := md.AddString("profile", "none", "run performance profiler: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("at least one file is required for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	breakSet := false
	md.Visit(func(flag string) {
		if flag == "break" {
			breakSet = true
		}
	})

	var px *video.Pixels
	var fb video.Framebuffer
	if *display {
		px = video.NewPixels(video.DefaultWidth, video.DefaultHeight)
		fb = px
	}

	m, err := newMachine(md, f, fb)
	if err != nil {
		return err
	}

	if *display {
		if m.Video == nil {
			return curated.Errorf("display requires the %s layout", hardware.LayoutMicro)
		}
		if err := openDisplay(sync, px, *scale); err != nil {
			return err
		}
	}

	ctx, cancel := interruptContext(sync)
	defer cancel()

	return performance.RunProfiler(prf, "emulate6502", func() error {
		if breakSet {
			ok, err := m.RunUntil(ctx, *breakAddress, *maxInstructions)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			if ok {
				fmt.Printf("reached $%04x\n", *breakAddress)
			}
			fmt.Println(m.CPU)
			return nil
		}

		var n int
		err := m.Run(ctx, func() (govern.State, error) {
			n++
			if *maxInstructions > 0 && n >= *maxInstructions {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Println(m.CPU)
		return nil
	})
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	f := addMachineFlags(md)
	termType := md.AddString("term", "AUTO", "terminal type: AUTO, KEY, PLAIN")
	display := md.AddBool("display", false, "open a window showing the video output (MICRO layout only)")
	scale := md.AddFloat64("scale", 1.0, "window scaling")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var px *video.Pixels
	var fb video.Framebuffer
	if *display {
		px = video.NewPixels(video.DefaultWidth, video.DefaultHeight)
		fb = px
	}

	m, err := newMachine(md, f, fb)
	if err != nil {
		return err
	}

	if *display {
		if m.Video == nil {
			return curated.Errorf("display requires the %s layout", hardware.LayoutMicro)
		}
		if err := openDisplay(sync, px, *scale); err != nil {
			return err
		}
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &keyterm.KeyTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	case "KEY":
		trm = &keyterm.KeyTerminal{}
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	// the monitor handles the interrupt signal itself
	sync.state <- stateRequest{req: reqNoIntSig}

	mon := monitor.NewMonitor(m, trm)
	mon.IntEvents = make(chan os.Signal, 1)
	signal.Notify(mon.IntEvents, os.Interrupt)
	defer signal.Stop(mon.IntEvents)

	return mon.Start(context.Background())
}

func klausMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The EMULATE6502_KLAUS_SUCCESS environment variable can be used to set the\n" +
		"success address if the -success flag is not specified.")

	opts := klaus.DefaultOptions
	load := md.AddAddress("load", opts.LoadAddress, "load address of the binary")
	origin := md.AddAddress("origin", opts.Origin, "address of the first instruction")
	success := md.AddAddress("success", opts.Success, "address of the success loop")
	maxInstructions := md.AddInt("max", opts.MaxInstructions, "maximum number of instructions. zero means no limit")
	history := md.AddInt("history", opts.History, "number of instructions to show on failure")
	jmpBug := md.AddBool("jmpbug", false, "emulate the indirect JMP bug")
	profile := md.AddString("profile", "none", "run performance profiler: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("test binary required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	successSet := false
	md.Visit(func(flag string) {
		if flag == "success" {
			successSet = true
		}
	})
	if !successSet {
		if s, ok := os.LookupEnv("EMULATE6502_KLAUS_SUCCESS"); ok {
			*success, err = bus.ParseAddress(s)
			if err != nil {
				return err
			}
		}
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(nil, hardware.LayoutFlat, nil)
	if err != nil {
		return err
	}
	if err := m.Instance.Prefs.JmpIndirectBug.Set(*jmpBug); err != nil {
		return err
	}

	opts = klaus.Options{
		LoadAddress:     *load,
		Origin:          *origin,
		Success:         *success,
		MaxInstructions: *maxInstructions,
		History:         *history,
	}

	if err := klaus.Load(m.Mem, md.GetArg(0), opts); err != nil {
		return err
	}

	var report klaus.Report
	err = performance.RunProfiler(prf, "klaus", func() error {
		report = klaus.Run(m.CPU, opts)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println(report)
	if !report.Success {
		for _, h := range report.History {
			fmt.Println(h)
		}
		return curated.Errorf("functional test failed")
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	f := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance profiler: NONE, CPU, MEM, TRACE, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("at least one file is required for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(md, f, nil)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, m, *duration)
}
