// Command w65run loads a flat binary image into RAM at $008000, runs
// it for a fixed number of steps, and prints the register snapshot —
// a minimal harness for exercising the cpu package outside of tests.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/grimdork/climate"

	"github.com/ninthbit/w65816/bus"
	"github.com/ninthbit/w65816/cpu"
	"github.com/ninthbit/w65816/disasm"
	"github.com/ninthbit/w65816/script"
)

type options struct {
	Image  string `climate:"image,i" help:"flat binary image to load at $008000"`
	Steps  int    `climate:"steps,n" help:"number of instructions to execute" default:"100"`
	Trace  bool   `climate:"trace,t" help:"print a disassembly line for every step"`
	Script string `climate:"script,s" help:"Lua scenario file to run instead of -steps"`
}

func main() {
	opts := options{Steps: 100}
	if err := climate.Parse(&opts); err != nil {
		log.Fatalf("w65run: %v", err)
	}
	if opts.Image == "" {
		log.Fatal("w65run: -image is required")
	}

	img, err := os.ReadFile(opts.Image)
	if err != nil {
		log.Fatalf("w65run: %v", err)
	}

	ram := bus.NewRAM(1 << 21) // 2MB, enough for a 24-bit address space slice
	ram.Load(0x008000, img)

	c := cpu.NewCPU()
	c.SetBus(ram)

	if opts.Script != "" {
		runScript(c, ram, opts.Script)
		return
	}
	runSteps(c, ram, opts.Steps, opts.Trace)
}

func runSteps(c *cpu.CPU, ram *bus.RAM, steps int, trace bool) {
	for i := 0; i < steps; i++ {
		if c.Halted() || c.Waiting() {
			break
		}
		pc := c.Snapshot().PC
		bank := c.Snapshot().PBR
		if trace {
			data := fetchWindow(ram, bank, pc, 4)
			text, _ := disasm.Line(data, true, true)
			fmt.Printf("%02X:%04X  %s\n", bank, pc, text)
		}
		c.Step()
	}
	printSnapshot(c)
}

func runScript(c *cpu.CPU, ram *bus.RAM, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("w65run: %v", err)
	}
	console := script.New(c, ram)
	defer console.Close()
	if err := console.Run(string(src)); err != nil {
		log.Fatalf("w65run: script error: %v", err)
	}
	printSnapshot(c)
}

func fetchWindow(ram *bus.RAM, bank byte, pc uint16, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = ram.Read(uint32(bank)<<16 | uint32(pc)+uint32(i))
	}
	return out
}

func printSnapshot(c *cpu.CPU) {
	s := c.Snapshot()
	fmt.Printf("A=%04X X=%04X Y=%04X SP=%04X PC=%02X:%04X P=%02X D=%04X DBR=%02X E=%v cycles=%d halted=%v waiting=%v\n",
		s.A, s.X, s.Y, s.SP, s.PBR, s.PC, s.P, s.D, s.DBR, s.E, s.Cycles, s.Halted, s.Waiting)
}
