// main.go - CLI front end: load an image, optionally seed from bootrom, run

package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var (
		entryPoint = flag.String("e", "", "override PC (hex, e.g. 0x10000354); defaults to 0x10000000 unless -b is set")
		bootrom    = flag.String("b", "", "16 KiB bootrom binary; if set, SP/PC are seeded from it")
		serial     = flag.String("S", "", "host serial device to attach to UART0")
		icount     = flag.Int("n", 0, "limit instruction count (0 = unlimited)")
		step       = flag.Bool("s", false, "pause for a keypress between instructions")
		script     = flag.String("script", "", "Lua monitor script to load before running")
		gdb        = flag.Bool("gdb", false, "serve a GDB remote-serial-protocol stub on 127.0.0.1:3333 instead of running directly")
	)
	flag.StringVar(entryPoint, "entry_point", *entryPoint, "alias for -e")
	flag.StringVar(bootrom, "bootrom", *bootrom, "alias for -b")
	flag.StringVar(serial, "serial", *serial, "alias for -S")
	flag.IntVar(icount, "icount", *icount, "alias for -n")
	flag.BoolVar(step, "step", *step, "alias for -s")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rp2040core [flags] <firmware.bin|firmware.uf2>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	cpu := NewCPU()

	if err := loadImage(filename, cpu.Flash(), FLASH_BASE); err != nil {
		fmt.Fprintf(os.Stderr, "loading %s: %v\n", filename, err)
		os.Exit(1)
	}

	if *bootrom != "" {
		if err := loadImage(*bootrom, cpu.ROM(), ROM_BASE); err != nil {
			fmt.Fprintf(os.Stderr, "loading bootrom %s: %v\n", *bootrom, err)
			os.Exit(1)
		}
		cpu.InitFromBootrom()
	}

	if *entryPoint != "" {
		var pc uint32
		if _, err := fmt.Sscanf(*entryPoint, "0x%x", &pc); err != nil {
			fmt.Fprintf(os.Stderr, "invalid entry point %q: %v\n", *entryPoint, err)
			os.Exit(1)
		}
		cpu.SetPC(pc)
	}

	if *serial != "" {
		f, err := os.OpenFile(*serial, os.O_RDWR, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening serial device %s: %v\n", *serial, err)
			os.Exit(1)
		}
		defer f.Close()
		cpu.UART().AttachSerial(f)
	}

	var mon *Monitor
	if *script != "" {
		var err error
		mon, err = NewMonitor(cpu)
		if err != nil {
			fmt.Fprintf(os.Stderr, "initializing monitor: %v\n", err)
			os.Exit(1)
		}
		defer mon.Close()
		if err := mon.LoadScript(*script); err != nil {
			fmt.Fprintf(os.Stderr, "loading script %s: %v\n", *script, err)
			os.Exit(1)
		}
	}

	if *gdb {
		srv := NewGDBServer(cpu)
		if err := srv.Serve("127.0.0.1:3333"); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	runUntilStop(cpu, *icount, *step)
}

// loadImage dispatches on extension: ".uf2" uses the block-structured
// loader, anything else is treated as a raw binary image. base is the
// region's absolute bus address, needed by LoadUF2 to translate each
// block's absolute target_addr into an in-region index; LoadBinary has no
// notion of an absolute address and always starts at index 0.
func loadImage(path string, region *ByteArrayRegion, base uint32) error {
	if len(path) >= 4 && path[len(path)-4:] == ".uf2" {
		return LoadUF2(path, region, base)
	}
	return LoadBinary(path, region, 0)
}

// runUntilStop drives the core directly in this goroutine: step mode pauses
// for a keypress between instructions, icount bounds the run, and a plain
// run otherwise proceeds until the core halts itself (BKPT, unknown opcode).
func runUntilStop(cpu *CPU, icount int, step bool) {
	var stepper *StepPrompt
	if step {
		var err error
		stepper, err = NewStepPrompt()
		if err != nil {
			fmt.Fprintf(os.Stderr, "enabling step mode: %v\n", err)
			os.Exit(1)
		}
		defer stepper.Close()
	}

	executed := 0
	for !cpu.stopped.Load() {
		if icount > 0 && executed >= icount {
			break
		}
		if stepper != nil {
			if !stepper.WaitForKey() {
				break
			}
		}
		cpu.ExecuteInstruction()
		executed++
	}
}
