// Command sixfivectl is a small multi-purpose front end for the mos6502
// core: run a raw binary image, disassemble it, or drive the Klaus
// Dormann functional test ROM to completion outside of `go test`.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pinbus/mos6502/bus"
	"github.com/pinbus/mos6502/cpu"
	"github.com/pinbus/mos6502/disassemble"
	"github.com/pinbus/mos6502/memory"
)

func loadImage(path string, offset int) (memory.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ram, err := memory.New8BitRAMBank(1<<16, nil)
	if err != nil {
		return nil, fmt.Errorf("New8BitRAMBank: %w", err)
	}
	for i, b := range data {
		addr := offset + i
		if addr >= 1<<16 {
			break
		}
		ram.Write(uint16(addr), b)
	}
	return ram, nil
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: sixfivectl run [flags] <image>", 1)
	}
	offset := c.Int("offset")
	ram, err := loadImage(c.Args().First(), offset)
	if err != nil {
		return err
	}
	if rv := c.Int("reset-vector"); rv >= 0 {
		ram.Write(0xFFFC, uint8(rv&0xFF))
		ram.Write(0xFFFD, uint8(rv>>8))
	}

	h := bus.NewHost(cpu.New(), ram)
	h.PowerOn()

	limit := c.Int("max-instructions")
	for i := 0; limit <= 0 || i < limit; i++ {
		h.StepInstruction()
		if c.Bool("trace") {
			text, _ := disassemble.Step(h.OpAddr(), ram)
			fmt.Println(text)
		}
	}
	return nil
}

func disasmAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: sixfivectl disasm [flags] <image>", 1)
	}
	offset := c.Int("offset")
	ram, err := loadImage(c.Args().First(), offset)
	if err != nil {
		return err
	}

	pc := uint16(c.Int("start"))
	count := c.Int("count")
	for i := 0; i < count; i++ {
		text, n := disassemble.Step(pc, ram)
		fmt.Println(text)
		pc += uint16(n)
	}
	return nil
}

func functestAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: sixfivectl functest <rom>", 1)
	}
	ram, err := loadImage(c.Args().First(), 0)
	if err != nil {
		return err
	}
	startPC := uint16(c.Int("start"))
	ram.Write(0xFFFC, uint8(startPC&0xFF))
	ram.Write(0xFFFD, uint8(startPC>>8))

	h := bus.NewHost(cpu.New(), ram)
	h.PowerOn()

	successTrap := uint16(c.Int("success-trap"))
	var lastPC uint16
	for i := 0; i < c.Int("max-instructions"); i++ {
		h.StepInstruction()
		pc := h.Snapshot().PC
		if pc == successTrap {
			fmt.Printf("PASS after %d instructions\n", i+1)
			return nil
		}
		if pc == lastPC {
			return cli.Exit(fmt.Sprintf("trapped at $%04X after %d instructions", pc, i+1), 1)
		}
		lastPC = pc
	}
	return cli.Exit(fmt.Sprintf("did not reach success trap, stuck at $%04X", lastPC), 1)
}

func main() {
	app := &cli.App{
		Name:  "sixfivectl",
		Usage: "drive a mos6502 core against a raw memory image",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "load an image and execute it",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "offset", Usage: "load address", Value: 0x0000},
					&cli.IntFlag{Name: "reset-vector", Usage: "override $FFFC/$FFFD; -1 to leave as loaded", Value: -1},
					&cli.IntFlag{Name: "max-instructions", Usage: "stop after N instructions; 0 runs forever", Value: 0},
					&cli.BoolFlag{Name: "trace", Usage: "print each instruction as it executes"},
				},
				Action: runAction,
			},
			{
				Name:  "disasm",
				Usage: "disassemble an image",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "offset", Usage: "load address", Value: 0x0000},
					&cli.IntFlag{Name: "start", Usage: "PC to start disassembling from", Value: 0x0000},
					&cli.IntFlag{Name: "count", Usage: "number of instructions to print", Value: 32},
				},
				Action: disasmAction,
			},
			{
				Name:  "functest",
				Usage: "run the Klaus Dormann functional test ROM to completion",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "start", Usage: "PC the ROM expects to begin at", Value: 0x0400},
					&cli.IntFlag{Name: "success-trap", Usage: "PC the ROM loops on once all tests pass", Value: 0x3469},
					&cli.IntFlag{Name: "max-instructions", Usage: "give up after this many instructions", Value: 100_000_000},
				},
				Action: functestAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
