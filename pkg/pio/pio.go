// Package pio drives a WS2812 LED chain from one PIO state machine.
//
// The state machine runs the standard WS2812 program: each 32-bit word
// pushed into the TX FIFO is shifted out MSB first, 24 bits per LED, with
// autopull. Words are therefore laid out as GRB in the top three bytes.
package pio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fkcurrie/digit-matrix-golang/pkg/mmap"
)

const (
	// BlockSize is the size of one PIO register block
	BlockSize = 0x1000

	// NumStateMachines is the number of state machines per block
	NumStateMachines = 4

	// Register offsets within the block
	CTRL       = 0x000
	FSTAT      = 0x004
	TXF0       = 0x010
	INSTR_MEM0 = 0x048

	SM0_CLKDIV    = 0x0c8
	SM0_EXECCTRL  = 0x0cc
	SM0_SHIFTCTRL = 0x0d0
	SM0_ADDR      = 0x0d4
	SM0_INSTR     = 0x0d8
	SM0_PINCTRL   = 0x0dc

	// SM_STRIDE is the distance between two state machines' registers
	SM_STRIDE = 0x018

	fstatTXFullShift = 16

	// PINCTRL field offsets
	pinctrlSetBase      = 5
	pinctrlSideSetBase  = 10
	pinctrlSetCount     = 26
	pinctrlSideSetCount = 29

	// set pindirs, 1
	instrSetPindirsOut = 0xe081
	// jmp 0
	instrJmpStart = 0x0000

	// Bits per LED and PIO cycles per bit of the WS2812 program
	BitsPerPixel = 24
	CyclesPerBit = 10

	// WS2812 bit rate
	DefaultFrequency = 800000
	// RP2040 system clock
	DefaultClockHz = 125000000
)

// ws2812Program is the assembled WS2812 program (side-set 1, T1=2 T2=5 T3=3):
//
//	bitloop: out x, 1        side 0 [2]
//	         jmp !x do_zero  side 1 [1]
//	do_one:  jmp bitloop     side 1 [4]
//	do_zero: nop             side 0 [4]
var ws2812Program = []uint16{
	0x6221,
	0x1123,
	0x1400,
	0xa442,
}

// ErrClosed is returned by Put after Close
var ErrClosed = errors.New("pio: state machine closed")

// Registers is a 32-bit register window. *mmap.MemoryMap satisfies it.
type Registers interface {
	Read32(offset uintptr) uint32
	Write32(offset uintptr, value uint32)
}

// Config holds the configuration for a state machine. The data pin must
// already be muxed to the PIO function, which is board-level pinctrl and not
// part of the PIO block.
type Config struct {
	// BaseAddr is the physical address of the PIO block
	BaseAddr uint32
	// SMNumber selects the state machine, 0-3
	SMNumber int
	// DataPin is the GPIO driven by side-set
	DataPin int
	// ClockHz is the PIO input clock; zero means DefaultClockHz
	ClockHz uint32
}

// StateMachine represents a PIO state machine running the WS2812 program
type StateMachine struct {
	regs   Registers
	sm     int
	closer func() error
	poll   time.Duration
	mu     sync.Mutex
	closed atomic.Bool
}

// Open maps the PIO block at cfg.BaseAddr and starts a state machine on it
func Open(cfg Config) (*StateMachine, error) {
	mem, err := mmap.NewMemoryMap(uintptr(cfg.BaseAddr), BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to map PIO block: %w", err)
	}

	sm, err := NewStateMachine(mem, cfg)
	if err != nil {
		mem.Close()
		return nil, err
	}
	sm.closer = mem.Close
	return sm, nil
}

// NewStateMachine loads the WS2812 program into regs, configures the state
// machine and enables it.
func NewStateMachine(regs Registers, cfg Config) (*StateMachine, error) {
	if cfg.SMNumber < 0 || cfg.SMNumber >= NumStateMachines {
		return nil, fmt.Errorf("invalid state machine %d", cfg.SMNumber)
	}
	if cfg.DataPin < 0 || cfg.DataPin > 31 {
		return nil, fmt.Errorf("invalid data pin %d", cfg.DataPin)
	}
	clockHz := cfg.ClockHz
	if clockHz == 0 {
		clockHz = DefaultClockHz
	}

	sm := &StateMachine{
		regs: regs,
		sm:   cfg.SMNumber,
		poll: time.Microsecond,
	}
	sm.stop()
	sm.loadProgram()
	sm.configure(cfg.DataPin, ClockDivider(clockHz, DefaultFrequency*CyclesPerBit))
	sm.start()
	return sm, nil
}

// ClockDivider returns the CLKDIV register value (16.8 fixed point in the
// top 24 bits) that runs the state machine at targetHz.
func ClockDivider(clockHz, targetHz uint32) uint32 {
	div := uint64(clockHz) * 256 / uint64(targetHz)
	return uint32(div) << 8
}

func (sm *StateMachine) reg(offset uintptr) uintptr {
	return offset + uintptr(sm.sm)*SM_STRIDE
}

// loadProgram writes the program into instruction memory at offset 0
func (sm *StateMachine) loadProgram() {
	for i, instr := range ws2812Program {
		sm.regs.Write32(INSTR_MEM0+uintptr(i)*4, uint32(instr))
	}
}

func (sm *StateMachine) configure(pin int, clkdiv uint32) {
	sm.regs.Write32(sm.reg(SM0_CLKDIV), clkdiv)

	// wrap_bottom = 0, wrap_top = len-1
	execctrl := uint32(len(ws2812Program)-1) << 12
	sm.regs.Write32(sm.reg(SM0_EXECCTRL), execctrl)

	// autopull at 24 bits, shift left (MSB first), join TX FIFO
	shiftctrl := uint32(1)<<17 | uint32(BitsPerPixel)<<25 | uint32(1)<<30
	sm.regs.Write32(sm.reg(SM0_SHIFTCTRL), shiftctrl)

	// make the data pin an output through a one-pin SET mapping
	sm.regs.Write32(sm.reg(SM0_PINCTRL), uint32(1)<<pinctrlSetCount|uint32(pin)<<pinctrlSetBase)
	sm.exec(instrSetPindirsOut)

	// one side-set pin at the data pin
	pinctrl := uint32(1)<<pinctrlSideSetCount | uint32(pin)<<pinctrlSideSetBase
	sm.regs.Write32(sm.reg(SM0_PINCTRL), pinctrl)

	sm.exec(instrJmpStart)
}

// exec runs one instruction immediately on the state machine
func (sm *StateMachine) exec(instr uint16) {
	sm.regs.Write32(sm.reg(SM0_INSTR), uint32(instr))
}

func (sm *StateMachine) start() {
	ctrl := sm.regs.Read32(CTRL)
	sm.regs.Write32(CTRL, ctrl|1<<uint(sm.sm))
}

func (sm *StateMachine) stop() {
	ctrl := sm.regs.Read32(CTRL)
	sm.regs.Write32(CTRL, ctrl&^(1<<uint(sm.sm)))
}

// txFull reports whether this state machine's TX FIFO is full
func (sm *StateMachine) txFull() bool {
	return sm.regs.Read32(FSTAT)&(1<<uint(fstatTXFullShift+sm.sm)) != 0
}

// Put pushes one word into the TX FIFO, waiting for as long as the FIFO is
// full. A frame is never truncated to avoid the wait; only Close ends it,
// with ErrClosed.
func (sm *StateMachine) Put(data uint32) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for sm.txFull() {
		if sm.closed.Load() {
			return ErrClosed
		}
		time.Sleep(sm.poll)
	}
	if sm.closed.Load() {
		return ErrClosed
	}
	sm.regs.Write32(TXF0+uintptr(sm.sm)*4, data)
	return nil
}

// Close stops the state machine and releases the register mapping. A Put
// waiting on a full FIFO returns ErrClosed.
func (sm *StateMachine) Close() error {
	if sm.closed.Swap(true) {
		return nil
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stop()

	if sm.closer != nil {
		if err := sm.closer(); err != nil {
			return fmt.Errorf("failed to release PIO block: %w", err)
		}
	}
	return nil
}
