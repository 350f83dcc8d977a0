// monitor.go - Lua-scriptable debug monitor

package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Monitor exposes the CPU to a Lua script as a small set of global
// functions: reg(i)/setreg(i,v), memread(addr,width)/memwrite(addr,v,width),
// step(), cont(), stop(), and isio(addr). A script drives the core instead of (or
// alongside) the plain CLI run loop.
type Monitor struct {
	cpu *CPU
	L   *lua.LState
}

// NewMonitor constructs a Lua state with the monitor API already wired in.
func NewMonitor(cpu *CPU) (*Monitor, error) {
	m := &Monitor{cpu: cpu, L: lua.NewState()}
	m.register()
	return m, nil
}

func (m *Monitor) Close() {
	m.L.Close()
}

// LoadScript executes a Lua file against the wired-in monitor API.
func (m *Monitor) LoadScript(path string) error {
	if err := m.L.DoFile(path); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	return nil
}

func (m *Monitor) register() {
	m.L.SetGlobal("reg", m.L.NewFunction(m.luaReg))
	m.L.SetGlobal("setreg", m.L.NewFunction(m.luaSetReg))
	m.L.SetGlobal("memread", m.L.NewFunction(m.luaMemRead))
	m.L.SetGlobal("memwrite", m.L.NewFunction(m.luaMemWrite))
	m.L.SetGlobal("step", m.L.NewFunction(m.luaStep))
	m.L.SetGlobal("cont", m.L.NewFunction(m.luaCont))
	m.L.SetGlobal("stop", m.L.NewFunction(m.luaStop))
	m.L.SetGlobal("isio", m.L.NewFunction(m.luaIsIO))
}

// luaIsIO lets a script tell a peripheral register address from plain
// ROM/flash/SRAM before deciding whether a write is safe to retry.
func (m *Monitor) luaIsIO(L *lua.LState) int {
	addr := uint32(L.CheckNumber(1))
	L.Push(lua.LBool(IsIOAddress(addr)))
	return 1
}

func (m *Monitor) luaReg(L *lua.LState) int {
	i := L.CheckInt(1)
	L.Push(lua.LNumber(m.cpu.Register(i)))
	return 1
}

func (m *Monitor) luaSetReg(L *lua.LState) int {
	i := L.CheckInt(1)
	v := uint32(L.CheckNumber(2))
	m.cpu.SetRegister(i, v)
	return 0
}

func (m *Monitor) luaMemRead(L *lua.LState) int {
	addr := uint32(L.CheckNumber(1))
	width := L.OptInt(2, 4)
	L.Push(lua.LNumber(m.cpu.bus.Read(addr, width)))
	return 1
}

func (m *Monitor) luaMemWrite(L *lua.LState) int {
	addr := uint32(L.CheckNumber(1))
	value := uint32(L.CheckNumber(2))
	width := L.OptInt(3, 4)
	m.cpu.bus.Write(addr, value, width)
	return 0
}

func (m *Monitor) luaStep(L *lua.LState) int {
	m.cpu.ExecuteInstruction()
	return 0
}

func (m *Monitor) luaCont(L *lua.LState) int {
	m.cpu.Execute()
	return 0
}

func (m *Monitor) luaStop(L *lua.LState) int {
	m.cpu.Stop()
	return 0
}
