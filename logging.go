// logging.go - per-concern loggers, all writing to stderr, never fatal

package main

import (
	"log"
	"os"
)

var (
	uartLog = log.New(os.Stderr, "uart: ", log.LstdFlags)
	sioLog  = log.New(os.Stderr, "sio: ", log.LstdFlags)
	gdbLog  = log.New(os.Stderr, "gdbserver: ", log.LstdFlags)
	cpuLog  = log.New(os.Stderr, "cpu: ", log.LstdFlags)
	uf2Log  = log.New(os.Stderr, "uf2: ", log.LstdFlags)
)
