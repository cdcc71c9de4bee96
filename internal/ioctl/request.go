package ioctl

import (
	"fmt"
	"unsafe"
)

// Direction bits of a Linux ioctl request number, see include/uapi/asm-generic/ioctl.h
type Direction uint

const (
	DirNone  Direction = 0
	DirWrite Direction = 1
	DirRead  Direction = 2
)

const (
	nrBits   = 8
	typeBits = 8
	sizeBits = 14

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits
)

// the tuxedo_io header declares every argument as a pointer (int32_t*, char*),
// so the encoded size is the pointer width even though 32 bits are transferred
var pointerSize = uint(unsafe.Sizeof(uintptr(0)))

// Request is an encoded ioctl request number together with a readable name.
type Request struct {
	Name   string
	Number uint
}

func newRequest(name string, dir Direction, typ uint8, nr uint8, size uint) Request {
	number := uint(dir)<<dirShift | size<<sizeShift | uint(typ)<<typeShift | uint(nr)<<nrShift
	return Request{
		Name:   name,
		Number: number,
	}
}

// ior is the equivalent of the _IOR macro for a pointer argument
func ior(name string, typ uint8, nr uint8) Request {
	return newRequest(name, DirRead, typ, nr, pointerSize)
}

// iow is the equivalent of the _IOW macro for a pointer argument
func iow(name string, typ uint8, nr uint8) Request {
	return newRequest(name, DirWrite, typ, nr, pointerSize)
}

// io is the equivalent of the _IO macro
func io(name string, typ uint8, nr uint8) Request {
	return newRequest(name, DirNone, typ, nr, 0)
}

func (r Request) Direction() Direction {
	return Direction((r.Number >> dirShift) & 0x3)
}

func (r Request) Type() uint8 {
	return uint8(r.Number >> typeShift)
}

func (r Request) Nr() uint8 {
	return uint8(r.Number >> nrShift)
}

// HasArgument indicates whether the request transfers its value through a pointer.
func (r Request) HasArgument() bool {
	return r.Direction() != DirNone
}

func (r Request) String() string {
	return fmt.Sprintf("%s(0x%08X)", r.Name, r.Number)
}
