package ioctl

// Channel is a register level communication channel to the hardware.
//
// Read and Write are blocking request/response calls. Implementations do not
// need to add locking, every call is a single independent transfer.
type Channel interface {
	// Read performs a read request and returns the raw 32 bit result
	Read(request Request) (int32, error)
	// Write performs a write request with the given raw value
	Write(request Request, value uint32) error
	// ReadString performs a read request returning a NUL terminated string of at most length bytes
	ReadString(request Request, length int) (string, error)
	Close() error
}
