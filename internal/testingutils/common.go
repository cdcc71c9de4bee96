package testingutils

import (
	"errors"
	"sync"

	"github.com/uw2go/uw2go/internal/ioctl"
)

var ErrNoValue = errors.New("no value for request")

// Write is a single recorded write on a FakeChannel.
type Write struct {
	Request ioctl.Request
	Value   uint32
}

// FakeChannel is an in-memory ioctl.Channel serving preset read values.
type FakeChannel struct {
	mu sync.Mutex

	Values  map[ioctl.Request]int32
	Strings map[ioctl.Request]string
	Errors  map[ioctl.Request]error
	Writes  []Write
	Closed  bool
}

var _ ioctl.Channel = &FakeChannel{}

func NewFakeChannel() *FakeChannel {
	return &FakeChannel{
		Values:  map[ioctl.Request]int32{},
		Strings: map[ioctl.Request]string{},
		Errors:  map[ioctl.Request]error{},
	}
}

// NewUniwillChannel returns a FakeChannel that passes the uniwill hardware check
// and reports three profiles.
func NewUniwillChannel() *FakeChannel {
	c := NewFakeChannel()
	c.Set(ioctl.UwHwCheck, 1)
	c.Set(ioctl.UwModelId, 19)
	c.Set(ioctl.UwProfsAvailable, 3)
	c.Set(ioctl.UwFansMinSpeed, 20)
	c.Set(ioctl.UwFansOffAvailable, 1)
	c.Set(ioctl.UwFanTemp0, 45)
	c.Set(ioctl.UwFanTemp1, 50)
	c.Strings[ioctl.ModuleVersion] = "0.3.6"
	return c
}

func (c *FakeChannel) Set(request ioctl.Request, value int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Values[request] = value
}

func (c *FakeChannel) Fail(request ioctl.Request, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Errors[request] = err
}

func (c *FakeChannel) Read(request ioctl.Request) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.Errors[request]; ok {
		return 0, err
	}
	value, ok := c.Values[request]
	if !ok {
		return 0, &ioctl.Error{Op: "read", Request: request, Err: ErrNoValue}
	}
	return value, nil
}

func (c *FakeChannel) Write(request ioctl.Request, value uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.Errors[request]; ok {
		return err
	}
	c.Writes = append(c.Writes, Write{Request: request, Value: value})
	return nil
}

func (c *FakeChannel) ReadString(request ioctl.Request, length int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.Errors[request]; ok {
		return "", err
	}
	value, ok := c.Strings[request]
	if !ok {
		return "", &ioctl.Error{Op: "read", Request: request, Err: ErrNoValue}
	}
	if len(value) > length {
		value = value[:length]
	}
	return value, nil
}

func (c *FakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Closed = true
	return nil
}

// LastWrite returns the most recent write, ok is false if nothing was written.
func (c *FakeChannel) LastWrite() (write Write, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Writes) == 0 {
		return Write{}, false
	}
	return c.Writes[len(c.Writes)-1], true
}

// WriteCount returns the number of writes performed so far.
func (c *FakeChannel) WriteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Writes)
}
