package ioctl

// DefaultDevicePath is the character device created by the tuxedo_io kernel module.
const DefaultDevicePath = "/dev/tuxedo_io"

const (
	magic        uint8 = 0xEC
	magicReadUw  uint8 = magic + 2
	magicWriteUw uint8 = magic + 3
)

// ModuleVersionLength is the buffer size used to read the driver version string.
const ModuleVersionLength = 64

var (
	ModuleVersion = ior("ModuleVersion", magic, 0x00)
	UwHwCheck     = ior("UwHwCheck", magic, 0x06)
)

// Uniwill read requests
var (
	UwModelId          = ior("UwModelId", magicReadUw, 0x01)
	UwFanSpeed0        = ior("UwFanSpeed0", magicReadUw, 0x10)
	UwFanSpeed1        = ior("UwFanSpeed1", magicReadUw, 0x11)
	UwFanTemp0         = ior("UwFanTemp0", magicReadUw, 0x12)
	UwFanTemp1         = ior("UwFanTemp1", magicReadUw, 0x13)
	UwModeEnable       = ior("UwModeEnable", magicReadUw, 0x15)
	UwFansOffAvailable = ior("UwFansOffAvailable", magicReadUw, 0x16)
	UwFansMinSpeed     = ior("UwFansMinSpeed", magicReadUw, 0x17)
	UwProfsAvailable   = ior("UwProfsAvailable", magicReadUw, 0x21)
)

// Uniwill write requests
var (
	UwWriteFanSpeed0   = iow("UwWriteFanSpeed0", magicWriteUw, 0x10)
	UwWriteFanSpeed1   = iow("UwWriteFanSpeed1", magicWriteUw, 0x11)
	UwWriteModeEnable  = iow("UwWriteModeEnable", magicWriteUw, 0x13)
	UwWriteFanAuto     = io("UwWriteFanAuto", magicWriteUw, 0x14)
	UwWritePerfProfile = iow("UwWritePerfProfile", magicWriteUw, 0x18)
)
