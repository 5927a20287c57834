package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Printer sends raw ESC/POS data to a receipt printer.
type Printer interface {
	Print(ctx context.Context, data []byte) error
	IsConnected(ctx context.Context) bool
	Kind() string
}

// Config selects and parameterizes a printer.
type Config struct {
	Type    string // usb, network or none
	USBPath string
	Address string
}

// New creates the printer described by cfg. The fs is used for USB device files.
func New(cfg Config, fs afero.Fs) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for usb printers")
		}
		return NewUSBPrinter(fs, cfg.USBPath), nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printers")
		}
		return NewNetworkPrinter(cfg.Address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", cfg.Type)
	}
}

// usbPrinter writes each job to a character device such as /dev/usb/lp0
type usbPrinter struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// NewUSBPrinter creates a printer that writes to a device file.
func NewUSBPrinter(fs afero.Fs, devicePath string) Printer {
	return &usbPrinter{fs: fs, path: devicePath}
}

func (p *usbPrinter) Print(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.fs.OpenFile(p.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected(ctx context.Context) bool {
	_, err := p.fs.Stat(p.path)
	return err == nil
}

func (p *usbPrinter) Kind() string { return "usb" }

// networkPrinter dials a raw TCP port, usually 9100
type networkPrinter struct {
	address      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
}

// NewNetworkPrinter creates a printer reached over TCP, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address:      address,
		dialTimeout:  5 * time.Second,
		writeTimeout: 10 * time.Second,
	}
}

func (p *networkPrinter) dial(ctx context.Context, timeout time.Duration) (net.Conn, error) {
	d := net.Dialer{Timeout: timeout}
	return d.DialContext(ctx, "tcp", p.address)
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dial(ctx, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected(ctx context.Context) bool {
	conn, err := p.dial(ctx, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (p *networkPrinter) Kind() string { return "network" }

// nullPrinter accepts and discards every job
type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for booths without hardware.
func NewNullPrinter() Printer {
	return nullPrinter{}
}

func (nullPrinter) Print(ctx context.Context, data []byte) error { return nil }
func (nullPrinter) IsConnected(ctx context.Context) bool         { return false }
func (nullPrinter) Kind() string                                 { return "none" }
