//go:build windows

package platform

import (
	"fmt"
	"iter"
	"math"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/1broseidon/winfit/internal/geometry"
)

var (
	modUser32   = windows.NewLazySystemDLL("user32.dll")
	modDwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	modKernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetClientRect         = modUser32.NewProc("GetClientRect")
	procGetWindowRect         = modUser32.NewProc("GetWindowRect")
	procSetWindowPos          = modUser32.NewProc("SetWindowPos")
	procGetWindowLongW        = modUser32.NewProc("GetWindowLongW")
	procSetWindowLongW        = modUser32.NewProc("SetWindowLongW")
	procGetWindowTextLengthW  = modUser32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW        = modUser32.NewProc("GetWindowTextW")
	procDwmSetWindowAttribute = modDwmapi.NewProc("DwmSetWindowAttribute")
	procSetLastError          = modKernel32.NewProc("SetLastError")

	enumWindowsCallback = windows.NewCallback(collectWindow)
)

const (
	gwlStyle   = -16
	gwlExStyle = -20

	swpNoSize         = 0x0001
	swpNoMove         = 0x0002
	swpNoZOrder       = 0x0004
	swpNoActivate     = 0x0010
	swpFrameChanged   = 0x0020
	swpNoOwnerZOrder  = 0x0200
	dwmaBorderColor   = 34
	dwmaCornerPref    = 33
	dwmwcpDefault     = 0
	dwmwcpDoNotRound  = 1
	dwmwcpRound       = 2
	dwmwcpRoundSmall  = 3
	maxImagePathChars = 32768
)

// WindowsBackend drives top-level windows through user32 and dwmapi.
type WindowsBackend struct{}

var _ Backend = (*WindowsBackend)(nil)

// New returns the Win32 backend.
func New() (Backend, error) {
	if err := modUser32.Load(); err != nil {
		return nil, fmt.Errorf("failed to load user32: %w", err)
	}
	return &WindowsBackend{}, nil
}

func collectWindow(hwnd windows.HWND, lparam uintptr) uintptr {
	handles := (*[]WindowID)(unsafe.Pointer(lparam))
	*handles = append(*handles, WindowID(hwnd))
	return 1
}

// Windows snapshots the desktop's top-level windows in EnumWindows order.
func (b *WindowsBackend) Windows() (iter.Seq[WindowID], error) {
	var handles []WindowID
	if err := windows.EnumWindows(enumWindowsCallback, unsafe.Pointer(&handles)); err != nil {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	return Snapshot(handles), nil
}

func (b *WindowsBackend) Title(id WindowID) (string, error) {
	hwnd := windows.HWND(id)

	clearLastError()
	n, _, e1 := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return "", fmt.Errorf("GetWindowTextLength: %w", errno)
		}
		return "", nil
	}

	buf := make([]uint16, n+1)
	clearLastError()
	copied, _, e1 := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if copied == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return "", fmt.Errorf("GetWindowText: %w", errno)
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:copied]), nil
}

// ExecutablePath opens the owning process with the least privilege that can
// read its image name and closes it before returning.
func (b *WindowsBackend) ExecutablePath(id WindowID) (string, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(windows.HWND(id), &pid); err != nil {
		return "", fmt.Errorf("GetWindowThreadProcessId: %w", err)
	}

	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", fmt.Errorf("OpenProcess(%d): %w", pid, err)
	}
	defer windows.CloseHandle(proc)

	buf := make([]uint16, maxImagePathChars)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", fmt.Errorf("QueryFullProcessImageName(%d): %w", pid, err)
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func (b *WindowsBackend) FrameStyle(id WindowID) (FrameStyle, error) {
	raw, err := readStyle(windows.HWND(id))
	if err != nil {
		return FrameStyle{}, err
	}
	return raw.FrameStyle(), nil
}

func (b *WindowsBackend) SetFrameStyle(id WindowID, style FrameStyle) error {
	hwnd := windows.HWND(id)
	raw, err := readStyle(hwnd)
	if err != nil {
		return err
	}
	next := raw.WithFrameStyle(style)

	if err := setWindowLong(hwnd, gwlStyle, next.Style); err != nil {
		return err
	}
	if next.ExStyle != raw.ExStyle {
		if err := setWindowLong(hwnd, gwlExStyle, next.ExStyle); err != nil {
			return err
		}
	}
	return setWindowPos(hwnd, 0, 0, swpNoMove|swpNoSize|swpNoZOrder|swpNoActivate|swpFrameChanged)
}

func (b *WindowsBackend) SetBorderColor(id WindowID, color Color) error {
	value := uint32(color)
	return dwmSetWindowAttribute(windows.HWND(id), dwmaBorderColor, unsafe.Pointer(&value), uint32(unsafe.Sizeof(value)))
}

func (b *WindowsBackend) SetCornerPreference(id WindowID, pref CornerPreference) error {
	var value uint32
	switch pref {
	case CornerDefault:
		value = dwmwcpDefault
	case CornerDoNotRound:
		value = dwmwcpDoNotRound
	case CornerRound:
		value = dwmwcpRound
	case CornerRoundSmall:
		value = dwmwcpRoundSmall
	default:
		return fmt.Errorf("unknown corner preference %d", int(pref))
	}
	return dwmSetWindowAttribute(windows.HWND(id), dwmaCornerPref, unsafe.Pointer(&value), uint32(unsafe.Sizeof(value)))
}

func (b *WindowsBackend) ClientSize(id WindowID) (geometry.Size, error) {
	return rectSize(procGetClientRect, windows.HWND(id))
}

func (b *WindowsBackend) WindowSize(id WindowID) (geometry.Size, error) {
	return rectSize(procGetWindowRect, windows.HWND(id))
}

func (b *WindowsBackend) Resize(id WindowID, outer geometry.Size) error {
	if err := checkExtent(outer, math.MaxInt32); err != nil {
		return err
	}
	return setWindowPos(windows.HWND(id), int32(outer.Width), int32(outer.Height), swpNoMove|swpNoZOrder|swpNoOwnerZOrder|swpNoActivate)
}

func (b *WindowsBackend) Close() error {
	return nil
}

func rectSize(proc *windows.LazyProc, hwnd windows.HWND) (geometry.Size, error) {
	var r windows.Rect
	ok, _, e1 := proc.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return geometry.Size{}, fmt.Errorf("%s: %w", proc.Name, e1)
	}
	return geometry.FromRect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)), nil
}

func setWindowPos(hwnd windows.HWND, cx, cy int32, flags uint32) error {
	ok, _, e1 := procSetWindowPos.Call(uintptr(hwnd), 0, 0, 0, uintptr(cx), uintptr(cy), uintptr(flags))
	if ok == 0 {
		return fmt.Errorf("SetWindowPos: %w", e1)
	}
	return nil
}

func readStyle(hwnd windows.HWND) (Win32Style, error) {
	style, err := getWindowLong(hwnd, gwlStyle)
	if err != nil {
		return Win32Style{}, err
	}
	ex, err := getWindowLong(hwnd, gwlExStyle)
	if err != nil {
		return Win32Style{}, err
	}
	return Win32Style{Style: style, ExStyle: ex}, nil
}

// getWindowLong and setWindowLong return 0 both for a zero value and for
// failure; the thread's last error tells them apart.
func getWindowLong(hwnd windows.HWND, index int32) (uint32, error) {
	clearLastError()
	r, _, e1 := procGetWindowLongW.Call(uintptr(hwnd), uintptr(index))
	if r == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("GetWindowLong(%d): %w", index, errno)
		}
	}
	return uint32(r), nil
}

func setWindowLong(hwnd windows.HWND, index int32, value uint32) error {
	clearLastError()
	r, _, e1 := procSetWindowLongW.Call(uintptr(hwnd), uintptr(index), uintptr(value))
	if r == 0 {
		if errno, ok := e1.(syscall.Errno); ok && errno != 0 {
			return fmt.Errorf("SetWindowLong(%d): %w", index, errno)
		}
	}
	return nil
}

func dwmSetWindowAttribute(hwnd windows.HWND, attr uint32, value unsafe.Pointer, size uint32) error {
	if err := procDwmSetWindowAttribute.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	hr, _, _ := procDwmSetWindowAttribute.Call(uintptr(hwnd), uintptr(attr), uintptr(value), uintptr(size))
	if hr != 0 {
		return fmt.Errorf("DwmSetWindowAttribute(%d): HRESULT 0x%08x", attr, uint32(hr))
	}
	return nil
}

func clearLastError() {
	procSetLastError.Call(0)
}
