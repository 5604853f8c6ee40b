package utils

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn *xgb.Conn
	XRoot xproto.Window
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	XRoot = setup.DefaultScreen(XConn).Root
	return nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}

// GetGlobalMousePosition reads the pointer from the root window. A desktop-type
// window never receives pointer events of its own.
func GetGlobalMousePosition() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(XConn, XRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}

func internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(XConn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}

// FindWindowByName walks the window tree below the root and returns the first
// window whose WM_NAME equals title. Reparenting window managers wrap clients in
// frames, so the search goes a few levels deep.
func FindWindowByName(title string) (xproto.Window, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, err
		}
	}

	var search func(parent xproto.Window, depth int) (xproto.Window, bool)
	search = func(parent xproto.Window, depth int) (xproto.Window, bool) {
		tree, err := xproto.QueryTree(XConn, parent).Reply()
		if err != nil {
			return 0, false
		}
		for _, child := range tree.Children {
			prop, err := xproto.GetProperty(XConn, false, child, xproto.AtomWmName,
				xproto.GetPropertyTypeAny, 0, 256).Reply()
			if err == nil && string(prop.Value) == title {
				return child, true
			}
			if depth > 0 {
				if w, ok := search(child, depth-1); ok {
					return w, true
				}
			}
		}
		return 0, false
	}

	if w, ok := search(XRoot, 3); ok {
		return w, nil
	}
	return 0, fmt.Errorf("no X11 window named %q", title)
}

// SetDesktopWindowType marks the window as _NET_WM_WINDOW_TYPE_DESKTOP so EWMH
// window managers keep it below everything and out of the taskbar.
func SetDesktopWindowType(window xproto.Window) error {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return err
		}
	}

	typeAtom, err := internAtom("_NET_WM_WINDOW_TYPE")
	if err != nil {
		return err
	}
	desktopAtom, err := internAtom("_NET_WM_WINDOW_TYPE_DESKTOP")
	if err != nil {
		return err
	}

	data := make([]byte, 4)
	xgb.Put32(data, uint32(desktopAtom))

	err = xproto.ChangePropertyChecked(XConn, xproto.PropModeReplace, window, typeAtom,
		xproto.AtomAtom, 32, 1, data).Check()
	if err != nil {
		return fmt.Errorf("set window type: %w", err)
	}
	return nil
}
