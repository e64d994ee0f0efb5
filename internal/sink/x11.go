package sink

import (
	"sync"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// X11Sink stores the status line as the root window's WM_NAME, which is
// where dwm reads its status text from.
type X11Sink struct {
	conn *xgb.Conn
	root xproto.Window
	once sync.Once
}

// OpenX11 connects to display, or $DISPLAY when display is empty
func OpenX11(display string) (*X11Sink, error) {
	errFactory := errors.New()

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrDisplayUnavailable, err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	if screen == nil {
		conn.Close()
		return nil, errFactory.WithMessage(errors.ErrDisplayUnavailable, "no default screen")
	}

	return &X11Sink{conn: conn, root: screen.Root}, nil
}

func (x *X11Sink) Render(line string) error {
	err := xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, x.root,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(line)), []byte(line)).Check()
	if err != nil {
		return errors.New().Wrap(errors.ErrRenderFailed, err)
	}

	return nil
}

// Close may be called more than once
func (x *X11Sink) Close() error {
	x.once.Do(func() {
		x.conn.Close()
	})
	return nil
}
