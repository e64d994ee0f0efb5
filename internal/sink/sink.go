package sink

import "os"

// Open returns the console sink on stdout when console is set, otherwise
// an X11 sink on $DISPLAY.
func Open(console bool) (Sink, error) {
	if console {
		return NewConsole(os.Stdout), nil
	}

	x, err := OpenX11("")
	if err != nil {
		return nil, err
	}

	return x, nil
}
