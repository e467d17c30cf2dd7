//go:build !windows

package launcher

type systemConsole struct{}

// SystemConsole returns the console the launcher is attached to. Outside
// Windows the terminal encoding follows the locale, so there is nothing to
// switch.
func SystemConsole() Console {
	return systemConsole{}
}

func (systemConsole) SetCodePage(uint32) (func(), error) {
	return noop, nil
}
