package launcher

// CodePageUTF8 is the Windows code page identifier for UTF-8.
const CodePageUTF8 = 65001

// Console switches the code page of the attached console.
type Console interface {
	// SetCodePage applies cp to console input and output. The returned
	// function puts back the previous code pages; it is never nil.
	SetCodePage(cp uint32) (restore func(), err error)
}

func noop() {}
