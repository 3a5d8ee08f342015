//go:build noassert

package assert

func Truef(bool, string, ...any) {
	// No op
}
