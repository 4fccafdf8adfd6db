//go:build !linux

package threadid

func setOSThreadName(string) {}

func osThreadName() (string, bool) {
	return "", false
}
