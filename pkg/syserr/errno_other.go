//go:build !unix

package syserr

func errnoCode(error) (string, bool) {
	return "", false
}
