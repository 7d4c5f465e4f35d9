package utils

import (
	"net"
	"strconv"
)

// ListenURL builds the http URL clients should use to reach host:port.
//
//	Example: ("127.0.0.1", 5678) -> http://127.0.0.1:5678/
//	Example: ("::1", 80) -> http://[::1]:80/
func ListenURL(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}
