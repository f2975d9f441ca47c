// Package netutil holds the small TCP probe used by the post-start health
// check. Probe results are diagnostic only and never fail a workflow.
package netutil

import (
	"net"
	"strconv"
	"time"
)

// ProbeTCP attempts a raw TCP connection to host:port within timeout and
// closes it immediately on success. It returns the dial error, if any.
func ProbeTCP(host string, port int, timeout time.Duration) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return err
	}
	return conn.Close()
}
