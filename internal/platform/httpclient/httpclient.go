package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

// Options del cliente saliente (hoy solo lo usa el adapter de S3).
type Options struct {
	Timeout             time.Duration // default 30s: los exports pueden pesar varios MB
	DialTimeout         time.Duration // default 5s
	MaxIdleConnsPerHost int           // default 8

	// Transport permite inyectar un RoundTripper (p.ej. para tests).
	Transport http.RoundTripper
}

// New crea un *http.Client con timeouts explícitos. Cumple la interfaz
// HTTPClient del SDK de AWS (Do).
func New(opts Options) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Transport != nil {
		return &http.Client{Timeout: opts.Timeout, Transport: opts.Transport}
	}

	dial := opts.DialTimeout
	if dial <= 0 {
		dial = 5 * time.Second
	}
	idle := opts.MaxIdleConnsPerHost
	if idle <= 0 {
		idle = 8
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = (&net.Dialer{Timeout: dial, KeepAlive: 30 * time.Second}).DialContext
	tr.MaxIdleConnsPerHost = idle
	tr.TLSHandshakeTimeout = dial
	tr.ResponseHeaderTimeout = opts.Timeout

	return &http.Client{Timeout: opts.Timeout, Transport: tr}
}
