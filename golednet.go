// Copyright 2015 Peter Fern
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file

// Package golednet provides a simple Go interface to LEDNET/Magic Home WiFi
// LED controllers on the LAN.
//
// Also included in cmd/lednet is a small CLI utility that allows interacting
// with your controllers from the shell.
package golednet

import (
	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewClient returns a pointer to a new Client using the protocol p.  The
// client starts empty; populate it via Discover() or AddTarget().
func NewClient(p protocol.Protocol) *Client {
	c := &Client{
		protocol: p,
		devices:  make(map[string]common.Device),
		timeout:  common.DefaultTimeout,
	}
	p.SetClient(c)
	return c
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  To capture logs generated during client creation,
// this should be called before creating a Client.  Defaults to
// common.StubLogger, which does no logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
