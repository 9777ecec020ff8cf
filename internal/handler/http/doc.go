// Package http implements the local HTTP emulator that sits in front of the
// API dispatcher.
//
// Every inbound request is converted to a proxy event, run through the
// dispatcher, and the resulting envelope is written back as a plain HTTP
// response. Cross-cutting concerns such as request tracing, access logging,
// panic recovery and response compression are handled by middleware in this
// package.
package http
