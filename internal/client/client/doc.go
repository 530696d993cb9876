// Package client talks to the TaskKeeper backend over gRPC.
//
// GRPCClient keeps the access token returned by Login in memory and attaches
// it to every call through a unary interceptor. gRPC status codes are mapped
// to the sentinel errors in errors.go so callers can match them with
// errors.Is.
package client
