// Package resources describes the EC2 objects a resize touches and the driver
// interfaces used to act on them.
package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
