// Package platform maps the operating system and architecture names reported
// by the Go runtime (or by other runtimes, such as Node's os.arch()) to the
// tokens used in tenv release asset names, e.g. "Linux"/"amd64".
package platform
