// Package hostport parses comma-separated host[:port] lists supplied on the
// command line or stored in configuration.
package hostport

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hostListSeparatorConstant = ","
	hostPortSeparatorConstant = ":"

	tooManyColonsReasonConstant   = "more than one colon"
	invalidPortReasonTemplate     = "port %q is not an integer"
	emptyHostReasonConstant       = "host name is empty"
	invalidHostMessageTemplate    = "invalid host entry %q: %s"
	hostCountMessageTemplate      = "expected between %d and %d hosts, got %d"
	unboundedMaximumCountSentinel = 0
)

// Host is one parsed host with an optional port.
type Host struct {
	Name    string
	Port    int
	HasPort bool
}

// String renders the host as name or name:port.
func (host Host) String() string {
	if !host.HasPort {
		return host.Name
	}
	return host.Name + hostPortSeparatorConstant + strconv.Itoa(host.Port)
}

// ParseOptions adjusts host list parsing.
type ParseOptions struct {
	// DefaultPort is applied to entries without an explicit port; zero leaves them portless.
	DefaultPort int
	// MinimumCount rejects lists with fewer hosts; zero disables the bound.
	MinimumCount int
	// MaximumCount rejects lists with more hosts; zero disables the bound.
	MaximumCount int
}

// InvalidHostEntryError reports a malformed host list entry.
type InvalidHostEntryError struct {
	Entry  string
	Reason string
}

// Error names the malformed entry and the reason it was rejected.
func (entryError *InvalidHostEntryError) Error() string {
	return fmt.Sprintf(invalidHostMessageTemplate, entryError.Entry, entryError.Reason)
}

// HostCountError reports a host list outside the configured count bounds.
type HostCountError struct {
	Count   int
	Minimum int
	Maximum int
}

// Error describes the violated count bounds.
func (countError *HostCountError) Error() string {
	return fmt.Sprintf(hostCountMessageTemplate, countError.Minimum, countError.Maximum, countError.Count)
}

// Parse splits a comma-separated host list, extracting an optional :port from
// each entry and applying the default port when configured. Entries with more
// than one colon or a non-integer port are usage errors, as are lists outside
// the configured minimum/maximum host counts.
func Parse(hostListValue string, options ParseOptions) ([]Host, error) {
	parsedHosts := []Host{}
	for _, hostEntry := range strings.Split(hostListValue, hostListSeparatorConstant) {
		trimmedEntry := strings.TrimSpace(hostEntry)
		if len(trimmedEntry) == 0 {
			continue
		}

		parsedHost, parseError := parseHostEntry(trimmedEntry, options.DefaultPort)
		if parseError != nil {
			return nil, parseError
		}
		parsedHosts = append(parsedHosts, parsedHost)
	}

	if countError := validateHostCount(len(parsedHosts), options); countError != nil {
		return nil, countError
	}

	return parsedHosts, nil
}

func parseHostEntry(hostEntry string, defaultPort int) (Host, error) {
	separatorCount := strings.Count(hostEntry, hostPortSeparatorConstant)
	if separatorCount > 1 {
		return Host{}, &InvalidHostEntryError{Entry: hostEntry, Reason: tooManyColonsReasonConstant}
	}

	hostName := hostEntry
	portValue := defaultPort
	hasPort := defaultPort != 0

	if separatorCount == 1 {
		separatorIndex := strings.Index(hostEntry, hostPortSeparatorConstant)
		hostName = hostEntry[:separatorIndex]
		portText := hostEntry[separatorIndex+1:]

		parsedPort, portError := strconv.Atoi(portText)
		if portError != nil {
			return Host{}, &InvalidHostEntryError{Entry: hostEntry, Reason: fmt.Sprintf(invalidPortReasonTemplate, portText)}
		}
		portValue = parsedPort
		hasPort = true
	}

	if len(strings.TrimSpace(hostName)) == 0 {
		return Host{}, &InvalidHostEntryError{Entry: hostEntry, Reason: emptyHostReasonConstant}
	}

	if !hasPort {
		return Host{Name: hostName}, nil
	}
	return Host{Name: hostName, Port: portValue, HasPort: true}, nil
}

func validateHostCount(hostCount int, options ParseOptions) error {
	belowMinimum := options.MinimumCount > 0 && hostCount < options.MinimumCount
	aboveMaximum := options.MaximumCount != unboundedMaximumCountSentinel && hostCount > options.MaximumCount
	if belowMinimum || aboveMaximum {
		return &HostCountError{Count: hostCount, Minimum: options.MinimumCount, Maximum: options.MaximumCount}
	}
	return nil
}
