package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flowlint/flowlint/pkg/logger"
)

var errorAggregationLog = logger.New("cli:error_aggregation")

// ErrorCollector collects errors across a multi-target run so the user sees
// every failure in one pass instead of one at a time.
type ErrorCollector struct {
	errors   []error
	failFast bool
}

// NewErrorCollector creates a new error collector.
// If failFast is true, Add returns the first error immediately.
func NewErrorCollector(failFast bool) *ErrorCollector {
	return &ErrorCollector{
		errors:   make([]error, 0),
		failFast: failFast,
	}
}

// Add adds an error to the collector.
// In fail-fast mode the error is returned immediately; otherwise it is
// collected and nil is returned.
func (c *ErrorCollector) Add(err error) error {
	if err == nil {
		return nil
	}

	errorAggregationLog.Printf("Adding error to collector: %v", err)

	if c.failFast {
		return err
	}

	c.errors = append(c.errors, err)
	return nil
}

// HasErrors returns true if any errors have been collected.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of errors collected.
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Error returns the aggregated error using errors.Join, or nil if none were
// collected.
func (c *ErrorCollector) Error() error {
	if len(c.errors) == 0 {
		return nil
	}
	if len(c.errors) == 1 {
		return c.errors[0]
	}
	return errors.Join(c.errors...)
}

// FormattedError returns the aggregated error with a count header naming the
// category, or nil if none were collected.
func (c *ErrorCollector) FormattedError(category string) error {
	if len(c.errors) == 0 {
		return nil
	}
	if len(c.errors) == 1 {
		return c.errors[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s errors:", len(c.errors), category)
	for _, err := range c.errors {
		sb.WriteString("\n  • ")
		sb.WriteString(err.Error())
	}
	return fmt.Errorf("%s", sb.String())
}
