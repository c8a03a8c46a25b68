package propstack

import "regexp"

// Secret-shaped substrings are scrubbed from every error message before it
// leaves this package, so a logged or echoed failure can never leak the API
// key it was built with.
var secretPatterns = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)(key=)[^\s&"']+`), "${1}***"},
	{regexp.MustCompile(`(?i)(token=)[^\s&"']+`), "${1}***"},
	{regexp.MustCompile(`(?i)(bearer\s+)[^\s"']+`), "${1}***"},
}

// redactSecrets replaces credential-shaped substrings in s with ***.
func redactSecrets(s string) string {
	for _, p := range secretPatterns {
		s = p.re.ReplaceAllString(s, p.replacement)
	}
	return s
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }

// scrubErr returns err with its message scrubbed of credential-shaped
// substrings. Errors whose messages are already clean pass through untouched
// so callers keep the concrete type for errors.As.
func scrubErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	clean := redactSecrets(msg)
	if clean == msg {
		return err
	}
	return &redactedError{msg: clean, err: err}
}
